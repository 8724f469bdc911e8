package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.NoError(config.Validate())

	req.Equal("123:abc", config.TelegramToken)
	req.Equal("INFO", config.LogLevel)
	req.Equal(2, config.NumberOfUploadWorkers)
	req.Equal(30*time.Minute, config.DownloadTimeout)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal(5.0, config.ProgressMinDelta)
	req.Equal(int64(512), config.MinFreeSpaceMB)
}

func TestConfig_Invalid(t *testing.T) {
	req := require.New(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("NUMBER_OF_UPLOAD_WORKERS", "0")
	t.Setenv("PROGRESS_MIN_DELTA", "150")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.ErrorContains(config.Validate(), "NumberOfUploadWorkers")
}

func TestConfig_ZeroProgressInterval(t *testing.T) {
	req := require.New(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("PROGRESS_INTERVAL", "0s")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.ErrorContains(config.Validate(), "ProgressInterval")
}
