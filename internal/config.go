package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	TelegramToken         string        `env:"TELEGRAM_TOKEN,required=true" validate:"required"`
	LogLevel              string        `env:"LOG_LEVEL,default=INFO"`
	WorkDir               string        `env:"WORK_DIR,default=./downloads" validate:"required"`
	DownloadTimeout       time.Duration `env:"DOWNLOAD_TIMEOUT,default=30m" validate:"gt=0"`
	NumberOfUploadWorkers int           `env:"NUMBER_OF_UPLOAD_WORKERS,default=2" validate:"gte=1"`
	UploadQueueSize       int           `env:"UPLOAD_QUEUE_SIZE,default=16" validate:"gte=0"`
	SubmitTimeout         time.Duration `env:"SUBMIT_TIMEOUT,default=10s" validate:"gte=0"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	ProgressInterval      time.Duration `env:"PROGRESS_INTERVAL,default=2s" validate:"gt=0"`
	ProgressMinDelta      float64       `env:"PROGRESS_MIN_DELTA,default=5" validate:"gte=0,lte=100"`
	JanitorInterval       time.Duration `env:"JANITOR_INTERVAL,default=10m" validate:"gt=0"`
	ArtifactMaxAge        time.Duration `env:"ARTIFACT_MAX_AGE,default=2h" validate:"gt=0"`
	RecordTTL             time.Duration `env:"RECORD_TTL,default=24h" validate:"gt=0"`
	MetricInterval        time.Duration `env:"METRIC_INTERVAL,default=1m" validate:"gte=0"`
	MinFreeSpaceMB        int64         `env:"MIN_FREE_SPACE_MB,default=512" validate:"gte=0"`
}

// Validate checks the bounds that env tags cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
