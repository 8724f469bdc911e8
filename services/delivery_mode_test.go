package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeliveryMode_DefaultsToDocument(t *testing.T) {
	req := require.New(t)
	mode := NewDeliveryMode()
	req.True(mode.IsDocument())
	req.Equal("Document", Label(mode.IsDocument()))
}

func TestDeliveryMode_ToggleTwiceRestoresValue(t *testing.T) {
	req := require.New(t)
	mode := NewDeliveryMode()

	req.False(mode.Toggle())
	req.False(mode.IsDocument())
	req.Equal("Media", Label(mode.IsDocument()))

	req.True(mode.Toggle())
	req.True(mode.IsDocument())
}

func TestDeliveryMode_ConcurrentToggles(t *testing.T) {
	req := require.New(t)
	mode := NewDeliveryMode()

	// An even number of toggles always lands back on document mode
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mode.Toggle()
		}()
	}
	wg.Wait()

	req.True(mode.IsDocument())
}
