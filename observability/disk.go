package observability

import (
	"fmt"
	"relay-bot/contract"
	"relay-bot/errors"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/disk"
)

var _ contract.IDiskProbe = (*DiskProbe)(nil)

// DiskProbe refuses downloads that would leave less than minFree bytes on the work volume.
type DiskProbe struct {
	minFree uint64
	usage   func(path string) (*disk.UsageStat, error)
}

func NewDiskProbe(minFreeBytes int64) *DiskProbe {
	if minFreeBytes < 0 {
		minFreeBytes = 0
	}
	return &DiskProbe{minFree: uint64(minFreeBytes), usage: disk.Usage}
}

func (p *DiskProbe) EnsureFree(dir string, need int64) error {
	if need <= 0 {
		return nil
	}
	stat, err := p.usage(dir)
	if err != nil {
		return fmt.Errorf("disk usage of %s: %w", dir, err)
	}
	if stat.Free < uint64(need)+p.minFree {
		return fmt.Errorf("%w: need %s, %s free", errors.ErrInsufficientSpace,
			humanize.Bytes(uint64(need)), humanize.Bytes(stat.Free))
	}
	return nil
}
