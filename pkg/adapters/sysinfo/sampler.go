// Package sysinfo samples host CPU, memory and network usage from procfs
// and formats it for the pet's info panel.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/procfs"

	"github.com/aretw0/doro/pkg/domain"
)

// DefaultInterval is how often Run samples the host.
const DefaultInterval = 2 * time.Second

// Reading is one sample of host usage.
type Reading struct {
	CPUPercent    float64
	MemoryPercent float64
	NetBytesPerS  float64
}

// Labels formats r for the info panel widgets.
func (r Reading) Labels() map[string]string {
	return map[string]string{
		domain.LabelCPU:     fmt.Sprintf("CPU: %.0f%%", r.CPUPercent),
		domain.LabelMemory:  fmt.Sprintf("Memory: %.0f%%", r.MemoryPercent),
		domain.LabelNetwork: "Net: " + formatRate(r.NetBytesPerS),
	}
}

// Sampler computes usage from successive procfs readings. CPU and network
// figures are deltas, so the first Sample reports them as zero.
type Sampler struct {
	fs  procfs.FS
	now func() time.Time

	primed  bool
	prevCPU procfs.CPUStat
	prevNet uint64
	prevAt  time.Time
}

// New opens the proc filesystem mounted at mountPoint ("" for /proc).
func New(mountPoint string) (*Sampler, error) {
	if mountPoint == "" {
		mountPoint = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs: %w", err)
	}
	return &Sampler{fs: fs, now: time.Now}, nil
}

// Sample reads the host counters once.
func (s *Sampler) Sample() (Reading, error) {
	var r Reading

	stat, err := s.fs.Stat()
	if err != nil {
		return r, fmt.Errorf("failed to read cpu stat: %w", err)
	}
	mem, err := s.fs.Meminfo()
	if err != nil {
		return r, fmt.Errorf("failed to read meminfo: %w", err)
	}
	dev, err := s.fs.NetDev()
	if err != nil {
		return r, fmt.Errorf("failed to read net dev: %w", err)
	}

	if mem.MemTotal != nil && mem.MemAvailable != nil && *mem.MemTotal > 0 {
		used := *mem.MemTotal - min(*mem.MemAvailable, *mem.MemTotal)
		r.MemoryPercent = 100 * float64(used) / float64(*mem.MemTotal)
	}

	total := dev.Total()
	netBytes := total.RxBytes + total.TxBytes
	at := s.now()

	if s.primed {
		busy := cpuBusy(stat.CPUTotal) - cpuBusy(s.prevCPU)
		all := cpuAll(stat.CPUTotal) - cpuAll(s.prevCPU)
		if all > 0 {
			r.CPUPercent = 100 * busy / all
		}
		if elapsed := at.Sub(s.prevAt).Seconds(); elapsed > 0 && netBytes >= s.prevNet {
			r.NetBytesPerS = float64(netBytes-s.prevNet) / elapsed
		}
	}

	s.primed = true
	s.prevCPU = stat.CPUTotal
	s.prevNet = netBytes
	s.prevAt = at
	return r, nil
}

// Run samples every interval and publishes each label until ctx is done.
// Sampling errors are reported through onErr and do not stop the loop.
func (s *Sampler) Run(ctx context.Context, interval time.Duration, publish func(key, text string), onErr func(error)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if r, err := s.Sample(); err != nil {
			if onErr != nil {
				onErr(err)
			}
		} else {
			for key, text := range r.Labels() {
				publish(key, text)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func cpuAll(c procfs.CPUStat) float64 {
	return c.User + c.Nice + c.System + c.Idle + c.Iowait + c.IRQ + c.SoftIRQ + c.Steal
}

func cpuBusy(c procfs.CPUStat) float64 {
	return cpuAll(c) - c.Idle - c.Iowait
}

func formatRate(bytesPerS float64) string {
	switch {
	case bytesPerS >= 1<<20:
		return fmt.Sprintf("%.1f MB/s", bytesPerS/(1<<20))
	default:
		return fmt.Sprintf("%.0f KB/s", bytesPerS/(1<<10))
	}
}
