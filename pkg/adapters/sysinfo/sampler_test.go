package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro/pkg/domain"
)

type fakeProc struct {
	t    *testing.T
	root string
}

func newFakeProc(t *testing.T) *fakeProc {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "net"), 0o755))
	return &fakeProc{t: t, root: root}
}

// write sets the cpu jiffies (busy, idle), memory in kB and total network bytes.
func (p *fakeProc) write(busy, idle, memTotal, memAvail, rx, tx uint64) {
	p.t.Helper()
	stat := fmt.Sprintf("cpu  %d 0 0 %d 0 0 0 0 0 0\ncpu0 %d 0 0 %d 0 0 0 0 0 0\nbtime 1700000000\n", busy, idle, busy, idle)
	meminfo := fmt.Sprintf("MemTotal:       %d kB\nMemFree:        %d kB\nMemAvailable:   %d kB\n", memTotal, memAvail, memAvail)
	netdev := "Inter-|   Receive                                                |  Transmit\n" +
		" face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed\n" +
		fmt.Sprintf("  eth0: %d 10 0 0 0 0 0 0 %d 20 0 0 0 0 0 0\n", rx, tx)

	require.NoError(p.t, os.WriteFile(filepath.Join(p.root, "stat"), []byte(stat), 0o644))
	require.NoError(p.t, os.WriteFile(filepath.Join(p.root, "meminfo"), []byte(meminfo), 0o644))
	require.NoError(p.t, os.WriteFile(filepath.Join(p.root, "net", "dev"), []byte(netdev), 0o644))
}

func TestSampler_Deltas(t *testing.T) {
	proc := newFakeProc(t)
	s, err := New(proc.root)
	require.NoError(t, err)

	clock := time.Unix(100, 0)
	s.now = func() time.Time { return clock }

	proc.write(100, 900, 1000, 750, 0, 0)
	first, err := s.Sample()
	require.NoError(t, err)
	assert.Zero(t, first.CPUPercent)
	assert.Zero(t, first.NetBytesPerS)
	assert.InDelta(t, 25, first.MemoryPercent, 0.001)

	clock = clock.Add(2 * time.Second)
	proc.write(150, 950, 1000, 500, 3072, 1024)
	second, err := s.Sample()
	require.NoError(t, err)
	assert.InDelta(t, 50, second.CPUPercent, 0.001)
	assert.InDelta(t, 50, second.MemoryPercent, 0.001)
	assert.InDelta(t, 2048, second.NetBytesPerS, 0.001)

	assert.Equal(t, map[string]string{
		domain.LabelCPU:     "CPU: 50%",
		domain.LabelMemory:  "Memory: 50%",
		domain.LabelNetwork: "Net: 2 KB/s",
	}, second.Labels())
}

func TestSampler_MissingFiles(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	_, err = s.Sample()
	assert.Error(t, err)

	_, err = New(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0 KB/s", formatRate(0))
	assert.Equal(t, "512 KB/s", formatRate(512*1024))
	assert.Equal(t, "1.5 MB/s", formatRate(1.5*1024*1024))
}
