package window

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/desksim/internal/ui"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot is one sample of host statistics
type Snapshot struct {
	Hostname   string
	Platform   string
	Kernel     string
	Uptime     time.Duration
	CPUs       int
	CPUPercent float64
	MemUsed    uint64
	MemTotal   uint64
	MemPercent float64
	Taken      time.Time
}

// SampleMsg carries a new snapshot
type SampleMsg struct {
	Snapshot Snapshot
	Err      error
}

// System shows host information and resource usage
type System struct {
	Base
	snapshot Snapshot
	err      error
}

// NewSystem creates a new system monitor window
func NewSystem(styles ui.Styles) *System {
	return &System{
		Base: NewBase("system", styles),
	}
}

// Sample collects host statistics. Partial failures keep the fields that
// could be read and report the joined error.
func Sample() tea.Cmd {
	return func() tea.Msg {
		var (
			s    = Snapshot{Taken: time.Now(), CPUs: runtime.NumCPU()}
			errs []error
		)

		if info, err := host.Info(); err != nil {
			errs = append(errs, fmt.Errorf("host info: %w", err))
		} else {
			s.Hostname = info.Hostname
			s.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
			s.Kernel = info.KernelVersion
			s.Uptime = time.Duration(info.Uptime) * time.Second
		}

		if pct, err := cpu.Percent(0, false); err != nil {
			errs = append(errs, fmt.Errorf("cpu usage: %w", err))
		} else if len(pct) > 0 {
			s.CPUPercent = pct[0]
		}

		if vm, err := mem.VirtualMemory(); err != nil {
			errs = append(errs, fmt.Errorf("memory usage: %w", err))
		} else {
			s.MemUsed = vm.Used
			s.MemTotal = vm.Total
			s.MemPercent = vm.UsedPercent
		}

		return SampleMsg{Snapshot: s, Err: errors.Join(errs...)}
	}
}

// SetSample stores a sample result
func (s *System) SetSample(msg SampleMsg) {
	s.snapshot = msg.Snapshot
	s.err = msg.Err
}

// Update handles input (the window is read-only)
func (s *System) Update(msg tea.Msg) (Window, tea.Cmd) {
	return s, nil
}

// View renders the statistics
func (s *System) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	if s.snapshot.Taken.IsZero() {
		return s.styles.Muted.Render("Sampling...")
	}

	snap := s.snapshot
	barWidth := max(4, width-16)
	rows := []struct {
		label string
		value string
	}{
		{"Host", snap.Hostname},
		{"Platform", snap.Platform},
		{"Kernel", snap.Kernel},
		{"Uptime", snap.Uptime.Truncate(time.Minute).String()},
		{"CPUs", fmt.Sprintf("%d", snap.CPUs)},
		{"", ""},
		{"CPU", bar(snap.CPUPercent, barWidth) + fmt.Sprintf(" %3.0f%%", snap.CPUPercent)},
		{"Memory", bar(snap.MemPercent, barWidth) + fmt.Sprintf(" %3.0f%%", snap.MemPercent)},
		{"", s.styles.Muted.Render(fmt.Sprintf("%s / %s", humanBytes(snap.MemUsed), humanBytes(snap.MemTotal)))},
	}

	var lines []string
	for _, r := range rows {
		label := s.styles.Bold.Width(9).Render(r.label)
		lines = append(lines, label+s.styles.Text.Render(r.value))
	}

	if s.err != nil {
		lines = append(lines, "", s.styles.Muted.Render(s.err.Error()))
	}

	return strings.Join(lines, "\n")
}

func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func humanBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
