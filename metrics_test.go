package navbar

import (
	"runtime"
	"testing"
)

func TestMetricsOutsideMultiplexer(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")

	if StatusBarHeight() != 0 {
		t.Errorf("StatusBarHeight = %d, want 0", StatusBarHeight())
	}
	if TotalHeight() != BarHeight {
		t.Errorf("TotalHeight = %d, want %d", TotalHeight(), BarHeight)
	}
	p := Platform()
	if p.OS != runtime.GOOS || p.Multiplexed {
		t.Errorf("Platform = %+v", p)
	}
}

func TestMetricsInsideMultiplexer(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	t.Setenv("STY", "")

	if StatusBarHeight() != 1 {
		t.Errorf("StatusBarHeight = %d, want 1", StatusBarHeight())
	}
	if TotalHeight() != BarHeight+1 {
		t.Errorf("TotalHeight = %d, want %d", TotalHeight(), BarHeight+1)
	}
	if !Platform().Multiplexed {
		t.Error("Platform().Multiplexed = false inside tmux")
	}
}
