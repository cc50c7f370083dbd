package navbar

import (
	"os"
	"runtime"
)

// BarHeight is the fixed nominal height of the bar in rows: one content row
// plus the separator row. Exposed so surrounding layout code can reserve
// space without instantiating a bar.
const BarHeight = 2

// PlatformInfo describes the host environment the bar renders into.
type PlatformInfo struct {
	// OS is the host OS family (runtime.GOOS).
	OS string
	// Multiplexed reports whether the terminal sits inside a multiplexer
	// (tmux, GNU screen) that reserves a status line at the window edge.
	Multiplexed bool
}

// Platform identifies the host environment.
func Platform() PlatformInfo {
	return PlatformInfo{
		OS:          runtime.GOOS,
		Multiplexed: os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}

// StatusBarHeight returns the rows the host status line occupies: 1 inside a
// multiplexer, 0 otherwise.
func StatusBarHeight() int {
	if Platform().Multiplexed {
		return 1
	}
	return 0
}

// TotalHeight is StatusBarHeight plus BarHeight, the full vertical footprint
// of an opaque bar with its separator.
func TotalHeight() int {
	return StatusBarHeight() + BarHeight
}
