package rc

import "github.com/joshuapare/rtcore/rt/fail"

// Observer is notified of every tracked allocation and of every release that
// reaches zero. The leak detector is the observer in debug runs.
type Observer interface {
	Allocated(h *Header, typ string, site fail.Src)
	Freed(h *Header)
}

var obs Observer

// SetObserver installs o (nil uninstalls) and returns the previous observer.
func SetObserver(o Observer) Observer {
	prev := obs
	obs = o
	return prev
}

// Observed reports whether an observer is installed.
func Observed() bool { return obs != nil }
