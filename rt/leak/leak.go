// Package leak reports managed objects that are still alive when a program
// finishes.
//
// A Tracker becomes the rc observer while installed. Every tracked
// allocation is recorded with its type tag and allocation site; a release
// that reaches zero removes the record. Whatever is left at the drain point
// is reported:
//
//	t := leak.New(leak.Options{})
//	t.Install()
//	defer t.Close()
//
// Objects that are part of a reference cycle never reach zero and always
// show up in the report.
package leak

import (
	"container/list"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/rtcore/internal/logger"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
)

const cycleHint = "hint: self-referential (cyclic) structures are never freed by reference counting"

// Options configures a Tracker.
type Options struct {
	// Out receives the report written by Close. Default: os.Stderr.
	Out io.Writer

	// Logger receives debug events for every track and untrack.
	// Default: logger.L at the time of the event.
	Logger *slog.Logger
}

// Entry describes one live object.
type Entry struct {
	Type string
	Site fail.Src
	Refs uint32
}

type record struct {
	hdr  *rc.Header
	typ  string
	site fail.Src
}

// Tracker records live managed objects in allocation order.
type Tracker struct {
	opts  Options
	order *list.List
	index map[*rc.Header]*list.Element

	installed bool
	prev      rc.Observer
}

// New returns a tracker that is not yet installed.
func New(opts Options) *Tracker {
	return &Tracker{opts: opts}
}

func (t *Tracker) lazyInit() {
	if t.order == nil {
		t.order = list.New()
		t.index = make(map[*rc.Header]*list.Element)
	}
}

func (t *Tracker) log() *slog.Logger {
	if t.opts.Logger != nil {
		return t.opts.Logger
	}
	return logger.L
}

// Install makes t the rc observer. The returned function restores the
// previous observer; calling it more than once is harmless.
func (t *Tracker) Install() (uninstall func()) {
	t.lazyInit()
	if !t.installed {
		t.prev = rc.SetObserver(t)
		t.installed = true
	}
	return t.uninstall
}

func (t *Tracker) uninstall() {
	if !t.installed {
		return
	}
	rc.SetObserver(t.prev)
	t.prev = nil
	t.installed = false
}

// Allocated records a newly initialized object.
func (t *Tracker) Allocated(h *rc.Header, typ string, site fail.Src) {
	t.lazyInit()
	if el, ok := t.index[h]; ok {
		// Header reused without a release reaching zero.
		t.order.Remove(el)
	}
	t.index[h] = t.order.PushBack(&record{hdr: h, typ: typ, site: site})
	t.log().Debug("leak: track", "type", typ, "site", site.String())
}

// Freed forgets an object whose count reached zero. Unknown headers are
// ignored.
func (t *Tracker) Freed(h *rc.Header) {
	el, ok := t.index[h]
	if !ok {
		return
	}
	rec := t.order.Remove(el).(*record)
	delete(t.index, h)
	t.log().Debug("leak: untrack", "type", rec.typ)
}

// Len returns the number of live tracked objects.
func (t *Tracker) Len() int {
	if t.order == nil {
		return 0
	}
	return t.order.Len()
}

// Live returns the live objects in allocation order.
func (t *Tracker) Live() []Entry {
	if t.Len() == 0 {
		return nil
	}
	out := make([]Entry, 0, t.order.Len())
	for el := t.order.Front(); el != nil; el = el.Next() {
		rec := el.Value.(*record)
		out = append(out, Entry{Type: rec.typ, Site: rec.site, Refs: rec.hdr.Count()})
	}
	return out
}

// Report writes the leak report to w and returns the number of live
// objects. Nothing is written when there are none.
func (t *Tracker) Report(w io.Writer) int {
	live := t.Live()
	if len(live) == 0 {
		return 0
	}
	fmt.Fprintf(w, "leak detector: %d object(s) still alive at exit\n", len(live))
	for _, e := range live {
		fmt.Fprintf(w, "  %s allocated at %s (refcount=%d)\n", e.Type, e.Site, e.Refs)
	}
	fmt.Fprintln(w, cycleHint)
	return len(live)
}

// Close uninstalls t and reports to Options.Out. It returns the number of
// leaked objects.
func (t *Tracker) Close() int {
	t.uninstall()
	w := t.opts.Out
	if w == nil {
		w = os.Stderr
	}
	n := t.Report(w)
	if n > 0 {
		t.log().Warn("leak: objects alive at exit", "count", n)
	}
	return n
}
