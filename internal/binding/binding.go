// Package binding turns normalized device events into semantic actions
// using the configured key and button bindings.
package binding

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/rawinput"
)

// source identifies one physical input: a key or a mouse button.
type source struct {
	key    rawinput.KeyCode
	button uint32
}

func (s source) String() string {
	if s.button != 0 {
		return fmt.Sprintf("Mouse%d", s.button)
	}
	return s.key.String()
}

// Entry is one resolved binding.
type Entry struct {
	Input  string // key name or "MouseN"
	Action core.ActionID
}

// Result is the outcome of mapping one frame of device events.
type Result struct {
	Actions []core.ActionEvent
	Quit    bool // Exit action or window close
}

// Remapper maps key and button events to actions. It tracks which inputs
// are down so a State action held through several inputs is only
// deactivated when the last one is released.
type Remapper struct {
	bindings map[source][]core.ActionID
	order    []Entry
	down     map[source]bool
	held     map[core.ActionID]int
}

// New builds a remapper from a bindings config.
func New(cfg config.BindingsConfig) (*Remapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Remapper{
		bindings: make(map[source][]core.ActionID),
		down:     make(map[source]bool),
		held:     make(map[core.ActionID]int),
	}
	for _, b := range cfg.Bindings {
		action, _ := core.ParseAction(b.Action)
		src := source{button: b.Button}
		if b.Key != "" {
			src.key, _ = rawinput.ParseKeyCode(b.Key)
		}
		r.bindings[src] = append(r.bindings[src], action)
		r.order = append(r.order, Entry{Input: src.String(), Action: action})
	}
	return r, nil
}

// Entries returns the bindings in configuration order.
func (r *Remapper) Entries() []Entry {
	return append([]Entry(nil), r.order...)
}

// InputsFor returns the names of the inputs bound to action.
func (r *Remapper) InputsFor(action core.ActionID) []string {
	var names []string
	for _, e := range r.order {
		if e.Action == action {
			names = append(names, e.Input)
		}
	}
	return names
}

// Map converts device events to actions in order.
func (r *Remapper) Map(events []rawinput.DeviceEvent) Result {
	var res Result
	for _, ev := range events {
		switch ev.Kind {
		case rawinput.KindClose:
			res.Quit = true
		case rawinput.KindFocus:
			if !ev.Focused {
				res.Actions = append(res.Actions, r.ReleaseAll()...)
			}
		case rawinput.KindKey:
			r.handle(source{key: ev.Key}, ev.Action, &res)
		case rawinput.KindButton:
			r.handle(source{button: ev.Button}, ev.Action, &res)
		}
	}
	return res
}

func (r *Remapper) handle(src source, action rawinput.Action, res *Result) {
	ids, ok := r.bindings[src]
	if !ok {
		return
	}

	if action == rawinput.Release {
		if !r.down[src] {
			return
		}
		delete(r.down, src)
		for _, id := range ids {
			if id.Kind() != core.KindState {
				continue
			}
			r.held[id]--
			if r.held[id] <= 0 {
				delete(r.held, id)
				res.Actions = append(res.Actions, core.State(id, core.StateDeactivated))
			}
		}
		return
	}

	repeat := r.down[src]
	r.down[src] = true
	for _, id := range ids {
		switch id.Kind() {
		case core.KindState:
			if r.held[id] > 0 {
				res.Actions = append(res.Actions, core.State(id, core.StateActive))
			} else {
				res.Actions = append(res.Actions, core.State(id, core.StateActivated))
			}
			if !repeat {
				r.held[id]++
			}
		case core.KindDiscrete:
			res.Actions = append(res.Actions, core.Discrete(id))
			if id == core.ActionExit {
				res.Quit = true
			}
		}
	}
}

// ReleaseAll deactivates every held State action.
func (r *Remapper) ReleaseAll() []core.ActionEvent {
	ids := make([]core.ActionID, 0, len(r.held))
	for id := range r.held {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]core.ActionEvent, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.State(id, core.StateDeactivated))
	}
	clear(r.held)
	clear(r.down)
	return out
}
