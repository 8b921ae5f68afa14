package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-pong/internal/binding"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// actionHelp lists the actions shown in the footer, in display order.
var actionHelp = []struct {
	action core.ActionID
	desc   string
}{
	{core.ActionLeftPaddleUp, "left up"},
	{core.ActionLeftPaddleDown, "left down"},
	{core.ActionRightPaddleUp, "right up"},
	{core.ActionRightPaddleDown, "right down"},
	{core.ActionStartRound, "serve"},
	{core.ActionExit, "quit"},
}

// ActionKeyMap describes the active bindings for bubbles/help.
type ActionKeyMap struct {
	bindings []key.Binding
}

// NewActionKeyMap builds help entries from the remapper's bindings.
// Actions without a bound input are left out.
func NewActionKeyMap(r *binding.Remapper) ActionKeyMap {
	var km ActionKeyMap
	for _, a := range actionHelp {
		inputs := r.InputsFor(a.action)
		if len(inputs) == 0 {
			continue
		}
		keys := make([]string, len(inputs))
		for i, in := range inputs {
			keys[i] = strings.ToLower(in)
		}
		km.bindings = append(km.bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), a.desc),
		))
	}
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k ActionKeyMap) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp returns key bindings for the full help view.
func (k ActionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}
