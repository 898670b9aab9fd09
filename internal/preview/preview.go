// Package preview implements the fix-all preview dialog core: a flat node
// tree of toggleable edits and a deterministic preview of the document text
// with the selected edits applied. The package is UI-framework agnostic;
// internal/tui renders it.
package preview

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/fixpick/fixpick/internal/codeaction"
	"github.com/fixpick/fixpick/internal/editor"
	"github.com/fixpick/fixpick/internal/textchange"
)

// Node is one row of the edit tree. Row 0 is the root and represents the
// whole fix-all; it carries no change. Every other row holds exactly one
// text change and starts enabled.
type Node struct {
	Enabled bool
	Label   string
	Change  *textchange.TextChange
}

// IsRoot reports whether the node is the aggregate root.
func (n Node) IsRoot() bool { return n.Change == nil }

// PreviewState is the rendered preview: the document text with the selected
// edits applied, plus the location of the first applied change for centering.
type PreviewState struct {
	Text string
	Line int             // 0-based line of the first applied change, -1 when none
	Sel  textchange.Span // replaced range in the preview text, zero when none
}

// TieBreak selects how a same-tick batch of events is resolved.
type TieBreak int

const (
	// LastEventWins applies every event of the batch in order; later events
	// override earlier ones. This is the default.
	LastEventWins TieBreak = iota

	// FirstEventWins applies only the first event of the batch.
	FirstEventWins
)

// Event is an input to the dialog's state machine.
type Event interface{ isEvent() }

// Toggle flips the enabled flag of the leaf at Row. Toggling the root or an
// out-of-range row does nothing.
type Toggle struct{ Row int }

// Select moves the selection to Row; -1 clears it. Out-of-range rows other
// than -1 are ignored.
type Select struct{ Row int }

func (Toggle) isEvent() {}
func (Select) isEvent() {}

// Option configures a Dialog.
type Option func(*Dialog)

// WithTieBreak sets the batch tie-break policy.
func WithTieBreak(tb TieBreak) Option {
	return func(d *Dialog) { d.tieBreak = tb }
}

// ErrAlreadyInitialized is returned by a second Init call.
var ErrAlreadyInitialized = errors.New("preview dialog already initialized")

// Dialog is the fix-all preview controller. It owns its node tree and
// preview state; the editor and operations are borrowed from the caller.
// Dialog is not safe for concurrent use: all events must arrive on one
// goroutine, batched through Dispatch.
type Dialog struct {
	action codeaction.Action
	ed     editor.Editor

	tieBreak TieBreak

	baseText string
	nodes    []Node
	selected int
	preview  PreviewState
	inited   bool
}

// New validates the action's scope and builds an empty dialog. Any scope
// other than a single document fails immediately with ErrUnsupportedScope
// and creates no dialog state.
func New(action codeaction.Action, ed editor.Editor, opts ...Option) (*Dialog, error) {
	if err := codeaction.CheckScope(action.Scope); err != nil {
		return nil, err
	}

	d := &Dialog{
		action:   action,
		ed:       ed,
		selected: -1,
		preview:  PreviewState{Line: -1},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Init populates the tree: it fetches the base document text, extracts the
// changed text from the action's operations, and appends one enabled leaf
// per textual difference. Call exactly once, before showing the dialog.
// An empty operation set yields a root with no children and no error.
func (d *Dialog) Init(ctx context.Context) error {
	if d.inited {
		return ErrAlreadyInitialized
	}

	base, err := d.ed.Text(ctx)
	if err != nil {
		return fmt.Errorf("fetching document text: %w", err)
	}
	d.baseText = base
	d.nodes = []Node{{
		Enabled: true,
		Label:   rootLabel(d.action),
	}}

	changed, ok := codeaction.ChangedText(d.action.Operations)
	if ok {
		changes := textchange.Compute(base, changed)
		labels := textchange.Labels(changed, changes)
		for i := range changes {
			d.nodes = append(d.nodes, Node{
				Enabled: true,
				Label:   labels[i],
				Change:  &changes[i],
			})
		}
	}

	d.inited = true
	d.preview = PreviewState{Text: base, Line: -1}
	return nil
}

func rootLabel(a codeaction.Action) string {
	label := fmt.Sprintf("Fix all '%s'", a.DiagnosticID)
	if a.ScopeLabel != "" {
		label += " in " + a.ScopeLabel
	}
	return label
}

// Dispatch feeds a same-tick batch of events into the state machine and
// recomputes the preview exactly once. With LastEventWins the events apply
// in order; with FirstEventWins only the first applies.
func (d *Dialog) Dispatch(events ...Event) {
	if len(events) == 0 {
		return
	}
	if d.tieBreak == FirstEventWins {
		events = events[:1]
	}

	for _, ev := range events {
		switch ev := ev.(type) {
		case Toggle:
			if ev.Row > 0 && ev.Row < len(d.nodes) {
				d.nodes[ev.Row].Enabled = !d.nodes[ev.Row].Enabled
			}
		case Select:
			if ev.Row == -1 || (ev.Row >= 0 && ev.Row < len(d.nodes)) {
				d.selected = ev.Row
			}
		}
	}

	d.recompute()
}

// recompute derives the preview from the current selection and enabled
// flags, per the dialog contract:
//   - no selection, or a disabled selected row: unmodified base text;
//   - root selected: base text with all enabled leaf changes applied;
//   - leaf selected: base text with only that leaf's change applied.
func (d *Dialog) recompute() {
	st := PreviewState{Text: d.baseText, Line: -1}
	defer func() { d.preview = st }()

	if d.selected < 0 || d.selected >= len(d.nodes) {
		return
	}
	sel := d.nodes[d.selected]
	if !sel.Enabled {
		return
	}

	var applied []textchange.TextChange
	if sel.IsRoot() {
		for _, n := range d.nodes[1:] {
			if n.Enabled {
				applied = append(applied, *n.Change)
			}
		}
	} else {
		applied = []textchange.TextChange{*sel.Change}
	}
	if len(applied) == 0 {
		return
	}

	st.Text = textchange.Apply(d.baseText, applied)

	// The first applied change is the earliest, so nothing before it has
	// shifted and its base offset is valid in the preview text.
	first := applied[0]
	st.Line = textchange.LineAt(st.Text, first.Span.Start)
	st.Sel = textchange.Span{
		Start: first.Span.Start,
		End:   first.Span.Start + len(first.NewText),
	}
}

// Preview returns the current preview state.
func (d *Dialog) Preview() PreviewState { return d.preview }

// Nodes returns the tree rows: root at index 0, leaves after it in original
// diff order. The slice is owned by the dialog; callers must not mutate it.
func (d *Dialog) Nodes() []Node { return d.nodes }

// Selected returns the selected row, or -1.
func (d *Dialog) Selected() int { return d.selected }

// Action returns the construction record, for display.
func (d *Dialog) Action() codeaction.Action { return d.action }

// Editor returns the borrowed document handle.
func (d *Dialog) Editor() editor.Editor { return d.ed }

// BaseText returns the document text captured during Init.
func (d *Dialog) BaseText() string { return d.baseText }

// Approved returns a fresh, finite sequence of the changes belonging to
// currently-enabled leaves, in original diff order. Before Init there is no
// root node and the sequence is empty.
func (d *Dialog) Approved() iter.Seq[textchange.TextChange] {
	return func(yield func(textchange.TextChange) bool) {
		if len(d.nodes) == 0 {
			return
		}
		for _, n := range d.nodes[1:] {
			if n.Enabled {
				if !yield(*n.Change) {
					return
				}
			}
		}
	}
}
