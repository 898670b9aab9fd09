// Package codeaction models the pre-computed fix operations handed to the
// preview dialog by an analysis engine.
package codeaction

import (
	"errors"
	"fmt"
)

// Scope is the breadth over which a fix-all operation applies.
type Scope int

const (
	ScopeDocument Scope = iota
	ScopeProject
	ScopeSolution
)

func (s Scope) String() string {
	switch s {
	case ScopeDocument:
		return "document"
	case ScopeProject:
		return "project"
	case ScopeSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// ErrUnsupportedScope is returned when a fix-all preview is requested for
// any scope other than a single document.
var ErrUnsupportedScope = errors.New("fix-all preview supports document scope only")

// CheckScope validates that the scope can be previewed.
func CheckScope(s Scope) error {
	if s != ScopeDocument {
		return fmt.Errorf("%w: got %s scope", ErrUnsupportedScope, s)
	}
	return nil
}

// Operation is a single step of a code action. The preview dialog treats
// operations as opaque except for the apply-changes case.
type Operation interface {
	// Describe returns a short human-readable summary of the operation.
	Describe() string
}

// ApplyChanges is the operation carrying the full resulting document text.
type ApplyChanges struct {
	ChangedText string
}

func (ApplyChanges) Describe() string { return "apply changes" }

// Action is the configuration record for a fix-all preview: a diagnostic
// identifier, a display-only scope label, the scope kind, and the ordered
// operations the code action would perform.
type Action struct {
	DiagnosticID string
	ScopeLabel   string
	Scope        Scope
	Operations   []Operation
}

// ChangedText returns the resulting document text of the first apply-changes
// operation, or false when the operation set contains none.
func ChangedText(ops []Operation) (string, bool) {
	for _, op := range ops {
		if ac, ok := op.(ApplyChanges); ok {
			return ac.ChangedText, true
		}
	}
	return "", false
}
