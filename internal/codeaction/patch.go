package codeaction

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// FromChangedText wraps an already-computed resulting document.
func FromChangedText(text string) Operation {
	return ApplyChanges{ChangedText: text}
}

// FromPatch builds an apply-changes operation by applying a unified-diff
// patch to the base document text. A patch touching more than one file is
// beyond document scope and is rejected.
func FromPatch(base string, patch io.Reader) (Operation, error) {
	files, _, err := gitdiff.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}

	if len(files) == 0 {
		return nil, errors.New("patch contains no file changes")
	}
	if len(files) > 1 {
		return nil, fmt.Errorf("%w: patch touches %d files", ErrUnsupportedScope, len(files))
	}

	var out bytes.Buffer
	if err := gitdiff.Apply(&out, strings.NewReader(base), files[0]); err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}

	return ApplyChanges{ChangedText: out.String()}, nil
}
