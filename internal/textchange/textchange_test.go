package textchange

import (
	"strings"
	"testing"
)

func TestComputeSingleLineReplacement(t *testing.T) {
	base := "A\nB\nC"
	changed := "A\nX\nC"

	changes := Compute(base, changed)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}

	if got := Apply(base, changes); got != changed {
		t.Errorf("Apply = %q, want %q", got, changed)
	}

	labels := Labels(changed, changes)
	if labels[0] != "X" {
		t.Errorf("label = %q, want %q", labels[0], "X")
	}
}

func TestComputeIdentical(t *testing.T) {
	if changes := Compute("same\ntext", "same\ntext"); changes != nil {
		t.Errorf("expected nil changes for identical text, got %v", changes)
	}
}

func TestComputeMultipleChanges(t *testing.T) {
	base := "one\ntwo\nthree\nfour\n"
	changed := "ONE\ntwo\nTHREE\nfour\n"

	changes := Compute(base, changed)
	if len(changes) < 2 {
		t.Fatalf("expected at least 2 changes, got %d", len(changes))
	}

	// Ordered, non-overlapping spans.
	for i := 1; i < len(changes); i++ {
		if changes[i].Span.Start < changes[i-1].Span.End {
			t.Errorf("changes %d and %d overlap or are out of order", i-1, i)
		}
	}

	if got := Apply(base, changes); got != changed {
		t.Errorf("Apply = %q, want %q", got, changed)
	}
}

func TestComputeInsertionAndDeletion(t *testing.T) {
	cases := []struct {
		name    string
		base    string
		changed string
	}{
		{"insertion", "ab", "aXb"},
		{"deletion", "aXb", "ab"},
		{"prefix", "body", "head body"},
		{"suffix", "body", "body tail"},
		{"everything", "old", "new"},
		{"to empty", "gone", ""},
		{"from empty", "", "fresh"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changes := Compute(tc.base, tc.changed)
			if got := Apply(tc.base, changes); got != tc.changed {
				t.Errorf("Apply = %q, want %q", got, tc.changed)
			}
		})
	}
}

func TestApplySubset(t *testing.T) {
	base := "one\ntwo\nthree\n"
	changed := "ONE\ntwo\nTHREE\n"

	changes := Compute(base, changed)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}

	// Only the first change applied.
	got := Apply(base, changes[:1])
	if !strings.Contains(got, "ONE") || strings.Contains(got, "THREE") {
		t.Errorf("partial apply = %q", got)
	}
	// Only the second.
	got = Apply(base, changes[1:])
	if strings.Contains(got, "ONE") || !strings.Contains(got, "THREE") {
		t.Errorf("partial apply = %q", got)
	}
}

func TestApplyEmpty(t *testing.T) {
	if got := Apply("unchanged", nil); got != "unchanged" {
		t.Errorf("Apply with no changes = %q", got)
	}
}

func TestLineAt(t *testing.T) {
	text := "a\nbb\nccc"
	cases := []struct {
		offset int
		want   int
	}{
		{0, 0}, {1, 0}, {2, 1}, {4, 1}, {5, 2}, {8, 2}, {100, 2},
	}
	for _, tc := range cases {
		if got := LineAt(text, tc.offset); got != tc.want {
			t.Errorf("LineAt(%d) = %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestLineContaining(t *testing.T) {
	text := "first\nsecond\nthird"
	cases := []struct {
		offset int
		want   string
	}{
		{0, "first"},
		{3, "first"},
		{6, "second"},
		{13, "third"},
		{18, "third"},
	}
	for _, tc := range cases {
		if got := LineContaining(text, tc.offset); got != tc.want {
			t.Errorf("LineContaining(%d) = %q, want %q", tc.offset, got, tc.want)
		}
	}
}

func TestEllipsize(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"  trimmed  ", 0, "trimmed"},
		{"multi\nline\ntext", 0, "multi … line … text"},
		{"windows\r\nline", 0, "windows … line"},
		{"X", 120, "X"},
	}
	for _, tc := range cases {
		if got := Ellipsize(tc.in, tc.max); got != tc.want {
			t.Errorf("Ellipsize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	long := strings.Repeat("x", 200)
	got := Ellipsize(long, 50)
	if len(got) != 50 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncation: len=%d suffix ok=%v", len(got), strings.HasSuffix(got, "…"))
	}
}

func TestLabelsUseReplacementWhenLonger(t *testing.T) {
	base := "short\nrest"
	changed := "a considerably longer replacement line\nrest"

	changes := Compute(base, changed)
	labels := Labels(changed, changes)
	if len(labels) != len(changes) {
		t.Fatalf("expected %d labels, got %d", len(changes), len(labels))
	}
	for _, l := range labels {
		if strings.Contains(l, "\n") {
			t.Errorf("label contains newline: %q", l)
		}
	}
}
