package codeaction

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckScope(t *testing.T) {
	if err := CheckScope(ScopeDocument); err != nil {
		t.Errorf("document scope should be supported, got %v", err)
	}

	for _, s := range []Scope{ScopeProject, ScopeSolution} {
		err := CheckScope(s)
		if !errors.Is(err, ErrUnsupportedScope) {
			t.Errorf("scope %s: expected ErrUnsupportedScope, got %v", s, err)
		}
	}
}

func TestScopeString(t *testing.T) {
	cases := map[Scope]string{
		ScopeDocument: "document",
		ScopeProject:  "project",
		ScopeSolution: "solution",
		Scope(99):     "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Scope(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestChangedText(t *testing.T) {
	ops := []Operation{
		FromChangedText("result"),
	}
	text, ok := ChangedText(ops)
	if !ok || text != "result" {
		t.Errorf("ChangedText = %q, %v", text, ok)
	}

	if _, ok := ChangedText(nil); ok {
		t.Error("expected no changed text for empty operations")
	}
}

const singleFilePatch = `diff --git a/doc.txt b/doc.txt
index abc1234..def5678 100644
--- a/doc.txt
+++ b/doc.txt
@@ -1,3 +1,3 @@
 A
-B
+X
 C
`

const multiFilePatch = singleFilePatch + `diff --git a/other.txt b/other.txt
index abc1234..def5678 100644
--- a/other.txt
+++ b/other.txt
@@ -1 +1 @@
-old
+new
`

func TestFromPatch(t *testing.T) {
	op, err := FromPatch("A\nB\nC\n", strings.NewReader(singleFilePatch))
	if err != nil {
		t.Fatalf("FromPatch failed: %v", err)
	}

	text, ok := ChangedText([]Operation{op})
	if !ok {
		t.Fatal("expected an apply-changes operation")
	}
	if text != "A\nX\nC\n" {
		t.Errorf("changed text = %q, want %q", text, "A\nX\nC\n")
	}
}

func TestFromPatchMultiFile(t *testing.T) {
	_, err := FromPatch("A\nB\nC\n", strings.NewReader(multiFilePatch))
	if !errors.Is(err, ErrUnsupportedScope) {
		t.Errorf("expected ErrUnsupportedScope for multi-file patch, got %v", err)
	}
}

func TestFromPatchEmpty(t *testing.T) {
	if _, err := FromPatch("base", strings.NewReader("")); err == nil {
		t.Error("expected error for empty patch")
	}
}
