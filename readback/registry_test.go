// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package readback

import (
	"errors"
	"testing"
)

// TestGetBuiltins verifies both built-in strategies are registered on import.
func TestGetBuiltins(t *testing.T) {
	for _, name := range []string{"bulk", "columnwise"} {
		s, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, s.Name())
		}
	}
}

// TestGetUnknown verifies the typed not-found error.
func TestGetUnknown(t *testing.T) {
	_, err := Get("rowwise")
	if err == nil {
		t.Fatal("expected error")
	}
	var nf *StrategyNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %T, want *StrategyNotFoundError", err)
	}
	if nf.Name != "rowwise" {
		t.Errorf("error name: got %q, want %q", nf.Name, "rowwise")
	}
}

// TestAvailableSorted verifies the listing is sorted and contains the
// built-ins.
func TestAvailableSorted(t *testing.T) {
	names := Available()
	if len(names) < 2 {
		t.Fatalf("Available() = %v, want at least bulk and columnwise", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

// TestForPlatform verifies the known-defect list drives strategy selection.
func TestForPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "columnwise"},
		{"linux", "bulk"},
		{"windows", "bulk"},
	}
	for _, tt := range tests {
		if got := ForPlatform(tt.goos).Name(); got != tt.want {
			t.Errorf("ForPlatform(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

// TestSetPlatformDefect verifies the defect list can be edited at runtime.
func TestSetPlatformDefect(t *testing.T) {
	if PlatformDefective("linux") {
		t.Fatal("linux unexpectedly on the defect list")
	}
	SetPlatformDefect("linux", true)
	t.Cleanup(func() { SetPlatformDefect("linux", false) })

	if !PlatformDefective("linux") {
		t.Error("SetPlatformDefect(linux, true) had no effect")
	}
	if got := ForPlatform("linux").Name(); got != "columnwise" {
		t.Errorf("ForPlatform after defect = %q, want columnwise", got)
	}

	SetPlatformDefect("linux", false)
	if PlatformDefective("linux") {
		t.Error("SetPlatformDefect(linux, false) had no effect")
	}
}

// TestRegisterReplace verifies re-registering a name swaps the entry.
func TestRegisterReplace(t *testing.T) {
	orig, err := Get("bulk")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { Register(orig) })

	Register(renamedBulk{})
	s, err := Get("bulk")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(renamedBulk); !ok {
		t.Errorf("Get after replace returned %T", s)
	}
}

// renamedBulk is a stand-in strategy reusing the bulk name.
type renamedBulk struct{ Bulk }

func (renamedBulk) Name() string { return "bulk" }
