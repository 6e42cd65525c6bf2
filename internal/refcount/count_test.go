package refcount

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestReleaseReturnsTrueOnce(t *testing.T) {
	c := New()
	c.Retain()
	c.Retain()

	if c.Release() {
		t.Errorf("expected false, refs remain")
	}
	if c.Release() {
		t.Errorf("expected false, refs remain")
	}
	if !c.Release() {
		t.Errorf("expected true on last release")
	}
}

func TestReleaseBelowZero(t *testing.T) {
	logger := zaptest.NewLogger(t)
	defer logger.Sync()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	c := New()
	if !c.Release() {
		t.Fatalf("expected true on last release")
	}
	// over-release must not report the last reference again
	if c.Release() {
		t.Errorf("expected false after over-release")
	}
}

func TestInitResets(t *testing.T) {
	c := New()
	if !c.Release() {
		t.Fatalf("expected true on last release")
	}
	c.Init()
	if c.Refs() != 1 {
		t.Errorf("expected 1 ref after Init, got %d", c.Refs())
	}
	if !c.Release() {
		t.Errorf("expected true on last release after Init")
	}
}
