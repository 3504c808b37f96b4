package engine

import "testing"

func TestInputBufferRejectsReversal(t *testing.T) {
	var b InputBuffer
	b.Reset(DirRight)

	if b.Request(DirLeft) {
		t.Error("Expected reversal to be rejected")
	}
	if b.Pending() != DirRight {
		t.Errorf("Expected pending unchanged, got %s", b.Pending())
	}
}

func TestInputBufferLatestWins(t *testing.T) {
	var b InputBuffer
	b.Reset(DirRight)

	if !b.Request(DirUp) || !b.Request(DirDown) {
		t.Fatal("Expected perpendicular requests to be accepted")
	}
	if got := b.Commit(); got != DirDown {
		t.Errorf("Expected latest request down, got %s", got)
	}
}

func TestInputBufferGuardsAgainstCurrentNotPending(t *testing.T) {
	var b InputBuffer
	b.Reset(DirRight)

	// Up then Left inside one tick must not chain into a reversal
	b.Request(DirUp)
	if b.Request(DirLeft) {
		t.Error("Expected left rejected while right is still in effect")
	}
	if got := b.Commit(); got != DirUp {
		t.Errorf("Expected up committed, got %s", got)
	}

	// Left is legal once up is in effect
	if !b.Request(DirLeft) {
		t.Error("Expected left accepted after up committed")
	}
}

func TestInputBufferInvalidDirection(t *testing.T) {
	var b InputBuffer
	b.Reset(DirRight)
	if b.Request(Direction(42)) {
		t.Error("Expected invalid direction to be ignored")
	}
	if b.Commit() != DirRight {
		t.Error("Expected effective direction unchanged")
	}
}
