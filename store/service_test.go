package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreServiceLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.json")
	s := NewService()

	if s.Name() != "store" {
		t.Errorf("Expected name store, got %s", s.Name())
	}
	if err := s.Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Path() != path {
		t.Errorf("Expected path %s, got %s", path, s.Path())
	}

	if err := s.HighScore().SaveHighScore(12); err != nil {
		t.Fatalf("SaveHighScore failed: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}

	again := NewService()
	if err := again.Init(path); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	hs, err := again.HighScore().LoadHighScore()
	if err != nil || hs != 12 {
		t.Errorf("Expected high score 12, got %d (%v)", hs, err)
	}
	if again.History() == nil {
		t.Error("Expected history after Init")
	}
}

func TestStoreServiceMovesCorruptFileAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewService()
	if err := s.Init(path); err != nil {
		t.Fatalf("Expected corrupt file to be recovered, got %v", err)
	}
	hs, err := s.HighScore().LoadHighScore()
	if err != nil || hs != 0 {
		t.Errorf("Expected empty store, got %d (%v)", hs, err)
	}

	kept, err := os.ReadFile(path + ".corrupt")
	if err != nil {
		t.Fatalf("Expected corrupt copy: %v", err)
	}
	if string(kept) != "{not json" {
		t.Errorf("Expected original bytes preserved, got %q", kept)
	}
}
