package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if config != utils.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", config)
	}
}

func TestLoadConfigReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("Expected an error for malformed config")
	}
}

func TestLoadPatternPadsToMinimum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.txt")
	if err := os.WriteFile(path, []byte("##\n"), 0o644); err != nil {
		t.Fatalf("Failed to write pattern: %v", err)
	}

	board, err := loadPattern(path, utils.DefaultConfig())
	if err != nil {
		t.Fatalf("loadPattern failed: %v", err)
	}

	config := utils.DefaultConfig()
	if board.Width() != config.MinWidth || board.Height() != config.MinHeight {
		t.Errorf("Expected %dx%d board, got %dx%d", config.MinWidth, config.MinHeight, board.Width(), board.Height())
	}
	if got := model.MinimumAllowableDimensions(board); got != (model.Dimensions{Width: 2, Height: 1}) {
		t.Errorf("Expected pattern to stay in the top-left corner, got %+v", got)
	}
}

func TestLoadPatternRejectsBadCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.txt")
	if err := os.WriteFile(path, []byte("#x#\n"), 0o644); err != nil {
		t.Fatalf("Failed to write pattern: %v", err)
	}
	if _, err := loadPattern(path, utils.DefaultConfig()); err == nil {
		t.Error("Expected an error for an unknown cell character")
	}
}
