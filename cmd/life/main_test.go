package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newFlagCommand(t *testing.T, args ...string) (*cobra.Command, *seedFlags) {
	t.Helper()
	var f seedFlags
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	return cmd, &f
}

func withConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	prevPath, prevInterval, prevSeed := flagConfigPath, flagInterval, flagSeed
	flagConfigPath, flagInterval, flagSeed = path, 0, 0
	t.Cleanup(func() { flagConfigPath, flagInterval, flagSeed = prevPath, prevInterval, prevSeed })
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	withConfig(t, "grid:\n  size: 30\nseed:\n  mode: glider\n")
	flagSeed = 7

	cmd, f := newFlagCommand(t, "--mode", "gosper", "--size", "64", "--row", "4", "--speed", "slow")
	cfg, err := loadConfig(cmd, f, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Seed.Mode != "gosper" || cfg.Grid.Size != 64 || cfg.Seed.AnchorRow != 4 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Seed.AnchorCol != 1 {
		t.Errorf("AnchorCol = %d, expected default 1", cfg.Seed.AnchorCol)
	}
	if cfg.Animation.IntervalMS != 200 || cfg.Seed.Value != 7 {
		t.Errorf("IntervalMS = %d, Seed = %d", cfg.Animation.IntervalMS, cfg.Seed.Value)
	}
}

func TestLoadConfigIntervalBeatsPreset(t *testing.T) {
	withConfig(t, "")
	flagInterval = 75

	cmd, f := newFlagCommand(t, "--speed", "fast")
	cfg, err := loadConfig(cmd, f, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Animation.IntervalMS != 75 {
		t.Errorf("IntervalMS = %d, expected 75", cfg.Animation.IntervalMS)
	}
}

func TestLoadConfigSmallGridFallsBack(t *testing.T) {
	withConfig(t, "")

	testCases := []struct {
		size     string
		expected int
	}{
		{"8", 100},
		{"1", 100},
		{"9", 9},
	}
	for _, tc := range testCases {
		cmd, f := newFlagCommand(t, "--size", tc.size)
		cfg, err := loadConfig(cmd, f, log.New(io.Discard))
		if err != nil {
			t.Fatalf("loadConfig(--size %s) failed: %v", tc.size, err)
		}
		if cfg.Grid.Size != tc.expected {
			t.Errorf("--size %s: Grid.Size = %d, expected %d", tc.size, cfg.Grid.Size, tc.expected)
		}
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	withConfig(t, "")

	cmd, f := newFlagCommand(t, "--mode", "spiral")
	if _, err := loadConfig(cmd, f, log.New(io.Discard)); err == nil {
		t.Error("unknown mode should fail validation")
	}

	cmd, f = newFlagCommand(t, "--speed", "warp")
	if _, err := loadConfig(cmd, f, log.New(io.Discard)); err == nil {
		t.Error("unknown speed preset should fail")
	}
}
