package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTerminalConfigSeed(t *testing.T) {
	saved := flagSeed
	t.Cleanup(func() { flagSeed = saved })

	flagSeed = 42
	if got := terminalConfig().Seed; got != 42 {
		t.Errorf("explicit seed = %d, want 42", got)
	}

	flagSeed = 0
	if got := terminalConfig().Seed; got == 0 {
		t.Error("zero --seed should pick a clock seed, got 0")
	}
}

func TestCheckGameOptions(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}
	good := write("good.yaml", "gameplay:\n  lives: 5\n")
	invalid := write("invalid.yaml", "ball:\n  size: -1\n")
	broken := write("broken.yaml", "ball: [\n")

	tests := []struct {
		name       string
		config     string
		difficulty string
		wantErr    string
	}{
		{"defaults", "", "", ""},
		{"custom file", good, "hard", ""},
		{"unknown difficulty", "", "insane", "unknown difficulty"},
		{"missing file", filepath.Join(dir, "nope.yaml"), "", "failed to read config"},
		{"unparsable file", broken, "", "failed to parse config"},
		{"invalid values", invalid, "", "ball.size must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkGameOptions(tc.config, tc.difficulty)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}
