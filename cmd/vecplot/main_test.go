package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hyperjump/vecplot/pkg/vector"
)

func TestSplitInspectArgs(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantFlags      []string
		wantPositional []string
	}{
		{
			name:           "coordinates only",
			args:           []string{"3", "4"},
			wantPositional: []string{"3", "4"},
		},
		{
			name:           "negative coordinates are not flags",
			args:           []string{"-3", "-4.5"},
			wantPositional: []string{"-3", "-4.5"},
		},
		{
			name:           "output flag after coordinates",
			args:           []string{"3", "4", "--output", "json"},
			wantFlags:      []string{"--output", "json"},
			wantPositional: []string{"3", "4"},
		},
		{
			name:           "output flag with equals before negative coordinate",
			args:           []string{"-output=json", "-1", "2"},
			wantFlags:      []string{"-output=json"},
			wantPositional: []string{"-1", "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, positional := splitInspectArgs(tt.args)
			if !reflect.DeepEqual(flags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", flags, tt.wantFlags)
			}
			if !reflect.DeepEqual(positional, tt.wantPositional) {
				t.Errorf("positional = %v, want %v", positional, tt.wantPositional)
			}
		})
	}
}

func TestParseVector(t *testing.T) {
	v, err := parseVector("-3", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(vector.New(-3, 4)) {
		t.Errorf("got %s", v)
	}
	for _, bad := range [][2]string{{"x", "1"}, {"1", ""}, {"NaN", "1"}, {"1", "+Inf"}} {
		if _, err := parseVector(bad[0], bad[1]); err == nil {
			t.Errorf("parseVector(%q, %q) should fail", bad[0], bad[1])
		}
	}
}

func TestLoadConfig_defaultPathMissingUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, resolved, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != "" {
		t.Errorf("resolved path = %q, want empty", resolved)
	}
	if cfg.Output.Filename != "iter01_vectors.png" {
		t.Errorf("expected defaults, got %+v", cfg.Output)
	}
}

func TestLoadConfig_explicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("output:\n  filename: custom.png\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path || cfg.Output.Filename != "custom.png" {
		t.Errorf("got resolved=%q filename=%q", resolved, cfg.Output.Filename)
	}

	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestApplyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("debug: false\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	applyOverrides(cfg, "/tmp/charts", true)
	if cfg.Output.Directory != "/tmp/charts" || !cfg.Debug {
		t.Errorf("overrides not applied: dir=%s debug=%v", cfg.Output.Directory, cfg.Debug)
	}
	applyOverrides(cfg, "", false)
	if cfg.Output.Directory != "/tmp/charts" || !cfg.Debug {
		t.Error("empty overrides must not reset values")
	}
}

func TestFatalf_writesToStderrAndExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	origStderr, origExit := stderr, exit
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() { stderr, exit = origStderr, origExit })

	fatalf("Failed to load config: %v\n", os.ErrNotExist)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got, want := buf.String(), "Failed to load config: file does not exist\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}
