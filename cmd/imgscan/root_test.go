package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/imgscan/internal/config"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if !strings.HasPrefix(cmd.Use, "imgscan") {
			t.Errorf("expected use to start with 'imgscan', got %q", cmd.Use)
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"init": false, "version": false, "preview URL": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Use]; ok {
				want[sub.Use] = true
			}
		}
		for use, found := range want {
			if !found {
				t.Errorf("expected %q subcommand", use)
			}
		}
	})

	t.Run("preview is hidden", func(t *testing.T) {
		t.Parallel()
		for _, sub := range cmd.Commands() {
			if sub.Name() == "preview" && !sub.Hidden {
				t.Error("expected preview subcommand to be hidden")
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage || !cmd.SilenceErrors {
			t.Error("expected SilenceUsage and SilenceErrors to be true")
		}
	})
}

func TestRootFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "output", shorthand: "o", defValue: ""},
		{name: "format", shorthand: "f", defValue: "text"},
		{name: "check-http", shorthand: "c", defValue: "false"},
		{name: "timeout", shorthand: "t", defValue: "10"},
		{name: "no-preview", shorthand: "n", defValue: "false"},
		{name: "meta", defValue: "false"},
		{name: "proxy", defValue: ""},
		{name: "config", defValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}

	t.Run("verbose is persistent", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil || flag.Shorthand != "v" {
			t.Fatal("expected persistent verbose flag with shorthand v")
		}
	})
}

func TestRootArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no target", args: []string{"-n"}, wantErr: config.ErrNoTarget},
		{name: "two targets", args: []string{"-n", "a.example", "b.example"}, wantErr: config.ErrTooManyTargets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := NewRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			if err := cmd.Execute(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"-h"})
		cmd.SetOut(&out)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute(-h) error = %v", err)
		}
		if !strings.Contains(out.String(), "--check-http") {
			t.Errorf("help output missing flags: %q", out.String())
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"--bogus", "example.com"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}
