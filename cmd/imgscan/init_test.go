package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/imgscan/internal/config"
)

func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates a loadable file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "imgscan.yaml")

		out, err := runInit(t, "-o", path)
		if err != nil {
			t.Fatalf("init error = %v", err)
		}
		if !strings.Contains(out, path) {
			t.Errorf("expected output to mention %s, got %q", path, out)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
		}

		f, err := config.LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if f.Preview.Renderer != config.RendererChafa {
			t.Errorf("expected template renderer chafa, got %q", f.Preview.Renderer)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".imgscan.yaml")
		if err := os.WriteFile(path, []byte("timeout: 3\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := runInit(t, "-o", path); err == nil {
			t.Fatal("expected error for existing file")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "timeout: 3\n" {
			t.Error("existing file was modified")
		}

		if _, err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("init -f error = %v", err)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "imgscan configuration file") {
			t.Error("expected file to be overwritten with the template")
		}
	})
}
