package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitConsole(t *testing.T) {
	var out bytes.Buffer
	l := Init(Options{Level: "warn", Console: &out})
	t.Cleanup(func() { Init(Options{Console: &bytes.Buffer{}}) })

	l.Info("hidden")
	l.Warn("shown", "k", 1)
	if strings.Contains(out.String(), "hidden") {
		t.Fatalf("info record written at warn level: %s", out.String())
	}
	if !strings.Contains(out.String(), "msg=shown") || !strings.Contains(out.String(), "app=dashline") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestInitJSONWithFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "dashline.log")
	Init(Options{Level: "debug", Format: "json", File: path, Console: &out})
	t.Cleanup(func() {
		Close()
		Init(Options{Console: &bytes.Buffer{}})
	})

	WithComponent("render").Debug("draw", "objects", 3)
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	var rec map[string]any
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatalf("console is not json: %v: %s", err, out.String())
	}
	if rec["component"] != "render" || rec["msg"] != "draw" {
		t.Fatalf("unexpected record %v", rec)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"objects":3`)) {
		t.Fatalf("unexpected file contents: %s", data)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvFile, "")

	opts := FromEnv()
	if opts.Level != "debug" || opts.Format != "json" || opts.File != "" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"loud":    "INFO",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("%q: expected(%s) != actual(%s)", in, want, got)
		}
	}
}
