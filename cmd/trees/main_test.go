// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version printed %q; want %q", out, version)
	}
}

func TestDefaultCommandIsShell(t *testing.T) {
	out, _, err := execute(t, "insert 2 1 3\nprint\n")
	if err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	if !strings.Contains(out, "1 2 3\n") {
		t.Errorf("shell output missing in-order keys:\n%s", out)
	}
}

func TestShellUsesConfiguredTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trees.yaml")
	if err := os.WriteFile(path, []byte("shell:\n  default_tree: bst\n  prompt: \"> \"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "trees\ninsert 1\ntrees\n", "shell", "--config", path)
	if err != nil {
		t.Fatalf("shell returned error: %v", err)
	}
	if !strings.Contains(out, "[bst] > ") {
		t.Errorf("prompt should name bst:\n%s", out)
	}
	if !strings.Contains(out, "* bst") {
		t.Errorf("bst should be the current tree:\n%s", out)
	}
}

func TestBrokenConfigFallsBackWithWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trees.yaml")
	if err := os.WriteFile(path, []byte("shell: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	out, stderr, err := execute(t, "print\n", "--config", path)
	if err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	if !strings.Contains(stderr, "Failed to load configuration") {
		t.Errorf("expected a warning on stderr, got %q", stderr)
	}
	if !strings.Contains(out, "[avl]") {
		t.Errorf("shell should run with the default tree:\n%s", out)
	}
}

func TestBenchCommandWritesCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "bench.csv")
	out, _, err := execute(t, "", "bench", "--sizes", "10,20", "--samples", "1", "--random", "--quiet", "--csv", csvPath)
	if err != nil {
		t.Fatalf("bench returned error: %v", err)
	}
	if !strings.Contains(out, "Red-Black Tree") {
		t.Errorf("bench table missing:\n%s", out)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("csv not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1+2*3 {
		t.Errorf("csv has %d lines; want 7:\n%s", len(lines), data)
	}
	if lines[0] != "variant,size,mean_ns,height" {
		t.Errorf("csv header = %q", lines[0])
	}
}

func TestBenchRejectsBadSizes(t *testing.T) {
	if _, _, err := execute(t, "", "bench", "--sizes", "10,0", "--quiet"); err == nil {
		t.Error("expected error for a zero size")
	}
}

func TestUsageCommand(t *testing.T) {
	out, _, err := execute(t, "", "usage")
	if err != nil {
		t.Fatalf("usage returned error: %v", err)
	}
	if !strings.Contains(out, "trees bench") {
		t.Errorf("usage output missing the bench command:\n%s", out)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	if got := newLogger(&buf, "warn", false).GetLevel(); got != logrus.WarnLevel {
		t.Errorf("level = %s; want warning", got)
	}
	if got := newLogger(&buf, "warn", true).GetLevel(); got != logrus.DebugLevel {
		t.Errorf("verbose level = %s; want debug", got)
	}
	if got := newLogger(&buf, "loud", false).GetLevel(); got != logrus.InfoLevel {
		t.Errorf("fallback level = %s; want info", got)
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Errorf("expected a warning for an unknown level, got %q", buf.String())
	}
}
