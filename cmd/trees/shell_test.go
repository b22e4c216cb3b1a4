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
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cybrota/trees/tree"
	"github.com/sirupsen/logrus"
)

func newTestShell(t *testing.T, input string) (*Shell, *bytes.Buffer) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	s, err := NewShell(strings.NewReader(input), &out, defaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewShell returned error: %v", err)
	}
	return s, &out
}

func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	s, out := newTestShell(t, strings.Join(lines, "\n")+"\n")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestShellScenario(t *testing.T) {
	out := runScript(t,
		"bst insert 5 3 8 1 4 7 9",
		"avl insert 5 3 8 1 4 7 9",
		"rbt insert 5 3 8 1 4 7 9",
		"bst print",
		"avl print",
		"rbt print",
		"rbt delete 5",
		"rbt verify",
		"rbt print",
		"avl count",
		"bst height",
	)

	if got := strings.Count(out, "1 3 4 5 7 8 9\n"); got != 3 {
		t.Errorf("expected 3 in-order prints, got %d in:\n%s", got, out)
	}
	for _, want := range []string{"1 3 4 7 8 9\n", "inserted 9", "deleted 5", "ok\n", "4\n", "2\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellQueries(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"contains 3 6", "3: true\n6: false\n"},
		{"contain 8", "8: true\n"},
		{"min", "1\n"},
		{"max", "9\n"},
		{"len", "7\n"},
		{"length", "7\n"},
		{"empty", "false\n"},
		{"preorder", "5 3 1 4 8 7 9\n"},
		{"postorder", "1 4 3 7 9 8 5\n"},
	}

	for _, tc := range tests {
		s, out := newTestShell(t, "")
		s.Exec("use avl")
		s.Exec("insert 5 3 8 1 4 7 9")
		out.Reset()

		if quit := s.Exec(tc.line); quit {
			t.Errorf("Exec(%q) asked to quit", tc.line)
		}
		if got := out.String(); got != tc.want {
			t.Errorf("Exec(%q) = %q; want %q", tc.line, got, tc.want)
		}
	}
}

func TestShellErrorsKeepLooping(t *testing.T) {
	out := runScript(t,
		"insert x",
		"frobnicate",
		"btree insert 1",
		"min",
		"insert 2",
		"insert 2",
		"delete 9",
		`insert "unterminated`,
		"use",
		"rbt",
		"print",
	)

	for _, want := range []string{
		`invalid key "x"`,
		"unknown operation",
		"tree is empty",
		"key already exists",
		"key not found",
		"missing argument",
		"inserted 2",
		"2\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellUseAndTrees(t *testing.T) {
	s, out := newTestShell(t, "")
	if s.current != tree.AVL {
		t.Fatalf("default tree = %s; want avl", s.current)
	}

	s.Exec("trees")
	if !strings.Contains(out.String(), "no trees yet") {
		t.Errorf("expected empty listing, got %q", out.String())
	}

	s.Exec("use rb")
	if s.current != tree.RBT {
		t.Errorf("after use rb, current = %s; want rbt", s.current)
	}
	s.Exec("insert 1 2 3")
	s.Exec("bst insert 10")

	out.Reset()
	s.Exec("trees")
	listing := out.String()
	if !strings.Contains(listing, "* rbt") || !strings.Contains(listing, "3 keys") {
		t.Errorf("listing should mark rbt as current with 3 keys:\n%s", listing)
	}
	if !strings.Contains(listing, "  bst") || !strings.Contains(listing, "1 keys") {
		t.Errorf("listing should include bst with 1 key:\n%s", listing)
	}

	// A tree survives switching away and back.
	s.Exec("use bst")
	s.Exec("use rbt")
	out.Reset()
	s.Exec("len")
	if out.String() != "3\n" {
		t.Errorf("rbt len after switching = %q; want 3", out.String())
	}
}

func TestShellClearAndCopy(t *testing.T) {
	s, out := newTestShell(t, "")
	var copied string
	s.copyText = func(text string) error {
		copied = text
		return nil
	}

	s.Exec("insert 3 1 2")
	s.Exec("copy")
	if copied != "1 2 3" {
		t.Errorf("copied %q; want %q", copied, "1 2 3")
	}

	s.copyText = func(string) error { return errors.New("no clipboard") }
	out.Reset()
	s.Exec("copy")
	if !strings.Contains(out.String(), "no clipboard") {
		t.Errorf("copy failure not reported: %q", out.String())
	}

	s.Exec("clear")
	out.Reset()
	s.Exec("empty")
	if out.String() != "true\n" {
		t.Errorf("empty after clear = %q; want true", out.String())
	}
}

func TestShellExit(t *testing.T) {
	out := runScript(t, "insert 1", "exit", "insert 2")
	if strings.Contains(out, "inserted 2") {
		t.Errorf("lines after exit were executed:\n%s", out)
	}

	s, _ := newTestShell(t, "")
	if !s.Exec("quit") {
		t.Error("quit should stop the shell")
	}
	if s.Exec("   ") {
		t.Error("blank line should not stop the shell")
	}
}

func TestShellStopsOnCancel(t *testing.T) {
	// A reader that never returns keeps the shell waiting for input.
	pr, pw := io.Pipe()
	defer pw.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s, err := NewShell(pr, io.Discard, defaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewShell returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v; want context.Canceled", err)
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"1", "-4", "+7"})
	if err != nil {
		t.Fatalf("parseKeys returned error: %v", err)
	}
	if len(keys) != 3 || keys[0] != 1 || keys[1] != -4 || keys[2] != 7 {
		t.Errorf("parseKeys = %v; want [1 -4 7]", keys)
	}

	if _, err := parseKeys([]string{"1", "1.5"}); err == nil {
		t.Error("expected error for non-integer key")
	}
}
