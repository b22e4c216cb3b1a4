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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/trees/internal/walk"
	"github.com/cybrota/trees/tree"
	"github.com/mattn/go-shellwords"
	"github.com/sirupsen/logrus"
)

var (
	errUnknownOp  = errors.New("unknown operation")
	errMissingArg = errors.New("missing argument")
)

// Shell reads lines of the form "[tree] <op> [keys...]" and applies them to
// the session trees.
type Shell struct {
	in       io.Reader
	out      io.Writer
	sessions *Sessions
	current  tree.Variant
	prompt   string
	styles   Styles
	log      *logrus.Logger

	// copyText writes to the system clipboard. Tests replace it.
	copyText func(string) error
}

func NewShell(in io.Reader, out io.Writer, config *Config, logger *logrus.Logger) (*Shell, error) {
	v, err := tree.ParseVariant(config.Shell.DefaultTree)
	if err != nil {
		return nil, err
	}
	return &Shell{
		in:       in,
		out:      out,
		sessions: NewSessions(config.Shell.SessionTTL),
		current:  v,
		prompt:   config.Shell.Prompt,
		styles:   newStyles(detectTerminalMode()),
		log:      logger,
		copyText: clipboard.WriteAll,
	}, nil
}

// Run processes input until it is exhausted, an exit op is read or ctx is
// done.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(s.out, s.styles.Prompt.Render(s.promptFor(s.current)))
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if quit := s.Exec(line); quit {
				return nil
			}
		}
	}
}

func (s *Shell) promptFor(v tree.Variant) string {
	return fmt.Sprintf("[%s] %s", v, s.prompt)
}

// Exec runs one input line and reports whether the shell should stop.
// Failures are printed and never stop the shell.
func (s *Shell) Exec(line string) bool {
	args, err := splitLine(line)
	if err != nil {
		s.fail(err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	v := s.current
	if parsed, err := tree.ParseVariant(args[0]); err == nil {
		v = parsed
		args = args[1:]
		if len(args) == 0 {
			s.fail(fmt.Errorf("%s: %w: operation", v, errMissingArg))
			return false
		}
	}

	op, keys := strings.ToLower(args[0]), args[1:]
	s.log.WithFields(logrus.Fields{"tree": v.String(), "op": op, "keys": keys}).Debug("exec")

	switch op {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprint(s.out, getShellHelp())
		return false
	case "use":
		if len(keys) == 0 {
			s.fail(fmt.Errorf("use: %w: tree", errMissingArg))
			return false
		}
		next, err := tree.ParseVariant(keys[0])
		if err != nil {
			s.fail(err)
			return false
		}
		s.current = next
		s.ok("using %s", next.Title())
		return false
	case "trees":
		s.listTrees()
		return false
	}

	t, err := s.sessions.Get(v)
	if err != nil {
		s.fail(err)
		return false
	}
	if err := s.apply(t, op, keys); err != nil {
		s.fail(fmt.Errorf("%s: %w", v, err))
	}
	return false
}

func (s *Shell) apply(t tree.Tree[int], op string, args []string) error {
	switch op {
	case "insert", "delete", "contains", "contain":
		if len(args) == 0 {
			return fmt.Errorf("%s: %w: key", op, errMissingArg)
		}
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}
		for _, k := range keys {
			switch op {
			case "insert":
				if err := t.Insert(k); err != nil {
					s.fail(err)
					continue
				}
				s.ok("inserted %d", k)
			case "delete":
				if err := t.Delete(k); err != nil {
					s.fail(err)
					continue
				}
				s.ok("deleted %d", k)
			default:
				fmt.Fprintf(s.out, "%d: %t\n", k, t.Contains(k))
			}
		}
	case "height":
		fmt.Fprintln(s.out, t.Height())
	case "count":
		fmt.Fprintln(s.out, t.CountLeaves())
	case "length", "len":
		fmt.Fprintln(s.out, t.Len())
	case "min", "max":
		get := t.Min
		if op == "max" {
			get = t.Max
		}
		k, ok := get()
		if !ok {
			return fmt.Errorf("%s: %w", op, tree.ErrEmptyTree)
		}
		fmt.Fprintln(s.out, k)
	case "empty":
		fmt.Fprintln(s.out, t.IsEmpty())
	case "print", "inorder":
		return t.PrintInOrder(s.out)
	case "preorder":
		return walk.Fprint(s.out, t.PreOrder())
	case "postorder":
		return walk.Fprint(s.out, t.PostOrder())
	case "verify":
		if err := t.Verify(); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		s.ok("ok")
	case "clear":
		t.Clear()
		s.ok("cleared")
	case "copy":
		var b strings.Builder
		if err := walk.Fprint(&b, t.InOrder()); err != nil {
			return err
		}
		if err := s.copyText(strings.TrimSuffix(b.String(), "\n")); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		s.ok("copied %d keys to clipboard", t.Len())
	default:
		return fmt.Errorf("%q: %w", op, errUnknownOp)
	}
	return nil
}

func (s *Shell) listTrees() {
	live := s.sessions.Live()
	if len(live) == 0 {
		fmt.Fprintln(s.out, s.styles.Muted.Render("no trees yet"))
		return
	}
	for _, v := range live {
		t, err := s.sessions.Get(v)
		if err != nil {
			s.fail(err)
			continue
		}
		marker := " "
		if v == s.current {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %s  %-18s %d keys\n", marker, v, v.Title(), t.Len())
	}
}

func (s *Shell) ok(format string, a ...any) {
	fmt.Fprintln(s.out, s.styles.Success.Render(fmt.Sprintf(format, a...)))
}

func (s *Shell) fail(err error) {
	s.log.WithError(err).Warn("shell operation failed")
	fmt.Fprintln(s.out, s.styles.Error.Render("error: "+err.Error()))
}

// splitLine splits a shell line into parts.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %w", line, err)
	}
	return args, nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: not an integer", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
