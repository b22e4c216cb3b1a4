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
	"errors"
	"testing"
	"time"

	"github.com/cybrota/trees/tree"
)

func TestSessionsKeepOneTreePerVariant(t *testing.T) {
	s := NewSessions(time.Minute)

	if live := s.Live(); len(live) != 0 {
		t.Fatalf("Live() = %v; want none", live)
	}

	avlTree, err := s.Get(tree.AVL)
	if err != nil {
		t.Fatalf("Get(avl) returned error: %v", err)
	}
	if err := avlTree.Insert(7); err != nil {
		t.Fatalf("Insert(7) returned error: %v", err)
	}

	// Another variant gets its own tree.
	rbTree, err := s.Get(tree.RBT)
	if err != nil {
		t.Fatalf("Get(rbt) returned error: %v", err)
	}
	if !rbTree.IsEmpty() {
		t.Errorf("rbt tree should start empty, has %v", rbTree.Keys())
	}

	again, _ := s.Get(tree.AVL)
	if !again.Contains(7) {
		t.Errorf("avl tree lost key 7 between calls")
	}

	live := s.Live()
	if len(live) != 2 || live[0] != tree.AVL || live[1] != tree.RBT {
		t.Errorf("Live() = %v; want [avl rbt]", live)
	}

	s.Drop(tree.AVL)
	fresh, _ := s.Get(tree.AVL)
	if !fresh.IsEmpty() {
		t.Errorf("after Drop, avl tree should be empty, has %v", fresh.Keys())
	}
}

func TestSessionExpiration(t *testing.T) {
	// Create a store with a very short ttl to test expiry behavior.
	s := NewSessions(100 * time.Millisecond)

	bstTree, _ := s.Get(tree.BST)
	_ = bstTree.Insert(1)

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if live := s.Live(); len(live) != 0 {
		t.Errorf("after expiration, Live() = %v; want none", live)
	}
	again, _ := s.Get(tree.BST)
	if !again.IsEmpty() {
		t.Errorf("after expiration, bst tree should be empty, has %v", again.Keys())
	}
}

func TestNewTree(t *testing.T) {
	for _, v := range tree.Variants {
		tr, err := newTree(v)
		if err != nil {
			t.Fatalf("newTree(%s) returned error: %v", v, err)
		}
		if !tr.IsEmpty() {
			t.Errorf("newTree(%s) is not empty", v)
		}
	}

	if _, err := newTree(tree.Variant(42)); !errors.Is(err, tree.ErrUnknownVariant) {
		t.Errorf("newTree(42) error = %v; want ErrUnknownVariant", err)
	}
}
