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
	"fmt"
	"time"

	"github.com/cybrota/trees/avl"
	"github.com/cybrota/trees/bst"
	"github.com/cybrota/trees/rbt"
	"github.com/cybrota/trees/tree"
	"github.com/patrickmn/go-cache"
)

// newTree builds an empty tree of variant v.
func newTree(v tree.Variant) (tree.Tree[int], error) {
	switch v {
	case tree.BST:
		return bst.New[int](), nil
	case tree.AVL:
		return avl.New[int](), nil
	case tree.RBT:
		return rbt.New[int](), nil
	}
	return nil, fmt.Errorf("%v: %w", v, tree.ErrUnknownVariant)
}

// Sessions keeps one live tree per variant for the shell. A tree that is
// not touched for ttl is dropped and comes back empty on next use.
type Sessions struct {
	c   *cache.Cache
	ttl time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	// Clean up expired entries at a tenth of the ttl, but not more often
	// than once a second.
	cleanup := max(ttl/10, time.Second)
	return &Sessions{c: cache.New(ttl, cleanup), ttl: ttl}
}

// Get returns the tree for v, creating it when missing or expired. Every
// call refreshes the expiry.
func (s *Sessions) Get(v tree.Variant) (tree.Tree[int], error) {
	if val, ok := s.c.Get(v.String()); ok {
		t := val.(tree.Tree[int])
		// Use Set instead of Add to allow overwriting
		s.c.Set(v.String(), t, s.ttl)
		return t, nil
	}

	t, err := newTree(v)
	if err != nil {
		return nil, err
	}
	s.c.Set(v.String(), t, s.ttl)
	return t, nil
}

// Live reports the variants that currently hold a tree, in display order.
func (s *Sessions) Live() []tree.Variant {
	var live []tree.Variant
	for _, v := range tree.Variants {
		if _, ok := s.c.Get(v.String()); ok {
			live = append(live, v)
		}
	}
	return live
}

// Drop forgets the tree for v.
func (s *Sessions) Drop(v tree.Variant) {
	s.c.Delete(v.String())
}
