// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import "sync/atomic"

// Snapshot holds an atomically-swappable *Set, the dictionary-engine
// half of the two named exceptions to "no global mutable state" (§5):
// in-flight checks keep using the Set they captured at the start of the
// call even after a newer one is published.
type Snapshot struct {
	p atomic.Pointer[Set]
}

// NewSnapshot returns a Snapshot holding set.
func NewSnapshot(set *Set) *Snapshot {
	s := &Snapshot{}
	s.Store(set)
	return s
}

// Load returns the current dictionary Set.
func (s *Snapshot) Load() *Set { return s.p.Load() }

// Store atomically replaces the current dictionary Set.
func (s *Snapshot) Store(set *Set) { s.p.Store(set) }
