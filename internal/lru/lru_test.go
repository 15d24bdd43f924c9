// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndGet(t *testing.T) {
	c := New(64)
	c.Add("hello", true)
	c.Add("wolrd", false)

	v, ok := c.Get("hello")
	require.True(t, ok)
	assert.True(t, v)

	v, ok = c.Get("wolrd")
	require.True(t, ok)
	assert.False(t, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestAddOverwritesExistingKey(t *testing.T) {
	c := New(64)
	c.Add("key", false)
	c.Add("key", true)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, 1, c.Len())
}

func TestEvictionKeepsSizeWithinCapacity(t *testing.T) {
	// A single-shard capacity floor keeps the math tractable: New rounds
	// capacity up to at least shardCount, then divides evenly per shard,
	// so a total of shardCount yields exactly one slot per shard.
	c := New(shardCount)
	for i := 0; i < shardCount; i++ {
		c.Add(fmt.Sprintf("shard-filler-%d", i), true)
	}
	require.LessOrEqual(t, c.Len(), shardCount)

	// Every key below lands in the same conceptual capacity budget as
	// whatever key already occupies its shard; adding enough keys forces
	// evictions, so the cache should never grow past its configured size.
	for i := 0; i < 10*shardCount; i++ {
		c.Add(fmt.Sprintf("extra-%d", i), true)
	}
	assert.LessOrEqual(t, c.Len(), shardCount)
}

func TestReset(t *testing.T) {
	c := New(64)
	c.Add("a", true)
	c.Add("b", false)
	require.Equal(t, 2, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
