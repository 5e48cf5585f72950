// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestLFU_BasicOperations(t *testing.T) {
	t.Parallel()

	c := NewLFU[string](100, 5*time.Minute)
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	if val, found := c.Get("key1"); !found || val != "value1" {
		t.Errorf("Get(key1) = %v, %v, want value1, true", val, found)
	}
	if _, found := c.Get("missing"); found {
		t.Error("Get(missing) found = true")
	}
	if hits, misses, size := c.Stats(); hits != 1 || misses != 1 || size != 2 {
		t.Errorf("Stats() = %d, %d, %d, want 1, 1, 2", hits, misses, size)
	}
}

func TestLFU_EvictsLeastFrequent(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](3, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	c.Get("a")
	c.Get("a")
	c.Get("c")

	c.Set("d", 4) // b has the lowest frequency

	if _, found := c.Get("b"); found {
		t.Error("b should have been evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := c.Get(key); !found {
			t.Errorf("%s should still be cached", key)
		}
	}
}

func TestLFU_EvictsLeastRecentAmongTies(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](2, time.Minute)
	c.Set("old", 1)
	c.Set("new", 2)
	c.Set("newest", 3)

	if _, found := c.Get("old"); found {
		t.Error("old should have been evicted")
	}
	if _, found := c.Get("new"); !found {
		t.Error("new should still be cached")
	}
}

func TestLFU_UpdateBumpsFrequency(t *testing.T) {
	t.Parallel()

	c := NewLFU[string](10, time.Minute)
	c.Set("k", "v1")
	c.Set("k", "v2")

	if got := c.Frequency("k"); got != 2 {
		t.Errorf("Frequency(k) = %d, want 2", got)
	}
	if val, _ := c.Get("k"); val != "v2" {
		t.Errorf("Get(k) = %q, want v2", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLFU_TTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewLFU[string](10, time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	now = now.Add(30 * time.Second)
	if _, found := c.Get("k"); !found {
		t.Fatal("entry expired early")
	}
	now = now.Add(31 * time.Second)
	if _, found := c.Get("k"); found {
		t.Error("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lazy expiry", c.Len())
	}
}

func TestLFU_EvictAfterDeletes(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("b")
	c.Get("b")
	c.Delete("a")
	c.Set("c", 3)
	c.Get("c")
	c.Get("c")
	c.Get("c")

	// Both entries have freq > 1; eviction must still find the minimum.
	c.Set("d", 4)
	if _, found := c.Get("b"); found {
		t.Error("b should have been evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLFU_DeleteAndClear(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](10, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set("c", 3)
	if _, found := c.Get("c"); !found {
		t.Error("cache unusable after Clear")
	}
}

func TestLFU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](50, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*31+i)%120)
				c.Set(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len() = %d, exceeds capacity 50", c.Len())
	}
}
