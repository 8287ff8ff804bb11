// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/memory"
	"github.com/bitmark-inc/containers/rbtree"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"3127", "0841", "7765", "2290", "9014",
		"5532",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the item
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"6620", "0193", "4471", "8806", "2358",
		"2361", "2375", "2369", "2366", "3358",
		"3115", "3205", "3755", "3270", "9244",
		"3247", "0762", "5180", "2153", "4680",
		"6620", "0193", "4471", "8806", "2153",
		"2153", "2153", "2153", "2153", "2153",
		"2153", "2153", "2153", "2153", "2153",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(20200401))
	addList := make([]string, 0, 300)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, fmt.Sprintf("%04d", r.Intn(10000)))
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListAscending(t *testing.T) {
	addList := make([]string, 0, 128)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, fmt.Sprintf("%04d", i))
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert everything, delete a prefix then the remainder, verifying
// the tree after each phase
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		m := rbtree.NewMapFunc[string, string](strings.Compare)
		for _, key := range addList {
			m.Insert(key, "data:"+key)
		}

		if err := m.Check(); nil != err {
			var buffer bytes.Buffer
			depth := m.Print(&buffer, true)
			t.Logf("depth: %d\n%s", depth, buffer.String())
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			it := m.Find(key)
			if it.IsEnd() {
				t.Fatalf("delete: key: %q not found", key)
			}
			if ev := "data:" + key; ev != *it.Value() {
				t.Fatalf("delete found: %q  expected: %q", *it.Value(), ev)
			}
			m.Erase(it)
		}

		if err := m.Check(); nil != err {
			var buffer bytes.Buffer
			depth := m.Print(&buffer, true)
			t.Logf("depth: %d\n%s", depth, buffer.String())
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if n := m.EraseKey(key); 1 != n {
				t.Fatalf("erase key: %q returned: %d", key, n)
			}
		}
		if !m.Empty() {
			var buffer bytes.Buffer
			depth := m.Print(&buffer, true)
			t.Logf("depth: %d\n%s", depth, buffer.String())
			t.Fatal("remaining nodes")
		}
		m.Destroy()
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	m := rbtree.NewMapFunc[string, string](strings.Compare)
	defer m.Destroy()
	for _, key := range addList {
		unique[key] = struct{}{}
		m.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	p := m.Begin()
	if p.IsEnd() {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; !p.IsEnd(); i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if p != m.End() {
		t.Fatalf("iteration did not finish at end")
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = m.Last()
	if p != m.End().Prev() {
		t.Fatalf("last item is not before end")
	}

	n = 0
	for i := len(expected) - 1; !p.IsEnd(); i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != m.Len() {
		t.Fatalf("map count: actual: %d  expected: %d", m.Len(), len(expected))
	}

	// delete during iteration
	for it := m.Begin(); !it.IsEnd(); {
		next := it.Next()
		m.Erase(it)
		it = next
	}

	if !m.Empty() {
		t.Fatalf("remaining count not zero: %d", m.Len())
	}
}

func TestMapWithPoolInsertsAndFinds(t *testing.T) {
	pool := rbtree.NewPool[int, string](4)
	m := rbtree.NewMapWithAllocator[int, string](pool)
	defer m.Destroy()

	m.Insert(1, "a")
	m.Insert(2, "b")
	m.Insert(3, "c")

	assert.Equal(t, 3, m.Len())
	it := m.Find(2)
	require.False(t, it.IsEnd())
	assert.Equal(t, "b", *it.Value())
	assert.Equal(t, []int{1, 2, 3}, keys(m))
	assert.NoError(t, m.Check())

	// two sentinels and three items
	assert.Equal(t, 5, pool.Used())
	assert.Equal(t, 2, pool.Slabs())
}

func TestMapEraseKeepsOrder(t *testing.T) {
	m := rbtree.NewMapWithPool[int, string](4)
	defer m.Destroy()

	m.Insert(1, "a")
	m.Insert(2, "b")
	m.Insert(3, "c")

	m.Erase(m.Find(2))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Find(2).IsEnd())
	assert.Equal(t, []int{1, 3}, keys(m))
	assert.NoError(t, m.Check())
}

func TestMapDuplicateInsert(t *testing.T) {
	m := rbtree.NewMap[string, int]()
	defer m.Destroy()

	first, added := m.Insert("key", 1)
	assert.True(t, added)

	second, added := m.Insert("key", 2)
	assert.False(t, added)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, *second.Value(), "existing value overwritten")
	assert.Equal(t, 1, m.Len())
}

func TestMapClearReturnsNodes(t *testing.T) {
	alloc := memory.NewTestAllocator[rbtree.Node[int, int]]()
	m := rbtree.NewMapWithAllocator[int, int](alloc)

	before := alloc.Allocated()
	assert.Equal(t, 2, before, "sentinels")

	for i := 0; i < 100; i += 1 {
		*m.Index(i) = i * i
	}
	assert.Equal(t, before+100, alloc.Allocated())

	m.Clear()
	assert.Equal(t, before, alloc.Allocated())
	assert.True(t, m.Empty())

	// still usable after clear
	m.Insert(7, 49)
	assert.Equal(t, 1, m.Len())

	m.Destroy()
	assert.Equal(t, 0, alloc.Allocated())
}

func TestMapIndex(t *testing.T) {
	m := rbtree.NewMap[string, int]()
	defer m.Destroy()

	*m.Index("a") += 1
	*m.Index("a") += 1
	*m.Index("b") += 5

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = m.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, m.Contains("b"))
	assert.False(t, m.Contains("c"))
}

func TestMapEraseMissingKey(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	defer m.Destroy()

	assert.Equal(t, 0, m.EraseKey(5))
	m.Insert(5, 5)
	assert.Equal(t, 1, m.EraseKey(5))
	assert.Equal(t, 0, m.EraseKey(5))
}

func TestMapEraseInvalidIterator(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	defer m.Destroy()
	other := rbtree.NewMap[int, int]()
	defer other.Destroy()

	it, _ := other.Insert(1, 1)

	assert.PanicsWithValue(t, fault.ErrEraseEnd, func() {
		m.Erase(m.End())
	})
	assert.PanicsWithValue(t, fault.ErrForeignIterator, func() {
		m.Erase(it)
	})
	assert.PanicsWithValue(t, fault.ErrDereferenceEnd, func() {
		m.End().Key()
	})
	assert.True(t, m.End().Next().IsEnd())
}

func TestMapCustomOrder(t *testing.T) {
	m := rbtree.NewMapFunc[int, string](func(a int, b int) int {
		return b - a
	})
	defer m.Destroy()

	for i := 1; i <= 5; i += 1 {
		m.Insert(i, fmt.Sprint(i))
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, keys(m))
	assert.NoError(t, m.Check())
}

func TestMapTrustedInsert(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	defer m.Destroy()

	for i := 0; i < 50; i += 1 {
		if m.Find(i).IsEnd() {
			m.TrustedInsert(i, -i)
		}
	}
	assert.Equal(t, 50, m.Len())
	assert.NoError(t, m.Check())

	// a duplicate is not detected by insert but breaks the order
	m.TrustedInsert(10, 0)
	err := m.Check()
	assert.True(t, errors.Is(err, fault.ErrOrderViolation), "unexpected: %v", err)
}

func TestMapCloneOwned(t *testing.T) {
	m := rbtree.NewMapWithPool[int, string](8)
	defer m.Destroy()
	for i := 0; i < 20; i += 1 {
		m.Insert(i, fmt.Sprint(i))
	}

	c := m.Clone()
	defer c.Destroy()

	assert.True(t, c.OwnsAllocator())
	assert.NotSame(t, m.Allocator(), c.Allocator())
	pool, ok := c.Allocator().(*memory.PoolAllocator[rbtree.Node[int, string]])
	require.True(t, ok, "clone allocator: %T", c.Allocator())
	assert.Equal(t, 8, pool.NumChunks())
	assert.Equal(t, keys(m), keys(c))

	// independent contents
	m.EraseKey(3)
	*c.Index(4) = "changed"
	assert.True(t, c.Contains(3))
	v, _ := m.Get(4)
	assert.Equal(t, "4", v)
	assert.NoError(t, c.Check())
}

func TestMapCloneBorrowed(t *testing.T) {
	pool := rbtree.NewPool[int, int](16)
	m := rbtree.NewMapWithAllocator[int, int](pool)
	m.Insert(1, 1)
	m.Insert(2, 2)

	c := m.Clone()
	assert.False(t, c.OwnsAllocator())
	assert.Same(t, pool, c.Allocator())
	assert.Equal(t, 8, pool.Used(), "both maps share one pool")

	m.Destroy()
	c.Destroy()
	assert.Equal(t, 0, pool.Used())
	assert.Equal(t, 1, pool.Slabs(), "borrowed pool must not be released")
}

func TestMapCloneWith(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	defer m.Destroy()
	m.Insert(3, 9)

	alloc := memory.NewTestAllocator[rbtree.Node[int, int]]()
	c := m.CloneWith(alloc)
	assert.Equal(t, 3, alloc.Allocated())
	assert.False(t, c.OwnsAllocator())
	c.Destroy()
	assert.Equal(t, 0, alloc.Allocated())
}

func TestMapAssign(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	other := rbtree.NewMap[int, int]()
	defer other.Destroy()

	m.Insert(100, 100)
	other.Insert(1, 1)
	other.Insert(2, 2)

	m.Assign(other)
	assert.Equal(t, []int{1, 2}, keys(m))
	m.Assign(m)
	assert.Equal(t, []int{1, 2}, keys(m))

	m.Destroy()
	m.Assign(other)
	assert.Equal(t, 2, m.Len())
	m.Destroy()
}

func TestMapMove(t *testing.T) {
	m := rbtree.NewMap[int, int]()
	it, _ := m.Insert(1, 10)

	moved := m.Move()
	defer moved.Destroy()
	assert.Equal(t, 1, moved.Len())
	assert.Equal(t, it, moved.Find(1), "iterators follow the moved items")

	assert.PanicsWithValue(t, fault.ErrMovedFrom, func() {
		m.Len()
	})
	assert.PanicsWithValue(t, fault.ErrMovedFrom, func() {
		m.Insert(2, 2)
	})
	m.Destroy() // harmless on a moved from map

	m.MoveFrom(moved)
	assert.Equal(t, 1, m.Len())
	assert.PanicsWithValue(t, fault.ErrMovedFrom, func() {
		moved.Find(1)
	})
	m.Destroy()
}

func TestMapSwap(t *testing.T) {
	a := rbtree.NewMap[int, int]()
	defer a.Destroy()
	b := rbtree.NewMapWithPool[int, int](4)
	defer b.Destroy()

	a.Insert(1, 1)
	b.Insert(2, 2)
	b.Insert(3, 3)
	bAllocator := b.Allocator()

	a.Swap(b)
	assert.Equal(t, []int{2, 3}, keys(a))
	assert.Equal(t, []int{1}, keys(b))
	assert.Same(t, bAllocator, a.Allocator())
}

func TestMapPrint(t *testing.T) {
	m := rbtree.NewMap[int, string]()
	defer m.Destroy()

	var buffer bytes.Buffer
	assert.Equal(t, 0, m.Print(&buffer, true))
	assert.Equal(t, "", buffer.String())

	for i := 1; i <= 7; i += 1 {
		m.Insert(i, fmt.Sprintf("v%d", i))
	}
	// ascending inserts leave 2 at the root with a longer right side
	depth := m.Print(&buffer, true)
	assert.Equal(t, 4, depth)
	assert.Equal(t, 7, strings.Count(buffer.String(), "\n"))
	assert.Contains(t, buffer.String(), "2 → v2 ^<nil> B")
	assert.Contains(t, buffer.String(), "4 → v4 ^2 R")
}

func TestRandomMap(t *testing.T) {
	randomMap(t, 1, 3000, 500)
	randomMap(t, 2, 3000, 50)
	randomMap(t, 3, 5000, 5000)
}

// random inserts and erases compared against a Go map
func randomMap(t *testing.T, seed int64, operations int, keySpace int) {
	r := rand.New(rand.NewSource(seed))
	pool := rbtree.NewPool[int, int](32)
	m := rbtree.NewMapWithAllocator[int, int](pool)
	reference := make(map[int]int)

	for i := 0; i < operations; i += 1 {
		key := r.Intn(keySpace)
		switch r.Intn(4) {
		case 0, 1:
			_, added := m.Insert(key, i)
			_, present := reference[key]
			require.Equal(t, !present, added, "insert: %d", key)
			if !present {
				reference[key] = i
			}
		case 2:
			n := m.EraseKey(key)
			_, present := reference[key]
			require.Equal(t, present, 1 == n, "erase: %d", key)
			delete(reference, key)
		default:
			*m.Index(key) = -i
			reference[key] = -i
		}

		if err := m.Check(); nil != err {
			var buffer bytes.Buffer
			m.Print(&buffer, false)
			t.Logf("tree:\n%s", buffer.String())
			t.Fatalf("seed: %d  operation: %d  error: %s", seed, i, err)
		}
		require.Equal(t, len(reference), m.Len())
		require.Equal(t, m.Len()+2, pool.Used())
	}

	expected := make([]int, 0, len(reference))
	for key := range reference {
		expected = append(expected, key)
	}
	sort.Ints(expected)
	require.Equal(t, expected, keys(m))
	for key, value := range reference {
		v, ok := m.Get(key)
		require.True(t, ok)
		require.Equal(t, value, v)
	}

	m.Destroy()
	assert.Equal(t, 0, pool.Used())
}

func keys[K any, V any](m *rbtree.Map[K, V]) []K {
	result := []K{}
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		result = append(result, it.Key())
	}
	return result
}
