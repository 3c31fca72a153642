// Copyright 2026 The libcparse-go Authors.
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

// Package avl implements a small generic balanced binary search tree,
// used by the preprocessor scanner for keyword lookup and available to
// any downstream symbol table that needs ordered insert/find/delete.
package avl

import "github.com/nanolith-go/libcparse/cparseerr"

type node[K comparable, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	height      int
}

// Map is an ordered map keyed by K, compared with a user-supplied less
// function, balanced as a classic AVL tree.
type Map[K comparable, V any] struct {
	root *node[K, V]
	less func(a, b K) bool
	size int
}

// New builds an empty map ordered by less.
func New[K comparable, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{less: less}
}

// Len reports the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

func height[K comparable, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K comparable, V any](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

func updateHeight[K comparable, V any](n *node[K, V]) {
	h := height(n.left)
	if r := height(n.right); r > h {
		h = r
	}
	n.height = h + 1
}

func rotateRight[K comparable, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	updateHeight(y)
	updateHeight(x)
	return x
}

func rotateLeft[K comparable, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	updateHeight(x)
	updateHeight(y)
	return y
}

func rebalance[K comparable, V any](n *node[K, V]) *node[K, V] {
	updateHeight(n)
	bf := balanceFactor(n)
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// Insert adds or overwrites the entry for key.
func (m *Map[K, V]) Insert(key K, value V) {
	var inserted bool
	m.root, inserted = m.insert(m.root, key, value)
	if inserted {
		m.size++
	}
}

func (m *Map[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, true
	}
	var inserted bool
	switch {
	case m.less(key, n.key):
		n.left, inserted = m.insert(n.left, key, value)
	case m.less(n.key, key):
		n.right, inserted = m.insert(n.right, key, value)
	default:
		n.value = value
		return n, false
	}
	return rebalance(n), inserted
}

// Find reports the value stored for key, if any.
func (m *Map[K, V]) Find(key K) (V, bool) {
	n := m.root
	for n != nil {
		switch {
		case m.less(key, n.key):
			n = n.left
		case m.less(n.key, key):
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key, returning cparseerr.ErrAvlTreeElementNotFound if
// it wasn't present.
func (m *Map[K, V]) Delete(key K) error {
	var removed bool
	m.root, removed = m.delete(m.root, key)
	if !removed {
		return cparseerr.ErrAvlTreeElementNotFound
	}
	m.size--
	return nil
}

func (m *Map[K, V]) delete(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case m.less(key, n.key):
		n.left, removed = m.delete(n.left, key)
	case m.less(n.key, key):
		n.right, removed = m.delete(n.right, key)
	default:
		removed = true
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		successor := minNode(n.right)
		n.key, n.value = successor.key, successor.value
		n.right, _ = m.delete(n.right, successor.key)
	}
	if n == nil {
		return nil, removed
	}
	return rebalance(n), removed
}

func minNode[K comparable, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K comparable, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key in the map.
func (m *Map[K, V]) Min() (K, V, bool) {
	if m.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := minNode(m.root)
	return n.key, n.value, true
}

// Max returns the largest key in the map.
func (m *Map[K, V]) Max() (K, V, bool) {
	if m.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := maxNode(m.root)
	return n.key, n.value, true
}

// Successor returns the smallest key strictly greater than key.
func (m *Map[K, V]) Successor(key K) (K, V, bool) {
	var candidate *node[K, V]
	n := m.root
	for n != nil {
		if m.less(key, n.key) {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if candidate == nil {
		var k K
		var v V
		return k, v, false
	}
	return candidate.key, candidate.value, true
}

// Predecessor returns the largest key strictly less than key.
func (m *Map[K, V]) Predecessor(key K) (K, V, bool) {
	var candidate *node[K, V]
	n := m.root
	for n != nil {
		if m.less(n.key, key) {
			candidate = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if candidate == nil {
		var k K
		var v V
		return k, v, false
	}
	return candidate.key, candidate.value, true
}

// Swap exchanges the values stored at two keys. Both must already be
// present, or it returns cparseerr.ErrAvlTreeElementNotFound.
func (m *Map[K, V]) Swap(a, b K) error {
	av, ok := m.Find(a)
	if !ok {
		return cparseerr.ErrAvlTreeElementNotFound
	}
	bv, ok := m.Find(b)
	if !ok {
		return cparseerr.ErrAvlTreeElementNotFound
	}
	m.Insert(a, bv)
	m.Insert(b, av)
	return nil
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
}
