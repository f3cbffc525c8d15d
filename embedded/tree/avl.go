/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tree

import (
	"cmp"
	"fmt"
)

type avlNode[K any, V any] struct {
	key         K
	value       V
	left, right *avlNode[K, V]
	height      int
}

// AVLTree is a self-balancing ordered map. The heights of the two subtrees of
// any node differ by at most one.
type AVLTree[K any, V any] struct {
	root    *avlNode[K, V]
	size    int
	compare CompareFunc[K]
}

func NewAVLTree[K any, V any](compare CompareFunc[K]) (*AVLTree[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}

	return &AVLTree[K, V]{compare: compare}, nil
}

func NewOrderedAVLTree[K cmp.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{compare: cmp.Compare[K]}
}

// Put stores value under key, replacing any previous value.
func (t *AVLTree[K, V]) Put(key K, value V) {
	t.root = t.put(t.root, key, value)
}

func (t *AVLTree[K, V]) put(n *avlNode[K, V], key K, value V) *avlNode[K, V] {
	if n == nil {
		t.size++
		return &avlNode[K, V]{key: key, value: value, height: 1}
	}

	c := t.compare(key, n.key)
	switch {
	case c < 0:
		n.left = t.put(n.left, key, value)
	case c > 0:
		n.right = t.put(n.right, key, value)
	default:
		n.value = value
		return n
	}

	return rebalance(n)
}

func (t *AVLTree[K, V]) Remove(key K) error {
	var found bool

	t.root = t.remove(t.root, key, &found)
	if !found {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	t.size--

	return nil
}

func (t *AVLTree[K, V]) remove(n *avlNode[K, V], key K, found *bool) *avlNode[K, V] {
	if n == nil {
		return nil
	}

	c := t.compare(key, n.key)
	switch {
	case c < 0:
		n.left = t.remove(n.left, key, found)
	case c > 0:
		n.right = t.remove(n.right, key, found)
	default:
		*found = true

		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}

		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}

		n.key, n.value = succ.key, succ.value

		var dropped bool
		n.right = t.remove(n.right, succ.key, &dropped)
	}

	return rebalance(n)
}

func (t *AVLTree[K, V]) Get(key K) (V, error) {
	n := t.root

	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, nil
		}
	}

	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

func (t *AVLTree[K, V]) Contains(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Min returns the value stored under the smallest key.
func (t *AVLTree[K, V]) Min() (V, error) {
	if t.root == nil {
		var zero V
		return zero, fmt.Errorf("%w: min of empty tree", ErrEmptyContainer)
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.value, nil
}

// Max returns the value stored under the greatest key.
func (t *AVLTree[K, V]) Max() (V, error) {
	if t.root == nil {
		var zero V
		return zero, fmt.Errorf("%w: max of empty tree", ErrEmptyContainer)
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, nil
}

func (t *AVLTree[K, V]) Size() int {
	return t.size
}

func (t *AVLTree[K, V]) IsEmpty() bool {
	return t.size == 0
}

func (t *AVLTree[K, V]) Height() int {
	return height(t.root)
}

func (t *AVLTree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *AVLTree[K, V]) PreOrder() []K {
	keys := make([]K, 0, t.size)
	walkAVL(t.root, func(n *avlNode[K, V]) { keys = append(keys, n.key) }, nil, nil)
	return keys
}

func (t *AVLTree[K, V]) InOrder() []K {
	keys := make([]K, 0, t.size)
	walkAVL(t.root, nil, func(n *avlNode[K, V]) { keys = append(keys, n.key) }, nil)
	return keys
}

func (t *AVLTree[K, V]) PostOrder() []K {
	keys := make([]K, 0, t.size)
	walkAVL(t.root, nil, nil, func(n *avlNode[K, V]) { keys = append(keys, n.key) })
	return keys
}

func walkAVL[K any, V any](n *avlNode[K, V], pre, in, post func(*avlNode[K, V])) {
	if n == nil {
		return
	}

	if pre != nil {
		pre(n)
	}

	walkAVL(n.left, pre, in, post)

	if in != nil {
		in(n)
	}

	walkAVL(n.right, pre, in, post)

	if post != nil {
		post(n)
	}
}

func height[K any, V any](n *avlNode[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K any, V any](n *avlNode[K, V]) int {
	return height(n.left) - height(n.right)
}

func updateHeight[K any, V any](n *avlNode[K, V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rotateLeft[K any, V any](n *avlNode[K, V]) *avlNode[K, V] {
	r := n.right
	n.right = r.left
	r.left = n

	updateHeight(n)
	updateHeight(r)

	return r
}

func rotateRight[K any, V any](n *avlNode[K, V]) *avlNode[K, V] {
	l := n.left
	n.left = l.right
	l.right = n

	updateHeight(n)
	updateHeight(l)

	return l
}

func rebalance[K any, V any](n *avlNode[K, V]) *avlNode[K, V] {
	updateHeight(n)

	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}
