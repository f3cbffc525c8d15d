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

	"github.com/codenotary/dsa/embedded"
)

var (
	ErrIllegalArguments = embedded.ErrIllegalArguments
	ErrEmptyContainer   = embedded.ErrEmptyContainer
	ErrKeyNotFound      = embedded.ErrKeyNotFound
)

// CompareFunc returns a negative value when a < b, zero when a == b and a
// positive value when a > b.
type CompareFunc[T any] func(a, b T) int

type bstNode[T any] struct {
	value       T
	left, right *bstNode[T]
}

// BST is an unbalanced binary search tree holding distinct values.
type BST[T any] struct {
	root    *bstNode[T]
	size    int
	compare CompareFunc[T]
}

func NewBST[T any](compare CompareFunc[T]) (*BST[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}

	return &BST[T]{compare: compare}, nil
}

func NewOrderedBST[T cmp.Ordered]() *BST[T] {
	return &BST[T]{compare: cmp.Compare[T]}
}

// Insert adds v and reports whether it was not already present.
func (t *BST[T]) Insert(v T) bool {
	link := &t.root

	for *link != nil {
		c := t.compare(v, (*link).value)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}

	*link = &bstNode[T]{value: v}
	t.size++

	return true
}

func (t *BST[T]) Remove(v T) error {
	link := t.find(v)
	if *link == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, v)
	}

	n := *link
	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// replace with the inorder successor
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}

		n.value = (*succ).value
		*succ = (*succ).right
	}

	t.size--

	return nil
}

func (t *BST[T]) Contains(v T) bool {
	return *t.find(v) != nil
}

func (t *BST[T]) find(v T) **bstNode[T] {
	link := &t.root

	for *link != nil {
		c := t.compare(v, (*link).value)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return link
		}
	}

	return link
}

func (t *BST[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, fmt.Errorf("%w: min of empty tree", ErrEmptyContainer)
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.value, nil
}

func (t *BST[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, fmt.Errorf("%w: max of empty tree", ErrEmptyContainer)
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, nil
}

// Predecessor returns the greatest value strictly less than v. v does not
// need to be stored in the tree.
func (t *BST[T]) Predecessor(v T) (T, error) {
	var best *bstNode[T]

	for n := t.root; n != nil; {
		if t.compare(n.value, v) < 0 {
			best = n
			n = n.right
		} else {
			n = n.left
		}
	}

	if best == nil {
		var zero T
		return zero, fmt.Errorf("%w: no predecessor of %v", ErrKeyNotFound, v)
	}

	return best.value, nil
}

// Successor returns the smallest value strictly greater than v.
func (t *BST[T]) Successor(v T) (T, error) {
	var best *bstNode[T]

	for n := t.root; n != nil; {
		if t.compare(n.value, v) > 0 {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}

	if best == nil {
		var zero T
		return zero, fmt.Errorf("%w: no successor of %v", ErrKeyNotFound, v)
	}

	return best.value, nil
}

// Height is the number of nodes on the longest root to leaf path.
func (t *BST[T]) Height() int {
	return bstHeight(t.root)
}

func bstHeight[T any](n *bstNode[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(bstHeight(n.left), bstHeight(n.right))
}

func (t *BST[T]) Size() int {
	return t.size
}

func (t *BST[T]) IsEmpty() bool {
	return t.size == 0
}

func (t *BST[T]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *BST[T]) PreOrder() []T {
	out := make([]T, 0, t.size)

	var walk func(n *bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return out
}

func (t *BST[T]) InOrder() []T {
	out := make([]T, 0, t.size)

	var walk func(n *bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)

	return out
}

func (t *BST[T]) PostOrder() []T {
	out := make([]T, 0, t.size)

	var walk func(n *bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.value)
	}
	walk(t.root)

	return out
}
