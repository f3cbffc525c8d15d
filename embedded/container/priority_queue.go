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

package container

import (
	"cmp"
	"fmt"
)

// CompareFunc returns a positive value when a belongs closer to the root of
// the heap than b, zero when they tie and a negative value otherwise.
type CompareFunc[T any] func(a, b T) int

// MaxQueue orders the greatest element first.
func MaxQueue[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// MinQueue orders the smallest element first.
func MinQueue[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

// PriorityQueue is a binary heap stored in a DynamicArray. For every index i
// with a child c, compare(storage[i], storage[c]) >= 0.
type PriorityQueue[T any] struct {
	storage *DynamicArray[T]
	compare CompareFunc[T]
}

func NewMaxQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		storage: NewDynamicArray[T](),
		compare: MaxQueue[T],
	}
}

func NewMinQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		storage: NewDynamicArray[T](),
		compare: MinQueue[T],
	}
}

func NewPriorityQueue[T any](compare CompareFunc[T]) (*PriorityQueue[T], error) {
	return NewPriorityQueueWith(compare, DefaultOptions())
}

func NewPriorityQueueWith[T any](compare CompareFunc[T], opts *Options) (*PriorityQueue[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}

	storage, err := NewDynamicArrayWith[T](opts)
	if err != nil {
		return nil, err
	}

	return &PriorityQueue[T]{
		storage: storage,
		compare: compare,
	}, nil
}

func (pq *PriorityQueue[T]) Insert(v T) error {
	err := pq.storage.PushBack(v)
	if err != nil {
		return err
	}

	pq.siftUp(pq.storage.Size() - 1)

	return nil
}

func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.storage.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty priority queue", ErrEmptyContainer)
	}

	return pq.storage.Get(0), nil
}

// Pull removes and returns the root element.
func (pq *PriorityQueue[T]) Pull() (T, error) {
	if pq.storage.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: pull on empty priority queue", ErrEmptyContainer)
	}

	pq.storage.Swap(0, pq.storage.Size()-1)

	top, err := pq.storage.PopBack()
	if err != nil {
		return top, err
	}

	pq.siftDown(0)

	return top, nil
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.storage.IsEmpty()
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.storage.Size()
}

func (pq *PriorityQueue[T]) Clear() {
	pq.storage.Clear()
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2

		if pq.compare(pq.storage.Get(i), pq.storage.Get(parent)) <= 0 {
			return
		}

		pq.storage.Swap(i, parent)
		i = parent
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := pq.storage.Size()

	for {
		best := i

		left := 2*i + 1
		if left < n && pq.compare(pq.storage.Get(left), pq.storage.Get(best)) > 0 {
			best = left
		}

		right := left + 1
		if right < n && pq.compare(pq.storage.Get(right), pq.storage.Get(best)) > 0 {
			best = right
		}

		if best == i {
			return
		}

		pq.storage.Swap(i, best)
		i = best
	}
}
