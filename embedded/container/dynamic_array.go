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
	"fmt"
	"iter"
	"math"

	"github.com/codenotary/dsa/embedded/logger"
	"github.com/codenotary/dsa/embedded/metrics"
)

// DynamicArray is a growable contiguous array.
//
// Slots in [0, Size()) hold live elements, slots in [Size(), Capacity()) hold the
// zero value of T. Capacity only decreases through ShrinkToFit.
//
// A DynamicArray is not safe for concurrent use.
type DynamicArray[T any] struct {
	buf  []T
	size int

	logger  logger.Logger
	metrics metrics.ContainerMetrics
	id      string

	growthFactor int
	maxCapacity  int
}

// NewDynamicArray creates an array using DefaultOptions.
func NewDynamicArray[T any]() *DynamicArray[T] {
	return newDynamicArray[T](DefaultOptions(), DefaultInitialCapacity)
}

func NewDynamicArrayWith[T any](opts *Options) (*DynamicArray[T], error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	return newDynamicArray[T](opts, opts.initialCapacity), nil
}

// NewDynamicArrayOf creates an array holding count copies of value, with
// capacity equal to count.
func NewDynamicArrayOf[T any](count int, value T) (*DynamicArray[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}

	a := newDynamicArray[T](DefaultOptions(), count)
	for i := range a.buf {
		a.buf[i] = value
	}
	a.size = count
	a.report()

	return a, nil
}

func newDynamicArray[T any](opts *Options, capacity int) *DynamicArray[T] {
	a := &DynamicArray[T]{
		buf:          make([]T, capacity),
		logger:       opts.logger,
		metrics:      opts.metrics,
		id:           opts.id,
		growthFactor: opts.growthFactor,
		maxCapacity:  opts.maxCapacity,
	}
	a.report()

	return a
}

// Clone returns an independent copy with the same size, capacity, growth
// settings and logger. The copy is identified as "<id>-clone" and reports to
// nop metrics, so it never overwrites the gauges of the original.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	c := &DynamicArray[T]{
		buf:          make([]T, len(a.buf)),
		size:         a.size,
		logger:       a.logger,
		metrics:      metrics.NewNopContainerMetrics(),
		id:           a.id + "-clone",
		growthFactor: a.growthFactor,
		maxCapacity:  a.maxCapacity,
	}
	copy(c.buf, a.buf[:a.size])
	c.report()

	return c
}

// ID returns the identifier used in log lines and metric labels.
func (a *DynamicArray[T]) ID() string {
	return a.id
}

func (a *DynamicArray[T]) PushBack(v T) error {
	err := a.ensureCapacity(a.size + 1)
	if err != nil {
		return err
	}

	a.buf[a.size] = v
	a.size++
	a.metrics.SetSize(a.size)

	return nil
}

func (a *DynamicArray[T]) PopBack() (T, error) {
	var zero T

	if a.size == 0 {
		return zero, fmt.Errorf("%w: pop back on empty array", ErrUnderflow)
	}

	a.size--
	v := a.buf[a.size]
	a.buf[a.size] = zero
	a.metrics.SetSize(a.size)

	return v, nil
}

func (a *DynamicArray[T]) InsertAt(index int, v T) error {
	return a.InsertN(index, v, 1)
}

// InsertN inserts count copies of v starting at index, shifting the elements
// in [index, Size()) to the right. Valid indexes are [0, Size()].
func (a *DynamicArray[T]) InsertN(index int, v T, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}

	if index < 0 || index > a.size {
		return fmt.Errorf("%w: insert at %d, size %d", ErrOutOfRange, index, a.size)
	}

	if count == 0 {
		return nil
	}

	if count > math.MaxInt-a.size {
		return fmt.Errorf("%w: inserting %d elements overflows size", ErrAllocationFailure, count)
	}

	err := a.ensureCapacity(a.size + count)
	if err != nil {
		return err
	}

	// copy handles the overlap as memmove does
	copy(a.buf[index+count:a.size+count], a.buf[index:a.size])

	for i := index; i < index+count; i++ {
		a.buf[i] = v
	}

	a.metrics.AddShiftedElements(a.size - index)
	a.size += count
	a.metrics.SetSize(a.size)

	return nil
}

func (a *DynamicArray[T]) RemoveAt(index int) error {
	return a.RemoveN(index, 1)
}

// RemoveN removes count elements starting at index and closes the gap.
// Capacity is left untouched.
func (a *DynamicArray[T]) RemoveN(index int, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}

	if index < 0 || index > a.size-count {
		return fmt.Errorf("%w: remove %d elements at %d, size %d", ErrOutOfRange, count, index, a.size)
	}

	if count == 0 {
		return nil
	}

	copy(a.buf[index:], a.buf[index+count:a.size])
	clear(a.buf[a.size-count : a.size])

	a.metrics.AddShiftedElements(a.size - index - count)
	a.size -= count
	a.metrics.SetSize(a.size)

	return nil
}

// Resize changes the number of elements to count, appending zero values when
// growing.
func (a *DynamicArray[T]) Resize(count int) error {
	var zero T
	return a.ResizeWith(count, zero)
}

// ResizeWith changes the number of elements to count, appending copies of fill
// when growing. Shrinking the size never releases capacity.
func (a *DynamicArray[T]) ResizeWith(count int, fill T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}

	if count <= a.size {
		clear(a.buf[count:a.size])
		a.size = count
		a.metrics.SetSize(a.size)
		return nil
	}

	err := a.ensureCapacity(count)
	if err != nil {
		return err
	}

	for i := a.size; i < count; i++ {
		a.buf[i] = fill
	}
	a.size = count
	a.metrics.SetSize(a.size)

	return nil
}

// Clear removes every element. Capacity is unchanged.
func (a *DynamicArray[T]) Clear() {
	clear(a.buf[:a.size])
	a.size = 0
	a.metrics.SetSize(a.size)
}

// Reserve grows the buffer to exactly newCapacity slots. It is a no-op when
// the current capacity is already large enough.
func (a *DynamicArray[T]) Reserve(newCapacity int) error {
	if newCapacity <= len(a.buf) {
		return nil
	}

	return a.reallocate(newCapacity)
}

// ShrinkToFit reallocates the buffer so that capacity equals size.
func (a *DynamicArray[T]) ShrinkToFit() error {
	if len(a.buf) == a.size {
		return nil
	}

	return a.reallocate(a.size)
}

func (a *DynamicArray[T]) Front() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty array", ErrUnderflow)
	}

	return a.buf[0], nil
}

func (a *DynamicArray[T]) Back() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty array", ErrUnderflow)
	}

	return a.buf[a.size-1], nil
}

func (a *DynamicArray[T]) At(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, a.size)
	}

	return a.buf[index], nil
}

func (a *DynamicArray[T]) SetAt(index int, v T) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, a.size)
	}

	a.buf[index] = v

	return nil
}

// Get returns the element at index without checking it against Size().
func (a *DynamicArray[T]) Get(index int) T {
	return a.buf[index]
}

// Set stores v at index without checking it against Size().
func (a *DynamicArray[T]) Set(index int, v T) {
	a.buf[index] = v
}

// Swap exchanges the elements at i and j without bounds checking them against Size().
func (a *DynamicArray[T]) Swap(i, j int) {
	a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
}

// Data exposes the live elements. The returned slice shares storage with the
// array and is only valid until the next mutating call.
func (a *DynamicArray[T]) Data() []T {
	return a.buf[:a.size:a.size]
}

// All iterates over index/value pairs in order.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) Size() int {
	return a.size
}

func (a *DynamicArray[T]) Capacity() int {
	return len(a.buf)
}

func (a *DynamicArray[T]) IsEmpty() bool {
	return a.size == 0
}

// ensureCapacity grows the buffer by the configured factor until at least
// required slots are available. Growth is clamped to the maximum capacity.
func (a *DynamicArray[T]) ensureCapacity(required int) error {
	capacity := len(a.buf)
	if required <= capacity {
		return nil
	}

	newCapacity := max(1, capacity)
	for newCapacity < required {
		if newCapacity > math.MaxInt/a.growthFactor {
			newCapacity = required
			break
		}
		newCapacity *= a.growthFactor
	}

	maxCapacity := a.maxCapacity
	if maxCapacity > 0 && newCapacity > maxCapacity && required <= maxCapacity {
		newCapacity = maxCapacity
	}

	return a.reallocate(newCapacity)
}

// reallocate moves the live elements into a buffer of exactly newCapacity
// slots. On failure the array is left untouched.
func (a *DynamicArray[T]) reallocate(newCapacity int) error {
	maxCapacity := a.maxCapacity
	if maxCapacity > 0 && newCapacity > maxCapacity {
		a.metrics.IncRefusedGrowth()
		a.logger.Warningf("container[%s]: refused growth from %d to %d slots, maximum is %d",
			a.id, len(a.buf), newCapacity, maxCapacity)

		return fmt.Errorf("%w: capacity %d exceeds maximum %d", ErrAllocationFailure, newCapacity, maxCapacity)
	}

	buf := make([]T, newCapacity)
	copy(buf, a.buf[:a.size])

	oldCapacity := len(a.buf)
	a.buf = buf

	a.metrics.IncReallocations()
	a.report()
	a.logger.Debugf("container[%s]: reallocated from %d to %d slots", a.id, oldCapacity, newCapacity)

	return nil
}

func (a *DynamicArray[T]) report() {
	a.metrics.SetCapacity(len(a.buf))
	a.metrics.SetSize(a.size)
}
