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
	"math"

	"github.com/codenotary/dsa/embedded/logger"
	"github.com/codenotary/dsa/embedded/metrics"
)

// Dequeue is a double-ended queue over a ring buffer. A full buffer grows by
// the configured factor, clamped to the maximum capacity.
type Dequeue[T any] struct {
	start int
	end   int
	n     int
	data  []T

	logger  logger.Logger
	metrics metrics.ContainerMetrics
	id      string

	growthFactor int
	maxCapacity  int
}

func NewDequeue[T any](opts *Options) (*Dequeue[T], error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	q := &Dequeue[T]{
		data:         make([]T, opts.initialCapacity),
		logger:       opts.logger,
		metrics:      opts.metrics,
		id:           opts.id,
		growthFactor: opts.growthFactor,
		maxCapacity:  opts.maxCapacity,
	}
	q.metrics.SetCapacity(len(q.data))
	q.metrics.SetSize(0)

	return q, nil
}

func (q *Dequeue[T]) PushBack(x T) error {
	err := q.grow()
	if err != nil {
		return err
	}

	q.data[q.end] = x
	q.end = q.next(q.end)

	q.n++
	q.metrics.SetSize(q.n)

	return nil
}

func (q *Dequeue[T]) PushFront(x T) error {
	err := q.grow()
	if err != nil {
		return err
	}

	q.start = q.prev(q.start)
	q.data[q.start] = x

	q.n++
	q.metrics.SetSize(q.n)

	return nil
}

func (q *Dequeue[T]) PopFront() (T, error) {
	var zero T

	if q.n == 0 {
		return zero, fmt.Errorf("%w: pop front on empty dequeue", ErrEmptyContainer)
	}

	x := q.data[q.start]
	q.data[q.start] = zero
	q.start = q.next(q.start)

	q.n--
	q.metrics.SetSize(q.n)

	return x, nil
}

func (q *Dequeue[T]) PopBack() (T, error) {
	var zero T

	if q.n == 0 {
		return zero, fmt.Errorf("%w: pop back on empty dequeue", ErrEmptyContainer)
	}

	q.end = q.prev(q.end)
	x := q.data[q.end]
	q.data[q.end] = zero

	q.n--
	q.metrics.SetSize(q.n)

	return x, nil
}

func (q *Dequeue[T]) Front() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty dequeue", ErrEmptyContainer)
	}

	return q.data[q.start], nil
}

func (q *Dequeue[T]) Back() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty dequeue", ErrEmptyContainer)
	}

	return q.data[q.prev(q.end)], nil
}

// grow makes room for one more element. The dequeue is left untouched when
// the buffer is full at the maximum capacity.
func (q *Dequeue[T]) grow() error {
	if q.n < len(q.data) {
		return nil
	}

	oldCapacity := len(q.data)

	newCapacity := oldCapacity + 1
	if oldCapacity > 0 && oldCapacity <= math.MaxInt/q.growthFactor {
		newCapacity = oldCapacity * q.growthFactor
	}

	if q.maxCapacity > 0 && newCapacity > q.maxCapacity {
		if oldCapacity >= q.maxCapacity {
			q.metrics.IncRefusedGrowth()
			q.logger.Warningf("container[%s]: refused growth from %d to %d slots, maximum is %d",
				q.id, oldCapacity, newCapacity, q.maxCapacity)

			return fmt.Errorf("%w: capacity %d exceeds maximum %d", ErrAllocationFailure, newCapacity, q.maxCapacity)
		}

		newCapacity = q.maxCapacity
	}

	newData := make([]T, newCapacity)
	for i := 0; i < q.n; i++ {
		newData[i] = q.data[(q.start+i)%oldCapacity]
	}

	q.start = 0
	q.end = q.n
	q.data = newData

	q.metrics.IncReallocations()
	q.metrics.SetCapacity(newCapacity)
	q.logger.Debugf("container[%s]: reallocated from %d to %d slots", q.id, oldCapacity, newCapacity)

	return nil
}

func (q *Dequeue[T]) next(i int) int {
	return (i + 1) % len(q.data)
}

func (q *Dequeue[T]) prev(i int) int {
	return (i - 1 + len(q.data)) % len(q.data)
}

func (q *Dequeue[T]) Cap() int {
	return len(q.data)
}

func (q *Dequeue[T]) Len() int {
	return q.n
}

func (q *Dequeue[T]) IsEmpty() bool {
	return q.n == 0
}
