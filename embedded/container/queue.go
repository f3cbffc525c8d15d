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

// Queue is a FIFO queue backed by a Dequeue.
type Queue[T any] struct {
	q *Dequeue[T]
}

func NewQueue[T any](opts *Options) (*Queue[T], error) {
	q, err := NewDequeue[T](opts)
	if err != nil {
		return nil, err
	}

	return &Queue[T]{q: q}, nil
}

func (q *Queue[T]) Enqueue(x T) error {
	return q.q.PushBack(x)
}

func (q *Queue[T]) Dequeue() (T, error) {
	return q.q.PopFront()
}

func (q *Queue[T]) Peek() (T, error) {
	return q.q.Front()
}

func (q *Queue[T]) Len() int {
	return q.q.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.q.IsEmpty()
}
