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

import "fmt"

type Stack[T any] struct {
	elems *DynamicArray[T]
}

func NewStack[T any](opts *Options) (*Stack[T], error) {
	elems, err := NewDynamicArrayWith[T](opts)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{elems: elems}, nil
}

func (s *Stack[T]) Push(x T) error {
	return s.elems.PushBack(x)
}

func (s *Stack[T]) Pop() (T, error) {
	if s.elems.IsEmpty() {
		var x T
		return x, fmt.Errorf("%w: pop on empty stack", ErrUnderflow)
	}

	return s.elems.PopBack()
}

func (s *Stack[T]) Peek() (T, error) {
	if s.elems.IsEmpty() {
		var x T
		return x, fmt.Errorf("%w: peek on empty stack", ErrUnderflow)
	}

	return s.elems.Back()
}

func (s *Stack[T]) Len() int {
	return s.elems.Size()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.elems.IsEmpty()
}

// Discard drops the n topmost elements, or all of them when fewer are stored.
func (s *Stack[T]) Discard(n int) error {
	if n <= 0 {
		return nil
	}

	return s.elems.Resize(max(0, s.elems.Size()-n))
}

// Reset empties the stack, keeping its capacity.
func (s *Stack[T]) Reset() {
	s.elems.Clear()
}
