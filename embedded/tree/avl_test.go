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
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireBalanced[K any, V any](t *testing.T, n *avlNode[K, V]) int {
	t.Helper()

	if n == nil {
		return 0
	}

	lh := requireBalanced(t, n.left)
	rh := requireBalanced(t, n.right)

	require.LessOrEqual(t, lh-rh, 1)
	require.GreaterOrEqual(t, lh-rh, -1)
	require.Equal(t, 1+max(lh, rh), n.height)

	return n.height
}

func TestAVLTreeRotations(t *testing.T) {
	for _, d := range []struct {
		n        string
		keys     []int
		preOrder []int
	}{
		{"left-left", []int{3, 2, 1}, []int{2, 1, 3}},
		{"right-right", []int{1, 2, 3}, []int{2, 1, 3}},
		{"left-right", []int{3, 1, 2}, []int{2, 1, 3}},
		{"right-left", []int{1, 3, 2}, []int{2, 1, 3}},
	} {
		t.Run(d.n, func(t *testing.T) {
			avl := NewOrderedAVLTree[int, string]()
			for _, k := range d.keys {
				avl.Put(k, "")
			}

			require.Equal(t, d.preOrder, avl.PreOrder())
			require.Equal(t, 2, avl.Height())
		})
	}
}

func TestAVLTreePutGet(t *testing.T) {
	avl := NewOrderedAVLTree[string, int]()
	require.True(t, avl.IsEmpty())

	_, err := avl.Get("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = avl.Min()
	require.ErrorIs(t, err, ErrEmptyContainer)

	_, err = avl.Max()
	require.ErrorIs(t, err, ErrEmptyContainer)

	avl.Put("b", 2)
	avl.Put("a", 1)
	avl.Put("c", 3)
	avl.Put("b", 20)

	require.Equal(t, 3, avl.Size())

	v, err := avl.Get("b")
	require.NoError(t, err)
	require.Equal(t, 20, v)

	require.True(t, avl.Contains("a"))
	require.False(t, avl.Contains("d"))

	min, err := avl.Min()
	require.NoError(t, err)
	require.Equal(t, 1, min)

	max, err := avl.Max()
	require.NoError(t, err)
	require.Equal(t, 3, max)

	require.Equal(t, []string{"a", "b", "c"}, avl.InOrder())
	require.Equal(t, []string{"a", "c", "b"}, avl.PostOrder())
}

func TestAVLTreeRandomized(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	avl := NewOrderedAVLTree[int, int]()
	shadow := make(map[int]int)

	for n := 0; n < 3000; n++ {
		k := rnd.Intn(500)

		if rnd.Intn(3) == 0 {
			err := avl.Remove(k)
			if _, ok := shadow[k]; ok {
				require.NoError(t, err)
				delete(shadow, k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		} else {
			avl.Put(k, n)
			shadow[k] = n
		}

		require.Equal(t, len(shadow), avl.Size())
	}

	requireBalanced(t, avl.root)

	keys := make([]int, 0, len(shadow))
	for k, v := range shadow {
		keys = append(keys, k)

		got, err := avl.Get(k)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	sort.Ints(keys)

	require.Equal(t, keys, avl.InOrder())

	bound := 1.45 * math.Log2(float64(avl.Size()+2))
	require.LessOrEqual(t, float64(avl.Height()), bound)

	avl.Clear()
	require.True(t, avl.IsEmpty())
	require.Equal(t, 0, avl.Height())
}

func TestAVLTreeNilComparator(t *testing.T) {
	_, err := NewAVLTree[int, int](nil)
	require.ErrorIs(t, err, ErrIllegalArguments)

	avl, err := NewAVLTree[int, string](func(a, b int) int { return b - a })
	require.NoError(t, err)

	avl.Put(1, "one")
	avl.Put(2, "two")

	min, err := avl.Min()
	require.NoError(t, err)
	require.Equal(t, "two", min)
}
