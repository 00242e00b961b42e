// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"slices"
	"sort"
)

// Index is a generic sorted array index.
type Index[K, V any] struct {
	// sorted by key. Values with equal keys keep their original order.
	index []V

	key func(V) K
	cmp func(K, K) int
}

// NewIndex creates an index from the given slice, key function and comparison
// function. cmp(a, b) should return a negative number when a < b, a positive
// number when a > b and zero when a == b or a and b are incomparable in the
// sense of a strict weak ordering.
func NewIndex[K, V any](index []V, key func(V) K, cmp func(K, K) int) *Index[K, V] {
	sorted := make([]V, len(index))
	copy(sorted, index)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(key(a), key(b))
	})

	return &Index[K, V]{
		index: sorted,
		key:   key,
		cmp:   cmp,
	}
}

// Search performs a binary search over the index and returns the values
// with the given key.
func (idx *Index[K, V]) Search(query K) []V {
	i, found := sort.Find(len(idx.index), func(i int) int {
		return idx.cmp(query, idx.key(idx.index[i]))
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.index) && idx.cmp(query, idx.key(idx.index[j])) == 0; j++ {
	}
	return slices.Clip(idx.index[i:j])
}

// Values returns all values in key order.
func (idx *Index[K, V]) Values() []V {
	return slices.Clip(idx.index)
}

// Len returns the number of values in the index.
func (idx *Index[K, V]) Len() int {
	return len(idx.index)
}

// Sorted returns a sorted copy of values with duplicates removed.
func Sorted[V any](values []V, cmp func(V, V) int) []V {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, cmp)
	return slices.CompactFunc(sorted, func(a, b V) bool {
		return cmp(a, b) == 0
	})
}
