/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package orderedset provides an insertion-ordered, de-duplicating
// collection whose elements pass through a normalization hook.
//
// Search roots and extensions are both kept in a Set: roots are expanded
// against a base directory, extensions gain a leading dot. Order is
// priority, so the position an element lands in matters.
package orderedset

import "slices"

// Set is an ordered set of normalized values. The zero value is not usable;
// create sets with New.
type Set[T comparable] struct {
	items     []T
	normalize func(T) T
}

// New creates an empty set. A nil normalize keeps values as given.
func New[T comparable](normalize func(T) T) *Set[T] {
	if normalize == nil {
		normalize = func(v T) T { return v }
	}
	return &Set[T]{normalize: normalize}
}

// Append adds values at the end. Values already present keep their
// current position.
func (s *Set[T]) Append(values ...T) {
	for _, v := range values {
		v = s.normalize(v)
		if !slices.Contains(s.items, v) {
			s.items = append(s.items, v)
		}
	}
}

// Prepend adds values at the front, in the order given. Values already
// present move to their new position.
func (s *Set[T]) Prepend(values ...T) {
	head := make([]T, 0, len(values)+len(s.items))
	for _, v := range values {
		v = s.normalize(v)
		if !slices.Contains(head, v) {
			head = append(head, v)
		}
	}
	for _, v := range s.items {
		if !slices.Contains(head, v) {
			head = append(head, v)
		}
	}
	s.items = head
}

// Remove deletes the element equal to value after normalization and
// reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	i := s.Index(value)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Index returns the position of value after normalization, or -1.
func (s *Set[T]) Index(value T) int {
	return slices.Index(s.items, s.normalize(value))
}

// Contains reports whether value is in the set after normalization.
func (s *Set[T]) Contains(value T) bool {
	return s.Index(value) >= 0
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements in priority order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.items)
}

// Clone returns an independent copy sharing the normalization hook.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{items: slices.Clone(s.items), normalize: s.normalize}
}
