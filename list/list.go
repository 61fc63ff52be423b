// Package list contains the implementation of a type-safe, doubly-linked list
// with owned values.
//
// The standard library provides an implementation of a doubly-linked list in
// the container/list package, which predates type parameters: elements carry
// their values as interface{}, forcing programs into type assertions at every
// access and extra heap allocations for the boxed values. This package uses a
// type parameter instead, so a List[T] holds its values directly inside the
// element nodes, and all accesses are statically typed.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[string]{}
//	l.PushBack("A")
//	l.PushBack("B")
//	l.PushBack("C")
//
//	for e := l.Front(); e != nil; e = e.Next() {
//		...
//	}
//
// Beyond the operations of container/list, lists support constant-time
// splicing of whole lists (PushBackList, PushFrontList), rotations, ordered
// and conditional insertion, merging of two lists, and iterators which may
// insert new elements at their current position without invalidating the
// iteration (see MutIter).
//
// Lists are not safe to use concurrently from multiple goroutines, but a list
// may be handed off to another goroutine as a whole.
package list

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Element is a node of a List, exposing the value it holds.
//
// Elements are created by the list insertion methods and remain valid until
// removed from their list. An element handed to a method of List must be an
// element of that same list: passing an element of another list, or one that
// was already removed, corrupts both lists.
type Element[T any] struct {
	next, prev *Element[T]

	// The value stored with this element. The field may be read and written
	// freely while the element is part of a list.
	Value T
}

// Next returns the next element in the list, or nil if e is the last one.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Prev returns the previous element in the list, or nil if e is the first
// one.
func (e *Element[T]) Prev() *Element[T] { return e.prev }

// List values are containers of values of type T which support insertion and
// removal at the front and back, insertion and removal at any position in
// O(1) given an element reference, and constant-time concatenation of whole
// lists.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

// New constructs a list containing the given values in order.
func New[T any](values ...T) *List[T] {
	list := new(List[T])
	for _, value := range values {
		list.PushBack(value)
	}
	return list
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// Front returns the element at the front of the list, or nil if the list is
// empty.
func (list *List[T]) Front() *Element[T] { return list.head }

// Back returns the element at the back of the list, or nil if the list is
// empty.
func (list *List[T]) Back() *Element[T] { return list.tail }

// PushFront inserts value at the front of the list and returns the element
// created for it.
func (list *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value}
	list.pushFront(e)
	return e
}

// PushBack inserts value at the back of the list and returns the element
// created for it.
func (list *List[T]) PushBack(value T) *Element[T] {
	e := &Element[T]{Value: value}
	list.pushBack(e)
	return e
}

// PopFront removes the element at the front of the list and returns its
// value, or returns the zero value and false if the list was empty.
func (list *List[T]) PopFront() (value T, ok bool) {
	if e := list.popFront(); e != nil {
		value, ok = e.Value, true
	}
	return value, ok
}

// PopBack removes the element at the back of the list and returns its value,
// or returns the zero value and false if the list was empty.
func (list *List[T]) PopBack() (value T, ok bool) {
	if e := list.popBack(); e != nil {
		value, ok = e.Value, true
	}
	return value, ok
}

// InsertAfter inserts value right after mark and returns the element created
// for it.
//
// A nil mark stands for the position before the first element, so the value
// is inserted at the front. If mark is the last element, the insertion is a
// back push.
//
// mark must be an element of this list or nil.
func (list *List[T]) InsertAfter(value T, mark *Element[T]) *Element[T] {
	e := &Element[T]{Value: value}
	list.insertAfter(mark, e)
	return e
}

// InsertBefore inserts value right before mark and returns the element
// created for it.
//
// A nil mark stands for the position after the last element, so the value is
// inserted at the back.
//
// mark must be an element of this list or nil.
func (list *List[T]) InsertBefore(value T, mark *Element[T]) *Element[T] {
	e := &Element[T]{Value: value}
	list.insertBefore(mark, e)
	return e
}

// Remove removes e from the list and returns its value.
//
// e must be an element of this list.
func (list *List[T]) Remove(e *Element[T]) T {
	list.remove(e)
	return e.Value
}

// MoveToFront moves e to the front of the list.
//
// The operation is idempotent, it does nothing if e is already at the front
// of the list.
//
// e must be an element of this list.
func (list *List[T]) MoveToFront(e *Element[T]) {
	if e != list.head {
		list.remove(e)
		list.pushFront(e)
	}
}

// MoveToBack moves e to the back of the list.
//
// The operation is idempotent, it does nothing if e is already at the back of
// the list.
//
// e must be an element of this list.
func (list *List[T]) MoveToBack(e *Element[T]) {
	if e != list.tail {
		list.remove(e)
		list.pushBack(e)
	}
}

// PushBackList moves all elements of other to the back of the list. The
// operation runs in constant time; no values are copied and the elements of
// other keep their identity.
//
// other is left empty and remains usable as an independent list. Passing the
// list itself is a no-op.
func (list *List[T]) PushBackList(other *List[T]) {
	if other == list || other.head == nil {
		return
	}
	if list.head == nil {
		list.head = other.head
		list.tail = other.tail
		list.size = other.size
	} else {
		other.head.prev = list.tail
		list.tail.next = other.head
		list.tail = other.tail
		list.size += other.size
	}
	other.reset()
}

// PushFrontList moves all elements of other to the front of the list. The
// operation runs in constant time; no values are copied and the elements of
// other keep their identity.
//
// other is left empty and remains usable as an independent list. Passing the
// list itself is a no-op.
func (list *List[T]) PushFrontList(other *List[T]) {
	if other == list || other.head == nil {
		return
	}
	if list.head == nil {
		list.head = other.head
		list.tail = other.tail
		list.size = other.size
	} else {
		other.tail.next = list.head
		list.head.prev = other.tail
		list.head = other.head
		list.size += other.size
	}
	other.reset()
}

// RotateForward moves the last element to the front of the list. It does
// nothing if the list is empty.
func (list *List[T]) RotateForward() {
	if e := list.popBack(); e != nil {
		list.pushFront(e)
	}
}

// RotateBackward moves the first element to the back of the list. It does
// nothing if the list is empty.
func (list *List[T]) RotateBackward() {
	if e := list.popFront(); e != nil {
		list.pushBack(e)
	}
}

// InsertWhen inserts value immediately before the first element x for which
// f(x, value) is true, or at the back of the list if no element satisfies f.
//
// The operation runs in O(n) time.
func (list *List[T]) InsertWhen(value T, f func(elem, value T) bool) {
	it := list.MutIter()
	for {
		x, ok := it.Peek()
		if !ok || f(*x, value) {
			break
		}
		it.Next()
	}
	it.Insert(value)
}

// InsertOrdered inserts value before the first element of the list that is
// not less than it. If the list was sorted in ascending order, it remains
// sorted.
//
// The operation runs in O(n) time.
func InsertOrdered[T constraints.Ordered](list *List[T], value T) {
	list.InsertWhen(value, func(elem, value T) bool { return elem >= value })
}

// Merge merges other into the list, using the function preferLeft. While both
// lists have remaining elements, the next element of the list is kept in
// place if preferLeft(a, b) is true for the pair of next elements a (from the
// list) and b (from other), otherwise b is spliced in before a. Once either
// list is exhausted the remainder of the other is appended.
//
// other is consumed entirely and left empty. If both lists are sorted with
// respect to preferLeft the result is their stable interleave; otherwise the
// output follows the merge procedure literally, Merge never sorts.
//
// The operation runs in O(n+m) time.
func (list *List[T]) Merge(other *List[T], preferLeft func(a, b T) bool) {
	it := list.MutIter()
	for {
		b := other.Front()
		if b == nil {
			return
		}
		a, ok := it.Peek()
		if !ok {
			break
		}
		if preferLeft(*a, b.Value) {
			it.Next()
		} else {
			other.remove(b)
			it.insert(b)
		}
	}
	list.PushBackList(other)
}

// Range calls f for each value in the list, in forward order. If f returns
// false, the iteration is stopped.
func (list *List[T]) Range(f func(T) bool) {
	for e := list.head; e != nil; e = e.next {
		if !f(e.Value) {
			return
		}
	}
}

// Values returns the values held by the list in forward order.
func (list *List[T]) Values() []T {
	values := make([]T, 0, list.size)
	for e := list.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}
	return values
}

// Clone returns a new list holding copies of the values of the list, in the
// same order.
func (list *List[T]) Clone() *List[T] {
	clone := new(List[T])
	for e := list.head; e != nil; e = e.next {
		clone.PushBack(e.Value)
	}
	return clone
}

// Clear removes all elements from the list, leaving it empty.
//
// Every link between elements is severed with an explicit loop rather than by
// dropping the head reference, so removed elements never form a chain: the
// garbage collector reclaims each one independently, and an element retained
// by the program after the call cannot keep the rest of the chain alive. The
// operation runs in O(n) time and constant space, regardless of how long the
// list is.
func (list *List[T]) Clear() {
	for e := list.head; e != nil; {
		next := e.next
		e.next = nil
		e.prev = nil
		e = next
	}
	list.reset()
}

// String returns a representation of the list values in the form
// "[v1, v2, v3]".
func (list *List[T]) String() string {
	s := new(strings.Builder)
	s.WriteByte('[')
	for e := list.head; e != nil; e = e.next {
		if e != list.head {
			s.WriteString(", ")
		}
		fmt.Fprintf(s, "%v", e.Value)
	}
	s.WriteByte(']')
	return s.String()
}

func (list *List[T]) pushFront(e *Element[T]) {
	if list.head == nil {
		list.tail = e
	} else {
		e.next = list.head
		list.head.prev = e
	}
	list.head = e
	list.size++
}

func (list *List[T]) pushBack(e *Element[T]) {
	if list.tail == nil {
		list.head = e
	} else {
		e.prev = list.tail
		list.tail.next = e
	}
	list.tail = e
	list.size++
}

func (list *List[T]) popFront() *Element[T] {
	e := list.head
	if e == nil {
		return nil
	}
	list.head = e.next
	if list.head == nil {
		list.tail = nil
	} else {
		list.head.prev = nil
	}
	e.next = nil
	list.size--
	return e
}

func (list *List[T]) popBack() *Element[T] {
	e := list.tail
	if e == nil {
		return nil
	}
	list.tail = e.prev
	if list.tail == nil {
		list.head = nil
	} else {
		list.tail.next = nil
	}
	e.prev = nil
	list.size--
	return e
}

func (list *List[T]) insertAfter(mark, e *Element[T]) {
	switch {
	case mark == nil:
		list.pushFront(e)
	case mark.next == nil:
		list.pushBack(e)
	default:
		next := mark.next
		e.prev = mark
		e.next = next
		mark.next = e
		next.prev = e
		list.size++
	}
}

func (list *List[T]) insertBefore(mark, e *Element[T]) {
	if mark == nil {
		list.pushBack(e)
	} else {
		list.insertAfter(mark.prev, e)
	}
}

func (list *List[T]) remove(e *Element[T]) {
	prev := e.prev
	next := e.next

	e.prev = nil
	e.next = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if e == list.head {
		list.head = next
	}

	if e == list.tail {
		list.tail = prev
	}

	list.size--
}

func (list *List[T]) reset() {
	list.head = nil
	list.tail = nil
	list.size = 0
}
