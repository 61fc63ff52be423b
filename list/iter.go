package list

// The iterators in this file follow a double-ended cursor model: an iterator
// holds one cursor per direction and a count of elements remaining between
// them. Each step yields the element under its cursor, moves the cursor one
// link inward, and decrements the count. When the count reaches zero both
// directions report exhaustion, whether or not the cursors met on the same
// element, so interleaved Next/NextBack calls never yield an element twice.

// Iter is a read-only, double-ended iterator over the values of a list.
//
// An Iter is a plain value: copying it produces an independent iterator over
// the same elements. The list must not be mutated while iterators over it are
// in use.
type Iter[T any] struct {
	head  *Element[T]
	tail  *Element[T]
	nelem int
}

// Iter returns a read-only iterator positioned at both ends of the list.
func (list *List[T]) Iter() Iter[T] {
	return Iter[T]{head: list.head, tail: list.tail, nelem: list.size}
}

// Len returns the number of elements remaining in the iteration.
func (it *Iter[T]) Len() int { return it.nelem }

// Next yields the next value in forward order, or returns false if the
// iterator is exhausted.
func (it *Iter[T]) Next() (value T, ok bool) {
	if it.nelem == 0 {
		return value, false
	}
	value = it.head.Value
	it.head = it.head.next
	it.nelem--
	return value, true
}

// NextBack yields the next value in backward order, or returns false if the
// iterator is exhausted.
func (it *Iter[T]) NextBack() (value T, ok bool) {
	if it.nelem == 0 {
		return value, false
	}
	value = it.tail.Value
	it.tail = it.tail.prev
	it.nelem--
	return value, true
}

// Prev steps the forward cursor back by one element and yields the value it
// lands on, undoing the most recent Next. It returns false if the cursor is
// at the front of the list, or if the iterator ran past the last element.
func (it *Iter[T]) Prev() (value T, ok bool) {
	if it.head == nil || it.head.prev == nil {
		return value, false
	}
	it.head = it.head.prev
	it.nelem++
	return it.head.Value, true
}

// PrevBack steps the backward cursor back by one element and yields the value
// it lands on, undoing the most recent NextBack. It returns false if the
// cursor is at the back of the list, or if the iterator ran past the first
// element.
func (it *Iter[T]) PrevBack() (value T, ok bool) {
	if it.tail == nil || it.tail.next == nil {
		return value, false
	}
	it.tail = it.tail.next
	it.nelem++
	return it.tail.Value, true
}

// MutIter is a double-ended iterator over a list which yields pointers to the
// stored values and supports insertion at the current position.
//
// A MutIter holds exclusive access to its list: no other operation on the
// list may be used until the iteration is over.
type MutIter[T any] struct {
	list  *List[T]
	head  *Element[T]
	tail  *Element[T]
	nelem int
}

// MutIter returns a mutating iterator positioned at both ends of the list.
func (list *List[T]) MutIter() *MutIter[T] {
	return &MutIter[T]{list: list, head: list.head, tail: list.tail, nelem: list.size}
}

// Len returns the number of elements remaining in the iteration.
func (it *MutIter[T]) Len() int { return it.nelem }

// Next yields a pointer to the next value in forward order, or returns false
// if the iterator is exhausted.
func (it *MutIter[T]) Next() (value *T, ok bool) {
	if it.nelem == 0 {
		return nil, false
	}
	value = &it.head.Value
	it.head = it.head.next
	it.nelem--
	return value, true
}

// NextBack yields a pointer to the next value in backward order, or returns
// false if the iterator is exhausted.
func (it *MutIter[T]) NextBack() (value *T, ok bool) {
	if it.nelem == 0 {
		return nil, false
	}
	value = &it.tail.Value
	it.tail = it.tail.prev
	it.nelem--
	return value, true
}

// Prev steps the forward cursor back by one element and yields a pointer to
// the value it lands on, undoing the most recent Next. It returns false if
// the cursor is at the front of the list, or if the iterator ran past the
// last element.
func (it *MutIter[T]) Prev() (value *T, ok bool) {
	if it.head == nil || it.head.prev == nil {
		return nil, false
	}
	it.head = it.head.prev
	it.nelem++
	return &it.head.Value, true
}

// PrevBack steps the backward cursor back by one element and yields a pointer
// to the value it lands on, undoing the most recent NextBack. It returns
// false if the cursor is at the back of the list, or if the iterator ran past
// the first element.
func (it *MutIter[T]) PrevBack() (value *T, ok bool) {
	if it.tail == nil || it.tail.next == nil {
		return nil, false
	}
	it.tail = it.tail.next
	it.nelem++
	return &it.tail.Value, true
}

// Peek yields a pointer to the value the forward cursor points at, without
// advancing the iterator. It returns false if the iterator is exhausted.
func (it *MutIter[T]) Peek() (value *T, ok bool) {
	if it.nelem == 0 {
		return nil, false
	}
	return &it.head.Value, true
}

// Insert inserts value immediately before the forward cursor, between the
// element most recently yielded by Next and the one Peek reports. The cursor
// does not move and the new element is not yielded by the remaining
// iteration. If the iterator is exhausted the value is appended at the back
// of the list; if Next was never called it is inserted at the front.
func (it *MutIter[T]) Insert(value T) {
	it.insert(&Element[T]{Value: value})
}

func (it *MutIter[T]) insert(e *Element[T]) {
	it.list.insertBefore(it.head, e)
}

// Drain is a consuming iterator: every value yielded is removed from the
// underlying list, and once the iteration is exhausted in either direction
// the list is empty.
type Drain[T any] struct {
	list *List[T]
}

// Drain returns a consuming iterator over the list.
func (list *List[T]) Drain() Drain[T] {
	return Drain[T]{list: list}
}

// Len returns the number of elements remaining in the iteration.
func (d Drain[T]) Len() int { return d.list.size }

// Next removes the front element of the list and yields its value, or
// returns false if the list is empty.
func (d Drain[T]) Next() (value T, ok bool) {
	return d.list.PopFront()
}

// NextBack removes the back element of the list and yields its value, or
// returns false if the list is empty.
func (d Drain[T]) NextBack() (value T, ok bool) {
	return d.list.PopBack()
}
