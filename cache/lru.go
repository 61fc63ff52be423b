package cache

import "github.com/commonlib/datastructures/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// The recency order is kept in a linked list with the most recently used
// entry at the front; insertions and lookups move entries to the front, and
// Evict removes from the back.
type LRU[K comparable, V any] struct {
	index map[K]*list.Element[entry[K, V]]
	queue list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return lru.queue.Len()
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]*list.Element[entry[K, V]])
	}
	e, ok := lru.index[key]
	if ok {
		previous, replaced = e.Value.value, true
		lru.queue.Remove(e)
	}
	lru.index[key] = lru.queue.PushFront(entry[K, V]{key: key, value: value})
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	e, ok := lru.index[key]
	if ok {
		lru.queue.MoveToFront(e)
		value, found = e.Value.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	e, ok := lru.index[key]
	if ok {
		delete(lru.index, key)
		lru.queue.Remove(e)
		value, deleted = e.Value.value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if e := lru.queue.Back(); e != nil {
		lru.queue.Remove(e)
		delete(lru.index, e.Value.key)
		key, value, evicted = e.Value.key, e.Value.value, true
	}
	return key, value, evicted
}

// Range calls f for each entry in the cache, from most to least recently
// used. Unlike Lookup, ranging does not count as a use of the entries.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	lru.queue.Range(func(e entry[K, V]) bool {
		return f(e.key, e.value)
	})
}
