package cache

// node is an element of the recency list. It stores its key so the cache
// map entry can be deleted in O(1) on eviction.
type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// recencyList is a doubly-linked list ordering keys from most recently used
// (front) to least recently used (back).
type recencyList[K comparable] struct {
	front *node[K]
	back  *node[K]
	len   int
}

// pushFront inserts a new key at the front and returns its node.
func (l *recencyList[K]) pushFront(key K) *node[K] {
	n := &node[K]{key: key}
	n.next = l.front
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.back == nil {
		l.back = n
	}
	l.len++
	return n
}

// moveToFront marks an existing node as most recently used.
func (l *recencyList[K]) moveToFront(n *node[K]) {
	if n == l.front {
		return
	}
	l.unlink(n)
	n.next = l.front
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.back == nil {
		l.back = n
	}
	l.len++
}

// removeBack unlinks and returns the least recently used key.
func (l *recencyList[K]) removeBack() (K, bool) {
	if l.back == nil {
		var zero K
		return zero, false
	}
	n := l.back
	l.unlink(n)
	return n.key, true
}

// remove unlinks an arbitrary node.
func (l *recencyList[K]) remove(n *node[K]) {
	l.unlink(n)
}

// reset empties the list.
func (l *recencyList[K]) reset() {
	l.front, l.back, l.len = nil, nil, 0
}

func (l *recencyList[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
