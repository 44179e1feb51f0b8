// Package crawl: BFS queue with deduplication.
// Maintains a seen set so no URL is queued twice, and stops accepting
// URLs once its capacity is reached.
package crawl

// Queue is a bounded BFS queue with URL deduplication.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int // current read position
	limit int
}

// NewQueue creates an empty Queue holding at most limit URLs. A limit
// below 1 means unbounded.
func NewQueue(limit int) *Queue {
	return &Queue{
		seen:  make(map[string]bool),
		limit: limit,
	}
}

// Add enqueues a URL if it hasn't been seen before and the queue is not
// full. It reports whether the URL was added.
func (q *Queue) Add(url string) bool {
	if q.seen[url] || q.Full() {
		return false
	}
	q.seen[url] = true
	q.items = append(q.items, url)
	return true
}

// Full reports whether the queue has reached its limit.
func (q *Queue) Full() bool {
	return q.limit > 0 && len(q.items) >= q.limit
}

// HasNext returns true if there are unprocessed URLs.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed URL and advances the pointer.
func (q *Queue) Next() string {
	url := q.items[q.idx]
	q.idx++
	return url
}

// Len returns the number of URLs queued so far.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns all queued URLs in BFS order.
func (q *Queue) All() []string {
	return q.items
}
