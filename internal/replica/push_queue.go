package replica

import (
	"context"
	"sync"
)

// pushQueue runs best-effort remote pushes in the background while keeping
// a strict order per key, so an older card state can never overwrite a
// newer one on the remote. Different keys drain independently.
type pushQueue struct {
	mu      sync.Mutex
	pending map[string][]func(context.Context)
	active  map[string]bool
	wg      sync.WaitGroup
}

func newPushQueue() *pushQueue {
	return &pushQueue{
		pending: make(map[string][]func(context.Context)),
		active:  make(map[string]bool),
	}
}

// enqueue schedules fn after all previously enqueued work for the same key.
func (q *pushQueue) enqueue(key string, fn func(context.Context)) {
	q.mu.Lock()
	q.pending[key] = append(q.pending[key], fn)
	if !q.active[key] {
		q.active[key] = true
		q.wg.Add(1)
		go q.drain(key)
	}
	q.mu.Unlock()
}

func (q *pushQueue) drain(key string) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		fns := q.pending[key]
		if len(fns) == 0 {
			delete(q.pending, key)
			q.active[key] = false
			q.mu.Unlock()
			return
		}
		fn := fns[0]
		q.pending[key] = fns[1:]
		q.mu.Unlock()

		fn(context.Background())
	}
}

// wait blocks until every enqueued push has run.
func (q *pushQueue) wait() {
	q.wg.Wait()
}
