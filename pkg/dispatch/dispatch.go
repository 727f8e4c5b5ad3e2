// Package dispatch schedules callbacks on the host UI thread's task queue.
package dispatch

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// Register sets the dispatch function used to schedule callbacks on the UI
// thread. The host framework calls this once during initialization; tests
// register their own queue. Pass nil to unregister.
func Register(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread after the current
// pass completes. Returns true if the callback was successfully scheduled,
// false if no dispatch function is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// Queue is a serial FIFO task queue for hosts and tests that drive their own
// event loop. Tasks pushed while draining run in the same drain, after all
// previously queued tasks.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// Push appends a task to the queue. Nil tasks are ignored.
func (q *Queue) Push(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs queued tasks in order until the queue is empty, including tasks
// scheduled by tasks already running. Returns the number of tasks executed.
func (q *Queue) Drain() int {
	executed := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return executed
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
		executed++
	}
}
