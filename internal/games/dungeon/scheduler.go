package dungeon

import (
	"container/heap"

	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

// Scheduler turns timer requests into events on a virtual clock. An event
// fires on the first Advance whose clock has reached its due time, so it is
// never early and at most one tick late. Timers cannot be cancelled.
type Scheduler struct {
	now   float64
	seq   uint64
	queue timerQueue
}

type scheduledEvent struct {
	due   float64
	seq   uint64 // Ties fire in request order
	event sim.Event
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// Schedule queues each request relative to the current clock.
func (s *Scheduler) Schedule(reqs []sim.TimerRequest) {
	for _, r := range reqs {
		delay := r.Delay
		if delay < 0 {
			delay = 0
		}
		s.seq++
		heap.Push(&s.queue, scheduledEvent{due: s.now + delay, seq: s.seq, event: r.Event})
	}
}

// Advance moves the clock forward by dt and returns every event now due.
func (s *Scheduler) Advance(dt float64) sim.EventSet {
	s.now += dt
	fired := sim.NewEventSet()
	for s.queue.Len() > 0 && s.queue[0].due <= s.now {
		next := heap.Pop(&s.queue).(scheduledEvent)
		fired.Add(next.event)
	}
	return fired
}

// timerQueue is a min-heap ordered by due time, then request order.
type timerQueue []scheduledEvent

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(scheduledEvent)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
