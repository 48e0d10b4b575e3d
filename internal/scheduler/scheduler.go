package scheduler

import (
	"log"
	"sync"
)

// Task is a named unit of work. Errors are logged by the worker, they
// never stop the queue.
type Task struct {
	Name string
	Run  func() error
}

// Scheduler runs tasks one at a time on a single worker goroutine. The
// language-service layer underneath is synchronous, so funneling every
// update and query through one worker keeps it single-threaded while
// LSP notifications keep arriving.
type Scheduler struct {
	tasks    chan Task
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewScheduler creates a scheduler with the given queue capacity.
func NewScheduler(queueSize int) *Scheduler {
	return &Scheduler{
		tasks:    make(chan Task, queueSize),
		stopChan: make(chan struct{}),
	}
}

// Start launches the worker loop.
func (s *Scheduler) Start() {
	go func() {
		for {
			select {
			case task, ok := <-s.tasks:
				if !ok {
					return
				}
				s.execute(task)
			case <-s.stopChan:
				// Drain what was queued before the stop.
				for {
					select {
					case task := <-s.tasks:
						s.execute(task)
					default:
						return
					}
				}
			}
		}
	}()
}

// Schedule queues a task; after Stop it is a no-op. Blocks while the
// queue is full; callers that need debouncing implement it above this
// layer. The enqueue happens under the lock so a task can never slip
// into the queue after Stop has begun, which would strand the wait
// group.
func (s *Scheduler) Schedule(task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.wg.Add(1)
	s.tasks <- task
}

// Stop drains the queue and waits for in-flight work to finish. Safe to
// call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *Scheduler) execute(task Task) {
	defer s.wg.Done()
	if err := task.Run(); err != nil {
		log.Printf("task %s: %v", task.Name, err)
	}
}
