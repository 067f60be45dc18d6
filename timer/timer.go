// timer/timer.go
package timer

import (
	"container/heap"
	"sync"
	"time"
)

// Task 一次性延时任务
type Task struct {
	ID    int64
	RunAt time.Time
	Run   func()
	index int
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	return q[i].RunAt.Before(q[j].RunAt)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x interface{}) {
	n := len(*q)
	task := x.(*Task)
	task.index = n
	*q = append(*q, task)
}

func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	task := old[n-1]
	task.index = -1
	*q = old[0 : n-1]
	return task
}

// Scheduler 驱动自动回合的延时执行。任务到点后在独立 goroutine 中运行，
// 回调自身负责在执行时重新确认前提是否仍然成立。
type Scheduler struct {
	queue    taskQueue
	mutex    sync.Mutex
	nextID   int64
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewScheduler() *Scheduler {
	s := &Scheduler{
		queue:    make(taskQueue, 0),
		nextID:   1,
		stopChan: make(chan struct{}),
	}
	heap.Init(&s.queue)
	go s.process()
	return s
}

// After 注册一个延时任务，返回任务ID
func (s *Scheduler) After(delay time.Duration, fn func()) int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task := &Task{
		ID:    s.nextID,
		RunAt: time.Now().Add(delay),
		Run:   fn,
	}
	s.nextID++

	heap.Push(&s.queue, task)
	return task.ID
}

// Cancel 撤销尚未触发的任务
func (s *Scheduler) Cancel(taskID int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, task := range s.queue {
		if task.ID == taskID {
			heap.Remove(&s.queue, i)
			break
		}
	}
}

// Stop 停止调度循环，未触发的任务不再执行
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

func (s *Scheduler) process() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runDue(time.Now())
		case <-s.stopChan:
			return
		}
	}
}

func (s *Scheduler) runDue(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for s.queue.Len() > 0 {
		task := s.queue[0]
		if task.RunAt.After(now) {
			break
		}
		heap.Pop(&s.queue)
		go task.Run()
	}
}
