package lock

import (
	"sync"
)

// KeyQueue выполняет задачи одного ключа строго в порядке постановки, задачи разных ключей параллельно.
// На каждый активный ключ работает одна горутина, она завершается, когда очередь ключа пуста
type KeyQueue struct {
	mu      sync.Mutex
	pending map[string][]func()
	limit   int
	wg      sync.WaitGroup
}

// NewKeyQueue limit ограничивает число ожидающих задач одного ключа, 0 без ограничения
func NewKeyQueue(limit int) *KeyQueue {
	return &KeyQueue{
		pending: map[string][]func(){},
		limit:   limit,
	}
}

// Push ставит задачу в очередь ключа. false, если очередь ключа заполнена
func (q *KeyQueue) Push(key string, task func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	tasks, running := q.pending[key]
	if q.limit > 0 && len(tasks) >= q.limit {
		return false
	}
	q.pending[key] = append(tasks, task)
	if !running {
		q.wg.Add(1)
		go q.drain(key)
	}
	return true
}

// Wait ждет выполнения всех поставленных задач
func (q *KeyQueue) Wait() {
	q.wg.Wait()
}

func (q *KeyQueue) drain(key string) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		tasks := q.pending[key]
		if len(tasks) == 0 {
			delete(q.pending, key)
			q.mu.Unlock()
			return
		}
		task := tasks[0]
		tasks[0] = nil
		// ключ остается в карте, пока задача выполняется
		q.pending[key] = tasks[1:]
		q.mu.Unlock()
		task()
	}
}
