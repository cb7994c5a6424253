package lock

import (
	"context"
	"sync"
)

/*
ResourceLock дает выполнять только одну задачу за раз, например запуск парсинга:

	if !runLock.Acquire(ctx, "parse") {
		return // Контекст завершен
	}
	defer runLock.Release("parse")

Остальные ждут своей очереди или выходят при отмене контекста
*/
type ResourceLock struct {
	mu     sync.Mutex
	slot   chan struct{}
	holder string
}

func NewResourceLock() *ResourceLock {
	return &ResourceLock{
		slot: make(chan struct{}, 1),
	}
}

// Acquire пытается захватить ресурс для указанной задачи.
// Возвращает true если ресурс получен, false если контекст завершился
func (c *ResourceLock) Acquire(ctx context.Context, holder string) bool {
	select {
	case <-ctx.Done():
		return false
	case c.slot <- struct{}{}:
	}
	c.mu.Lock()
	c.holder = holder
	c.mu.Unlock()
	return true
}

// Release освобождает ресурс
func (c *ResourceLock) Release(holder string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.holder != holder {
		return
	}
	c.holder = ""
	<-c.slot
}

// Holder возвращает имя задачи, удерживающей ресурс
func (c *ResourceLock) Holder() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holder
}
