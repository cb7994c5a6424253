package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

type BaseImpl struct {
	WorkerName string
}

func NewInstance(WorkerName string) *BaseImpl {
	return &BaseImpl{
		WorkerName: WorkerName,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	logger := log.
		WithField("worker_name", i.WorkerName)
	return logger
}

// RunJob выполняет задачу один раз. Паника задачи логируется и не роняет процесс
func (i BaseImpl) RunJob(ctx context.Context, jobFunc func(ctx context.Context)) {
	logger := i.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	if ctx.Err() != nil {
		logger.Info("Задача остановлена")
		return
	}
	start := time.Now()
	logger.Info("Задача запущена")
	jobFunc(ctx)
	logger.
		WithField("duration", time.Since(start).String()).
		Info("Задача выполнена")
}
