package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки логирования запросов
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths пути, запросы к которым не логируются (проверки живости)
	SkipPaths []string
}

// ConfigDefault настройки по умолчанию
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
	},
	SkipPaths: []string{"/health"},
}

func (c Config) skipSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.SkipPaths))
	for _, p := range c.SkipPaths {
		set[p] = struct{}{}
	}
	return set
}
