package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	skip := cfg.skipSet()
	return func(c *fiber.Ctx) error {
		// данные свои для каждого запроса, обработчики выполняются параллельно
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		if _, ok := skip[c.Path()]; ok && err == nil && c.Response().StatusCode() < fiber.StatusBadRequest {
			return nil
		}

		entity := log.NewEntry(log.StandardLogger())
		if cfg.Logger != nil {
			entity = log.NewEntry(cfg.Logger)
		}
		entity = entity.WithFields(getLogrusFields(ftm, c, d))
		message := getMessage(c)
		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			entity.Warn(message)
		} else {
			entity.Info(message)
		}
		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	return "запрос api " + c.Method() + " " + c.Path()
}
