package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// теги, доступные для логирования запроса
const (
	TagPid       = "pid"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagMethod    = "method"
	TagPath      = "path"
	TagRoute     = "route"
	TagIP        = "ip"
	TagUserAgent = "user_agent"
	TagBytesIn   = "bytes_in"
	TagBytesOut  = "bytes_out"
	TagQuery     = "query"
	TagBody      = "body"
)

// FuncTag вычисляет значение тега для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

var funcTags = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagRoute: func(c *fiber.Ctx, d *data) interface{} {
		if r := c.Route(); r != nil {
			return r.Path
		}
		return ""
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagUserAgent: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagBytesIn: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Request().Body())
	},
	TagBytesOut: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Response().Body())
	},
	TagQuery: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Request().URI().QueryString())
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
}

// getFuncTagMap оставляет функции только для тегов из настроек, неизвестные теги пропускаются
func getFuncTagMap(cfg Config) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
