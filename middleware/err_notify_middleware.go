package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	botnotify "hh-vacancy-bot/lib/utils/bot-notify"
)

// ErrNotify отправляет в бот оповещений ответы сервиса со статусом 5xx
func ErrNotify(addr, source string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if addr == "" || statusCode < http.StatusInternalServerError {
			return err
		}

		body := string(c.Response().Body())
		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		msg := data.Message
		if msg == "" {
			msg = body
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		notice := botnotify.ErrorNotice{
			Source: source,
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  msg,
		}
		go botnotify.SendError(addr, notice, log.WithField("path", path))
		return err
	}
}
