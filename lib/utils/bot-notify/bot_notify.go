package botnotify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrorNotice уведомление об ошибке для бота оповещений
type ErrorNotice struct {
	Source string `json:"source"`
	Code   int    `json:"code,omitempty"`
	Method string `json:"method,omitempty"`
	Path   string `json:"path,omitempty"`
	Error  string `json:"error"`
}

var client = &http.Client{Timeout: 10 * time.Second}

// SendError отправляет уведомление, если адрес бота оповещений задан
func SendError(addr string, notice ErrorNotice, logger *logrus.Entry) {
	if addr == "" {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования уведомления")
		return
	}
	resp, err := client.Post(addr, "application/json", bytes.NewReader(payload))
	if err != nil {
		logger.WithError(err).Warn("error sending error notification")
		return
	}
	resp.Body.Close()
}
