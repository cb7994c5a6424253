package triggerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	apimodels "hh-vacancy-bot/models/api"
	parserapimodels "hh-vacancy-bot/models/api/parser"
)

type Provider interface {
	// Parse синхронно запускает парсинг и ждет его завершения
	Parse(ctx context.Context, req parserapimodels.ParseRequest) (*parserapimodels.ParseResponse, error)
}

var Instance Provider

func NewProvider(url string, timeout time.Duration) {
	Instance = NewClient(url, timeout)
}

func NewClient(url string, timeout time.Duration) Provider {
	return &impl{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type impl struct {
	url    string
	client *http.Client
}

func (i impl) Parse(ctx context.Context, req parserapimodels.ParseRequest) (*parserapimodels.ParseResponse, error) {
	logger := log.
		WithField("external_request", i.url).
		WithField("city", req.City).
		WithField("profession", req.Profession)
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &apperrors.TriggerCallError{Err: err}
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, i.url, bytes.NewReader(body))
	if err != nil {
		return nil, &apperrors.TriggerCallError{Err: err}
	}
	r.Header.Add("Content-Type", "application/json")

	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в парсер")
		return nil, &apperrors.TriggerCallError{Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &apperrors.TriggerCallError{StatusCode: response.StatusCode, Err: err}
	}
	if response.StatusCode != http.StatusOK {
		failure := apimodels.Response{}
		message := string(responseBody)
		if json.Unmarshal(responseBody, &failure) == nil && failure.Message != "" {
			message = failure.Message
		}
		logger.
			WithField("status_code", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Warn("парсер вернул ошибку")
		return nil, &apperrors.TriggerCallError{StatusCode: response.StatusCode, Message: message}
	}
	result := parserapimodels.ParseResponse{}
	if err = json.Unmarshal(responseBody, &result); err != nil {
		return nil, &apperrors.TriggerCallError{StatusCode: response.StatusCode, Err: err}
	}
	return &result, nil
}
