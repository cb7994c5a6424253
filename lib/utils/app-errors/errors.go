package apperrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConfigurationError не заданы обязательные переменные окружения
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("не заданы обязательные переменные окружения: %v", strings.Join(e.Missing, ", "))
}

// UnknownCityError город отсутствует в справочнике поддерживаемых городов
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("город %q не поддерживается", e.City)
}

// UnknownProfessionError профессия отсутствует в списке профессий бота
type UnknownProfessionError struct {
	Profession string
}

func (e *UnknownProfessionError) Error() string {
	return fmt.Sprintf("профессия %q не поддерживается", e.Profession)
}

// UpstreamAPIError ответ HH с кодом не 2xx либо ответ, который не удалось разобрать
type UpstreamAPIError struct {
	Uri        string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ошибка запроса в HH %v: %v", e.Uri, e.Err)
	}
	return fmt.Sprintf("HH вернул статус %v на запрос %v: %v", e.StatusCode, e.Uri, e.Body)
}

func (e *UpstreamAPIError) Unwrap() error { return e.Err }

// DatabaseError ошибка подключения или запроса к БД
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewDatabaseError(err error, op string) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}

// TriggerCallError вызов сервиса парсинга из бота завершился неуспешно
type TriggerCallError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TriggerCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ошибка вызова парсера: %v", e.Err)
	}
	return fmt.Sprintf("парсер вернул статус %v: %v", e.StatusCode, e.Message)
}

func (e *TriggerCallError) Unwrap() error { return e.Err }

// Kind возвращает имя вида ошибки для ответа клиенту
func Kind(err error) string {
	var (
		confErr       *ConfigurationError
		cityErr       *UnknownCityError
		professionErr *UnknownProfessionError
		upstreamErr   *UpstreamAPIError
		dbErr         *DatabaseError
		triggerErr    *TriggerCallError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &confErr):
		return "ConfigurationError"
	case errors.As(err, &cityErr):
		return "UnknownCityError"
	case errors.As(err, &professionErr):
		return "UnknownProfessionError"
	case errors.As(err, &upstreamErr):
		return "UpstreamAPIError"
	case errors.As(err, &dbErr):
		return "DatabaseError"
	case errors.As(err, &triggerErr):
		return "TriggerCallError"
	}
	return "InternalError"
}
