package parserapimodels

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseRequest запрос на запуск парсинга вакансий
type ParseRequest struct {
	City       string      `json:"city"`       // город из справочника
	Profession string      `json:"profession"` // текст поиска
	Salary     SalaryValue `json:"salary"`     // минимальная зарплата
}

func (r ParseRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return errors.New("не указан город")
	}
	if strings.TrimSpace(r.Profession) == "" {
		return errors.New("не указана профессия")
	}
	if _, err := r.Salary.Int(); err != nil {
		return err
	}
	return nil
}

// SalaryValue зарплата, которая в запросе может прийти строкой или числом
type SalaryValue string

func (s *SalaryValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SalaryValue(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return errors.New("зарплата должна быть строкой или числом")
	}
	*s = SalaryValue(num.String())
	return nil
}

func (s SalaryValue) Int() (int64, error) {
	value, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil || value < 0 {
		return 0, errors.Errorf("некорректная зарплата %q", string(s))
	}
	return value, nil
}

func (s SalaryValue) String() string {
	return string(s)
}

// ParseResponse ответ на успешный запуск парсинга
type ParseResponse struct {
	TotalVacancies string `json:"total_vacancies"`
}

func NewParseResponse(total int) ParseResponse {
	return ParseResponse{TotalVacancies: strconv.Itoa(total)}
}
