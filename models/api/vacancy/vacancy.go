package vacancyapimodels

import (
	"strings"

	"github.com/pkg/errors"
	apimodels "hh-vacancy-bot/models/api"
	parserapimodels "hh-vacancy-bot/models/api/parser"
	dbmodels "hh-vacancy-bot/models/db"
)

// VacancyFilter фильтр выборки сохраненных вакансий
type VacancyFilter struct {
	apimodels.Pagination
	City       string                      `json:"city" query:"city"`             // город из параметров поиска
	Profession string                      `json:"profession" query:"profession"` // профессия из параметров поиска
	Salary     parserapimodels.SalaryValue `json:"salary" query:"salary"`         // зарплата строго больше указанной
}

func (f VacancyFilter) Validate() error {
	if strings.TrimSpace(f.City) == "" {
		return errors.New("не указан город")
	}
	if strings.TrimSpace(f.Profession) == "" {
		return errors.New("не указана профессия")
	}
	if f.Salary == "" {
		return nil
	}
	_, err := f.Salary.Int()
	return err
}

func (f VacancyFilter) MinSalary() int64 {
	value, err := f.Salary.Int()
	if err != nil {
		return 0
	}
	return value
}

type VacancyView struct {
	ID          int64  `json:"id"`
	City        string `json:"city"`
	Profession  string `json:"profession"`
	Company     string `json:"company"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
	Schedule    string `json:"schedule"`
	Salary      string `json:"salary"`
	Url         string `json:"url"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		ID:          rec.ID,
		City:        rec.City,
		Profession:  rec.Profession,
		Company:     rec.Company,
		Name:        rec.Name,
		Description: rec.Description,
		Skills:      rec.Skills,
		Experience:  rec.Experience,
		Schedule:    rec.Schedule,
		Salary:      rec.Salary,
		Url:         rec.Url,
	}
}
