package parserhandler

import (
	"strconv"
	"strings"

	hhapimodels "hh-vacancy-bot/models/api/hh"
	dbmodels "hh-vacancy-bot/models/db"
)

// заглушки для полей, которых нет в ответе HH
const (
	SalaryNotSpecified     = "зп не указана"
	ScheduleNotSpecified   = "график не указан"
	ExperienceNotSpecified = "опыт не указан"
	CompanyNotSpecified    = "компания не указана"
	SkillsNotSpecified     = "Навыки не указаны"
	DescriptionMissing     = "описание отсутствует"
	NameNotSpecified       = "Должность не указана"
	UrlMissing             = "нет ссылки"
)

// ConvertVacancy собирает запись для БД из краткого описания вакансии и ее детальной карточки
func ConvertVacancy(city, profession string, item hhapimodels.VacancyItem, detail hhapimodels.VacancyDetail) dbmodels.Vacancy {
	return dbmodels.Vacancy{
		City:        city,
		Profession:  profession,
		Company:     getCompany(item),
		Description: getDescription(detail),
		Name:        valueOr(item.Name, NameNotSpecified),
		Skills:      getSkills(detail),
		Experience:  dictName(item.Experience, ExperienceNotSpecified),
		Schedule:    dictName(item.Schedule, ScheduleNotSpecified),
		Salary:      getSalary(item),
		Url:         valueOr(item.AlternateUrl, UrlMissing),
	}
}

func getSalary(item hhapimodels.VacancyItem) string {
	if item.Salary == nil || item.Salary.From == nil {
		return SalaryNotSpecified
	}
	return strconv.Itoa(*item.Salary.From)
}

func getCompany(item hhapimodels.VacancyItem) string {
	if item.Employer == nil {
		return CompanyNotSpecified
	}
	return valueOr(item.Employer.Name, CompanyNotSpecified)
}

func dictName(item *hhapimodels.DictItem, sentinel string) string {
	if item == nil {
		return sentinel
	}
	return valueOr(item.Name, sentinel)
}

func getSkills(detail hhapimodels.VacancyDetail) string {
	if detail.KeySkills == nil {
		return SkillsNotSpecified
	}
	names := make([]string, 0, len(*detail.KeySkills))
	for _, skill := range *detail.KeySkills {
		names = append(names, skill.Name)
	}
	return strings.Join(names, ", ")
}

func getDescription(detail hhapimodels.VacancyDetail) string {
	return cleanDescription(valueOr(detail.Description, DescriptionMissing))
}

func valueOr(value *string, sentinel string) string {
	if value == nil || *value == "" {
		return sentinel
	}
	return *value
}
