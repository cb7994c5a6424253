package dialogue

import (
	parserapimodels "hh-vacancy-bot/models/api/parser"
	dbmodels "hh-vacancy-bot/models/db"
)

// State шаг диалога с пользователем. Каждое состояние хранит только свои данные
type State interface {
	Name() string
}

// AwaitingCity начальное состояние, ждем выбор города
type AwaitingCity struct{}

// AwaitingProfession город выбран, ждем профессию
type AwaitingProfession struct {
	City string
}

// AwaitingSalary ждем минимальную зарплату
type AwaitingSalary struct {
	City       string
	Profession string
}

// AwaitingConfirmation параметры поиска собраны, ждем подтверждение
type AwaitingConfirmation struct {
	Query parserapimodels.ParseRequest
}

// ShowingResults показ найденных вакансий по одной. Cursor индекс следующей к показу вакансии
type ShowingResults struct {
	Query     parserapimodels.ParseRequest
	Vacancies []dbmodels.Vacancy
	Cursor    int
}

func (AwaitingCity) Name() string         { return "AwaitingCity" }
func (AwaitingProfession) Name() string   { return "AwaitingProfession" }
func (AwaitingSalary) Name() string       { return "AwaitingSalary" }
func (AwaitingConfirmation) Name() string { return "AwaitingConfirmation" }
func (ShowingResults) Name() string       { return "ShowingResults" }

// Initial состояние новой сессии
func Initial() State {
	return AwaitingCity{}
}
