package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/models"
	parserapimodels "hh-vacancy-bot/models/api/parser"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
	dbmodels "hh-vacancy-bot/models/db"
)

// Trigger запуск парсинга вакансий
type Trigger interface {
	Parse(ctx context.Context, req parserapimodels.ParseRequest) (*parserapimodels.ParseResponse, error)
}

// Finder выборка сохраненных вакансий
type Finder interface {
	Find(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error)
}

// Responder отправка сообщений пользователю в рамках одного шага
type Responder interface {
	Send(reply Reply)
}

// Machine переходы диалога. Любой ввод вне ожидаемого набора возвращает диалог к выбору города
type Machine struct {
	trigger Trigger
	finder  Finder
}

func NewMachine(trigger Trigger, finder Finder) *Machine {
	return &Machine{
		trigger: trigger,
		finder:  finder,
	}
}

// Step обрабатывает ввод пользователя и возвращает новое состояние
func (m *Machine) Step(ctx context.Context, state State, input string, out Responder) State {
	input = strings.TrimSpace(input)
	if IsStart(input) {
		return m.Restart(out)
	}
	switch s := state.(type) {
	case AwaitingCity:
		return m.onCity(input, out)
	case AwaitingProfession:
		return m.onProfession(s, input, out)
	case AwaitingSalary:
		return m.onSalary(s, input, out)
	case AwaitingConfirmation:
		return m.onConfirmation(ctx, s, input, out)
	case ShowingResults:
		return m.onNavigation(s, input, out)
	default:
		return m.Restart(out)
	}
}

// Restart приветствие и выбор города
func (m *Machine) Restart(out Responder) State {
	out.Send(greetingReply())
	return AwaitingCity{}
}

func IsStart(input string) bool {
	return input == StartCommand || strings.HasPrefix(input, StartCommand+" ")
}

func (m *Machine) onCity(input string, out Responder) State {
	if _, err := models.AreaID(input); err != nil {
		return m.Restart(out)
	}
	out.Send(professionReply())
	return AwaitingProfession{City: input}
}

func (m *Machine) onProfession(s AwaitingProfession, input string, out Responder) State {
	if err := models.CheckProfession(input); err != nil {
		return m.Restart(out)
	}
	out.Send(salaryReply())
	return AwaitingSalary{City: s.City, Profession: input}
}

func (m *Machine) onSalary(s AwaitingSalary, input string, out Responder) State {
	salary, ok := normalizeSalary(input)
	if !ok {
		return m.Restart(out)
	}
	query := parserapimodels.ParseRequest{
		City:       s.City,
		Profession: s.Profession,
		Salary:     parserapimodels.SalaryValue(salary),
	}
	out.Send(confirmReply(query))
	return AwaitingConfirmation{Query: query}
}

func normalizeSalary(input string) (string, bool) {
	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil || value < 0 {
		return "", false
	}
	return strconv.FormatInt(value, 10), true
}

func (m *Machine) onConfirmation(ctx context.Context, s AwaitingConfirmation, input string, out Responder) State {
	if input != AnswerYes {
		return m.Restart(out)
	}
	logger := log.
		WithField("city", s.Query.City).
		WithField("profession", s.Query.Profession).
		WithField("salary", s.Query.Salary.String())

	out.Send(waitReply())
	resp, err := m.trigger.Parse(ctx, s.Query)
	if err != nil {
		logger.WithError(err).Warn("ошибка запуска парсинга")
		out.Send(textReply(parseFailedText))
		return m.Restart(out)
	}
	out.Send(textReply(fmt.Sprintf(parseDoneText, resp.TotalVacancies)))

	list, err := m.finder.Find(ctx, vacancyapimodels.VacancyFilter{
		City:       s.Query.City,
		Profession: s.Query.Profession,
		Salary:     s.Query.Salary,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансий")
		out.Send(textReply(loadFailedText))
		return m.Restart(out)
	}
	return m.showNext(ShowingResults{Query: s.Query, Vacancies: list}, out)
}

func (m *Machine) onNavigation(s ShowingResults, input string, out Responder) State {
	if input != ButtonNext {
		return m.Restart(out)
	}
	return m.showNext(s, out)
}

func (m *Machine) showNext(s ShowingResults, out Responder) State {
	if s.Cursor >= len(s.Vacancies) {
		out.Send(textReply(noMoreText))
		return m.Restart(out)
	}
	out.Send(vacancyReply(s.Vacancies[s.Cursor]))
	s.Cursor++
	return s
}
