package dialogue

import (
	"fmt"
	"strings"

	"hh-vacancy-bot/models"
	parserapimodels "hh-vacancy-bot/models/api/parser"
	dbmodels "hh-vacancy-bot/models/db"
)

const (
	AnswerYes         = "Да"
	AnswerNo          = "Нет"
	ButtonNext        = "Следующая вакансия"
	ButtonSearchAgain = "Искать другую вакансию"
	StartCommand      = "/start"

	greetingText      = "Здравствуйте, выберите город, в котором вы ищете вакансии"
	professionText    = "Выберите профессию"
	salaryText        = "Введите минимальную желаемую зарплату. Например 30000"
	waitText          = "Пожалуйста, дождитесь конца парсинга"
	parseDoneText     = "Парсинг завершен. Вакансий: %v"
	parseFailedText   = "Произошла ошибка при парсинге. Попробуйте снова."
	loadFailedText    = "Не удалось получить вакансии. Попробуйте снова."
	noMoreText        = "Больше вакансий нет."
	confirmTextFormat = "Город: %v\nПрофессия: %v\nЗарплата: %v руб.\nВсё верно?"
)

// Keyboard клавиатура ответа. Remove убирает ранее показанную клавиатуру
type Keyboard struct {
	Buttons []string
	Columns int
	Remove  bool
}

// Reply сообщение пользователю
type Reply struct {
	Text     string
	Keyboard *Keyboard
}

// Rows раскладывает кнопки по строкам из Columns кнопок
func (k Keyboard) Rows() [][]string {
	columns := k.Columns
	if columns <= 0 {
		columns = 1
	}
	rows := [][]string{}
	for start := 0; start < len(k.Buttons); start += columns {
		end := start + columns
		if end > len(k.Buttons) {
			end = len(k.Buttons)
		}
		rows = append(rows, k.Buttons[start:end])
	}
	return rows
}

func greetingReply() Reply {
	return Reply{
		Text:     greetingText,
		Keyboard: &Keyboard{Buttons: models.CityNames(), Columns: 2},
	}
}

func professionReply() Reply {
	return Reply{
		Text:     professionText,
		Keyboard: &Keyboard{Buttons: models.Professions, Columns: 4},
	}
}

func salaryReply() Reply {
	return Reply{
		Text:     salaryText,
		Keyboard: &Keyboard{Remove: true},
	}
}

func confirmReply(query parserapimodels.ParseRequest) Reply {
	return Reply{
		Text:     fmt.Sprintf(confirmTextFormat, query.City, query.Profession, query.Salary),
		Keyboard: &Keyboard{Buttons: []string{AnswerYes, AnswerNo}, Columns: 2},
	}
}

func waitReply() Reply {
	return Reply{
		Text:     waitText,
		Keyboard: &Keyboard{Remove: true},
	}
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

func vacancyReply(rec dbmodels.Vacancy) Reply {
	return Reply{
		Text:     RenderVacancy(rec),
		Keyboard: &Keyboard{Buttons: []string{ButtonNext, ButtonSearchAgain}, Columns: 2},
	}
}

// RenderVacancy карточка вакансии для пользователя
func RenderVacancy(rec dbmodels.Vacancy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Компания: %v\n", rec.Company)
	fmt.Fprintf(&b, "Вакансия: %v\n", rec.Name)
	fmt.Fprintf(&b, "Город: %v\n", rec.City)
	fmt.Fprintf(&b, "Опыт: %v\n", rec.Experience)
	fmt.Fprintf(&b, "Навыки: %v\n", rec.Skills)
	fmt.Fprintf(&b, "Зарплата: %v\n", rec.Salary)
	fmt.Fprintf(&b, "Описание: %v\n\n", rec.Description)
	fmt.Fprintf(&b, "Ссылка: %v", rec.Url)
	return b.String()
}
