package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "hh-vacancy-bot/models/db"
)

type Provider interface {
	ExportVacancyList(list []dbmodels.Vacancy) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	defaultSheet = "Sheet1"
	VacancySheet = "Вакансии"
)

var vacancyColumns = []column{
	{title: "Компания", width: 30},
	{title: "Вакансия", width: 30},
	{title: "Город", width: 18},
	{title: "Профессия", width: 25},
	{title: "Опыт", width: 20},
	{title: "График", width: 20},
	{title: "Зарплата", width: 15},
	{title: "Навыки", width: 40},
	{title: "Описание", width: 60},
	{title: "Ссылка", width: 35},
}

func (i impl) ExportVacancyList(list []dbmodels.Vacancy) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := writeHeader(f, defaultSheet, vacancyColumns); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err := writeVacancyData(f, defaultSheet, list); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err := f.SetSheetName(defaultSheet, VacancySheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeVacancyData(f *excelize.File, sheet string, list []dbmodels.Vacancy) error {
	if err := applyDataStyle(f, sheet, len(vacancyColumns), 2, len(list)+1); err != nil {
		return err
	}
	for idx, item := range list {
		err := writeRow(f, sheet, idx+2, []interface{}{
			item.Company,
			item.Name,
			item.City,
			item.Profession,
			item.Experience,
			item.Schedule,
			item.Salary,
			item.Skills,
			item.Description,
			item.Url,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
