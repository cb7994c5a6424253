package vacancyhandler

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	xlsexport "hh-vacancy-bot/lib/export/xls"
	initchecker "hh-vacancy-bot/lib/utils/init-checker"
	vacancystore "hh-vacancy-bot/lib/vacancy/store"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
)

type Provider interface {
	List(ctx context.Context, filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error)
	Export(ctx context.Context, filter vacancyapimodels.VacancyFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(store vacancystore.Provider, exporter xlsexport.Provider) {
	initchecker.CheckInit(
		"store", store,
		"exporter", exporter,
	)
	Instance = impl{
		store:    store,
		exporter: exporter,
	}
}

type impl struct {
	store    vacancystore.Provider
	exporter xlsexport.Provider
}

func (i impl) List(ctx context.Context, filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	list = []vacancyapimodels.VacancyView{}
	if rowCount == 0 {
		return list, 0, nil
	}
	recs, err := i.store.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for _, rec := range recs {
		list = append(list, vacancyapimodels.VacancyConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Export(ctx context.Context, filter vacancyapimodels.VacancyFilter) (*bytes.Buffer, error) {
	recs, err := i.store.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	buf, err := i.exporter.ExportVacancyList(recs)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка выгрузки вакансий в xlsx")
	}
	return buf, nil
}
