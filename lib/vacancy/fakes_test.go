package vacancyhandler

import (
	"bytes"
	"context"

	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
	dbmodels "hh-vacancy-bot/models/db"
)

type fakeStore struct {
	list       []dbmodels.Vacancy
	count      int64
	filter     vacancyapimodels.VacancyFilter
	listCalled bool
}

func (s *fakeStore) EnsureSchema(ctx context.Context) error { return nil }

func (s *fakeStore) UpsertPage(ctx context.Context, list []dbmodels.Vacancy) (int, error) {
	return len(list), nil
}

func (s *fakeStore) Find(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	s.filter = filter
	return s.list, nil
}

func (s *fakeStore) ListCount(ctx context.Context, filter vacancyapimodels.VacancyFilter) (int64, error) {
	s.filter = filter
	return s.count, nil
}

func (s *fakeStore) List(ctx context.Context, filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	s.listCalled = true
	s.filter = filter
	return s.list, nil
}

type fakeExporter struct{}

func (e *fakeExporter) ExportVacancyList(list []dbmodels.Vacancy) (*bytes.Buffer, error) {
	return &bytes.Buffer{}, nil
}
