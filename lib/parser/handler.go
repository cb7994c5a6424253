package parserhandler

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	hhclient "hh-vacancy-bot/lib/external-services/hh/client"
	"hh-vacancy-bot/lib/utils/helpers"
	initchecker "hh-vacancy-bot/lib/utils/init-checker"
	"hh-vacancy-bot/lib/utils/lock"
	vacancystore "hh-vacancy-bot/lib/vacancy/store"
	"hh-vacancy-bot/models"
	hhapimodels "hh-vacancy-bot/models/api/hh"
	parserapimodels "hh-vacancy-bot/models/api/parser"
	dbmodels "hh-vacancy-bot/models/db"
)

type Provider interface {
	// Parse загружает вакансии из HH по параметрам поиска и сохраняет их в БД.
	// Возвращает кол-во обработанных (добавленных и обновленных) вакансий
	Parse(ctx context.Context, req parserapimodels.ParseRequest) (total int, err error)
}

var Instance Provider

func NewHandler(client hhclient.Provider, store vacancystore.Provider) {
	instance := newHandler(client, store)
	initchecker.CheckInit(
		"client", instance.client,
		"store", instance.store,
	)
	Instance = instance
}

func newHandler(client hhclient.Provider, store vacancystore.Provider) *impl {
	return &impl{
		client:  client,
		store:   store,
		runLock: lock.NewResourceLock(),
		pause:   politePause,
	}
}

const (
	perPage   = 50
	pauseFrom = time.Second
	pauseTo   = 4 * time.Second
)

type impl struct {
	client  hhclient.Provider
	store   vacancystore.Provider
	runLock *lock.ResourceLock
	pause   func(ctx context.Context) error
}

// politePause пауза между страницами, чтобы не упираться в ограничения HH
func politePause(ctx context.Context) error {
	return helpers.Sleep(ctx, helpers.RandomDuration(pauseFrom, pauseTo))
}

func (i *impl) Parse(ctx context.Context, req parserapimodels.ParseRequest) (total int, err error) {
	runID := uuid.NewString()
	logger := log.
		WithField("run_id", runID).
		WithField("city", req.City).
		WithField("profession", req.Profession).
		WithField("salary", req.Salary.String())
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
			total, err = 0, errors.Errorf("panic: %v", r)
		}
	}()

	if active := i.runLock.Holder(); active != "" {
		logger.WithField("active_run_id", active).Info("ожидание завершения текущего парсинга")
	}
	if !i.runLock.Acquire(ctx, runID) {
		return 0, errors.Wrap(ctx.Err(), "парсинг отменен")
	}
	defer i.runLock.Release(runID)

	logger.Info("парсинг запущен")
	total, err = i.parse(ctx, logger, req)
	if err != nil {
		logger.WithError(err).Error("ошибка во время парсинга")
		return 0, err
	}
	logger.WithField("total", total).Info("парсинг завершен")
	return total, nil
}

func (i *impl) parse(ctx context.Context, logger *log.Entry, req parserapimodels.ParseRequest) (total int, err error) {
	if err = i.store.EnsureSchema(ctx); err != nil {
		return 0, err
	}
	areaID, err := models.AreaID(req.City)
	if err != nil {
		return 0, err
	}

	for page := 0; ; page++ {
		pageLogger := logger.WithField("page", page)
		resp, err := i.client.SearchVacancies(ctx, hhapimodels.SearchRequest{
			Text:           req.Profession,
			Area:           areaID,
			Salary:         req.Salary.String(),
			OnlyWithSalary: true,
			Page:           page,
			PerPage:        perPage,
		})
		if err != nil {
			return 0, errors.Wrapf(err, "ошибка получения страницы %v", page)
		}

		list, err := i.collectPage(ctx, req, resp.Items)
		if err != nil {
			return 0, errors.Wrapf(err, "ошибка обработки страницы %v", page)
		}
		count, err := i.store.UpsertPage(ctx, list)
		if err != nil {
			return 0, errors.Wrapf(err, "ошибка сохранения страницы %v", page)
		}
		total += count
		pageLogger.
			WithField("pages", resp.Pages).
			WithField("processed", count).
			Info("страница обработана")

		if len(resp.Items) == 0 || resp.Pages-page <= 1 {
			return total, nil
		}
		if err = i.pause(ctx); err != nil {
			return 0, errors.Wrap(err, "парсинг прерван")
		}
	}
}

func (i *impl) collectPage(ctx context.Context, req parserapimodels.ParseRequest, items []hhapimodels.VacancyItem) ([]dbmodels.Vacancy, error) {
	list := make([]dbmodels.Vacancy, 0, len(items))
	for _, item := range items {
		detail, err := i.client.GetVacancy(ctx, item.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "ошибка получения вакансии %v", item.ID)
		}
		list = append(list, ConvertVacancy(req.City, req.Profession, item, *detail))
	}
	return list, nil
}
