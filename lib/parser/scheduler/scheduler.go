package scheduler

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/config"
	parserhandler "hh-vacancy-bot/lib/parser"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
	baseworker "hh-vacancy-bot/lib/utils/base-worker"
	botnotify "hh-vacancy-bot/lib/utils/bot-notify"
	parserapimodels "hh-vacancy-bot/models/api/parser"
)

const workerName = "parser-refresh"

// Scheduler периодически перезапускает парсинг для поисков из настроек
type Scheduler struct {
	cron       *cron.Cron
	parser     parserhandler.Provider
	searches   []parserapimodels.ParseRequest
	notifyAddr string
	worker     *baseworker.BaseImpl
}

func New(parser parserhandler.Provider, searches []config.RefreshSearch, notifyAddr string) *Scheduler {
	requests := make([]parserapimodels.ParseRequest, 0, len(searches))
	for _, item := range searches {
		requests = append(requests, parserapimodels.ParseRequest{
			City:       item.City,
			Profession: item.Profession,
			Salary:     parserapimodels.SalaryValue(item.Salary),
		})
	}
	// запуск, пришедший во время предыдущего обновления, пропускается
	cronLogger := cron.PrintfLogger(log.WithField("worker", workerName))
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.SkipIfStillRunning(cronLogger))),
		parser:     parser,
		searches:   requests,
		notifyAddr: notifyAddr,
		worker:     baseworker.NewInstance(workerName),
	}
}

// Start регистрирует задачу по расписанию spec. Пустое расписание или пустой список поисков отключают обновление
func (s *Scheduler) Start(ctx context.Context, spec string) (bool, error) {
	logger := s.worker.GetLogger()
	if spec == "" || len(s.searches) == 0 {
		logger.Info("обновление по расписанию отключено")
		return false, nil
	}
	for _, req := range s.searches {
		if err := req.Validate(); err != nil {
			return false, errors.Wrapf(err, "некорректный поиск для обновления: %v/%v", req.City, req.Profession)
		}
	}
	_, err := s.cron.AddFunc(spec, func() {
		s.worker.RunJob(ctx, s.RefreshAll)
	})
	if err != nil {
		return false, errors.Wrapf(err, "некорректное расписание %q", spec)
	}
	s.cron.Start()
	logger.WithField("spec", spec).Info("обновление по расписанию запущено")
	return true, nil
}

// Stop останавливает планировщик и ждет завершения запущенной задачи
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RefreshAll последовательно запускает парсинг для всех поисков. Ошибка одного поиска не прерывает остальные
func (s *Scheduler) RefreshAll(ctx context.Context) {
	for _, req := range s.searches {
		if ctx.Err() != nil {
			return
		}
		logger := s.worker.GetLogger().
			WithField("city", req.City).
			WithField("profession", req.Profession)
		total, err := s.parser.Parse(ctx, req)
		if err != nil {
			logger.WithError(err).Error("ошибка обновления вакансий")
			botnotify.SendError(s.notifyAddr, botnotify.ErrorNotice{
				Source: workerName,
				Error:  apperrors.Kind(err) + ": " + err.Error(),
			}, logger)
			continue
		}
		logger.WithField("total", total).Info("вакансии обновлены")
	}
}
