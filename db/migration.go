package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "hh-vacancy-bot/models/db"
)

// AutoMigrateDB создает таблицу вакансий, если ее еще нет. Повторный вызов безопасен
func AutoMigrateDB(tx *gorm.DB) error {
	log.Debug("Запуск миграций")
	if err := tx.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	log.Debug("Миграция прошла успешно")
	return nil
}
