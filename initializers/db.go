package initializers

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/config"
	"hh-vacancy-bot/db"
)

// InitDBConnection подключение к БД; ошибка подключения фатальна для обоих процессов
func InitDBConnection() {
	dbConf := config.Conf.Database
	err := db.Connect(dbConf.Host, dbConf.Port, dbConf.Name, dbConf.User, dbConf.Password,
		*dbConf.DebugMode, *dbConf.MigrateOnStart)
	if err != nil {
		log.WithError(errors.Wrapf(err, "%v:%v/%v", dbConf.Host, dbConf.Port, dbConf.Name)).
			Fatal("ошибка подключения к БД")
	}
}
