package initializers

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/config"
	"hh-vacancy-bot/db"
	"hh-vacancy-bot/fiberlog"
	"hh-vacancy-bot/lib/dialogue"
	sessionstore "hh-vacancy-bot/lib/dialogue/session-store"
	xlsexport "hh-vacancy-bot/lib/export/xls"
	hhclient "hh-vacancy-bot/lib/external-services/hh/client"
	parserhandler "hh-vacancy-bot/lib/parser"
	"hh-vacancy-bot/lib/tgbot"
	triggerclient "hh-vacancy-bot/lib/trigger-client"
	vacancyhandler "hh-vacancy-bot/lib/vacancy"
	vacancystore "hh-vacancy-bot/lib/vacancy/store"
)

var LoggerConfig *fiberlog.Config

// InitParserServices сервис парсинга: HH клиент, хранилище вакансий, API выборки
func InitParserServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	if err := config.Conf.CheckParser(); err != nil {
		log.WithError(err).Fatal("не заданы обязательные настройки")
	}
	InitDBConnection()
	store := vacancystore.NewInstance(db.DB)
	hhclient.NewProvider(config.Conf.HH.Host, config.Conf.HH.Token, config.Conf.HH.UserAgent)
	parserhandler.NewHandler(hhclient.Instance, store)
	xlsexport.NewHandler()
	vacancyhandler.NewHandler(store, xlsexport.Instance)
}

// InitBotServices бот: клиент Telegram, сессии диалогов, вызов парсера
func InitBotServices() *tgbotapi.BotAPI {
	LoggerConfig = InitLogger()
	config.InitConfig()
	if err := config.Conf.CheckBot(); err != nil {
		log.WithError(err).Fatal("не заданы обязательные настройки")
	}
	InitDBConnection()
	bot, err := tgbotapi.NewBotAPI(config.Conf.Telegram.Token)
	if err != nil {
		log.WithError(err).Fatal("ошибка подключения к Telegram")
	}
	bot.Debug = *config.Conf.Telegram.Debug
	log.WithField("bot", bot.Self.UserName).Info("бот авторизован в Telegram")

	parserTimeout := time.Duration(config.Conf.Parser.TimeoutMin) * time.Minute
	triggerclient.NewProvider(config.Conf.Parser.Url, parserTimeout)
	machine := dialogue.NewMachine(triggerclient.Instance, vacancystore.NewInstance(db.DB))
	sessions := sessionstore.NewInstance(time.Duration(config.Conf.Telegram.SessionTTL) * time.Minute)
	tgbot.NewHandler(bot, machine, sessions)
	return bot
}
