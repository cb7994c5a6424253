package config

import (
	"github.com/gotify/configor"
	apperrors "hh-vacancy-bot/lib/utils/app-errors"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"5000"  env:"APP_PORT"`
		BodyLimit  int64  `default:"65536" env:"APP_BODY_LIMIT"`
	}
	Database struct {
		Host           string `default:"" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"" env:"DB_NAME"`
		User           string `default:"" env:"DB_USER"`
		Password       string `default:"" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	HH struct {
		Host      string `default:"https://api.hh.ru" env:"HH_HOST"`
		Token     string `default:"" env:"HH_TOKEN"`
		UserAgent string `default:"HHVacancyBot/1.0" env:"HH_USER_AGENT"`
	}
	Telegram struct {
		Token         string `default:"" env:"TELEGRAM_TOKEN"`
		WebhookURL    string `default:"" env:"TELEGRAM_WEBHOOK_URL"`    // публичный адрес маршрута /webhooks/telegram
		WebhookSecret string `default:"" env:"TELEGRAM_WEBHOOK_SECRET"` // последний сегмент пути вебхука, по умолчанию хэш токена
		Debug         *bool  `default:"false" env:"TELEGRAM_DEBUG"`
		SessionTTL    int    `default:"1440" env:"SESSION_TTL"` // минуты простоя до удаления сессии
	}
	Parser struct {
		Url         string          `default:"http://parser:5000/parse" env:"PARSER_URL"`
		TimeoutMin  int             `default:"30" env:"PARSER_TIMEOUT"`
		RefreshSpec string          `default:"" env:"PARSER_REFRESH_SPEC" yaml:"refresh_spec"`
		Refresh     []RefreshSearch `yaml:"refresh_searches"`
	}
	NotifyBot struct {
		AddrErr string `default:"" env:"NOTIFY_ERR_ADDR"`
	}
}

// RefreshSearch поиск, который периодически перезапускается планировщиком парсера
type RefreshSearch struct {
	City       string `yaml:"city"`
	Profession string `yaml:"profession"`
	Salary     string `yaml:"salary"`
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// CheckParser проверяет настройки, без которых сервис парсинга не запускается
func (c *Configuration) CheckParser() error {
	missing := c.missingDB()
	if c.HH.Token == "" {
		missing = append(missing, "HH_TOKEN")
	}
	return toError(missing)
}

// CheckBot проверяет настройки, без которых бот не запускается
func (c *Configuration) CheckBot() error {
	missing := c.missingDB()
	if c.Telegram.Token == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	return toError(missing)
}

func (c *Configuration) missingDB() []string {
	missing := []string{}
	if c.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.Database.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.Database.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.Database.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	return missing
}

func toError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return &apperrors.ConfigurationError{Missing: missing}
}
