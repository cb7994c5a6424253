package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/config"
	webhooksapi "hh-vacancy-bot/controllers/v1/webhooks"
	"hh-vacancy-bot/fiberlog"
	"hh-vacancy-bot/initializers"
	"hh-vacancy-bot/lib/tgbot"
	"hh-vacancy-bot/middleware"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot := initializers.InitBotServices()

	if config.Conf.Telegram.WebhookURL == "" {
		runPolling(ctx, bot)
	} else {
		runWebhook(ctx, bot)
	}
	log.Info("бот остановлен")
}

// runPolling получение сообщений через long polling
func runPolling(ctx context.Context, bot *tgbotapi.BotAPI) {
	// вебхук мешает getUpdates
	if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		log.WithError(err).Warn("ошибка удаления вебхука")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()
	log.Info("бот запущен в режиме long polling")
	tgbot.Instance.Listen(ctx, updates)
}

// runWebhook получение сообщений через вебхук на fiber
func runWebhook(ctx context.Context, bot *tgbotapi.BotAPI) {
	secret := webhooksapi.WebhookSecret(config.Conf.Telegram.Token, config.Conf.Telegram.WebhookSecret)
	wh, err := tgbotapi.NewWebhook(strings.TrimSuffix(config.Conf.Telegram.WebhookURL, "/") + "/" + secret)
	if err != nil {
		log.WithError(err).Fatal("некорректный адрес вебхука")
	}
	if _, err = bot.Request(wh); err != nil {
		log.WithError(err).Fatal("ошибка установки вебхука")
	}

	app := fiber.New()
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimit))
	app.Use(middleware.ErrNotify(config.Conf.NotifyBot.AddrErr, "tgbot"))
	app.Use(fiberlog.New(*initializers.LoggerConfig))
	webhooksapi.InitTelegramWebhookApiRouters(ctx, app, bot, secret)

	go func() {
		<-ctx.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
	}()
	log.Info("бот запущен в режиме вебхука")
	if err = app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}
	tgbot.Instance.Wait()
}
