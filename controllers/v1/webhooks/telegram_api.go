package webhooksapi

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/lib/tgbot"
)

// UpdateParser разбор входящего вебхука Telegram
type UpdateParser interface {
	HandleUpdate(r *http.Request) (*tgbotapi.Update, error)
}

// WebhookSecret секретный сегмент пути вебхука: из настроек, иначе sha256 токена бота
func WebhookSecret(token, secret string) string {
	if secret != "" {
		return secret
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// InitTelegramWebhookApiRouters ctx ограничивает обработку обновлений временем жизни процесса
func InitTelegramWebhookApiRouters(ctx context.Context, app fiber.Router, parser UpdateParser, secret string) {
	app.Route("webhooks", func(router fiber.Router) {
		router.Post("telegram/:secret", checkSecret(secret), adaptor.HTTPHandlerFunc(handleTelegramUpdate(ctx, parser)))
	})
}

func checkSecret(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if subtle.ConstantTimeCompare([]byte(c.Params("secret")), []byte(secret)) != 1 {
			log.WithField("ip", c.IP()).Warn("вебхук Telegram с неверным секретом")
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}

// @Summary Telegram WebHookApi
// @Tags Webhooks. Telegram
// @Description Входящие сообщения бота
// @Param secret path string true "секрет вебхука"
// @Success 200
// @Failure 400
// @Failure 404
// @router /webhooks/telegram/{secret} [post]
func handleTelegramUpdate(ctx context.Context, parser UpdateParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		update, err := parser.HandleUpdate(r)
		if err != nil {
			log.WithError(err).Warn("некорректный вебхук Telegram")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		log.
			WithField("update_id", update.UpdateID).
			Debug("Получен вебхук Telegram")
		// только постановка в очередь чата, Telegram получает ответ сразу
		tgbot.Instance.HandleUpdate(ctx, *update)
		w.WriteHeader(http.StatusOK)
	}
}
