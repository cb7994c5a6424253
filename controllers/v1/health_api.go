package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hh-vacancy-bot/controllers"
	apimodels "hh-vacancy-bot/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
	ping func() error
}

// InitHealthApiRouters ping проверяет доступность БД
func InitHealthApiRouters(app fiber.Router, ping func() error) {
	controller := healthApiController{ping: ping}
	app.Get("health", controller.health)
}

// @Summary Проверка доступности сервиса
// @Tags Служебные
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := c.ping(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("БД недоступна")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("БД недоступна"))
	}
	return ctx.JSON(apimodels.NewResponse("ok"))
}
