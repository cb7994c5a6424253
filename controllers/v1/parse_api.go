package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hh-vacancy-bot/controllers"
	parserhandler "hh-vacancy-bot/lib/parser"
	apimodels "hh-vacancy-bot/models/api"
	parserapimodels "hh-vacancy-bot/models/api/parser"
)

type parseApiController struct {
	controllers.BaseAPIController
}

func InitParseApiRouters(app fiber.Router) {
	controller := parseApiController{}
	app.Post("parse", controller.parse)
}

// @Summary Запуск парсинга
// @Tags Парсер
// @Description Загружает вакансии HH по городу, профессии и минимальной зарплате и сохраняет в БД
// @Param	body body	 parserapimodels.ParseRequest	true	"request body"
// @Success 200 {object} parserapimodels.ParseResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /parse [post]
func (c *parseApiController) parse(ctx *fiber.Ctx) error {
	var payload parserapimodels.ParseRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	total, err := parserhandler.Instance.Parse(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Возникла ошибка во время парсинга")
	}
	return ctx.JSON(parserapimodels.NewParseResponse(total))
}
