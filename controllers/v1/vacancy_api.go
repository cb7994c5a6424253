package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hh-vacancy-bot/controllers"
	vacancyhandler "hh-vacancy-bot/lib/vacancy"
	apimodels "hh-vacancy-bot/models/api"
	vacancyapimodels "hh-vacancy-bot/models/api/vacancy"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app fiber.Router) {
	controller := vacancyApiController{}
	app.Route("vacancies", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("export", controller.export)
	})
}

// @Summary Список сохраненных вакансий
// @Tags Вакансии
// @Description Список вакансий по городу, профессии и зарплате (строго больше указанной)
// @Param	city		query	string	true	"город"
// @Param	profession	query	string	true	"профессия"
// @Param	salary		query	string	false	"минимальная зарплата"
// @Param	page		query	int		false	"страница"
// @Param	limit		query	int		false	"записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := vacancyhandler.Instance.List(ctx.UserContext(), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка вакансий в Excel
// @Tags Вакансии
// @Description Выгрузка вакансий по фильтру в xlsx
// @Param	city		query	string	true	"город"
// @Param	profession	query	string	true	"профессия"
// @Param	salary		query	string	false	"минимальная зарплата"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/export [get]
func (c *vacancyApiController) export(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := vacancyhandler.Instance.Export(ctx.UserContext(), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вакансий в Excel")
	}
	fileName := fmt.Sprintf("vacancies-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

func (c *vacancyApiController) getFilter(ctx *fiber.Ctx) (vacancyapimodels.VacancyFilter, error) {
	var filter vacancyapimodels.VacancyFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return filter, err
	}
	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}
