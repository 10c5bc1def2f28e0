package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"app-portal-backend/controllers"
	"app-portal-backend/lib/review"
	apimodels "app-portal-backend/models/api"
	reviewapimodels "app-portal-backend/models/api/review"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app *fiber.App) {
	controller := reviewApiController{}
	app.Route("reviews", func(router fiber.Router) {
		router.Get("pending", controller.listPending)
		router.Get("by-form/:id", controller.listByForm)
		router.Get("by-form/:id/export", controller.exportByForm)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getReview)
			idRoute.Post("", controller.submitReview)
			idRoute.Get("report", controller.exportReport)
		})
	})
}

// @Summary Список проверок, ожидающих ручной оценки
// @Tags Проверки
// @Description Список проверок в статусе AUTO
// @Success 200 {object} apimodels.Response{data=[]reviewapimodels.ReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/pending [get]
func (c *reviewApiController) listPending(ctx *fiber.Ctx) error {
	resp, err := review.Instance.ListPending()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка проверок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список проверок по форме
// @Tags Проверки
// @Description Список проверок по всем ответам на форму
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200 {object} apimodels.Response{data=[]reviewapimodels.ReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/by-form/{id} [get]
func (c *reviewApiController) listByForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := review.Instance.ListByForm(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения списка проверок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка проверок по форме в xlsx
// @Tags Проверки
// @Description Реестр проверок по форме в формате xlsx
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/by-form/{id}/export [get]
func (c *reviewApiController) exportByForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := review.Instance.ExportFormReviews(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка выгрузки проверок")
	}
	fileName := fmt.Sprintf("reviews_%s.xlsx", time.Now().Format("02012006_150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(buffer.Bytes())
}

// @Summary Получение проверки
// @Tags Проверки
// @Description Получение проверки по идентификатору ответа
// @Param   id          		path    string  true         "Идентификатор ответа"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.ReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id} [get]
func (c *reviewApiController) getReview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := review.Instance.GetReview(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("answer_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения проверки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение результатов проверки
// @Tags Проверки
// @Description Сохранение вердиктов по вопросам с ручной оценкой, пересчёт итогового балла и статуса
// @Param   id          		path    string  true         "Идентификатор ответа"
// @Param	body body	 reviewapimodels.ReviewSubmission	true	"request body"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.ReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id} [post]
func (c *reviewApiController) submitReview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload reviewapimodels.ReviewSubmission
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := review.Instance.SubmitReview(id, payload)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("answer_id", id)
		return c.SendError(ctx, logger, err, "Ошибка сохранения проверки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отчёт о проверке ответа в pdf
// @Tags Проверки
// @Description Отчёт по вопросам и баллам одного ответа в формате pdf
// @Param   id          		path    string  true         "Идентификатор ответа"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id}/report [get]
func (c *reviewApiController) exportReport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, err := review.Instance.ExportAnswerReport(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("answer_id", id)
		return c.SendError(ctx, logger, err, "Ошибка формирования отчёта")
	}
	fileName := fmt.Sprintf("review_report_%s.pdf", time.Now().Format("02012006_150405"))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
