package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"app-portal-backend/controllers"
	"app-portal-backend/lib/form"
	apimodels "app-portal-backend/models/api"
	formapimodels "app-portal-backend/models/api/form"
)

type formApiController struct {
	controllers.BaseAPIController
}

func InitFormApiRouters(app *fiber.App) {
	controller := formApiController{}
	app.Route("forms", func(router fiber.Router) {
		router.Get("", controller.listForms)
		router.Post("", controller.createForm)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getForm)
			idRoute.Put("", controller.updateForm)
			idRoute.Delete("", controller.deleteForm)
			idRoute.Post("publish", controller.publishForm)
			idRoute.Post("unpublish", controller.unpublishForm)
		})
	})
}

// @Summary Список форм
// @Tags Формы
// @Description Список форм
// @Success 200 {object} apimodels.Response{data=[]formapimodels.FormView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms [get]
func (c *formApiController) listForms(ctx *fiber.Ctx) error {
	resp, err := form.Instance.ListForms()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка форм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание формы
// @Tags Формы
// @Description Создание формы, структура проверяется при сохранении
// @Param	body body	 formapimodels.FormData	true	"request body"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms [post]
func (c *formApiController) createForm(ctx *fiber.Ctx) error {
	var payload formapimodels.FormData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := form.Instance.SaveForm("", payload, getUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение формы
// @Tags Формы
// @Description Получение формы
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [get]
func (c *formApiController) getForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := form.Instance.GetForm(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение формы
// @Tags Формы
// @Description Изменение формы, структура проверяется при сохранении
// @Param   id          		path    string  true         "Идентификатор формы"
// @Param	body body	 formapimodels.FormData	true	"request body"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [put]
func (c *formApiController) updateForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload formapimodels.FormData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := form.Instance.SaveForm(id, payload, getUserID(ctx))
	if err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка сохранения формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление формы
// @Tags Формы
// @Description Удаление формы
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [delete]
func (c *formApiController) deleteForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := form.Instance.DeleteForm(id); err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка удаления формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Публикация формы
// @Tags Формы
// @Description Публикация формы, после публикации форма доступна соискателям
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/publish [post]
func (c *formApiController) publishForm(ctx *fiber.Ctx) error {
	return c.setPublished(ctx, true)
}

// @Summary Снятие формы с публикации
// @Tags Формы
// @Description Снятие формы с публикации
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/unpublish [post]
func (c *formApiController) unpublishForm(ctx *fiber.Ctx) error {
	return c.setPublished(ctx, false)
}

func (c *formApiController) setPublished(ctx *fiber.Ctx, isPublished bool) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := form.Instance.SetPublished(id, isPublished); err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка публикации формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func getUserID(ctx *fiber.Ctx) string {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
