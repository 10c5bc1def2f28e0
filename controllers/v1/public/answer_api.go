package publicapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"app-portal-backend/controllers"
	"app-portal-backend/lib/answer"
	filestorage "app-portal-backend/lib/file-storage"
	apimodels "app-portal-backend/models/api"
	answerapimodels "app-portal-backend/models/api/answer"
	dbmodels "app-portal-backend/models/db"
)

type publicAnswerApiController struct {
	controllers.BaseAPIController
}

func InitPublicAnswerApiRouters(app *fiber.App) {
	controller := publicAnswerApiController{}
	app.Route("forms/:id", func(router fiber.Router) {
		router.Get("", controller.getFillForm)
		router.Post("state", controller.getFillState)
		router.Post("answers", controller.submitAnswer)
	})
	app.Route("answers/:id/files/:questionID", func(router fiber.Router) {
		router.Post("", controller.attachFile)
	})
	app.Route("files/:id", func(router fiber.Router) {
		router.Get("", controller.getFile)
	})
}

// @Summary Получение формы для заполнения
// @Tags Заполнение формы
// @Description Опубликованная форма без данных о правильных ответах
// @Param   id          		path    string  true         "Идентификатор формы"
// @Success 200 {object} apimodels.Response{data=answerapimodels.FormFillView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/forms/{id} [get]
func (c *publicAnswerApiController) getFillForm(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := answer.Instance.GetFillForm(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Пересчёт состояния заполнения
// @Tags Заполнение формы
// @Description Список видимых и незаполненных вопросов по текущим ответам, без сохранения
// @Param   id          		path    string  true         "Идентификатор формы"
// @Param	body body	 answerapimodels.FillState	true	"request body"
// @Success 200 {object} apimodels.Response{data=answerapimodels.FillStateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/forms/{id}/state [post]
func (c *publicAnswerApiController) getFillState(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload answerapimodels.FillState
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := answer.Instance.GetFillState(id, payload)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("form_id", id)
		return c.SendError(ctx, logger, err, "Ошибка расчёта состояния заполнения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправка ответов
// @Tags Заполнение формы
// @Description Сохранение ответов соискателя, повторная отправка доступна после завершения проверки предыдущего ответа
// @Param   id          		path    string  true         "Идентификатор формы"
// @Param	body body	 answerapimodels.AnswerSubmission	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/forms/{id}/answers [post]
func (c *publicAnswerApiController) submitAnswer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload answerapimodels.AnswerSubmission
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	answerID, err := answer.Instance.SubmitAnswer(id, payload)
	if err != nil {
		logger := c.GetLogger(ctx).
			WithField("form_id", id).
			WithField("user_id", payload.UserID)
		return c.SendError(ctx, logger, err, "Ошибка сохранения ответа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(answerID))
}

// @Summary Загрузка файла к ответу
// @Tags Заполнение формы
// @Description Загрузка файла по вопросу типа FILE_UPLOAD, в ответ записывается ссылка на файл
// @Accept multipart/form-data
// @Param   id          		path    string  true         "Идентификатор ответа"
// @Param   questionID  		path    string  true         "Идентификатор вопроса"
// @Param   file				formData file	true		 "файл"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/answers/{id}/files/{questionID} [post]
func (c *publicAnswerApiController) attachFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID := ctx.Params("questionID")
	if questionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор вопроса"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл из запроса"))
	}
	defer file.Close()

	info := dbmodels.UploadFileInfo{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
	}
	url, err := answer.Instance.AttachFile(ctx.Context(), id, questionID, info, file)
	if err != nil {
		logger := c.GetLogger(ctx).
			WithField("answer_id", id).
			WithField("question_id", questionID)
		return c.SendError(ctx, logger, err, "Ошибка загрузки файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(url))
}

// @Summary Скачивание файла
// @Tags Заполнение формы
// @Description Скачивание загруженного к ответу файла
// @Param   id          		path    string  true         "Идентификатор файла"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/files/{id} [get]
func (c *publicAnswerApiController) getFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, rec, err := filestorage.Instance.GetFile(ctx.Context(), id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("file_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения файла")
	}
	contentType := rec.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rec.Name))
	return ctx.Status(fiber.StatusOK).Send(body)
}
