package answer

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"app-portal-backend/db"
	answerstore "app-portal-backend/lib/answer/store"
	filestorage "app-portal-backend/lib/file-storage"
	formengine "app-portal-backend/lib/form-engine"
	formstore "app-portal-backend/lib/form/store"
	reviewstore "app-portal-backend/lib/review/store"
	"app-portal-backend/models"
	answerapimodels "app-portal-backend/models/api/answer"
	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	GetFillForm(formID string) (*answerapimodels.FormFillView, error)
	GetFillState(formID string, state answerapimodels.FillState) (*answerapimodels.FillStateView, error)
	SubmitAnswer(formID string, submission answerapimodels.AnswerSubmission) (answerID string, err error)
	AttachFile(ctx context.Context, answerID, questionID string, info dbmodels.UploadFileInfo, fileReader io.Reader) (url string, err error)
	ScoreAnswer(rec dbmodels.Answer) (ok bool, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		formStore:   formstore.NewInstance(db.DB),
		answerStore: answerstore.NewInstance(db.DB),
		reviewStore: reviewstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
	}
}

type impl struct {
	formStore   formstore.Provider
	answerStore answerstore.Provider
	reviewStore reviewstore.Provider
	fileStorage filestorage.Provider
}

func (i impl) GetFillForm(formID string) (*answerapimodels.FormFillView, error) {
	rec, err := i.getPublishedForm(formID)
	if err != nil {
		return nil, err
	}
	result := answerapimodels.ToFormFillView(*rec)
	return &result, nil
}

// Пересчёт видимых и незаполненных вопросов по текущим ответам.
// Чистый расчёт без сохранения, вызывается интерфейсом при каждом изменении
func (i impl) GetFillState(formID string, state answerapimodels.FillState) (*answerapimodels.FillStateView, error) {
	rec, err := i.getPublishedForm(formID)
	if err != nil {
		return nil, err
	}
	answers := dbmodels.QuestionAnswers{Answers: state.Answers}
	visible := formengine.VisibleQuestions(rec.Definition, answers)
	result := answerapimodels.FillStateView{
		VisibleQuestionIDs:    []string{},
		UnansweredQuestionIDs: formengine.UnansweredRequired(rec.Definition, answers),
	}
	for _, question := range rec.Definition.FlattenQuestions() {
		if _, exist := visible[question.QuestionID]; exist {
			result.VisibleQuestionIDs = append(result.VisibleQuestionIDs, question.QuestionID)
		}
	}
	return &result, nil
}

// Отправка ответов соискателем.
// Повторная отправка допускается только после завершения проверки предыдущего
// ответа. Незаполненные вопросы отправку не блокируют, они попадают в
// предупреждение проверяющему.
func (i impl) SubmitAnswer(formID string, submission answerapimodels.AnswerSubmission) (answerID string, err error) {
	form, err := i.getPublishedForm(formID)
	if err != nil {
		return "", err
	}
	for _, answer := range submission.Answers {
		if form.Definition.GetQuestion(answer.QuestionID) == nil {
			return "", errors.Errorf("ответ на неизвестный вопрос %v", answer.QuestionID)
		}
	}

	lastRec, err := i.answerStore.GetLastByUser(formID, submission.UserID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения предыдущего ответа")
	}
	if lastRec != nil {
		review, err := i.reviewStore.GetByAnswerID(lastRec.ID)
		if err != nil {
			return "", errors.Wrap(err, "ошибка получения проверки предыдущего ответа")
		}
		if review == nil || review.Status != models.ReviewStatusComplete {
			return "", formengine.ErrReviewPending
		}
	}

	rec := dbmodels.Answer{
		FormID:  formID,
		UserID:  submission.UserID,
		Answers: dbmodels.QuestionAnswers{Answers: submission.Answers},
	}
	answerID, err = i.answerStore.Save(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения ответа")
	}
	rec.ID = answerID

	// первичный проход автооценки, при сбое ответ доберёт фоновая задача
	if _, err := i.ScoreAnswer(rec); err != nil {
		log.WithError(err).
			WithField("answer_id", answerID).
			Error("ошибка первичной автооценки ответа")
	}
	return answerID, nil
}

// Первичный проход автооценки: создаёт проверку со статусом AUTO и строками
// AUTO по отвеченным автооцениваемым вопросам
func (i impl) ScoreAnswer(rec dbmodels.Answer) (ok bool, err error) {
	existedReview, err := i.reviewStore.GetByAnswerID(rec.ID)
	if err != nil {
		return false, errors.Wrap(err, "ошибка получения проверки")
	}
	if existedReview == nil {
		form, err := i.formStore.GetByID(rec.FormID)
		if err != nil {
			return false, errors.Wrap(err, "ошибка получения формы")
		}
		if form == nil {
			return false, errors.New("форма не найдена")
		}
		reviews, err := formengine.BuildAutoReview(form.Definition, rec.Answers)
		if err != nil {
			return false, errors.Wrap(err, "ошибка автооценки ответа")
		}
		review := dbmodels.Review{
			AnswerID:   rec.ID,
			FormID:     rec.FormID,
			Status:     models.ReviewStatusAuto,
			TotalScore: reviews.GetTotalScore(),
			Questions:  reviews,
		}
		if _, err = i.reviewStore.Save(review); err != nil {
			return false, errors.Wrap(err, "ошибка сохранения проверки")
		}
	}
	if err = i.answerStore.SetIsScored(rec.ID, true); err != nil {
		return false, errors.Wrap(err, "ошибка обновления признака автооценки")
	}
	return existedReview == nil, nil
}

// Загрузка файла по вопросу типа FILE_UPLOAD, ссылка записывается в ответ
func (i impl) AttachFile(ctx context.Context, answerID, questionID string, info dbmodels.UploadFileInfo, fileReader io.Reader) (url string, err error) {
	rec, err := i.answerStore.GetByID(answerID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения ответа")
	}
	if rec == nil {
		return "", errors.New("ответ не найден")
	}
	form, err := i.formStore.GetByID(rec.FormID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения формы")
	}
	if form == nil {
		return "", errors.New("форма не найдена")
	}
	question := form.Definition.GetQuestion(questionID)
	if question == nil {
		return "", errors.New("вопрос не найден в форме")
	}
	if question.QuestionType != models.QuestionTypeFileUpload {
		return "", errors.New("вопрос не предполагает загрузку файла")
	}
	review, err := i.reviewStore.GetByAnswerID(answerID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения проверки")
	}
	if review != nil && review.Status == models.ReviewStatusComplete {
		return "", errors.New("проверка ответа завершена, изменение ответа недоступно")
	}

	info.AnswerID = answerID
	info.QuestionID = questionID
	url, err = i.fileStorage.UploadAnswerFile(ctx, info, fileReader)
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла")
	}
	rec.Answers.Set(dbmodels.QuestionAnswer{
		QuestionID:    questionID,
		FileUploadURL: url,
	})
	if _, err = i.answerStore.Save(*rec); err != nil {
		return "", errors.Wrap(err, "ошибка сохранения ответа")
	}
	return url, nil
}

func (i impl) getPublishedForm(formID string) (*dbmodels.Form, error) {
	rec, err := i.formStore.GetByID(formID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения формы")
	}
	if rec == nil {
		return nil, errors.New("форма не найдена")
	}
	if !rec.IsPublished {
		return nil, errors.New("форма недоступна для заполнения")
	}
	return rec, nil
}
