package review

import (
	"bytes"

	"github.com/pkg/errors"

	"app-portal-backend/db"
	answerstore "app-portal-backend/lib/answer/store"
	pdfexport "app-portal-backend/lib/export/pdf"
	xlsexport "app-portal-backend/lib/export/xls"
	formengine "app-portal-backend/lib/form-engine"
	formstore "app-portal-backend/lib/form/store"
	reviewstore "app-portal-backend/lib/review/store"
	"app-portal-backend/models"
	reviewapimodels "app-portal-backend/models/api/review"
	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	GetReview(answerID string) (*reviewapimodels.ReviewView, error)
	SubmitReview(answerID string, submission reviewapimodels.ReviewSubmission) (*reviewapimodels.ReviewView, error)
	ListPending() ([]reviewapimodels.ReviewView, error)
	ListByForm(formID string) ([]reviewapimodels.ReviewView, error)
	ExportFormReviews(formID string) (*bytes.Buffer, error)
	ExportAnswerReport(answerID string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		formStore:   formstore.NewInstance(db.DB),
		answerStore: answerstore.NewInstance(db.DB),
		reviewStore: reviewstore.NewInstance(db.DB),
	}
}

type impl struct {
	formStore   formstore.Provider
	answerStore answerstore.Provider
	reviewStore reviewstore.Provider
}

func (i impl) GetReview(answerID string) (*reviewapimodels.ReviewView, error) {
	rec, err := i.reviewStore.GetByAnswerID(answerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения проверки")
	}
	if rec == nil {
		return nil, errors.New("проверка не найдена")
	}
	result := reviewapimodels.ToReviewView(*rec)
	return &result, nil
}

// Сохранение вердиктов проверяющего.
// Каждая отправка заменяет ранее выставленные вердикты целиком и
// пересчитывает итоговый балл и статус. Переход COMPLETE -> AUTO запрещён.
func (i impl) SubmitReview(answerID string, submission reviewapimodels.ReviewSubmission) (*reviewapimodels.ReviewView, error) {
	answerRec, err := i.answerStore.GetByID(answerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения ответа")
	}
	if answerRec == nil {
		return nil, &formengine.InvalidStateError{Reason: "проверка ссылается на несуществующий ответ"}
	}
	form, err := i.formStore.GetByID(answerRec.FormID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения формы")
	}
	if form == nil {
		return nil, errors.New("форма не найдена")
	}

	rec, err := i.reviewStore.GetByAnswerID(answerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения проверки")
	}
	if rec == nil {
		// первичный проход автооценки ещё не выполнялся, выполняем сейчас
		reviews, err := formengine.BuildAutoReview(form.Definition, answerRec.Answers)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка автооценки ответа")
		}
		rec = &dbmodels.Review{
			AnswerID:  answerID,
			FormID:    answerRec.FormID,
			Status:    models.ReviewStatusAuto,
			Questions: reviews,
		}
	}

	verdicts := make([]formengine.ManualVerdict, 0, len(submission.Verdicts))
	for _, verdict := range submission.Verdicts {
		verdicts = append(verdicts, formengine.ManualVerdict{
			QuestionID: verdict.QuestionID,
			Result:     verdict.Result,
		})
	}
	reviews, status, totalScore, err := formengine.AggregateReview(form.Definition, answerRec.Answers, rec.Questions, verdicts)
	if err != nil {
		return nil, err
	}
	if !rec.Status.CanTransit(status) {
		return nil, &formengine.InvalidStateError{
			Reason: "недопустимый переход статуса " + string(rec.Status) + " -> " + string(status),
		}
	}
	rec.Status = status
	rec.TotalScore = totalScore
	rec.Questions = reviews
	rec.Notes = submission.Notes
	if _, err = i.reviewStore.Save(*rec); err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения проверки")
	}
	return i.GetReview(answerID)
}

func (i impl) ListPending() ([]reviewapimodels.ReviewView, error) {
	list, err := i.reviewStore.ListPending()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка проверок")
	}
	return toViews(list), nil
}

func (i impl) ListByForm(formID string) ([]reviewapimodels.ReviewView, error) {
	list, err := i.reviewStore.ListByForm(formID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка проверок")
	}
	return toViews(list), nil
}

// Реестр проверок по форме в xlsx
func (i impl) ExportFormReviews(formID string) (*bytes.Buffer, error) {
	form, err := i.formStore.GetByID(formID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения формы")
	}
	if form == nil {
		return nil, errors.New("форма не найдена")
	}
	answers, err := i.answerStore.ListByForm(formID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка ответов")
	}
	reviews, err := i.reviewStore.ListByForm(formID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка проверок")
	}
	return xlsexport.Instance.ExportReviewList(*form, answers, reviews)
}

// Отчёт о проверке одного ответа в pdf
func (i impl) ExportAnswerReport(answerID string) ([]byte, error) {
	answerRec, err := i.answerStore.GetByID(answerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения ответа")
	}
	if answerRec == nil {
		return nil, errors.New("ответ не найден")
	}
	form, err := i.formStore.GetByID(answerRec.FormID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения формы")
	}
	if form == nil {
		return nil, errors.New("форма не найдена")
	}
	rec, err := i.reviewStore.GetByAnswerID(answerID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения проверки")
	}
	if rec == nil {
		return nil, errors.New("проверка не найдена")
	}
	return pdfexport.GenerateReviewReport(*form, *answerRec, *rec)
}

func toViews(list []dbmodels.Review) []reviewapimodels.ReviewView {
	result := make([]reviewapimodels.ReviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, reviewapimodels.ToReviewView(rec))
	}
	return result
}
