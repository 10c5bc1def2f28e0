package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	ExportReviewList(form dbmodels.Form, answers []dbmodels.Answer, reviews []dbmodels.Review) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var reviewHeaders = []string{"Соискатель", "Дата отправки", "Статус проверки", "Итоговый балл", "Максимальный балл", "Вопросы без ответа"}

// Реестр проверок по форме
func (i impl) ExportReviewList(form dbmodels.Form, answers []dbmodels.Answer, reviews []dbmodels.Review) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, reviewHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(reviews) != 0 {
		reviewsByAnswer := make(map[string]dbmodels.Review, len(reviews))
		for _, rec := range reviews {
			reviewsByAnswer[rec.AnswerID] = rec
		}
		row, err = writeReviewData(f, sheet, form, answers, reviewsByAnswer, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Проверки")
	return f.WriteToBuffer()
}

func writeReviewData(f *excelize.File, sheet string, form dbmodels.Form, answers []dbmodels.Answer, reviewsByAnswer map[string]dbmodels.Review, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(reviewHeaders), len(answers)+1); err != nil {
		return row, err
	}
	maxScore := 0
	for _, question := range form.Definition.FlattenQuestions() {
		maxScore += question.MaxScore
	}
	for _, answer := range answers {
		review, exist := reviewsByAnswer[answer.ID]
		if !exist {
			continue
		}
		row++
		// "Соискатель"
		col := 1
		if err := writeColumn(f, sheet, col, row, answer.UserID); err != nil {
			return row, err
		}

		// "Дата отправки"
		col++
		if err := writeColumn(f, sheet, col, row, answer.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Статус проверки"
		col++
		if err := writeColumn(f, sheet, col, row, review.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Итоговый балл"
		col++
		if err := writeColumn(f, sheet, col, row, review.TotalScore); err != nil {
			return row, err
		}

		// "Максимальный балл"
		col++
		if err := writeColumn(f, sheet, col, row, maxScore); err != nil {
			return row, err
		}

		// "Вопросы без ответа"
		col++
		if err := writeColumn(f, sheet, col, row, len(review.Questions.UnansweredQuestionIDs)); err != nil {
			return row, err
		}
	}
	return row, nil
}
