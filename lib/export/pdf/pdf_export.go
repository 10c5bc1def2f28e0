package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "app-portal-backend/models/db"
)

// Отчёт о проверке одного ответа
func GenerateReviewReport(form dbmodels.Form, answer dbmodels.Answer, review dbmodels.Review) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReviewReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.MultiCell(0, 8, form.Title, "", "L", false)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Соискатель: %v", answer.UserID), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Дата отправки: %v", answer.CreatedAt.Format("02.01.2006 15:04")), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Статус: %v", review.Status.ToHuman()), "", "L", false)
	pdf.Ln(4)

	answersMap := answer.Answers.ToMap()
	for _, question := range form.Definition.FlattenQuestions() {
		questionReview := review.Questions.Get(question.QuestionID)
		answerText := formatAnswer(question, answersMap[question.QuestionID])

		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, question.QuestionText, "", "L", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("Ответ: %v", answerText), "", "L", false)
		if questionReview != nil {
			scoreLine := fmt.Sprintf("Балл: %v из %v", questionReview.UserScore, questionReview.MaxScore)
			if questionReview.ManualReviewResult != "" {
				scoreLine = fmt.Sprintf("%v (%v)", scoreLine, questionReview.ManualReviewResult.ToHuman())
			}
			pdf.MultiCell(0, 6, scoreLine, "", "L", false)
		} else {
			pdf.MultiCell(0, 6, "Балл: ожидает проверки", "", "L", false)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf("Итоговый балл: %v", review.TotalScore), "", "L", false)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAnswer(question dbmodels.FormQuestion, answer dbmodels.QuestionAnswer) string {
	if !answer.IsAnswered() {
		return "нет ответа"
	}
	switch {
	case answer.TextAnswer != "":
		return answer.TextAnswer
	case answer.FileUploadURL != "":
		return answer.FileUploadURL
	}
	selected := map[string]struct{}{}
	if answer.SelectedOptionID != "" {
		selected[answer.SelectedOptionID] = struct{}{}
	}
	for _, id := range answer.SelectedOptionIDs {
		selected[id] = struct{}{}
	}
	result := ""
	for _, option := range question.Options {
		if _, exist := selected[option.OptionID]; exist {
			if result != "" {
				result += "; "
			}
			result += option.Text
		}
	}
	if result == "" {
		return "нет ответа"
	}
	return result
}
