package formengine

import (
	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

// Автооценка ответа на вопрос.
// nil означает, что тип вопроса не оценивается автоматически и требует
// ручной проверки. Неизвестный тип - ошибка, а не нулевая оценка.
func AutoScore(question dbmodels.FormQuestion, answer dbmodels.QuestionAnswer) (*float64, error) {
	switch question.QuestionType {
	case models.QuestionTypeMCQSingle:
		return scoreSingleChoice(question, answer), nil
	case models.QuestionTypeMCQMultiple:
		return scoreMultipleChoice(question, answer), nil
	case models.QuestionTypeSingleLine, models.QuestionTypeParagraph, models.QuestionTypeFileUpload:
		return nil, nil
	}
	return nil, &UnsupportedTypeError{QuestionID: question.QuestionID, QuestionType: question.QuestionType}
}

// Полный балл за верный вариант, ноль за неверный, отсутствующий
// или неизвестный вариант
func scoreSingleChoice(question dbmodels.FormQuestion, answer dbmodels.QuestionAnswer) *float64 {
	score := float64(0)
	for _, option := range question.Options {
		if option.OptionID == answer.SelectedOptionID && option.IsCorrect {
			score = float64(question.MaxScore)
			break
		}
	}
	return &score
}

// Пропорционально числу выбранных верных вариантов, выбор неверного варианта
// балл не снижает. Если верных вариантов на вопросе нет - ноль.
func scoreMultipleChoice(question dbmodels.FormQuestion, answer dbmodels.QuestionAnswer) *float64 {
	score := float64(0)
	totalCorrect := question.CorrectOptionsCount()
	if totalCorrect == 0 {
		return &score
	}
	selected := map[string]struct{}{}
	for _, id := range selectedOptionIDs(answer) {
		selected[id] = struct{}{}
	}
	correctSelected := 0
	for _, option := range question.Options {
		if !option.IsCorrect {
			continue
		}
		if _, exist := selected[option.OptionID]; exist {
			correctSelected++
		}
	}
	score = float64(question.MaxScore) * float64(correctSelected) / float64(totalCorrect)
	return &score
}

// Балл по вердикту проверяющего по фиксированной шкале:
// CORRECT/VALID - полный балл, PARTIALLY_CORRECT - половина, INCORRECT/INVALID - ноль
func ManualScore(question dbmodels.FormQuestion, result models.ManualReviewResult) (float64, error) {
	if !result.IsValid() {
		return 0, &InvalidStateError{QuestionID: question.QuestionID, Reason: "неизвестный вердикт " + string(result)}
	}
	if !result.IsApplicable(question.QuestionType) {
		return 0, &InvalidStateError{QuestionID: question.QuestionID, Reason: "вердикт " + string(result) + " неприменим к типу вопроса " + string(question.QuestionType)}
	}
	switch result {
	case models.ManualReviewCorrect, models.ManualReviewValid:
		return float64(question.MaxScore), nil
	case models.ManualReviewPartiallyCorrect:
		return float64(question.MaxScore) * 0.5, nil
	}
	return 0, nil
}
