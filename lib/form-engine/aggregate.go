package formengine

import (
	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

// Вердикт проверяющего по одному вопросу
type ManualVerdict struct {
	QuestionID string
	Result     models.ManualReviewResult
}

// Первичный проход автооценки при отправке ответа.
// По каждому отвеченному автооцениваемому вопросу создаётся строка AUTO,
// вопросы с ручной проверкой строк не получают до вердикта проверяющего.
func BuildAutoReview(def dbmodels.FormDefinition, answers dbmodels.QuestionAnswers) (dbmodels.QuestionReviews, error) {
	result := dbmodels.QuestionReviews{
		Reviews:               []dbmodels.QuestionReview{},
		UnansweredQuestionIDs: UnansweredRequired(def, answers),
	}
	answersMap := answers.ToMap()
	for _, question := range def.FlattenQuestions() {
		answer, exist := answersMap[question.QuestionID]
		if !exist || !answer.IsAnswered() {
			continue
		}
		score, err := AutoScore(question, answer)
		if err != nil {
			return dbmodels.QuestionReviews{}, err
		}
		if score == nil {
			continue
		}
		result.Reviews = append(result.Reviews, dbmodels.QuestionReview{
			QuestionID: question.QuestionID,
			ReviewType: models.ReviewTypeAuto,
			UserScore:  *score,
			MaxScore:   question.MaxScore,
		})
	}
	return result, nil
}

// Слияние вердиктов проверяющего с автооценками.
// Каждый вызов заменяет ранее выставленные ручные вердикты целиком, строки
// AUTO не пересчитываются. Статус становится COMPLETE, когда вердикт есть по
// каждому отвеченному вопросу с ручной проверкой; MCQ вопросы завершение не
// блокируют.
func AggregateReview(
	def dbmodels.FormDefinition,
	answers dbmodels.QuestionAnswers,
	existing dbmodels.QuestionReviews,
	verdicts []ManualVerdict,
) (result dbmodels.QuestionReviews, status models.ReviewStatus, totalScore float64, err error) {
	result = dbmodels.QuestionReviews{
		Reviews:               []dbmodels.QuestionReview{},
		UnansweredQuestionIDs: existing.UnansweredQuestionIDs,
	}
	for _, review := range existing.Reviews {
		if review.ReviewType == models.ReviewTypeAuto {
			result.Reviews = append(result.Reviews, review)
		}
	}

	answersMap := answers.ToMap()
	reviewed := map[string]struct{}{}
	for _, verdict := range verdicts {
		question := def.GetQuestion(verdict.QuestionID)
		if question == nil {
			return dbmodels.QuestionReviews{}, "", 0, &InvalidStateError{QuestionID: verdict.QuestionID, Reason: "вопрос не найден в форме"}
		}
		if !question.QuestionType.IsManuallyReviewed() {
			return dbmodels.QuestionReviews{}, "", 0, &InvalidStateError{QuestionID: verdict.QuestionID, Reason: "тип вопроса не предполагает ручную проверку"}
		}
		answer, exist := answersMap[verdict.QuestionID]
		if !exist || !answer.IsAnswered() {
			return dbmodels.QuestionReviews{}, "", 0, &InvalidStateError{QuestionID: verdict.QuestionID, Reason: "вердикт по вопросу без ответа"}
		}
		if _, exist := reviewed[verdict.QuestionID]; exist {
			return dbmodels.QuestionReviews{}, "", 0, &InvalidStateError{QuestionID: verdict.QuestionID, Reason: "повторный вердикт по вопросу"}
		}
		score, sErr := ManualScore(*question, verdict.Result)
		if sErr != nil {
			return dbmodels.QuestionReviews{}, "", 0, sErr
		}
		reviewed[verdict.QuestionID] = struct{}{}
		result.Reviews = append(result.Reviews, dbmodels.QuestionReview{
			QuestionID:         verdict.QuestionID,
			ReviewType:         models.ReviewTypeManual,
			UserScore:          score,
			MaxScore:           question.MaxScore,
			ManualReviewResult: verdict.Result,
		})
	}

	status = models.ReviewStatusComplete
	for _, question := range def.FlattenQuestions() {
		if !question.QuestionType.IsManuallyReviewed() {
			continue
		}
		answer, exist := answersMap[question.QuestionID]
		if !exist || !answer.IsAnswered() {
			continue
		}
		if _, exist := reviewed[question.QuestionID]; !exist {
			status = models.ReviewStatusAuto
			break
		}
	}
	return result, status, result.GetTotalScore(), nil
}
