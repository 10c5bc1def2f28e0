package formengine

import (
	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

// Видимые вопросы формы при текущем наборе ответов.
// Вопрос без зависимостей виден всегда, вопрос с зависимостями виден, только
// если выполнены все его условия (конъюнкция). Функция чистая, без состояния,
// вызывается заново при каждом изменении ответов.
func VisibleQuestions(def dbmodels.FormDefinition, answers dbmodels.QuestionAnswers) map[string]struct{} {
	answersMap := answers.ToMap()
	result := map[string]struct{}{}
	for _, question := range def.FlattenQuestions() {
		if dependenciesSatisfied(question, answersMap) {
			result[question.QuestionID] = struct{}{}
		}
	}
	return result
}

// Видимые вопросы без ответа в порядке обхода формы.
// Вопрос с невыполненными условиями пропускается целиком: он не обязателен и
// не попадает в предупреждение. Мягкая проверка, отправку ответа не блокирует.
func UnansweredRequired(def dbmodels.FormDefinition, answers dbmodels.QuestionAnswers) []string {
	answersMap := answers.ToMap()
	result := []string{}
	for _, question := range def.FlattenQuestions() {
		if !dependenciesSatisfied(question, answersMap) {
			continue
		}
		answer, exist := answersMap[question.QuestionID]
		if !exist || !answer.IsAnswered() {
			result = append(result, question.QuestionID)
		}
	}
	return result
}

func dependenciesSatisfied(question dbmodels.FormQuestion, answersMap map[string]dbmodels.QuestionAnswer) bool {
	for _, dep := range question.Dependencies {
		if !dependencySatisfied(dep, answersMap) {
			return false
		}
	}
	return true
}

// Условие проверяется только по ответу на вопрос-условие, видимость самого
// вопроса-условия не учитывается (поведение исходной системы, см. DESIGN.md)
func dependencySatisfied(dep dbmodels.QuestionDependency, answersMap map[string]dbmodels.QuestionAnswer) bool {
	answer, exist := answersMap[dep.DependsOnQuestionID]
	if !exist {
		return false
	}
	switch dep.Type {
	case models.DependencyTypeAnswered:
		return answer.IsAnswered()
	case models.DependencyTypeFileUploaded:
		return answer.FileUploadURL != ""
	case models.DependencyTypeOptionSelected:
		for _, selected := range selectedOptionIDs(answer) {
			for _, allowed := range dep.Value {
				if selected == allowed {
					return true
				}
			}
		}
		return false
	}
	return false
}

func selectedOptionIDs(answer dbmodels.QuestionAnswer) []string {
	if answer.SelectedOptionID != "" {
		return append([]string{answer.SelectedOptionID}, answer.SelectedOptionIDs...)
	}
	return answer.SelectedOptionIDs
}
