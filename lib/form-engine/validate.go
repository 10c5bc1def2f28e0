package formengine

import (
	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

// Проверка структуры формы перед сохранением.
// Зависимости могут ссылаться только на вопросы строго раньше по порядку
// обхода, что исключает циклы по построению.
func ValidateForm(def dbmodels.FormDefinition) error {
	questions := def.FlattenQuestions()
	if len(questions) == 0 {
		return newValidationError("", "в форме отсутствуют вопросы")
	}
	// позиции вопросов в порядке обхода
	position := make(map[string]int, len(questions))
	for k, question := range questions {
		if question.QuestionID == "" {
			return newValidationError("", "отсутствует идентификатор вопроса")
		}
		if _, exist := position[question.QuestionID]; exist {
			return newValidationError(question.QuestionID, "идентификатор вопроса не уникален")
		}
		position[question.QuestionID] = k
	}
	for k, question := range questions {
		if question.QuestionText == "" {
			return newValidationError(question.QuestionID, "отсутствует текст вопроса")
		}
		if !question.QuestionType.IsValid() {
			return newValidationError(question.QuestionID, "неизвестный тип вопроса")
		}
		if question.MaxScore < 0 {
			return newValidationError(question.QuestionID, "максимальный балл не может быть отрицательным")
		}
		if question.QuestionType.IsChoice() {
			if len(question.Options) == 0 {
				return newValidationError(question.QuestionID, "для вопроса с выбором не заданы варианты ответов")
			}
			optionIDs := make(map[string]struct{}, len(question.Options))
			for _, option := range question.Options {
				if option.OptionID == "" {
					return newValidationError(question.QuestionID, "отсутствует идентификатор варианта ответа")
				}
				if _, exist := optionIDs[option.OptionID]; exist {
					return newValidationError(question.QuestionID, "идентификатор варианта ответа не уникален")
				}
				optionIDs[option.OptionID] = struct{}{}
			}
		} else if len(question.Options) != 0 {
			return newValidationError(question.QuestionID, "варианты ответов допустимы только для вопросов с выбором")
		}
		for _, dep := range question.Dependencies {
			if err := validateDependency(question, dep, k, position); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateDependency(question dbmodels.FormQuestion, dep dbmodels.QuestionDependency, questionPos int, position map[string]int) error {
	if dep.DependsOnQuestionID == "" {
		return newDependencyError(question.QuestionID, "", "отсутствует идентификатор вопроса-условия")
	}
	if !dep.Type.IsValid() {
		return newDependencyError(question.QuestionID, dep.DependsOnQuestionID, "неизвестный тип зависимости")
	}
	depPos, exist := position[dep.DependsOnQuestionID]
	if !exist {
		return newDependencyError(question.QuestionID, dep.DependsOnQuestionID, "вопрос-условие не найден в форме")
	}
	if depPos >= questionPos {
		return newDependencyError(question.QuestionID, dep.DependsOnQuestionID, "зависимость допустима только от вопроса, расположенного раньше")
	}
	if dep.Type == models.DependencyTypeOptionSelected && len(dep.Value) == 0 {
		return newDependencyError(question.QuestionID, dep.DependsOnQuestionID, "для условия по выбранному варианту не заданы допустимые варианты")
	}
	return nil
}
