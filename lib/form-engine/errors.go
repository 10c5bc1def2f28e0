package formengine

import (
	"fmt"

	"github.com/pkg/errors"

	"app-portal-backend/models"
)

// Ошибка структуры формы, возвращается при сохранении формы с некорректным
// описанием (битая ссылка зависимости, зависимость вперёд и т.п.)
type ValidationError struct {
	QuestionID          string
	DependsOnQuestionID string
	Reason              string
}

func (e *ValidationError) Error() string {
	if e.DependsOnQuestionID != "" {
		return fmt.Sprintf("некорректная форма: вопрос %v, зависимость от %v: %v", e.QuestionID, e.DependsOnQuestionID, e.Reason)
	}
	return fmt.Sprintf("некорректная форма: вопрос %v: %v", e.QuestionID, e.Reason)
}

func newValidationError(questionID, reason string) error {
	return &ValidationError{QuestionID: questionID, Reason: reason}
}

func newDependencyError(questionID, dependsOnID, reason string) error {
	return &ValidationError{QuestionID: questionID, DependsOnQuestionID: dependsOnID, Reason: reason}
}

// Неизвестный тип вопроса при оценке, сигнализирует о расхождении схемы,
// никогда не маскируется нулевой оценкой
type UnsupportedTypeError struct {
	QuestionID   string
	QuestionType models.QuestionType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("неподдерживаемый тип вопроса %v (вопрос %v)", e.QuestionType, e.QuestionID)
}

// Вердикт ссылается на вопрос без ответа либо неприменим к типу вопроса
type InvalidStateError struct {
	QuestionID string
	Reason     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("некорректная проверка: вопрос %v: %v", e.QuestionID, e.Reason)
}

// Повторная отправка ответа при незавершённой проверке предыдущего
var ErrReviewPending = errors.New("предыдущий ответ ещё находится на проверке")
