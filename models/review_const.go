package models

type ReviewType string

const (
	ReviewTypeAuto   ReviewType = "AUTO"
	ReviewTypeManual ReviewType = "MANUAL"
)

type ReviewStatus string

const (
	// начальный статус после отправки ответа, выставлены только автооценки
	ReviewStatusAuto ReviewStatus = "AUTO"
	// по всем вопросам с ручной проверкой выставлен вердикт
	ReviewStatusComplete ReviewStatus = "COMPLETE"
)

var reviewStatusHumanName = map[ReviewStatus]string{
	ReviewStatusAuto:     "Ожидает проверки",
	ReviewStatusComplete: "Проверка завершена",
}

func (s ReviewStatus) ToHuman() string {
	if human, exist := reviewStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// допустимые переходы статуса, обратный переход COMPLETE -> AUTO запрещён
func (s ReviewStatus) CanTransit(to ReviewStatus) bool {
	switch s {
	case ReviewStatusAuto:
		return to == ReviewStatusAuto || to == ReviewStatusComplete
	case ReviewStatusComplete:
		return to == ReviewStatusComplete
	}
	return false
}

type ManualReviewResult string

const (
	ManualReviewCorrect          ManualReviewResult = "CORRECT"
	ManualReviewPartiallyCorrect ManualReviewResult = "PARTIALLY_CORRECT"
	ManualReviewIncorrect        ManualReviewResult = "INCORRECT"
	ManualReviewValid            ManualReviewResult = "VALID"
	ManualReviewInvalid          ManualReviewResult = "INVALID"
)

var manualReviewHumanName = map[ManualReviewResult]string{
	ManualReviewCorrect:          "Верно",
	ManualReviewPartiallyCorrect: "Частично верно",
	ManualReviewIncorrect:        "Неверно",
	ManualReviewValid:            "Файл принят",
	ManualReviewInvalid:          "Файл отклонён",
}

func (r ManualReviewResult) ToHuman() string {
	if human, exist := manualReviewHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r ManualReviewResult) IsValid() bool {
	_, exist := manualReviewHumanName[r]
	return exist
}

// вердикт применим к типу вопроса:
// текстовые вопросы - CORRECT/PARTIALLY_CORRECT/INCORRECT,
// загрузка файла - VALID/INVALID
func (r ManualReviewResult) IsApplicable(t QuestionType) bool {
	switch r {
	case ManualReviewCorrect, ManualReviewPartiallyCorrect, ManualReviewIncorrect:
		return t == QuestionTypeSingleLine || t == QuestionTypeParagraph
	case ManualReviewValid, ManualReviewInvalid:
		return t == QuestionTypeFileUpload
	}
	return false
}
