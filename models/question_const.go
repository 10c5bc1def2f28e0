package models

type QuestionType string

const (
	QuestionTypeSingleLine  QuestionType = "SINGLE_LINE"
	QuestionTypeParagraph   QuestionType = "PARAGRAPH"
	QuestionTypeMCQSingle   QuestionType = "MCQ_SINGLE"
	QuestionTypeMCQMultiple QuestionType = "MCQ_MULTIPLE"
	QuestionTypeFileUpload  QuestionType = "FILE_UPLOAD"
)

var questionTypeHumanName = map[QuestionType]string{
	QuestionTypeSingleLine:  "Короткий ответ",
	QuestionTypeParagraph:   "Развёрнутый ответ",
	QuestionTypeMCQSingle:   "Один вариант из списка",
	QuestionTypeMCQMultiple: "Несколько вариантов из списка",
	QuestionTypeFileUpload:  "Загрузка файла",
}

func (t QuestionType) ToHuman() string {
	if human, exist := questionTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t QuestionType) IsValid() bool {
	_, exist := questionTypeHumanName[t]
	return exist
}

// типы с вариантами ответов, оцениваются автоматически
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeMCQSingle || t == QuestionTypeMCQMultiple
}

// типы, требующие ручной проверки
func (t QuestionType) IsManuallyReviewed() bool {
	return t == QuestionTypeSingleLine || t == QuestionTypeParagraph || t == QuestionTypeFileUpload
}

type DependencyType string

const (
	DependencyTypeAnswered       DependencyType = "ANSWERED"
	DependencyTypeOptionSelected DependencyType = "OPTION_SELECTED"
	DependencyTypeFileUploaded   DependencyType = "FILE_UPLOADED"
)

var dependencyTypeHumanName = map[DependencyType]string{
	DependencyTypeAnswered:       "Дан ответ",
	DependencyTypeOptionSelected: "Выбран вариант",
	DependencyTypeFileUploaded:   "Загружен файл",
}

func (t DependencyType) ToHuman() string {
	if human, exist := dependencyTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t DependencyType) IsValid() bool {
	_, exist := dependencyTypeHumanName[t]
	return exist
}
