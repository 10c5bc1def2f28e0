package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"sort"

	"app-portal-backend/models"
)

type Form struct {
	BaseModel
	Title       string
	Description string
	CreatedBy   string         `gorm:"type:varchar(36);index"`
	Definition  FormDefinition `gorm:"type:jsonb"`
	IsPublished bool // форма опубликована и доступна соискателям для заполнения
}

func (j FormDefinition) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *FormDefinition) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// Структура формы
type FormDefinition struct {
	Sections []FormSection `json:"sections"`
}

type FormSection struct {
	SectionID   string         `json:"section_id"`  // Идентификатор раздела
	Title       string         `json:"title"`       // Название раздела
	Description string         `json:"description"` // Описание раздела
	Order       int            `json:"order"`       // Порядок отображения
	Questions   []FormQuestion `json:"questions"`
}

type FormQuestion struct {
	QuestionID   string               `json:"question_id"`             // Идентификатор вопроса
	QuestionText string               `json:"question_text"`           // Текст вопроса
	QuestionType models.QuestionType  `json:"question_type"`           // Тип вопроса
	Order        int                  `json:"order"`                   // Порядок отображения внутри раздела
	Options      []QuestionOption     `json:"options,omitempty"`       // Варианты ответов, только для MCQ типов
	MaxScore     int                  `json:"max_score"`               // Максимальный балл за вопрос
	FileType     string               `json:"file_type,omitempty"`     // Допустимый тип файла, только для FILE_UPLOAD
	Dependencies []QuestionDependency `json:"dependencies,omitempty"`  // Условия отображения вопроса
}

type QuestionOption struct {
	OptionID  string `json:"option_id"` // Идентификатор варианта
	Text      string `json:"text"`      // Текст варианта
	IsCorrect bool   `json:"is_correct"`
}

// Условие отображения: вопрос показывается, только если все условия выполнены
type QuestionDependency struct {
	DependsOnQuestionID string                `json:"depends_on_question_id"`
	Type                models.DependencyType `json:"type"`
	Value               []string              `json:"value,omitempty"` // для OPTION_SELECTED - допустимые варианты
}

// Вопросы формы в порядке обхода: по порядку разделов, внутри раздела по
// порядку вопросов, при равенстве сохраняется порядок массива
func (j FormDefinition) FlattenQuestions() []FormQuestion {
	sections := make([]FormSection, len(j.Sections))
	copy(sections, j.Sections)
	sort.SliceStable(sections, func(i, k int) bool {
		return sections[i].Order < sections[k].Order
	})
	result := []FormQuestion{}
	for _, section := range sections {
		questions := make([]FormQuestion, len(section.Questions))
		copy(questions, section.Questions)
		sort.SliceStable(questions, func(i, k int) bool {
			return questions[i].Order < questions[k].Order
		})
		result = append(result, questions...)
	}
	return result
}

func (j FormDefinition) GetQuestion(questionID string) *FormQuestion {
	for _, section := range j.Sections {
		for k := range section.Questions {
			if section.Questions[k].QuestionID == questionID {
				return &section.Questions[k]
			}
		}
	}
	return nil
}

// Число верных вариантов, заданных на вопросе
func (q FormQuestion) CorrectOptionsCount() int {
	count := 0
	for _, option := range q.Options {
		if option.IsCorrect {
			count++
		}
	}
	return count
}
