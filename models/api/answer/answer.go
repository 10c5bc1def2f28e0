package answerapimodels

import (
	"github.com/pkg/errors"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

// Ответы соискателя на форму
type AnswerSubmission struct {
	UserID  string                    `json:"user_id"` // Идентификатор соискателя
	Answers []dbmodels.QuestionAnswer `json:"answers"`
}

func (s AnswerSubmission) Validate() error {
	if s.UserID == "" {
		return errors.New("не указан идентификатор соискателя")
	}
	for _, answer := range s.Answers {
		if answer.QuestionID == "" {
			return errors.New("в одном из ответов отсутствует идентификатор вопроса")
		}
	}
	return nil
}

// Текущее состояние заполнения, пересчитывается при каждом изменении ответов
type FillState struct {
	Answers []dbmodels.QuestionAnswer `json:"answers"`
}

type FillStateView struct {
	VisibleQuestionIDs    []string `json:"visible_question_ids"`    // видимые вопросы с учётом зависимостей
	UnansweredQuestionIDs []string `json:"unanswered_question_ids"` // видимые вопросы без ответа, мягкое предупреждение
}

// Форма для заполнения, без признаков верности вариантов
type FormFillView struct {
	FormID      string            `json:"form_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Sections    []FillSectionView `json:"sections"`
}

type FillSectionView struct {
	SectionID   string             `json:"section_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Order       int                `json:"order"`
	Questions   []FillQuestionView `json:"questions"`
}

type FillQuestionView struct {
	QuestionID   string                        `json:"question_id"`
	QuestionText string                        `json:"question_text"`
	QuestionType models.QuestionType           `json:"question_type"`
	Order        int                           `json:"order"`
	Options      []FillOptionView              `json:"options,omitempty"`
	FileType     string                        `json:"file_type,omitempty"`
	Dependencies []dbmodels.QuestionDependency `json:"dependencies,omitempty"`
}

type FillOptionView struct {
	OptionID string `json:"option_id"`
	Text     string `json:"text"`
}

// Представление формы для соискателя, признак верности вариантов не раскрывается
func ToFormFillView(rec dbmodels.Form) FormFillView {
	result := FormFillView{
		FormID:      rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Sections:    make([]FillSectionView, 0, len(rec.Definition.Sections)),
	}
	for _, section := range rec.Definition.Sections {
		sectionView := FillSectionView{
			SectionID:   section.SectionID,
			Title:       section.Title,
			Description: section.Description,
			Order:       section.Order,
			Questions:   make([]FillQuestionView, 0, len(section.Questions)),
		}
		for _, question := range section.Questions {
			questionView := FillQuestionView{
				QuestionID:   question.QuestionID,
				QuestionText: question.QuestionText,
				QuestionType: question.QuestionType,
				Order:        question.Order,
				FileType:     question.FileType,
				Dependencies: question.Dependencies,
			}
			for _, option := range question.Options {
				questionView.Options = append(questionView.Options, FillOptionView{
					OptionID: option.OptionID,
					Text:     option.Text,
				})
			}
			sectionView.Questions = append(sectionView.Questions, questionView)
		}
		result.Sections = append(result.Sections, sectionView)
	}
	return result
}

type AnswerView struct {
	ID      string                    `json:"id"`
	FormID  string                    `json:"form_id"`
	UserID  string                    `json:"user_id"`
	Answers []dbmodels.QuestionAnswer `json:"answers"`
}

func ToAnswerView(rec dbmodels.Answer) AnswerView {
	return AnswerView{
		ID:      rec.ID,
		FormID:  rec.FormID,
		UserID:  rec.UserID,
		Answers: rec.Answers.Answers,
	}
}
