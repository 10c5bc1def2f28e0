package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type Answer struct {
	BaseModel
	FormID  string          `gorm:"type:varchar(36);index"`
	UserID  string          `gorm:"type:varchar(36);index"`
	Answers QuestionAnswers `gorm:"type:jsonb"`
	// по ответу выполнен первичный проход автооценки и создана проверка
	IsScored bool
}

func (j QuestionAnswers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *QuestionAnswers) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type QuestionAnswers struct {
	Answers []QuestionAnswer `json:"answers"`
}

// Ответ на один вопрос, значимо ровно одно из полей в зависимости от типа вопроса
type QuestionAnswer struct {
	QuestionID        string   `json:"question_id"`
	TextAnswer        string   `json:"text_answer,omitempty"`
	SelectedOptionID  string   `json:"selected_option_id,omitempty"`
	SelectedOptionIDs []string `json:"selected_option_ids,omitempty"`
	FileUploadURL     string   `json:"file_upload_url,omitempty"`
}

// Вопрос считается отвеченным, если заполнено хотя бы одно поле ответа
func (a QuestionAnswer) IsAnswered() bool {
	return a.TextAnswer != "" ||
		a.SelectedOptionID != "" ||
		len(a.SelectedOptionIDs) != 0 ||
		a.FileUploadURL != ""
}

func (j QuestionAnswers) ToMap() map[string]QuestionAnswer {
	result := make(map[string]QuestionAnswer, len(j.Answers))
	for _, answer := range j.Answers {
		result[answer.QuestionID] = answer
	}
	return result
}

func (j QuestionAnswers) Get(questionID string) *QuestionAnswer {
	for k := range j.Answers {
		if j.Answers[k].QuestionID == questionID {
			return &j.Answers[k]
		}
	}
	return nil
}

// Выставляет ответ на вопрос, существующий ответ заменяется
func (j *QuestionAnswers) Set(answer QuestionAnswer) {
	for k := range j.Answers {
		if j.Answers[k].QuestionID == answer.QuestionID {
			j.Answers[k] = answer
			return
		}
	}
	j.Answers = append(j.Answers, answer)
}
