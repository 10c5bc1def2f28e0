package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"app-portal-backend/models"
)

type Review struct {
	BaseModel
	AnswerID   string              `gorm:"type:varchar(36);uniqueIndex"`
	FormID     string              `gorm:"type:varchar(36);index"`
	Status     models.ReviewStatus `gorm:"type:varchar(20)"`
	TotalScore float64
	Notes      string
	Questions  QuestionReviews `gorm:"type:jsonb"`
}

func (j QuestionReviews) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *QuestionReviews) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type QuestionReviews struct {
	Reviews []QuestionReview `json:"reviews"`
	// вопросы без ответа в порядке обхода формы, мягкое предупреждение проверяющему
	UnansweredQuestionIDs []string `json:"unanswered_question_ids,omitempty"`
}

// Оценка по одному отвеченному вопросу
type QuestionReview struct {
	QuestionID string            `json:"question_id"`
	ReviewType models.ReviewType `json:"review_type"` // AUTO - выставлена системой, MANUAL - проверяющим
	UserScore  float64           `json:"user_score"`
	MaxScore   int               `json:"max_score"`
	// вердикт проверяющего, только для вопросов с ручной проверкой
	ManualReviewResult models.ManualReviewResult `json:"manual_review_result,omitempty"`
}

func (j QuestionReviews) Get(questionID string) *QuestionReview {
	for k := range j.Reviews {
		if j.Reviews[k].QuestionID == questionID {
			return &j.Reviews[k]
		}
	}
	return nil
}

func (j QuestionReviews) GetTotalScore() float64 {
	total := float64(0)
	for _, review := range j.Reviews {
		total += review.UserScore
	}
	return total
}
