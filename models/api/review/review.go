package reviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

// Вердикты проверяющего, каждая отправка заменяет ранее выставленные вердикты
type ReviewSubmission struct {
	Verdicts []QuestionVerdict `json:"verdicts"`
	Notes    string            `json:"notes,omitempty"` // Комментарий проверяющего
}

type QuestionVerdict struct {
	QuestionID string                    `json:"question_id"`
	Result     models.ManualReviewResult `json:"result"`
}

func (s ReviewSubmission) Validate() error {
	for _, verdict := range s.Verdicts {
		if verdict.QuestionID == "" {
			return errors.New("в одном из вердиктов отсутствует идентификатор вопроса")
		}
		if !verdict.Result.IsValid() {
			return errors.Errorf("неизвестный вердикт %v", verdict.Result)
		}
	}
	return nil
}

type ReviewView struct {
	ID                    string                    `json:"id"`
	AnswerID              string                    `json:"answer_id"`
	FormID                string                    `json:"form_id"`
	Status                models.ReviewStatus       `json:"status"`
	StatusName            string                    `json:"status_name"`
	TotalScore            float64                   `json:"total_score"`
	Notes                 string                    `json:"notes,omitempty"`
	Questions             []dbmodels.QuestionReview `json:"questions"`
	UnansweredQuestionIDs []string                  `json:"unanswered_question_ids,omitempty"`
	UpdatedAt             time.Time                 `json:"updated_at"`
}

func ToReviewView(rec dbmodels.Review) ReviewView {
	return ReviewView{
		ID:                    rec.ID,
		AnswerID:              rec.AnswerID,
		FormID:                rec.FormID,
		Status:                rec.Status,
		StatusName:            rec.Status.ToHuman(),
		TotalScore:            rec.TotalScore,
		Notes:                 rec.Notes,
		Questions:             rec.Questions.Reviews,
		UnansweredQuestionIDs: rec.Questions.UnansweredQuestionIDs,
		UpdatedAt:             rec.UpdatedAt,
	}
}
