package formengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

func reviewDefinition() dbmodels.FormDefinition {
	return dbmodels.FormDefinition{
		Sections: []dbmodels.FormSection{
			{
				SectionID: "s1",
				Order:     1,
				Questions: []dbmodels.FormQuestion{
					{
						QuestionID:   "mcq",
						QuestionText: "Выберите верный ответ",
						QuestionType: models.QuestionTypeMCQSingle,
						Order:        1,
						MaxScore:     10,
						Options: []dbmodels.QuestionOption{
							{OptionID: "a", Text: "A", IsCorrect: true},
							{OptionID: "b", Text: "B"},
						},
					},
					{
						QuestionID:   "essay",
						QuestionText: "Расскажите о себе",
						QuestionType: models.QuestionTypeParagraph,
						Order:        2,
						MaxScore:     20,
					},
				},
			},
		},
	}
}

func TestBuildAutoReview(t *testing.T) {
	def := reviewDefinition()
	answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
		{QuestionID: "mcq", SelectedOptionID: "a"},
		{QuestionID: "essay", TextAnswer: "десять лет опыта"},
	}}

	t.Run("строки AUTO создаются только по автооцениваемым вопросам", func(t *testing.T) {
		reviews, err := BuildAutoReview(def, answers)
		require.Nil(t, err)
		require.Len(t, reviews.Reviews, 1)
		require.Equal(t, "mcq", reviews.Reviews[0].QuestionID)
		require.Equal(t, models.ReviewTypeAuto, reviews.Reviews[0].ReviewType)
		require.Equal(t, float64(10), reviews.Reviews[0].UserScore)
		require.Empty(t, reviews.UnansweredQuestionIDs)
	})

	t.Run("вопросы без ответа попадают в предупреждение", func(t *testing.T) {
		partial := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "mcq", SelectedOptionID: "b"},
		}}
		reviews, err := BuildAutoReview(def, partial)
		require.Nil(t, err)
		require.Len(t, reviews.Reviews, 1)
		require.Equal(t, float64(0), reviews.Reviews[0].UserScore)
		require.Equal(t, []string{"essay"}, reviews.UnansweredQuestionIDs)
	})

	t.Run("неизвестный тип вопроса прерывает проход", func(t *testing.T) {
		broken := reviewDefinition()
		broken.Sections[0].Questions[0].QuestionType = "RATING"
		_, err := BuildAutoReview(broken, answers)
		require.NotNil(t, err)
	})
}

func TestAggregateReview(t *testing.T) {
	def := reviewDefinition()
	answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
		{QuestionID: "mcq", SelectedOptionID: "a"},
		{QuestionID: "essay", TextAnswer: "десять лет опыта"},
	}}
	auto, err := BuildAutoReview(def, answers)
	require.Nil(t, err)

	t.Run("без вердиктов статус остаётся AUTO", func(t *testing.T) {
		result, status, total, err := AggregateReview(def, answers, auto, nil)
		require.Nil(t, err)
		require.Equal(t, models.ReviewStatusAuto, status)
		require.Equal(t, float64(10), total)
		require.Len(t, result.Reviews, 1)
	})

	t.Run("вердикт по всем вопросам с ручной проверкой завершает проверку", func(t *testing.T) {
		verdicts := []ManualVerdict{{QuestionID: "essay", Result: models.ManualReviewCorrect}}
		result, status, total, err := AggregateReview(def, answers, auto, verdicts)
		require.Nil(t, err)
		require.Equal(t, models.ReviewStatusComplete, status)
		// автооценка MCQ + полный балл за эссе
		require.Equal(t, float64(30), total)
		require.Len(t, result.Reviews, 2)
		manual := result.Get("essay")
		require.NotNil(t, manual)
		require.Equal(t, models.ReviewTypeManual, manual.ReviewType)
		require.Equal(t, models.ManualReviewCorrect, manual.ManualReviewResult)
	})

	t.Run("повторная проверка заменяет вердикты, а не дополняет", func(t *testing.T) {
		first := []ManualVerdict{{QuestionID: "essay", Result: models.ManualReviewCorrect}}
		merged, _, _, err := AggregateReview(def, answers, auto, first)
		require.Nil(t, err)

		second := []ManualVerdict{{QuestionID: "essay", Result: models.ManualReviewPartiallyCorrect}}
		result, status, total, err := AggregateReview(def, answers, merged, second)
		require.Nil(t, err)
		require.Equal(t, models.ReviewStatusComplete, status)
		require.Equal(t, float64(20), total)
		require.Len(t, result.Reviews, 2)
		require.Equal(t, float64(10), result.Get("essay").UserScore)
	})

	t.Run("вердикт по вопросу без ответа отклоняется", func(t *testing.T) {
		partial := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "mcq", SelectedOptionID: "a"},
		}}
		partialAuto, err := BuildAutoReview(def, partial)
		require.Nil(t, err)
		verdicts := []ManualVerdict{{QuestionID: "essay", Result: models.ManualReviewCorrect}}
		_, _, _, err = AggregateReview(def, partial, partialAuto, verdicts)
		var stateErr *InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		require.Equal(t, "essay", stateErr.QuestionID)
	})

	t.Run("вердикт по автооцениваемому вопросу отклоняется", func(t *testing.T) {
		verdicts := []ManualVerdict{{QuestionID: "mcq", Result: models.ManualReviewCorrect}}
		_, _, _, err := AggregateReview(def, answers, auto, verdicts)
		require.NotNil(t, err)
	})

	t.Run("вопросы без ответа проверку не блокируют", func(t *testing.T) {
		partial := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "mcq", SelectedOptionID: "a"},
		}}
		partialAuto, err := BuildAutoReview(def, partial)
		require.Nil(t, err)
		// эссе не отвечено, вердикт не требуется
		_, status, total, err := AggregateReview(def, partial, partialAuto, nil)
		require.Nil(t, err)
		require.Equal(t, models.ReviewStatusComplete, status)
		require.Equal(t, float64(10), total)
	})
}

func TestReviewStatusTransition(t *testing.T) {
	require.True(t, models.ReviewStatusAuto.CanTransit(models.ReviewStatusComplete))
	require.True(t, models.ReviewStatusAuto.CanTransit(models.ReviewStatusAuto))
	require.True(t, models.ReviewStatusComplete.CanTransit(models.ReviewStatusComplete))
	// обратный переход запрещён
	require.False(t, models.ReviewStatusComplete.CanTransit(models.ReviewStatusAuto))
}
