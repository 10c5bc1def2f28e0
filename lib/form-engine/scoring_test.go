package formengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

func TestAutoScore(t *testing.T) {
	single := dbmodels.FormQuestion{
		QuestionID:   "q1",
		QuestionText: "Выберите верный ответ",
		QuestionType: models.QuestionTypeMCQSingle,
		MaxScore:     10,
		Options: []dbmodels.QuestionOption{
			{OptionID: "a", Text: "A", IsCorrect: true},
			{OptionID: "b", Text: "B"},
		},
	}
	multiple := dbmodels.FormQuestion{
		QuestionID:   "q2",
		QuestionText: "Выберите все верные ответы",
		QuestionType: models.QuestionTypeMCQMultiple,
		MaxScore:     10,
		Options: []dbmodels.QuestionOption{
			{OptionID: "a", Text: "A", IsCorrect: true},
			{OptionID: "b", Text: "B", IsCorrect: true},
			{OptionID: "c", Text: "C"},
		},
	}

	t.Run("один вариант: верный выбор даёт полный балл", func(t *testing.T) {
		score, err := AutoScore(single, dbmodels.QuestionAnswer{QuestionID: "q1", SelectedOptionID: "a"})
		require.Nil(t, err)
		require.NotNil(t, score)
		require.Equal(t, float64(10), *score)
	})

	t.Run("один вариант: неверный выбор даёт ноль", func(t *testing.T) {
		score, err := AutoScore(single, dbmodels.QuestionAnswer{QuestionID: "q1", SelectedOptionID: "b"})
		require.Nil(t, err)
		require.NotNil(t, score)
		require.Equal(t, float64(0), *score)
	})

	t.Run("один вариант: неизвестный или пустой вариант даёт ноль", func(t *testing.T) {
		score, err := AutoScore(single, dbmodels.QuestionAnswer{QuestionID: "q1", SelectedOptionID: "zzz"})
		require.Nil(t, err)
		require.Equal(t, float64(0), *score)

		score, err = AutoScore(single, dbmodels.QuestionAnswer{QuestionID: "q1"})
		require.Nil(t, err)
		require.Equal(t, float64(0), *score)
	})

	t.Run("несколько вариантов: балл пропорционален числу верных выборов", func(t *testing.T) {
		cases := []struct {
			selected []string
			expected float64
		}{
			{selected: []string{"a"}, expected: 5},
			{selected: []string{"a", "b"}, expected: 10},
			{selected: []string{"a", "c"}, expected: 5}, // неверный выбор балл не снижает
			{selected: []string{}, expected: 0},
		}
		for _, c := range cases {
			score, err := AutoScore(multiple, dbmodels.QuestionAnswer{QuestionID: "q2", SelectedOptionIDs: c.selected})
			require.Nil(t, err)
			require.NotNil(t, score)
			require.Equal(t, c.expected, *score)
		}
	})

	t.Run("несколько вариантов: без верных вариантов всегда ноль", func(t *testing.T) {
		noCorrect := multiple
		noCorrect.Options = []dbmodels.QuestionOption{
			{OptionID: "a", Text: "A"},
			{OptionID: "b", Text: "B"},
		}
		score, err := AutoScore(noCorrect, dbmodels.QuestionAnswer{QuestionID: "q2", SelectedOptionIDs: []string{"a", "b"}})
		require.Nil(t, err)
		require.Equal(t, float64(0), *score)
	})

	t.Run("текстовые вопросы и файлы автоматически не оцениваются", func(t *testing.T) {
		for _, qType := range []models.QuestionType{
			models.QuestionTypeSingleLine,
			models.QuestionTypeParagraph,
			models.QuestionTypeFileUpload,
		} {
			question := dbmodels.FormQuestion{QuestionID: "q", QuestionType: qType, MaxScore: 10}
			score, err := AutoScore(question, dbmodels.QuestionAnswer{QuestionID: "q", TextAnswer: "ответ", FileUploadURL: "https://files.local/f.pdf"})
			require.Nil(t, err)
			require.Nil(t, score)
		}
	})

	t.Run("неизвестный тип вопроса - ошибка, а не ноль", func(t *testing.T) {
		question := dbmodels.FormQuestion{QuestionID: "q", QuestionType: "RATING", MaxScore: 10}
		score, err := AutoScore(question, dbmodels.QuestionAnswer{QuestionID: "q"})
		require.Nil(t, score)
		require.NotNil(t, err)
		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
		require.Equal(t, "q", typeErr.QuestionID)
	})
}

func TestManualScore(t *testing.T) {
	text := dbmodels.FormQuestion{QuestionID: "q1", QuestionType: models.QuestionTypeParagraph, MaxScore: 20}
	file := dbmodels.FormQuestion{QuestionID: "q2", QuestionType: models.QuestionTypeFileUpload, MaxScore: 8}

	t.Run("шкала вердиктов для текстовых вопросов", func(t *testing.T) {
		score, err := ManualScore(text, models.ManualReviewCorrect)
		require.Nil(t, err)
		require.Equal(t, float64(20), score)

		score, err = ManualScore(text, models.ManualReviewPartiallyCorrect)
		require.Nil(t, err)
		require.Equal(t, float64(10), score)

		score, err = ManualScore(text, models.ManualReviewIncorrect)
		require.Nil(t, err)
		require.Equal(t, float64(0), score)
	})

	t.Run("шкала вердиктов для файлов", func(t *testing.T) {
		score, err := ManualScore(file, models.ManualReviewValid)
		require.Nil(t, err)
		require.Equal(t, float64(8), score)

		score, err = ManualScore(file, models.ManualReviewInvalid)
		require.Nil(t, err)
		require.Equal(t, float64(0), score)
	})

	t.Run("вердикт другого типа вопроса отклоняется", func(t *testing.T) {
		_, err := ManualScore(text, models.ManualReviewValid)
		require.NotNil(t, err)

		_, err = ManualScore(file, models.ManualReviewPartiallyCorrect)
		require.NotNil(t, err)

		_, err = ManualScore(text, "MAYBE")
		require.NotNil(t, err)
	})
}
