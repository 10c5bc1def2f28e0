package formengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

func TestValidateForm(t *testing.T) {
	valid := testDefinition()

	t.Run("корректная форма проходит проверку", func(t *testing.T) {
		require.Nil(t, ValidateForm(valid))
	})

	t.Run("зависимость от вопроса дальше по порядку отклоняется", func(t *testing.T) {
		def := testDefinition()
		// q2 ссылается на q3 из следующего раздела
		def.Sections[0].Questions[1].Dependencies = []dbmodels.QuestionDependency{
			{DependsOnQuestionID: "q3", Type: models.DependencyTypeFileUploaded},
		}
		err := ValidateForm(def)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "q2", vErr.QuestionID)
		require.Equal(t, "q3", vErr.DependsOnQuestionID)
	})

	t.Run("зависимость вопроса от самого себя отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[0].Questions[0].Dependencies = []dbmodels.QuestionDependency{
			{DependsOnQuestionID: "q1", Type: models.DependencyTypeAnswered},
		}
		err := ValidateForm(def)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "q1", vErr.QuestionID)
	})

	t.Run("зависимость от несуществующего вопроса отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[1].Questions[1].Dependencies = []dbmodels.QuestionDependency{
			{DependsOnQuestionID: "zzz", Type: models.DependencyTypeAnswered},
		}
		err := ValidateForm(def)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "zzz", vErr.DependsOnQuestionID)
	})

	t.Run("порядок обхода учитывает порядок разделов, а не порядок массива", func(t *testing.T) {
		def := testDefinition()
		// разделы переставлены местами, порядок обхода прежний
		def.Sections = []dbmodels.FormSection{def.Sections[1], def.Sections[0]}
		require.Nil(t, ValidateForm(def))
	})

	t.Run("вопрос с выбором без вариантов отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[0].Questions[0].Options = nil
		require.NotNil(t, ValidateForm(def))
	})

	t.Run("варианты на текстовом вопросе отклоняются", func(t *testing.T) {
		def := testDefinition()
		def.Sections[0].Questions[1].Options = []dbmodels.QuestionOption{{OptionID: "x", Text: "X"}}
		require.NotNil(t, ValidateForm(def))
	})

	t.Run("отрицательный максимальный балл отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[0].Questions[0].MaxScore = -1
		require.NotNil(t, ValidateForm(def))
	})

	t.Run("условие по варианту без списка вариантов отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[0].Questions[1].Dependencies = []dbmodels.QuestionDependency{
			{DependsOnQuestionID: "q1", Type: models.DependencyTypeOptionSelected},
		}
		require.NotNil(t, ValidateForm(def))
	})

	t.Run("дублирующийся идентификатор вопроса отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[1].Questions[0].QuestionID = "q1"
		require.NotNil(t, ValidateForm(def))
	})

	t.Run("неизвестный тип зависимости отклоняется", func(t *testing.T) {
		def := testDefinition()
		def.Sections[0].Questions[1].Dependencies = []dbmodels.QuestionDependency{
			{DependsOnQuestionID: "q1", Type: "WHEN_VISIBLE"},
		}
		require.NotNil(t, ValidateForm(def))
	})
}
