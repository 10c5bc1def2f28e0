package formengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

func testDefinition() dbmodels.FormDefinition {
	return dbmodels.FormDefinition{
		Sections: []dbmodels.FormSection{
			{
				SectionID: "s1",
				Title:     "Общие сведения",
				Order:     1,
				Questions: []dbmodels.FormQuestion{
					{
						QuestionID:   "q1",
						QuestionText: "Есть ли у вас опыт работы?",
						QuestionType: models.QuestionTypeMCQSingle,
						Order:        1,
						MaxScore:     10,
						Options: []dbmodels.QuestionOption{
							{OptionID: "q1o1", Text: "Да", IsCorrect: true},
							{OptionID: "q1o2", Text: "Нет"},
						},
					},
					{
						QuestionID:   "q2",
						QuestionText: "Опишите ваш опыт",
						QuestionType: models.QuestionTypeParagraph,
						Order:        2,
						MaxScore:     20,
						Dependencies: []dbmodels.QuestionDependency{
							{DependsOnQuestionID: "q1", Type: models.DependencyTypeOptionSelected, Value: []string{"q1o1"}},
						},
					},
				},
			},
			{
				SectionID: "s2",
				Title:     "Документы",
				Order:     2,
				Questions: []dbmodels.FormQuestion{
					{
						QuestionID:   "q3",
						QuestionText: "Приложите резюме",
						QuestionType: models.QuestionTypeFileUpload,
						Order:        1,
						MaxScore:     5,
						FileType:     "pdf",
					},
					{
						QuestionID:   "q4",
						QuestionText: "Комментарий к резюме",
						QuestionType: models.QuestionTypeSingleLine,
						Order:        2,
						MaxScore:     5,
						Dependencies: []dbmodels.QuestionDependency{
							{DependsOnQuestionID: "q2", Type: models.DependencyTypeAnswered},
							{DependsOnQuestionID: "q3", Type: models.DependencyTypeFileUploaded},
						},
					},
				},
			},
		},
	}
}

func TestVisibleQuestions(t *testing.T) {
	def := testDefinition()

	t.Run("вопросы без зависимостей видны при любом наборе ответов", func(t *testing.T) {
		visible := VisibleQuestions(def, dbmodels.QuestionAnswers{})
		require.Contains(t, visible, "q1")
		require.Contains(t, visible, "q3")
		require.NotContains(t, visible, "q2")
		require.NotContains(t, visible, "q4")
	})

	t.Run("условие по выбранному варианту", func(t *testing.T) {
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q1", SelectedOptionID: "q1o2"},
		}}
		visible := VisibleQuestions(def, answers)
		require.NotContains(t, visible, "q2")

		answers.Set(dbmodels.QuestionAnswer{QuestionID: "q1", SelectedOptionID: "q1o1"})
		visible = VisibleQuestions(def, answers)
		require.Contains(t, visible, "q2")
	})

	t.Run("несколько условий работают как конъюнкция", func(t *testing.T) {
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q2", TextAnswer: "десять лет в поддержке"},
		}}
		visible := VisibleQuestions(def, answers)
		require.NotContains(t, visible, "q4")

		answers.Set(dbmodels.QuestionAnswer{QuestionID: "q3", FileUploadURL: "https://files.local/resume.pdf"})
		visible = VisibleQuestions(def, answers)
		require.Contains(t, visible, "q4")

		// снятие любого из условий скрывает вопрос
		answers.Set(dbmodels.QuestionAnswer{QuestionID: "q2"})
		visible = VisibleQuestions(def, answers)
		require.NotContains(t, visible, "q4")
	})

	t.Run("видимость вопроса-условия не проверяется, только его ответ", func(t *testing.T) {
		// q2 сам скрыт (q1 без ответа), но ответ на q2 присутствует,
		// условие q4 по q2 считается выполненным
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q2", TextAnswer: "опыт есть"},
			{QuestionID: "q3", FileUploadURL: "https://files.local/resume.pdf"},
		}}
		visible := VisibleQuestions(def, answers)
		require.NotContains(t, visible, "q2")
		require.Contains(t, visible, "q4")
	})

	t.Run("повторный вызов с теми же аргументами даёт тот же результат", func(t *testing.T) {
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q1", SelectedOptionID: "q1o1"},
		}}
		first := VisibleQuestions(def, answers)
		second := VisibleQuestions(def, answers)
		require.Equal(t, first, second)

		unansweredFirst := UnansweredRequired(def, answers)
		unansweredSecond := UnansweredRequired(def, answers)
		require.Equal(t, unansweredFirst, unansweredSecond)
	})
}

func TestUnansweredRequired(t *testing.T) {
	def := testDefinition()

	t.Run("вопрос с невыполненным условием не попадает в список", func(t *testing.T) {
		unanswered := UnansweredRequired(def, dbmodels.QuestionAnswers{})
		require.Equal(t, []string{"q1", "q3"}, unanswered)
	})

	t.Run("после выполнения условия вопрос без ответа попадает в список", func(t *testing.T) {
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q1", SelectedOptionID: "q1o1"},
		}}
		unanswered := UnansweredRequired(def, answers)
		require.Equal(t, []string{"q2", "q3"}, unanswered)
	})

	t.Run("полностью заполненная форма даёт пустой список", func(t *testing.T) {
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q1", SelectedOptionID: "q1o1"},
			{QuestionID: "q2", TextAnswer: "опыт есть"},
			{QuestionID: "q3", FileUploadURL: "https://files.local/resume.pdf"},
			{QuestionID: "q4", TextAnswer: "резюме актуально"},
		}}
		unanswered := UnansweredRequired(def, answers)
		require.Empty(t, unanswered)
	})

	t.Run("порядок списка соответствует порядку обхода формы", func(t *testing.T) {
		answers := dbmodels.QuestionAnswers{Answers: []dbmodels.QuestionAnswer{
			{QuestionID: "q1", SelectedOptionID: "q1o1"},
			{QuestionID: "q3", FileUploadURL: "https://files.local/resume.pdf"},
			{QuestionID: "q2", TextAnswer: "опыт есть"},
		}}
		unanswered := UnansweredRequired(def, answers)
		require.Equal(t, []string{"q4"}, unanswered)
	})
}
