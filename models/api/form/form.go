package formapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "app-portal-backend/models/db"
)

type FormData struct {
	Title       string                  `json:"title"`       // Название формы
	Description string                  `json:"description"` // Описание формы
	Definition  dbmodels.FormDefinition `json:"definition"`  // Разделы и вопросы
}

func (f FormData) Validate() error {
	if f.Title == "" {
		return errors.New("не указано название формы")
	}
	if len(f.Definition.Sections) == 0 {
		return errors.New("в форме отсутствуют разделы")
	}
	return nil
}

type FormView struct {
	FormData
	ID          string    `json:"id"`
	IsPublished bool      `json:"is_published"` // форма доступна соискателям
	CreatedAt   time.Time `json:"created_at"`
}

func ToFormView(rec dbmodels.Form) FormView {
	return FormView{
		FormData: FormData{
			Title:       rec.Title,
			Description: rec.Description,
			Definition:  rec.Definition,
		},
		ID:          rec.ID,
		IsPublished: rec.IsPublished,
		CreatedAt:   rec.CreatedAt,
	}
}
