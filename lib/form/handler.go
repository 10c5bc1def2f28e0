package form

import (
	"github.com/pkg/errors"

	"app-portal-backend/db"
	formengine "app-portal-backend/lib/form-engine"
	formstore "app-portal-backend/lib/form/store"
	formapimodels "app-portal-backend/models/api/form"
	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	SaveForm(id string, data formapimodels.FormData, userID string) (*formapimodels.FormView, error)
	GetForm(id string) (*formapimodels.FormView, error)
	ListForms() ([]formapimodels.FormView, error)
	SetPublished(id string, isPublished bool) error
	DeleteForm(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		formStore: formstore.NewInstance(db.DB),
	}
}

type impl struct {
	formStore formstore.Provider
}

// Сохранение формы с проверкой структуры: зависимости только назад по порядку
// обхода, некорректная форма отклоняется на этапе сохранения
func (i impl) SaveForm(id string, data formapimodels.FormData, userID string) (*formapimodels.FormView, error) {
	if err := formengine.ValidateForm(data.Definition); err != nil {
		return nil, err
	}
	rec := dbmodels.Form{
		BaseModel:   dbmodels.BaseModel{ID: id},
		Title:       data.Title,
		Description: data.Description,
		Definition:  data.Definition,
		CreatedBy:   userID,
	}
	if id != "" {
		existedRec, err := i.formStore.GetByID(id)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения формы")
		}
		if existedRec == nil {
			return nil, errors.New("форма не найдена")
		}
		rec.IsPublished = existedRec.IsPublished
		rec.CreatedBy = existedRec.CreatedBy
		rec.CreatedAt = existedRec.CreatedAt
	}
	recID, err := i.formStore.Save(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения формы")
	}
	return i.GetForm(recID)
}

func (i impl) GetForm(id string) (*formapimodels.FormView, error) {
	rec, err := i.formStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения формы")
	}
	if rec == nil {
		return nil, errors.New("форма не найдена")
	}
	result := formapimodels.ToFormView(*rec)
	return &result, nil
}

func (i impl) ListForms() ([]formapimodels.FormView, error) {
	list, err := i.formStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка форм")
	}
	result := make([]formapimodels.FormView, 0, len(list))
	for _, rec := range list {
		result = append(result, formapimodels.ToFormView(rec))
	}
	return result, nil
}

func (i impl) SetPublished(id string, isPublished bool) error {
	rec, err := i.formStore.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения формы")
	}
	if rec == nil {
		return errors.New("форма не найдена")
	}
	err = i.formStore.SetPublished(id, isPublished)
	if err != nil {
		return errors.Wrap(err, "ошибка публикации формы")
	}
	return nil
}

func (i impl) DeleteForm(id string) error {
	err := i.formStore.Delete(id)
	if err != nil {
		return errors.Wrap(err, "ошибка удаления формы")
	}
	return nil
}
