package formstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Form) (id string, err error)
	GetByID(id string) (rec *dbmodels.Form, err error)
	List() (list []dbmodels.Form, err error)
	SetPublished(id string, isPublished bool) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Form) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Form, error) {
	rec := dbmodels.Form{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Form, err error) {
	list = []dbmodels.Form{}
	err = i.db.
		Model(&dbmodels.Form{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetPublished(id string, isPublished bool) error {
	updMap := map[string]interface{}{
		"is_published": isPublished,
	}
	err := i.db.
		Model(&dbmodels.Form{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Form{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
