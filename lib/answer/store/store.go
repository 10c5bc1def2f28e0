package answerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Answer) (id string, err error)
	GetByID(id string) (rec *dbmodels.Answer, err error)
	GetLastByUser(formID, userID string) (rec *dbmodels.Answer, err error)
	GetForScore() (list []dbmodels.Answer, err error)
	SetIsScored(id string, isScored bool) error
	ListByForm(formID string) (list []dbmodels.Answer, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Answer) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Answer, error) {
	rec := dbmodels.Answer{}
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

// Последний по времени ответ пользователя по форме
func (i impl) GetLastByUser(formID, userID string) (*dbmodels.Answer, error) {
	rec := dbmodels.Answer{}
	err := i.db.
		Where("form_id = ?", formID).
		Where("user_id = ?", userID).
		Order("created_at desc").
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

// Ответы без первичного прохода автооценки
func (i impl) GetForScore() (list []dbmodels.Answer, err error) {
	list = []dbmodels.Answer{}
	err = i.db.
		Model(&dbmodels.Answer{}).
		Where("is_scored = false").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetIsScored(id string, isScored bool) error {
	updMap := map[string]interface{}{
		"is_scored": isScored,
	}
	err := i.db.
		Model(&dbmodels.Answer{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByForm(formID string) (list []dbmodels.Answer, err error) {
	list = []dbmodels.Answer{}
	err = i.db.
		Model(&dbmodels.Answer{}).
		Where("form_id = ?", formID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
