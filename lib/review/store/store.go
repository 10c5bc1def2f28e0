package reviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"app-portal-backend/models"
	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Review) (id string, err error)
	GetByAnswerID(answerID string) (rec *dbmodels.Review, err error)
	ListByForm(formID string) (list []dbmodels.Review, err error)
	ListPending() (list []dbmodels.Review, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Review) (id string, err error) {
	existedRec, err := i.GetByAnswerID(rec.AnswerID)
	if err != nil {
		return "", err
	}
	if existedRec != nil {
		rec.ID = existedRec.ID
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByAnswerID(answerID string) (*dbmodels.Review, error) {
	rec := dbmodels.Review{}
	err := i.db.
		Where("answer_id = ?", answerID).
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

func (i impl) ListByForm(formID string) (list []dbmodels.Review, err error) {
	list = []dbmodels.Review{}
	err = i.db.
		Model(&dbmodels.Review{}).
		Where("form_id = ?", formID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Проверки, ожидающие вердикта проверяющего
func (i impl) ListPending() (list []dbmodels.Review, err error) {
	list = []dbmodels.Review{}
	err = i.db.
		Model(&dbmodels.Review{}).
		Where("status = ?", models.ReviewStatusAuto).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
