package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "app-portal-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Form{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Form")
	}
	if err := DB.AutoMigrate(&dbmodels.Answer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Answer")
	}
	if err := DB.AutoMigrate(&dbmodels.Review{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Review")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
