package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"app-portal-backend/db"
	filestorage "app-portal-backend/lib/file-storage"
	s3client "app-portal-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ListBuckets вернул ошибку")
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient, db.DB)
	if err = filestorage.Instance.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для файлов ответов")
	}
	log.Info("S3 клиент успешно инициализирован")
}
