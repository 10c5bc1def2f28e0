package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"app-portal-backend/config"
	filesstore "app-portal-backend/lib/file-storage/store"
	dbmodels "app-portal-backend/models/db"
)

type Provider interface {
	UploadAnswerFile(ctx context.Context, info dbmodels.UploadFileInfo, fileReader io.Reader) (url string, err error)
	GetFile(ctx context.Context, fileID string) (body []byte, rec *dbmodels.FileStorage, err error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewInstance(s3client *minio.Client, DB *gorm.DB) {
	Instance = &impl{
		s3client:  s3client,
		fileStore: filesstore.NewInstance(DB),
	}
}

type impl struct {
	s3client  *minio.Client
	fileStore filesstore.Provider
}

// Файл сохраняется в бакет под идентификатором записи, наружу отдаётся
// ссылка на публичный эндпоинт скачивания
func (i impl) UploadAnswerFile(ctx context.Context, info dbmodels.UploadFileInfo, fileReader io.Reader) (url string, err error) {
	rec := dbmodels.FileStorage{
		// идентификатор нужен до записи в БД, он же ключ объекта в бакете
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		Name:        info.FileName,
		AnswerID:    info.AnswerID,
		QuestionID:  info.QuestionID,
		ContentType: info.ContentType,
		Size:        info.Size,
	}
	fileID, err := i.fileStore.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения данных файла")
	}
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileID, fileReader, info.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения файла в хранилище")
	}
	return fmt.Sprintf("%v/api/v1/public/files/%v", config.Conf.App.PublicDomain, fileID), nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	rec, err := i.fileStore.GetByID(fileID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения данных файла")
	}
	if rec == nil {
		return nil, nil, errors.New("файл не найден")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, object); err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return buf.Bytes(), rec, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}
