package initializers

import (
	"context"

	"app-portal-backend/config"
	"app-portal-backend/fiberlog"
	"app-portal-backend/lib/answer"
	xlsexport "app-portal-backend/lib/export/xls"
	"app-portal-backend/lib/form"
	"app-portal-backend/lib/review"
	autoscoreworker "app-portal-backend/lib/review/auto-score-worker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	xlsexport.NewHandler()
	form.NewHandler()
	answer.NewHandler()
	review.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача автооценки ответов, не оценённых при отправке
	autoscoreworker.StartWorker(ctx)
}
