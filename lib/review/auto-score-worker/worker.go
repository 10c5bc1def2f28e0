package autoscoreworker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"app-portal-backend/db"
	"app-portal-backend/lib/answer"
	answerstore "app-portal-backend/lib/answer/store"
)

// добор ответов, по которым первичный проход автооценки не завершился
func StartWorker(ctx context.Context) {
	i := &impl{
		answerStore: answerstore.NewInstance(db.DB),
		answer:      answer.Instance,
	}
	go i.run(ctx)
}

const (
	handlePeriod = 5 * time.Minute
)

type impl struct {
	answerStore answerstore.Provider
	answer      answer.Provider
}

func (i impl) getLogger() *log.Entry {
	logger := log.
		WithField("worker_name", "AutoScoreWorker")
	return logger
}

func (i impl) run(ctx context.Context) {
	period := 5 * time.Second
	logger := i.getLogger()
	for {
		select {
		// проверяем не завершён ли ещё контекст и выходим, если завершён
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(period):
			logger.Info("Задача запущена")
			i.handle()
			logger.Info("Задача выполнена")
		}
		period = handlePeriod
	}
}

func (i impl) handle() {
	logger := i.getLogger()
	list, err := i.answerStore.GetForScore()
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка ответов для автооценки")
		return
	}
	for _, rec := range list {
		ok, err := i.answer.ScoreAnswer(rec)
		if err != nil {
			logger.WithError(err).
				WithField("answer_id", rec.ID).
				WithField("form_id", rec.FormID).
				Error("ошибка автооценки ответа")
			continue
		}
		if ok {
			logger.
				WithField("answer_id", rec.ID).
				WithField("form_id", rec.FormID).
				Info("выполнена автооценка ответа")
		}
	}
}
