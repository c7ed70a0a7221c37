package handler_test

import (
	"io"

	"go-stock-manager/internal/repository"

	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func repositoryNotFound() error {
	return repository.ErrNotFound
}
