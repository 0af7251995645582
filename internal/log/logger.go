package log

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

func InitLogger() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("IS_DEV") == "true" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Logger = l
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
