package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnv переменная окружения, которой можно переопределить уровень логирования.
const LevelEnv = "LOG_LEVEL"

// New создает логгер tagihan. В release режиме gin пишет JSON с уровнем info, в остальных режимах
// текст с уровнем debug. LOG_LEVEL, если задан и разбирается logrus, имеет приоритет.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetLevel(logrus.DebugLevel)
	}

	if raw := os.Getenv(LevelEnv); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			l.WithField(LevelEnv, raw).Warn("unknown log level, keeping default")
		} else {
			l.SetLevel(level)
		}
	}

	return l
}

// Component запись логгера с полем component, чтобы различать подсистемы в общем потоке.
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
