package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего сервера.
// Живет с момента загрузки пакета, так что логировать можно и до
// Init - он лишь донастраивает уровень и формат.
var Log = logrus.New()

// Init настраивает глобальный логгер.
// Должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	// 1. Уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки генерации удобно ставить "debug".
	logLevel, ok := os.LookupEnv("ZG_LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("ZG_LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Component возвращает логгер с проставленным полем подсистемы.
// Удобно для систем (generator, repair, ai), чтобы не дублировать WithField везде.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
