package services

import (
	"MyStorage/internal/config"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type LogService struct {
	Log  *logrus.Logger
	file *os.File
}

func NewLogService(configuration *config.Configuration) (LogService, func(), error) {
	log := logrus.New()
	file, err := setLogOutputType(configuration, log)
	if err != nil {
		return LogService{}, nil, err
	}
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	service := LogService{
		Log:  log,
		file: file,
	}
	return service, service.Close, nil
}

// ProvideLogger hands the configured logger to packages that cannot depend on services.
func ProvideLogger(logService LogService) *logrus.Logger {
	return logService.Log
}

func (l LogService) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Log.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Log.Level))
	if err != nil {
		log.WithFields(logrus.Fields{
			"level": configuration.Log.Level,
		}).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) (*os.File, error) {
	switch configuration.Log.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr":
		log.SetOutput(os.Stderr)
	case "discard":
		log.SetOutput(io.Discard)
	case "file":
		if configuration.Log.LogPath == "" {
			return nil, fmt.Errorf("file output requires log.path to be set")
		}
		logFolder := strings.TrimRight(configuration.Log.LogPath, "/")
		if err := os.MkdirAll(logFolder, 0755); err != nil {
			return nil, fmt.Errorf("create log folder: %w", err)
		}
		logName := fmt.Sprintf("%s-%s.log", "mystorage", time.Now().Format("2006-01-02"))
		file, err := os.OpenFile(filepath.Join(logFolder, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		log.SetOutput(file)
		return file, nil
	default:
		return nil, fmt.Errorf("unknown log output %q", configuration.Log.Output)
	}
	return nil, nil
}
