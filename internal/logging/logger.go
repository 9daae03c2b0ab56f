package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type LoggerSetupParams struct {
	LogLevel      string
	LogFormatJSON bool
	Output        io.Writer // defaults to stderr so command output stays clean
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.Output == nil {
		params.Output = os.Stderr
	}
	logrus.SetOutput(params.Output)
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.WarnLevel
	}
}
