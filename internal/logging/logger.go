package logging

import (
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/gymlog/pkg"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned func closes the log file, if any.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 0.2,
			ServerName:       params.SentryServerName,
		}); err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}, sentry.CurrentHub()))
			logrus.Infoln("sentry set up successfully")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return func() {}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 20,
		LocalTime:  false,
		Compress:   true,
	}

	output := pkg.NewCombinedWriter(lumberJackLogger)
	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
		output = pkg.NewCombinedWriter(os.Stdout, lumberJackLogger)
	}
	logrus.SetOutput(output)

	return func() {
		logrus.SetOutput(os.Stdout)
		if err := output.Close(); err != nil {
			logrus.Errorf("close log output: %s", err)
		}
	}
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
