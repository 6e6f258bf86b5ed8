package app

import (
	"errors"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from config. Output goes to w
// (stderr in the CLI) so it never mixes with command output.
func NewLogger(cfg *Config, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid log level", goerr.V("level", cfg.LogLevel))
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logger, nil
}

// logFields flattens goerr values into logrus fields so wrapped context
// (user id, path) shows up in structured output.
func logFields(err error) logrus.Fields {
	fields := logrus.Fields{}
	var ge *goerr.Error
	if errors.As(err, &ge) {
		for k, v := range ge.Values() {
			fields[k] = v
		}
	}
	return fields
}
