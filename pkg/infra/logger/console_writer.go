package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors every entry to stdout so logs stay visible while
// the primary output goes to the per-server file.
type ConsoleHook struct{}

func NewConsoleHook() *ConsoleHook {
	return &ConsoleHook{}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(line))
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
