package logrusconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := WithPrefix(NewLogger(&buf, logrus.InfoLevel), "test")

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug message written at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") {
		t.Error("Info message or prefix missing", out)
	}
}

func TestBindFlags(t *testing.T) {
	defer func() { loglevel = nil }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	if err := flags.Parse([]string{"--loglevel", "5"}); err != nil {
		t.Fatal(err)
	}

	log := NewLogger(&bytes.Buffer{}, logrus.ErrorLevel)
	if log.Logger.GetLevel() != logrus.DebugLevel {
		t.Error("Flag did not override level", log.Logger.GetLevel())
	}
}
