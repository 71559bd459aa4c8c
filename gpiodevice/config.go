package gpiodevice

import (
	"io"
	"os"

	"github.com/BertoldVdb/gpiodevice/diagnostics"
	"github.com/BertoldVdb/gpiodevice/logrusconfig"
	"github.com/BertoldVdb/gpiodevice/platform"
	"github.com/sirupsen/logrus"
)

const (
	// ChipGlob matches the GPIO character devices on Linux.
	ChipGlob = "/dev/gpiochip*"

	// DebugEnv enables debug mode when present in the environment, whatever its value.
	DebugEnv = "GPIODEVICE_DEBUG"
)

/* Read once at startup */
var debugMode = func() bool {
	_, found := os.LookupEnv(DebugEnv)
	return found
}()

// Config controls how a Resolver finds chips and how it reports failure.
// It must not be modified while a call is in progress.
type Config struct {
	// FriendlyErrors turns a failed search into a digest of everything that
	// was seen. Without Debug the digest is printed and the process exits.
	FriendlyErrors bool

	// Fatal has the same effect as FriendlyErrors. It exists for callers that
	// want strict behaviour for a single resolver only.
	Fatal bool

	// Debug returns the digest as error instead of exiting. When nil, debug
	// mode is on if DebugEnv was present at startup.
	Debug *bool

	// ChipGlob defaults to ChipGlob
	ChipGlob string

	// Backend defaults to LinuxBackend
	Backend Backend

	// Platform returns the chip labels expected on this host. Defaults to platform.Labels.
	Platform func() ([]string, error)

	// Collector, if set, receives the events of every call.
	Collector *diagnostics.Collector

	Logger *logrus.Entry

	// Stderr and Exit are used to terminate the process. They default to
	// os.Stderr and os.Exit.
	Stderr io.Writer
	Exit   func(code int)
}

// DefaultConfig returns a quiet configuration with debug mode taken from the environment.
func DefaultConfig() Config {
	return Config{}
}

// Bool returns a pointer to v, for setting Config.Debug.
func Bool(v bool) *bool {
	return &v
}

func (c *Config) setDefaults() {
	if c.Debug == nil {
		c.Debug = Bool(debugMode)
	}
	if c.ChipGlob == "" {
		c.ChipGlob = ChipGlob
	}
	if c.Backend == nil {
		c.Backend = LinuxBackend{}
	}
	if c.Platform == nil {
		c.Platform = platform.Labels
	}
	if c.Logger == nil {
		c.Logger = logrusconfig.GetLogger(logrus.WarnLevel)
	}
	c.Logger = logrusconfig.WithPrefix(c.Logger, "gpiodevice")
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Exit == nil {
		c.Exit = os.Exit
	}
}

func (c *Config) hardFail() bool {
	return c.FriendlyErrors || c.Fatal
}
