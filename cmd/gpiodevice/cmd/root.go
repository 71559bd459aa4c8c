package cmd

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/gpiodevice/diagnostics"
	"github.com/BertoldVdb/gpiodevice/gpiodevice"
	"github.com/BertoldVdb/gpiodevice/logrusconfig"
	"github.com/BertoldVdb/gpiodevice/platform"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	friendly   bool
	probesFile string
	chipGlob   string
)

var rootCmd = &cobra.Command{
	Use:   "gpiodevice",
	Short: "Find the right gpiochip device on this host",
	Long: `Locate GPIO character devices by label, by line names or by platform,
and check that the lines you need are not claimed by another process.

Examples:
  gpiodevice list                                  # Show all gpiochip devices
  gpiodevice find --pins GPIO17,GPIO27             # Chip that has both lines free
  gpiodevice find --label pinctrl-rp1 --pin led=GPIO17
  gpiodevice find --platform --probes boards.yaml  # Use extra platform probes
  gpiodevice get GPIO17                            # Read a line`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print every diagnostic event")
	flags.BoolVar(&friendly, "friendly", true, "print a digest and exit when no chip is found")
	flags.StringVar(&probesFile, "probes", "", "YAML file with extra platform probes")
	flags.StringVar(&chipGlob, "glob", gpiodevice.ChipGlob, "glob matching the gpiochip devices")
	logrusconfig.BindFlags(flags)
}

type session struct {
	resolver  *gpiodevice.Resolver
	collector *diagnostics.Collector
}

func newSession() (*session, error) {
	s := &session{
		collector: diagnostics.NewCollector(nil),
	}

	cfg := gpiodevice.DefaultConfig()
	cfg.FriendlyErrors = friendly
	cfg.ChipGlob = chipGlob
	cfg.Collector = s.collector
	cfg.Logger = logrusconfig.GetLogger(logrus.WarnLevel)

	if probesFile != "" {
		probes, err := platform.LoadProbes(probesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load probes: %w", err)
		}
		probes = platform.WithDefaults(probes)
		cfg.Platform = func() ([]string, error) {
			return platform.Detect(probes)
		}
	}

	s.resolver = gpiodevice.New(cfg)
	return s, nil
}

func (s *session) printEvents() {
	if !verbose {
		return
	}
	diagnostics.FprintEvents(os.Stderr, s.collector.Events())
}
