// Package platform guesses which gpiochip labels to expect on the current
// host by looking at well known board identity files.
package platform

import (
	"bufio"
	"os"
	"strings"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrorUnknownPlatform = Error("No compatible platform detected!")
)

// Probe matches the first line of File against Prefix.
type Probe struct {
	// Name is only used for logging and error messages
	Name string `yaml:"name"`

	// File is the board identity file to read, for example /proc/device-tree/model
	File string `yaml:"file"`

	// Prefix must match the start of the first line of File
	Prefix string `yaml:"prefix"`

	// Labels lists the gpiochip labels to expect when the probe matches
	Labels []string `yaml:"labels"`
}

var DefaultProbes = []Probe{
	{
		Name:   "raspberry-pi",
		File:   "/proc/device-tree/model",
		Prefix: "Raspberry Pi",
		Labels: []string{
			"pinctrl-rp1",     /* Pi 5 */
			"pinctrl-bcm2711", /* Pi 4 */
		},
	},
	{
		Name:   "alienware-m15",
		File:   "/sys/devices/virtual/dmi/id/board_name",
		Prefix: "Alienware m15",
		Labels: []string{"INT3450:00"},
	},
}

func firstLine(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	line, err := reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", false
	}

	/* Device tree strings carry a trailing NUL */
	return strings.TrimRight(line, "\x00\r\n"), true
}

// Match returns true if the identity file exists and starts with the prefix.
// Missing or unreadable files never match.
func (p *Probe) Match() bool {
	line, ok := firstLine(p.File)
	if !ok {
		return false
	}
	return strings.HasPrefix(line, p.Prefix)
}

// Detect returns the labels of the first matching probe.
func Detect(probes []Probe) ([]string, error) {
	for i := range probes {
		if probes[i].Match() {
			labels := make([]string, len(probes[i].Labels))
			copy(labels, probes[i].Labels)
			return labels, nil
		}
	}
	return nil, ErrorUnknownPlatform
}

// Labels runs Detect with DefaultProbes.
func Labels() ([]string, error) {
	return Detect(DefaultProbes)
}
