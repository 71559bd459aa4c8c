package gpiodevice

import (
	"fmt"
	"strings"

	"github.com/BertoldVdb/gpiodevice/diagnostics"
	"github.com/BertoldVdb/gpiodevice/linux-pio/gpio"
)

// Pin names a line that is needed by the caller. Label is only used in
// diagnostics, Line selects the line by name or by offset.
type Pin struct {
	Label string
	Line  gpio.Line
}

// PinSpec is checked in order. Labels must be unique.
type PinSpec []Pin

func ByOffset(label string, offset uint32) Pin {
	return Pin{Label: label, Line: gpio.Line{Offset: offset}}
}

func ByName(label string, name string) Pin {
	return Pin{Label: label, Line: gpio.Line{Name: name}}
}

func (p PinSpec) validate() error {
	seen := make(map[string]bool, len(p))
	for _, pin := range p {
		if seen[pin.Label] {
			return fmt.Errorf("%w: %s", ErrorDuplicatePin, pin.Label)
		}
		seen[pin.Label] = true
	}
	return nil
}

// ParseNames accepts names as separate arguments, as comma separated lists or
// a mix of both. Names are trimmed and empty names are dropped.
func ParseNames(names ...string) []string {
	var result []string
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			part = strings.TrimSpace(part)
			if len(part) > 0 {
				result = append(result, part)
			}
		}
	}
	return result
}

func normalizeLabels(labels []string) []string {
	var result []string
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if len(l) > 0 {
			result = append(result, l)
		}
	}
	return result
}

// CheckPinsAvailable returns true if every pin exists on chip and none of
// them is claimed. Every problem is recorded in c, which may be nil. An empty
// PinSpec is always available.
func CheckPinsAvailable(chip Chip, pins PinSpec, c *diagnostics.Collector) bool {
	if c == nil {
		c = diagnostics.NewCollector(nil)
	}
	return checkPins(chip, pins, false, c)
}

func checkPins(chip Chip, pins PinSpec, ignoreClaimed bool, c *diagnostics.Collector) bool {
	if len(pins) == 0 {
		return true
	}

	failures := c.Failures()

	for _, pin := range pins {
		offset := pin.Line.Offset

		if len(pin.Line.Name) != 0 {
			off, err := chip.FindLineByName(pin.Line.Name)
			if err != nil {
				c.NotFound("%s: (line %s) not found!", pin.Label, pin.Line.Name)
				continue
			}
			offset = off
		}

		info, err := chip.GetLineInfo(offset)
		if err != nil {
			c.NotFound("%s: (line %d) not found!", pin.Label, offset)
			continue
		}

		if !ignoreClaimed && info.Used() {
			c.Error("%s: (line %d, %s) currently claimed by %s", pin.Label, offset, info.Name, info.Consumer)
		}
	}

	return c.Failures() == failures
}
