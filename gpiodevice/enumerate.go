package gpiodevice

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BertoldVdb/gpiodevice/linux-pio/gpio"
)

// Chip is an opened GPIO character device. *gpio.Chip implements it.
// The caller owns every Chip returned by a Resolver and must Close it.
type Chip interface {
	GetChipInfo() gpio.ChipInfo
	FindLineByName(name string) (uint32, error)
	GetLineInfo(line uint32) (gpio.LineInfo, error)
	Close() error
}

type layouter interface {
	Layout() uint8
}

// Backend gives access to the devices of the host.
type Backend interface {
	// Glob lists candidate device paths, in directory order.
	Glob(pattern string) ([]string, error)
	IsChipDevice(path string) bool
	Open(path string) (Chip, error)
}

// LinuxBackend talks to the GPIO character devices of the running kernel.
type LinuxBackend struct{}

func (LinuxBackend) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func (LinuxBackend) IsChipDevice(path string) bool {
	return gpio.IsChipDevice(path)
}

func (LinuxBackend) Open(path string) (Chip, error) {
	chip, err := gpio.OpenChipPath(path)
	if err != nil {
		return nil, err
	}
	return chip, nil
}

// ChipSummary describes one chip found by ListChips.
type ChipSummary struct {
	Path   string
	Name   string
	Label  string
	Lines  uint32
	Layout uint8
}

func (r *Resolver) candidates(s *scan) []string {
	paths, err := r.cfg.Backend.Glob(r.cfg.ChipGlob)
	if err != nil {
		s.c.Error("%s: %v", r.cfg.ChipGlob, err)
		return nil
	}

	var result []string
	for _, path := range paths {
		if r.cfg.Backend.IsChipDevice(path) {
			result = append(result, path)
		} else {
			s.log.WithField("path", path).Debug("Not a gpiochip device")
		}
	}

	return result
}

func (r *Resolver) open(s *scan, path string) Chip {
	chip, err := r.cfg.Backend.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			s.c.Error("%s: Permission error!", path)
		} else {
			s.c.Error("%s: %v", path, err)
		}
		return nil
	}

	info := chip.GetChipInfo()
	log := s.log.WithField("path", path).WithField("label", info.Label).WithField("lines", info.Lines)
	if l, ok := chip.(layouter); ok {
		log = log.WithField("layout", l.Layout())
	}
	log.Debug("Opened gpiochip")

	return chip
}

// ListChips opens every gpiochip device and returns what it found. Devices
// that cannot be opened are reported through the configured Collector.
func (r *Resolver) ListChips() []ChipSummary {
	s := r.begin("list")
	defer r.finish(s)

	var result []ChipSummary
	for _, path := range r.candidates(s) {
		chip := r.open(s, path)
		if chip == nil {
			continue
		}

		info := chip.GetChipInfo()
		summary := ChipSummary{
			Path:  path,
			Name:  info.Name,
			Label: info.Label,
			Lines: info.Lines,
		}
		if l, ok := chip.(layouter); ok {
			summary.Layout = l.Layout()
		}
		result = append(result, summary)
		chip.Close()
	}

	return result
}
