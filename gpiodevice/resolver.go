package gpiodevice

import (
	"github.com/BertoldVdb/gpiodevice/diagnostics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrorChipNotFound is returned, or wrapped by a *diagnostics.Digest, when no chip matched.
	ErrorChipNotFound = Error("suitable gpiochip not found")
	ErrorNoLabels     = Error("no chip labels given")
	ErrorNoPins       = Error("no pin names given")
	ErrorDuplicatePin = Error("duplicate pin label")
)

const (
	summaryByLabel = "suitable gpiochip device not found!"
	summaryByPins  = "suitable gpiochip not found!"
)

// Resolver finds gpiochip devices. A Resolver does no locking, callers
// that share one must not use it concurrently.
type Resolver struct {
	cfg Config
}

type scan struct {
	id  string
	log *logrus.Entry
	c   *diagnostics.Collector
}

func New(cfg Config) *Resolver {
	cfg.setDefaults()
	return &Resolver{cfg: cfg}
}

func (r *Resolver) begin(op string) *scan {
	id := uuid.New().String()
	log := r.cfg.Logger.WithFields(logrus.Fields{
		"scan": id,
		"op":   op,
	})

	return &scan{
		id:  id,
		log: log,
		c:   diagnostics.NewCollector(log),
	}
}

func (r *Resolver) finish(s *scan) {
	if r.cfg.Collector != nil {
		r.cfg.Collector.Merge(s.c)
	}
}

func (r *Resolver) found(s *scan, path string, chip Chip) (Chip, error) {
	r.finish(s)
	s.log.WithField("path", path).WithField("label", chip.GetChipInfo().Label).Info("Found gpiochip")
	return chip, nil
}

// fail is called once every candidate was rejected.
func (r *Resolver) fail(s *scan, summary string) (Chip, error) {
	r.finish(s)
	s.log.WithField("events", s.c.Len()).Warn(summary)

	_, err := s.c.RaiseIfFatal(r.cfg.hardFail(), summary)
	digest, ok := err.(*diagnostics.Digest)
	if !ok {
		return nil, ErrorChipNotFound
	}

	digest.ScanID = s.id
	digest.Cause = ErrorChipNotFound

	if *r.cfg.Debug {
		return nil, digest
	}

	digest.Fprint(r.cfg.Stderr)
	r.cfg.Exit(1)

	return nil, digest
}

// FindChipByLabel returns the first chip whose label is one of labels and on
// which all pins are available. A chip with the right label but busy pins is
// skipped, and the search continues with the next device.
func (r *Resolver) FindChipByLabel(labels []string, pins PinSpec) (Chip, error) {
	labels = normalizeLabels(labels)
	if len(labels) == 0 {
		return nil, ErrorNoLabels
	}
	if err := pins.validate(); err != nil {
		return nil, err
	}

	s := r.begin("label")

	for _, path := range r.candidates(s) {
		chip := r.open(s, path)
		if chip == nil {
			continue
		}

		label := chip.GetChipInfo().Label
		if !contains(labels, label) {
			s.c.NotFound("%s: this is not the GPIO we're looking for! (%s)", path, label)
			chip.Close()
			continue
		}

		if checkPins(chip, pins, false, s.c) {
			return r.found(s, path, chip)
		}

		chip.Close()
	}

	return r.fail(s, summaryByLabel)
}

// FindChipByPins returns the first chip that has a line for every name in
// pins. Unless ignoreClaimed is set none of these lines may be in use. Each
// element of pins may be a comma separated list.
func (r *Resolver) FindChipByPins(pins []string, ignoreClaimed bool) (Chip, error) {
	names := ParseNames(pins...)
	if len(names) == 0 {
		return nil, ErrorNoPins
	}

	s := r.begin("pins")

	for _, path := range r.candidates(s) {
		chip := r.open(s, path)
		if chip == nil {
			continue
		}

		label := chip.GetChipInfo().Label
		failures := s.c.Failures()

		for _, name := range names {
			offset, err := chip.FindLineByName(name)
			if err != nil {
				s.c.NotFound("%s: not found - %s (%s)!", name, path, label)
				continue
			}
			s.c.Found("%s: (line %d) found - %s (%s)!", name, offset, path, label)

			if ignoreClaimed {
				continue
			}

			info, err := chip.GetLineInfo(offset)
			if err != nil {
				s.c.Error("%s: (line %d) %v - %s (%s)", name, offset, err, path, label)
				continue
			}

			if info.Used() {
				s.c.Error("%s: (line %d, %s) currently claimed by %s", name, offset, info.Name, info.Consumer)
			}
		}

		if s.c.Failures() == failures {
			return r.found(s, path, chip)
		}

		chip.Close()
	}

	return r.fail(s, summaryByPins)
}

// FindChipByPlatform asks the platform probes which labels to expect and
// then behaves like FindChipByLabel without pins. An unrecognised platform
// is returned as is, it never produces a digest.
func (r *Resolver) FindChipByPlatform() (Chip, error) {
	labels, err := r.cfg.Platform()
	if err != nil {
		r.cfg.Logger.WithError(err).Warn("Platform detection failed")
		return nil, err
	}

	r.cfg.Logger.WithField("labels", labels).Debug("Platform detected")
	return r.FindChipByLabel(labels, nil)
}

// CheckPinsAvailable runs the package level CheckPinsAvailable with a fresh
// scan ID in the log fields, and appends the resulting events to
// Config.Collector.
func (r *Resolver) CheckPinsAvailable(chip Chip, pins PinSpec) bool {
	s := r.begin("check")
	defer r.finish(s)

	return checkPins(chip, pins, false, s.c)
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
