package platform

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// ProbeTable is the on-disk format for extra probes:
//
//	probes:
//	  - name: my-board
//	    file: /proc/device-tree/model
//	    prefix: My Board rev2
//	    labels: [gpio-mybrd]
type ProbeTable struct {
	Probes []Probe `yaml:"probes"`
}

func (p *Probe) validate() error {
	if p.Name == "" {
		return fmt.Errorf("probe without name")
	}
	if p.File == "" {
		return fmt.Errorf("probe %s: file not specified", p.Name)
	}
	if p.Prefix == "" {
		return fmt.Errorf("probe %s: prefix not specified", p.Name)
	}
	if len(p.Labels) == 0 {
		return fmt.Errorf("probe %s: no labels", p.Name)
	}
	return nil
}

// ParseProbes decodes and validates a YAML probe table.
func ParseProbes(data []byte) ([]Probe, error) {
	var table ProbeTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse probe table: %w", err)
	}

	for i := range table.Probes {
		if err := table.Probes[i].validate(); err != nil {
			return nil, err
		}
	}

	return table.Probes, nil
}

// LoadProbes reads a YAML probe table from path.
func LoadProbes(path string) ([]Probe, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProbes(data)
}

// WithDefaults returns probes followed by DefaultProbes, so user supplied
// probes take precedence.
func WithDefaults(probes []Probe) []Probe {
	out := make([]Probe, 0, len(probes)+len(DefaultProbes))
	out = append(out, probes...)
	return append(out, DefaultProbes...)
}
