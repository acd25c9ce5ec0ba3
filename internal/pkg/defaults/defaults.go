// Package defaults supplies platform-specific fallback values for target
// model attributes the generic data format does not carry.
package defaults

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// Platform identifies the modeling tool a conversion targets. Fallback
// values differ between platforms because each tool ships its own typical
// equipment data.
type Platform string

const (
	PowerFactory Platform = "POWERFACTORY"
	RSCAD        Platform = "RSCAD"
	Simscape     Platform = "SIMSCAPE"
)

// Policy maps attribute names to fallback values, per platform.
type Policy struct {
	tables map[Platform]map[string]float64
}

// builtin holds the compiled-in fallback table shared by all platforms.
// Platform tables loaded from file shadow these entries.
var builtin = map[string]float64{
	"vk_percent":                 12.0,
	"tap_set_vm_pu":              1.0,
	"mag0_percent":               100.0,
	"mag0_rx":                    0.0,
	"si0_hv_partial":             0.9,
	"alpha":                      0.00403,
	"temperature_degree_celsius": 20.0,
	"r0_ohm_per_km":              0.1,
	"x0_ohm_per_km":              0.3,
}

// NewPolicy returns a Policy with no platform overrides; lookups fall
// through to the built-in table.
func NewPolicy() *Policy {
	return &Policy{tables: make(map[Platform]map[string]float64)}
}

// LoadFile merges a YAML table of per-platform overrides into the policy.
// The file maps platform identifiers to attribute/value pairs.
func (p *Policy) LoadFile(path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	overrides := make(map[Platform]map[string]float64)
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return err
	}
	for platform, table := range overrides {
		if _, exists := p.tables[platform]; !exists {
			p.tables[platform] = make(map[string]float64)
		}
		for attr, value := range table {
			p.tables[platform][attr] = value
		}
	}
	return nil
}

// Set overrides a single attribute for a platform.
func (p *Policy) Set(platform Platform, attr string, value float64) {
	if _, exists := p.tables[platform]; !exists {
		p.tables[platform] = make(map[string]float64)
	}
	p.tables[platform][attr] = value
}

// Default returns the fallback value for attr on the given platform. An
// attribute with no entry in either the platform table or the built-in
// table is an error; callers must not substitute zero.
func (p *Policy) Default(attr string, platform Platform) (float64, error) {
	if table, exists := p.tables[platform]; exists {
		if value, exists := table[attr]; exists {
			return value, nil
		}
	}
	if value, exists := builtin[attr]; exists {
		return value, nil
	}
	return 0, fmt.Errorf("no default for attribute %q on platform %s", attr, platform)
}
