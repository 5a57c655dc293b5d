package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pondplan/pondplan/internal/advisor"
	"github.com/pondplan/pondplan/internal/fleet"
	"github.com/pondplan/pondplan/internal/validate"
)

// Default validation ranges applied when a rule is absent from the file.
var (
	DefaultExcavatorCapacityRange = validate.Range{Min: 0.5, Max: 15}
	DefaultCycleTimeRange         = validate.Range{Min: 0.5, Max: 10}
	DefaultTruckCapacityRange     = validate.Range{Min: 5, Max: 30}
	DefaultRoundTripTimeRange     = validate.Range{Min: 5, Max: 120}
	DefaultWorkHoursRange         = validate.Range{Min: 1, Max: 16}
	DefaultPondDimensionRange     = validate.Range{Min: 1, Max: 1000}
)

// Config is the top-level configuration tree. Fields map 1:1 to
// pondplan.example.yaml.
type Config struct {
	Rules      RulesConfig      `yaml:"rules"`
	Project    ProjectConfig    `yaml:"project"`
	Fleet      FleetConfig      `yaml:"fleet"`
	Advisories []AdvisoryConfig `yaml:"advisories"`
}

// RangeConfig is one inclusive min/max bound pair.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RulesConfig holds the six validation ranges. The pond_dimension range is
// shared by pond length, width and depth.
type RulesConfig struct {
	ExcavatorCapacity RangeConfig `yaml:"excavator_capacity"`
	CycleTime         RangeConfig `yaml:"cycle_time"`
	TruckCapacity     RangeConfig `yaml:"truck_capacity"`
	RoundTripTime     RangeConfig `yaml:"round_trip_time"`
	WorkHours         RangeConfig `yaml:"work_hours"`
	PondDimension     RangeConfig `yaml:"pond_dimension"`
}

// ProjectConfig holds the project input defaults used when no scenario
// overrides them.
type ProjectConfig struct {
	ExcavatorCapacity float64 `yaml:"excavator_capacity"`
	CycleTime         float64 `yaml:"cycle_time"`
	TruckCapacity     float64 `yaml:"truck_capacity"`
	RoundTripTime     float64 `yaml:"round_trip_time"`
	WorkHours         float64 `yaml:"work_hours"`
	PondLength        float64 `yaml:"pond_length"`
	PondWidth         float64 `yaml:"pond_width"`
	PondDepth         float64 `yaml:"pond_depth"`
}

// FleetConfig lists the configured equipment.
type FleetConfig struct {
	Excavators []ExcavatorConfig `yaml:"excavators"`
	Trucks     []TruckConfig     `yaml:"trucks"`
}

// ExcavatorConfig describes one excavator. Active defaults to true when
// omitted so listing a machine is enough to put it in service.
type ExcavatorConfig struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	BucketCapacity float64 `yaml:"bucket_capacity"`
	CycleTime      float64 `yaml:"cycle_time"`
	Active         *bool   `yaml:"active"`
}

// TruckConfig describes one truck. Active defaults to true when omitted.
type TruckConfig struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Capacity      float64 `yaml:"capacity"`
	RoundTripTime float64 `yaml:"round_trip_time"`
	Active        *bool   `yaml:"active"`
}

// AdvisoryConfig defines one threshold rule evaluated against results.
type AdvisoryConfig struct {
	Name      string `yaml:"name"`
	Condition string `yaml:"condition"`
	Message   string `yaml:"message"`
}

// Load reads and parses the YAML config file at path.
// Missing ranges are filled with the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with the built-in ranges.
func defaults() *Config {
	return &Config{
		Rules: RulesConfig{
			ExcavatorCapacity: RangeConfig(DefaultExcavatorCapacityRange),
			CycleTime:         RangeConfig(DefaultCycleTimeRange),
			TruckCapacity:     RangeConfig(DefaultTruckCapacityRange),
			RoundTripTime:     RangeConfig(DefaultRoundTripTimeRange),
			WorkHours:         RangeConfig(DefaultWorkHoursRange),
			PondDimension:     RangeConfig(DefaultPondDimensionRange),
		},
	}
}

// validateConfig checks structural constraints so the validation engine can
// rely on well-formed ranges downstream.
func validateConfig(cfg *Config) error {
	ranges := []struct {
		name string
		r    RangeConfig
	}{
		{"excavator_capacity", cfg.Rules.ExcavatorCapacity},
		{"cycle_time", cfg.Rules.CycleTime},
		{"truck_capacity", cfg.Rules.TruckCapacity},
		{"round_trip_time", cfg.Rules.RoundTripTime},
		{"work_hours", cfg.Rules.WorkHours},
		{"pond_dimension", cfg.Rules.PondDimension},
	}
	for _, rng := range ranges {
		if rng.r.Min <= 0 {
			return &validate.ConfigError{
				Message: fmt.Sprintf("rules.%s: min must be positive, got %g", rng.name, rng.r.Min),
			}
		}
		if rng.r.Min >= rng.r.Max {
			return &validate.ConfigError{
				Message: fmt.Sprintf("rules.%s: min %g must be below max %g", rng.name, rng.r.Min, rng.r.Max),
			}
		}
	}
	for i, a := range cfg.Advisories {
		if a.Condition == "" {
			return fmt.Errorf("advisories[%d] %q: condition is required", i, a.Name)
		}
	}
	return nil
}

// ValidationRules converts the configured ranges to the engine's rule set.
func (c *Config) ValidationRules() validate.Rules {
	return validate.Rules{
		ExcavatorCapacity: validate.Range(c.Rules.ExcavatorCapacity),
		CycleTime:         validate.Range(c.Rules.CycleTime),
		TruckCapacity:     validate.Range(c.Rules.TruckCapacity),
		RoundTripTime:     validate.Range(c.Rules.RoundTripTime),
		WorkHours:         validate.Range(c.Rules.WorkHours),
		PondDimension:     validate.Range(c.Rules.PondDimension),
	}
}

// ProjectInputs converts the project defaults to engine inputs.
func (c *Config) ProjectInputs() validate.ProjectInputs {
	return validate.ProjectInputs{
		ExcavatorCapacity: c.Project.ExcavatorCapacity,
		CycleTime:         c.Project.CycleTime,
		TruckCapacity:     c.Project.TruckCapacity,
		RoundTripTime:     c.Project.RoundTripTime,
		WorkHours:         c.Project.WorkHours,
		PondLength:        c.Project.PondLength,
		PondWidth:         c.Project.PondWidth,
		PondDepth:         c.Project.PondDepth,
	}
}

// BuildFleet assembles the configured equipment into a Fleet. Duplicate or
// empty IDs surface as errors from the collection itself.
func (c *Config) BuildFleet() (*fleet.Fleet, error) {
	fl := fleet.New()
	for _, ex := range c.Fleet.Excavators {
		if err := fl.AddExcavator(fleet.Excavator{
			ID:             ex.ID,
			Name:           ex.Name,
			BucketCapacity: ex.BucketCapacity,
			CycleTime:      ex.CycleTime,
			Active:         activeOrDefault(ex.Active),
		}); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	for _, tr := range c.Fleet.Trucks {
		if err := fl.AddTruck(fleet.Truck{
			ID:            tr.ID,
			Name:          tr.Name,
			Capacity:      tr.Capacity,
			RoundTripTime: tr.RoundTripTime,
			Active:        activeOrDefault(tr.Active),
		}); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return fl, nil
}

// AdvisorRules converts the configured advisories to advisor rules.
func (c *Config) AdvisorRules() []advisor.Rule {
	rules := make([]advisor.Rule, 0, len(c.Advisories))
	for _, a := range c.Advisories {
		rules = append(rules, advisor.Rule{
			Name:      a.Name,
			Condition: a.Condition,
			Message:   a.Message,
		})
	}
	return rules
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
