// Package config loads and validates the YAML scenario files that drive a
// projection: product parameters, decrement assumptions, discounting,
// investment path settings and the simulation horizon.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/product"
	"github.com/lifesim/lifesim/internal/rates"
)

// Configuration is the top-level scenario file.
type Configuration struct {
	Simulation  SimulationConfig `yaml:"simulation"`
	ModelPoints string           `yaml:"model_points"`
	Product     ProductConfig    `yaml:"product"`
	Mortality   AssumptionConfig `yaml:"mortality"`
	Lapse       AssumptionConfig `yaml:"lapse"`
}

// SimulationConfig sets the horizon and the seed used when an investment
// return path has to be generated.
type SimulationConfig struct {
	Months int   `yaml:"months"`
	Seed   int64 `yaml:"seed"`
}

// ProductConfig holds the per-product-family parameters. Term-life uses the
// discount curve; account-based products use the flat discount rate, fee and
// cost-of-insurance rates, and the investment section.
type ProductConfig struct {
	Kind                  string           `yaml:"kind"`
	PremiumLoad           float64          `yaml:"premium_load"`
	AcquisitionCost       float64          `yaml:"acquisition_cost"`
	AnnualMaintenanceCost float64          `yaml:"annual_maintenance_cost"`
	CommissionRate        float64          `yaml:"commission_rate"`
	InflationRate         float64          `yaml:"inflation_rate"`
	DiscountCurve         []float64        `yaml:"discount_curve"`
	DiscountRate          float64          `yaml:"discount_rate"`
	MaintenanceFeeRate    float64          `yaml:"maintenance_fee_rate"`
	CostOfInsuranceRate   float64          `yaml:"cost_of_insurance_rate"`
	Investment            InvestmentConfig `yaml:"investment"`
}

// InvestmentConfig either supplies an explicit per-month return path or the
// drift/volatility for a generated log-normal one.
type InvestmentConfig struct {
	Returns    []float64 `yaml:"returns"`
	Drift      float64   `yaml:"drift"`
	Volatility float64   `yaml:"volatility"`
}

// AssumptionConfig describes one decrement provider. Exactly one of the
// variants must be set: a constant rate, a rate table, or a per-month
// schedule.
type AssumptionConfig struct {
	Kind     string      `yaml:"kind"`
	Rate     float64     `yaml:"rate"`
	MinAge   int         `yaml:"min_age"`
	Rows     [][]float64 `yaml:"rows"`
	Schedule []float64   `yaml:"schedule"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file and validates
// it. Validation failures are fatal: a malformed assumption invalidates the
// whole run.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the scenario before any model is built.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if config.Simulation.Months <= 0 {
		return fmt.Errorf("simulation.months must be positive, got %d", config.Simulation.Months)
	}
	switch config.Product.Kind {
	case "term_life", "account_based":
	case "":
		return fmt.Errorf("product.kind is required")
	default:
		return fmt.Errorf("unknown product kind %q", config.Product.Kind)
	}
	if err := ip.validateAssumption("mortality", &config.Mortality); err != nil {
		return err
	}
	if err := ip.validateAssumption("lapse", &config.Lapse); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateAssumption(name string, ac *AssumptionConfig) error {
	switch ac.Kind {
	case "constant", "":
	case "table":
		if len(ac.Rows) == 0 {
			return fmt.Errorf("%s: table assumption needs rows", name)
		}
	case "schedule":
		if len(ac.Schedule) == 0 {
			return fmt.Errorf("%s: schedule assumption needs entries", name)
		}
	default:
		return fmt.Errorf("%s: unknown assumption kind %q", name, ac.Kind)
	}
	return nil
}

// BuildProvider constructs the rate provider an assumption describes.
// Malformed tables fail here.
func (ac *AssumptionConfig) BuildProvider() (rates.Provider, error) {
	switch ac.Kind {
	case "constant", "":
		return rates.Constant{Rate: ac.Rate}, nil
	case "table":
		return rates.NewTable(ac.MinAge, ac.Rows)
	case "schedule":
		return rates.Schedule{Rates: ac.Schedule}, nil
	default:
		return nil, fmt.Errorf("unknown assumption kind %q", ac.Kind)
	}
}

// BuildModel assembles the product model the configuration describes,
// generating an investment return path when an account-based product does
// not supply one.
func (c *Configuration) BuildModel() (product.Model, error) {
	mortality, err := c.Mortality.BuildProvider()
	if err != nil {
		return nil, fmt.Errorf("mortality: %w", err)
	}
	lapse, err := c.Lapse.BuildProvider()
	if err != nil {
		return nil, fmt.Errorf("lapse: %w", err)
	}

	switch c.Product.Kind {
	case "term_life":
		return &product.TermLife{
			MortalityModel:    mortality,
			LapseModel:        lapse,
			Load:              c.Product.PremiumLoad,
			Acquisition:       c.Product.AcquisitionCost,
			AnnualMaintenance: c.Product.AnnualMaintenanceCost,
			Commission:        c.Product.CommissionRate,
			Inflation:         c.Product.InflationRate,
			Discount:          product.DiscountCurve(c.Product.DiscountCurve),
		}, nil
	case "account_based":
		returns := c.Product.Investment.Returns
		if len(returns) == 0 {
			returns = product.GenerateReturns(
				c.Simulation.Months,
				c.Product.Investment.Drift,
				c.Product.Investment.Volatility,
				c.Simulation.Seed,
			)
		}
		return &product.AccountBased{
			MortalityModel:      mortality,
			LapseModel:          lapse,
			Load:                c.Product.PremiumLoad,
			MaintenanceFeeRate:  c.Product.MaintenanceFeeRate,
			CostOfInsuranceRate: c.Product.CostOfInsuranceRate,
			Commission:          c.Product.CommissionRate,
			Returns:             returns,
			Acquisition:         c.Product.AcquisitionCost,
			AnnualMaintenance:   c.Product.AnnualMaintenanceCost,
			Inflation:           c.Product.InflationRate,
			DiscountRate:        c.Product.DiscountRate,
		}, nil
	default:
		return nil, fmt.Errorf("unknown product kind %q", c.Product.Kind)
	}
}

// ValidateModelPoints cross-checks the loaded groups against tabular
// assumptions: a policy whose issue age falls below a table's minimum
// supported age is a configuration error and rejects the run up front.
func (c *Configuration) ValidateModelPoints(m product.Model, groups []domain.PolicyGroup) error {
	check := func(name string, pr rates.Provider) error {
		table, ok := pr.(*rates.Table)
		if !ok {
			return nil
		}
		for _, g := range groups {
			if err := table.CheckAge(g.Policy.IssueAge); err != nil {
				return fmt.Errorf("%s table: model point %d: %w", name, g.PointID, err)
			}
		}
		return nil
	}
	if err := check("mortality", m.Mortality()); err != nil {
		return err
	}
	return check("lapse", m.Lapse())
}
