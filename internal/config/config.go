package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root of a table configuration file.
type Config struct {
	Tables []TableConfig `hcl:"table,block"`
}

// TableConfig defines one poker table.
type TableConfig struct {
	Name               string   `hcl:"name,label"`
	BuyIn              int      `hcl:"buy_in,optional"`
	SmallBlind         int      `hcl:"small_blind"`
	BigBlind           int      `hcl:"big_blind"`
	Seats              []string `hcl:"seats,optional"`
	TurnTimeoutSeconds int      `hcl:"turn_timeout_seconds,optional"`
}

// Default returns the configuration used when no file is present: one
// two-seat table with a 1000 buy-in and 10/20 blinds.
func Default() *Config {
	return &Config{
		Tables: []TableConfig{
			{
				Name:       "main",
				BuyIn:      1000,
				SmallBlind: 10,
				BigBlind:   20,
				Seats:      []string{"alice", "bob"},
			},
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the
// default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for i := range cfg.Tables {
		if cfg.Tables[i].BuyIn == 0 {
			cfg.Tables[i].BuyIn = cfg.Tables[i].BigBlind * 50
		}
	}

	return &cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	for _, table := range c.Tables {
		if table.SmallBlind <= 0 {
			return fmt.Errorf("table %s: small blind must be positive", table.Name)
		}
		if table.BigBlind <= table.SmallBlind {
			return fmt.Errorf("table %s: big blind must be greater than small blind", table.Name)
		}
		if table.BuyIn <= table.BigBlind {
			return fmt.Errorf("table %s: buy-in must exceed the big blind", table.Name)
		}
		if len(table.Seats) > 0 && len(table.Seats) < 2 {
			return fmt.Errorf("table %s: need at least 2 seats", table.Name)
		}
		if len(table.Seats) > 10 {
			return fmt.Errorf("table %s: at most 10 seats", table.Name)
		}
		if table.TurnTimeoutSeconds < 0 {
			return fmt.Errorf("table %s: turn timeout cannot be negative", table.Name)
		}
	}

	return nil
}
