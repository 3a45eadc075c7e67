package docapproval

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config describes a workflow scenario: the document under approval and
// its signatories. It is loaded from a TOML file by the CLI driver.
type Config struct {
	Title             string   `toml:"title"`
	Author            string   `toml:"author"`
	InvoiceNumber     string   `toml:"invoice_number"`
	InternalApprovers []string `toml:"internal_approvers"`
	ExternalApprovers []string `toml:"external_approvers"`
}

// DefaultConfig returns the stock three-plus-three approver scenario used
// when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Title:             "Q3 budget proposal",
		Author:            "alex",
		InvoiceNumber:     "INV-0001",
		InternalApprovers: []string{"ines", "ivan", "irene"},
		ExternalApprovers: []string{"edgar", "elena", "emil"},
	}
}

// LoadConfig parses the TOML scenario file at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if c.Author == "" {
		return fmt.Errorf("author must not be empty")
	}
	if len(c.InternalApprovers) == 0 && len(c.ExternalApprovers) == 0 {
		return fmt.Errorf("at least one approver is required")
	}
	return nil
}

// Document builds the draft document described by the config.
func (c *Config) Document() *Document {
	return NewDocument(c.Title, c.Author, c.InternalApprovers, c.ExternalApprovers)
}
