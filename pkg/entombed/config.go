package entombed

import (
	"fmt"
	"strconv"
)

// Config controls a single generation run.
type Config struct {
	Columns   int
	Rows      int
	Symmetric bool
	Table     Table
	Seed      int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Columns:   39,
		Rows:      25,
		Symmetric: true,
		Table:     DefaultTable(),
	}
}

// FromMap populates a Config from a string map. Unparseable or out of range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	for _, key := range []string{"w", "columns"} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Columns = parsed
			}
		}
	}
	for _, key := range []string{"h", "rows"} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				c.Rows = parsed
			}
		}
	}
	if v, ok := cfg["symmetric"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Symmetric = parsed
		}
	}
	if v, ok := cfg["rules"]; ok {
		if parsed, err := ParseTable(v); err == nil {
			c.Table = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParseMap is the strict counterpart of FromMap: unknown keys and values that
// do not parse or fail Validate are reported instead of falling back to the
// defaults.
func ParseMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	for key, v := range cfg {
		var err error
		switch key {
		case "w", "columns":
			c.Columns, err = strconv.Atoi(v)
			if err != nil {
				err = fmt.Errorf("%w: %s=%q", ErrInvalidWidth, key, v)
			}
		case "h", "rows":
			c.Rows, err = strconv.Atoi(v)
			if err != nil {
				err = fmt.Errorf("%w: %s=%q", ErrInvalidDimensions, key, v)
			}
		case "symmetric":
			c.Symmetric, err = strconv.ParseBool(v)
		case "rules":
			c.Table, err = ParseTable(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		default:
			err = fmt.Errorf("unknown parameter %q", key)
		}
		if err != nil {
			return Config{}, fmt.Errorf("parameter %s: %w", key, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("%w: columns=%d", ErrInvalidWidth, c.Columns)
	}
	if c.Rows < 0 {
		return fmt.Errorf("%w: rows=%d", ErrInvalidDimensions, c.Rows)
	}
	for i, d := range c.Table {
		if !d.Valid() {
			return fmt.Errorf("%w: entry %d has value %d", ErrMalformedTable, i, d)
		}
	}
	return nil
}

// DisplayWidth returns the rendered row width, doubled for symmetric mazes.
func (c Config) DisplayWidth() int {
	if c.Symmetric {
		return 2 * c.Columns
	}
	return c.Columns
}
