package calendar

import "time"

// Config tunes the aggregator.
type Config struct {
	Workers         int           // per-date fan-out width
	CacheTTL        time.Duration // yearly cache lifetime
	DefaultMinGrade int           // applied when a query omits minGrade
	DefaultLimit    int           // applied when a best-for-category query omits limit
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 12 * time.Hour
	}
	if c.DefaultMinGrade <= 0 || c.DefaultMinGrade > 3 {
		c.DefaultMinGrade = 3
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = 10
	}
	return c
}
