package reconcile

import "time"

// Config holds configuration for the reconciliation engine.
type Config struct {
	// WindowHours bounds the calendar fetch: only events updated within
	// the last WindowHours are considered. Defaults to one day.
	WindowHours int `mapstructure:"window_hours" default:"24"`
}

// Window returns the configured fetch window as a duration.
func (c Config) Window() time.Duration {
	hours := c.WindowHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
