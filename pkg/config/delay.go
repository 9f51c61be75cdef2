package config

import (
	"fmt"
	"strconv"
	"time"
)

// MaxDelay is the longest accepted hover delay.
const MaxDelay = 10 * time.Second

// Delay is a hover delay written as "150ms", "1s" or a bare number of
// milliseconds.
type Delay struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Delay) UnmarshalText(text []byte) error {
	s := string(text)
	var v time.Duration
	if ms, err := strconv.Atoi(s); err == nil {
		v = time.Duration(ms) * time.Millisecond
	} else if s != "" {
		if v, err = time.ParseDuration(s); err != nil {
			return fmt.Errorf("delay %q: %w", s, err)
		}
	}
	if v < 0 || v > MaxDelay {
		return fmt.Errorf("delay %q outside 0..%s", s, MaxDelay)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Delay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
