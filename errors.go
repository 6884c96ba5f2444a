package i2cscan

import "fmt"

// OpenError is returned when the I²C controller cannot be claimed.
type OpenError struct {
	Bus string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("i2cscan: opening bus %q: %v", e.Bus, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when the controller rejects a speed or timeout
// setting.
type ConfigError struct {
	Setting string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("i2cscan: configuring %s: %v", e.Setting, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
