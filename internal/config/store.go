package config

import (
	"fmt"
	"strings"
)

// Store selects the snapshot persistence driver.
type Store struct {
	Driver StoreDriver `env:"STORE_DRIVER" envDefault:"POSTGRES"`
}

type StoreDriver uint8

const (
	StoreDriverPostgres StoreDriver = iota
	StoreDriverRedis
	StoreDriverMemory
)

// String returns the string representation of the store driver.
func (d StoreDriver) String() string {
	return []string{"POSTGRES", "REDIS", "MEMORY"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StoreDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "POSTGRES":
		*d = StoreDriverPostgres
	case "REDIS":
		*d = StoreDriverRedis
	case "MEMORY":
		*d = StoreDriverMemory
	default:
		return fmt.Errorf("unknown store driver: %s", text)
	}
	return nil
}

func (d StoreDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
