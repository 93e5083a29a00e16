// Package cfgstore persists host settings through spf13/viper.
//
// It implements devguard.ConfigStore over a single YAML settings file, so
// the corrected configuration written by the fail-fast sequence survives
// into the next launch.
package cfgstore

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/gogpu/devguard"
)

// Store is a viper-backed settings store bound to one file.
type Store struct {
	v    *viper.Viper
	path string
}

var _ devguard.ConfigStore = (*Store)(nil)

// Open loads the settings file at path, creating an empty in-memory store
// when the file does not exist yet. Any other read failure (unreadable or
// malformed file) is an error: silently ignoring a corrupt settings file
// would let a later Save destroy settings the user still has.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("cfgstore: read %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// Path returns the file the store reads from and writes to.
func (s *Store) Path() string { return s.path }

// GetBool reads a boolean setting; missing keys read as false.
func (s *Store) GetBool(key string) bool { return s.v.GetBool(key) }

// SetBool updates a boolean setting in memory. Call Save to persist it.
func (s *Store) SetBool(key string, value bool) { s.v.Set(key, value) }

// Save writes the in-memory settings back to the file.
func (s *Store) Save() error {
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("cfgstore: write %s: %w", s.path, err)
	}
	return nil
}
