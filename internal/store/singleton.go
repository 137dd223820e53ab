package store

import (
	"github.com/btoksoz/tatli-panel/pkg/config"
)

var records *Records

// Init opens the pebble-backed record store from configuration and loads
// all collections.
func Init(cfg *config.Config) error {
	backend, err := NewPebbleStore(cfg.Data.Dir)
	if err != nil {
		return err
	}
	r, err := Open(backend)
	if err != nil {
		backend.Close()
		return err
	}
	records = r
	return nil
}

// Get returns the record store instance
func Get() *Records {
	return records
}

// Use installs a pre-opened record store, for tests and embedding
func Use(r *Records) {
	records = r
}
