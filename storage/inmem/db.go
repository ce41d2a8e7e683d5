package inmemdb

import (
	"sync"

	"github.com/acadinfo/backend/core/account"
)

type (
	DB struct {
		accounts *accountTable

		// PersistFunc stands in for the flush a durable store performs after
		// every mutation; tests point it at a failing func to exercise
		// store-unavailable paths. Nil means flushes always succeed.
		PersistFunc func() error
	}

	accountTable struct {
		sync.RWMutex
		table map[string]*account.Account // keyed by username
	}
)

func Open() (*DB, error) {
	db := &DB{
		accounts: &accountTable{table: make(map[string]*account.Account)},
	}
	return db, nil
}

func (db *DB) persist() error {
	if db.PersistFunc == nil {
		return nil
	}
	return db.PersistFunc()
}
