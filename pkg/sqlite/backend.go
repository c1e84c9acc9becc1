// Package sqlite provides the public API for the SQLite key-value backend.
// This package exposes the factory function for opening SQLite stores
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/dailies/internal/sqlite"
	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Open attaches a SQLite store in dataDir. The caller must Close it.
//
// Example:
//
//	kv, err := sqlite.Open(".dailies-db")
//	if err != nil {
//	    return err
//	}
//	defer kv.Close()
func Open(dataDir string) (types.KVStore, error) {
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, err
	}
	return b, nil
}
