// Package persist loads and saves the link collection under a single key of
// a durable key-value store.
package persist

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/dailies/internal/codec"
	"github.com/mesh-intelligence/dailies/internal/logging"
	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Reasons logged when the defaults are written back.
const (
	reasonAbsent  = "absent"
	reasonCorrupt = "corrupt"
	reasonEmpty   = "empty"
)

// Adapter reads and writes the collection blob. Corrupt or missing values
// are replaced with the default links; only backend failures are returned.
type Adapter struct {
	kv     types.KVStore
	key    string
	logger *zap.Logger
}

// NewAdapter returns an adapter over kv using types.StorageKey. A nil
// logger discards output.
func NewAdapter(kv types.KVStore, logger *zap.Logger) *Adapter {
	return &Adapter{
		kv:     kv,
		key:    types.StorageKey,
		logger: logging.OrNop(logger).With(zap.String(logging.FieldKey, types.StorageKey)),
	}
}

// Load returns the persisted collection. When the key is absent, the value
// does not decode as a valid collection, or the collection is empty, the
// defaults are written back and returned. A valid value is returned as-is
// without a write.
func (a *Adapter) Load() (types.Collection, error) {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}
	if !ok {
		a.logger.Info("no stored links, seeding defaults", zap.String(logging.FieldReason, reasonAbsent))
		return a.reseed()
	}

	links, err := codec.Decode(raw)
	if err != nil {
		a.logger.Warn("stored links are corrupt, restoring defaults",
			zap.String(logging.FieldReason, reasonCorrupt),
			zap.Error(err),
		)
		return a.reseed()
	}
	if len(links) == 0 {
		a.logger.Info("stored links are empty, seeding defaults", zap.String(logging.FieldReason, reasonEmpty))
		return a.reseed()
	}

	a.logger.Debug("loaded links", zap.Int(logging.FieldCount, len(links)))
	return links, nil
}

// Save writes the whole collection in one Put.
func (a *Adapter) Save(c types.Collection) error {
	data, err := codec.Encode(c)
	if err != nil {
		return fmt.Errorf("save links: %w", err)
	}
	if err := a.kv.Put(a.key, data); err != nil {
		return fmt.Errorf("save links: %w", err)
	}
	a.logger.Debug("saved links", zap.Int(logging.FieldCount, len(c)))
	return nil
}

func (a *Adapter) reseed() (types.Collection, error) {
	links := types.DefaultLinks()
	if err := a.Save(links); err != nil {
		return nil, err
	}
	return links, nil
}
