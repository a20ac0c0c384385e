package sqlite

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/mattn/go-sqlite3"
)

// unavailable marks err with model.ErrStoreUnavailable while the file is locked by a writer.
func unavailable(err error) error {
	if err == nil || errors.Is(err, model.ErrStoreUnavailable) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
			return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
		}
	}
	return err
}
