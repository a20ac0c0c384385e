package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

// Server error codes that mean "try again later" rather than a broken query.
const (
	codeTimeoutExceeded            int32 = 159
	codeReadonly                   int32 = 164
	codeTooManySimultaneousQueries int32 = 202
	codeTableIsReadOnly            int32 = 242
	codeDeadlockAvoided            int32 = 473
)

// unavailable marks err with model.ErrStoreUnavailable when ClickHouse is overloaded, read-only or unreachable.
func unavailable(err error) error {
	if err == nil || errors.Is(err, model.ErrStoreUnavailable) {
		return err
	}
	if isTransient(err) {
		return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	return err
}

func isTransient(err error) bool {
	var exception *clickhouse.Exception
	if errors.As(err, &exception) {
		switch exception.Code {
		case codeTimeoutExceeded, codeReadonly, codeTooManySimultaneousQueries, codeTableIsReadOnly, codeDeadlockAvoided:
			return true
		}
		return false
	}

	if errors.Is(err, clickhouse.ErrAcquireConnTimeout) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
