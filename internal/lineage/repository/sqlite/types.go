package sqlite

import "time"

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
