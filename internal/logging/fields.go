package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func Any[S ~string](key S, v any) Field {
	return zap.Any(string(key), v)
}

func Int[S ~string, T constraints.Signed](key S, v T) Field {
	return zap.Int64(string(key), int64(v))
}

func String[U, V ~string](key U, v V) Field {
	return zap.String(string(key), string(v))
}

func Error(err error) Field {
	return zap.Error(err)
}

// ID renders a Try identifier.
func ID(id uuid.UUID) Field {
	return zap.Stringer("id", id)
}
