// Package observe builds logging callbacks for the side-effect hooks of
// try.Try: DoIfSuccess, DoIfFailed and OnFailure.
package observe

import (
	"go.uber.org/zap"

	"github.com/memoizr/try-monad/internal/logging"
	"github.com/memoizr/try-monad/pkg/try"
)

//go:generate mockgen -source observe.go -destination observe_mocks.go -package observe

// Logger is the subset of *zap.Logger the hooks write to.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// Success logs the value of a successful Try at info level.
func Success[T any](l Logger, msg string) func(v T) {
	return func(v T) {
		l.Info(msg, logging.Any("value", v))
	}
}

// Failed logs that a Try failed, for use with DoIfFailed.
func Failed(l Logger, msg string) func() {
	return func() {
		l.Error(msg)
	}
}

// Failure logs the error of a failed Try, for use with OnFailure.
func Failure(l Logger, msg string) func(err error) {
	return func(err error) {
		l.Error(msg, logging.Error(err))
	}
}

// Outcome logs whichever variant t holds and returns t.
func Outcome[T any](l Logger, t try.Try[T], msg string) try.Try[T] {
	id := logging.ID(t.ID())
	return t.
		DoIfSuccess(func(v T) {
			l.Debug(msg, id, logging.Any("value", v))
		}).
		OnFailure(func(err error) {
			l.Error(msg, id, logging.Error(err))
		})
}
