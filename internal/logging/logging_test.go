package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_WritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core))

	id := uuid.New()
	l.With(String("stage", "parse")).Error("failed", Error(errors.New("bad")), Int("n", int8(3)), ID(id))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "failed", entry.Message)
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "parse", fields["stage"])
	assert.Equal(t, "bad", fields["error"])
	assert.Equal(t, int64(3), fields["n"])
	assert.Equal(t, id.String(), fields["id"])
}

func TestFromContext(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	l := Wrap(zap.New(core))

	ctx := l.WithContext(context.Background())
	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
	assert.Same(t, New(), FromContext(context.Background()))
}
