package logging_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/RyanBlaney/rpsorder/logging"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_LevelRouting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := logging.NewLogger(&stdout, &stderr, logging.InfoLevel)

	l.Debug("hidden")
	l.Info("resolved", logging.Fields{"permutation": "0123"})
	l.Warn("unresolved")
	l.Error(errors.New("boom"), "estimate failed")

	assert.NotContains(t, stdout.String(), "hidden", "debug is below the info level")
	assert.Equal(t, "[INFO] resolved permutation=0123\n", stdout.String())
	assert.Equal(t, "[WARN] unresolved\n[ERROR] estimate failed: boom\n", stderr.String())
}

func TestDefaultLogger_WithFieldsSortsKeys(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := logging.NewLogger(&stdout, &stderr, logging.DebugLevel).
		WithFields(logging.Fields{"component": "checker"})

	l.Debug("score", logging.Fields{"pair": "sinP->cosP", "mismatch": 0.25})

	assert.Equal(t, "[DEBUG] score component=checker mismatch=0.25 pair=sinP->cosP\n", stdout.String())
}

func TestDefaultLogger_WithContext(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := logging.NewLogger(&stdout, &stderr, logging.InfoLevel)

	ctx := logging.NewContext(context.Background(), logging.Fields{"run": 7})
	ctx = logging.NewContext(ctx, logging.Fields{"bench": "A"})
	l.WithContext(ctx).Info("start")

	assert.Equal(t, "[INFO] start bench=A run=7\n", stdout.String())

	fields, ok := logging.FieldsFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, fields)
}

func TestSetGlobalLogger_NilFallsBackToNoOp(t *testing.T) {
	prev := logging.GetGlobalLogger()
	defer logging.SetGlobalLogger(prev)

	logging.SetGlobalLogger(nil)
	_, ok := logging.GetGlobalLogger().(*logging.NoOpLogger)
	assert.True(t, ok, "nil logger must be replaced by a no-op logger")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", logging.WarnLevel.String())
	assert.Equal(t, "UNKNOWN", logging.Level(42).String())
}
