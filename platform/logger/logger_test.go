package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		out = append(out, line)
	}
	return out
}

func TestWithContextAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-9")
	ctx = context.WithValue(ctx, OfferIDKey, "offer-1")
	log.WithContext(ctx).Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-9", lines[0]["request_id"])
	assert.Equal(t, "offer-1", lines[0]["offer_id"])
}

func TestScoringRunLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.ScoringRun("offer-1", 3, 3, 0, 0, time.Second)
	log.ScoringRun("offer-1", 3, 1, 0, 2, time.Second)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, float64(2), lines[1]["failed"])
	assert.Equal(t, float64(1000), lines[1]["elapsed_ms"])
}

func TestProductionDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("production", &buf).AICall("gemini", "lead-1", "ok", time.Millisecond)
	assert.Zero(t, buf.Len())

	buf.Reset()
	NewWithWriter("development", &buf).DatabaseError("insert score", errors.New("boom"))
	assert.Contains(t, buf.String(), "database_error")
}
