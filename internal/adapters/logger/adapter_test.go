package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedCall captures one delegated log call.
type recordedCall struct {
	level  string
	msg    string
	err    error
	fields map[string]any
}

// mockLogger implements Logger interface for testing.
type mockLogger struct {
	calls []recordedCall
}

func (m *mockLogger) Info(_ context.Context, msg string, fields map[string]any) {
	m.calls = append(m.calls, recordedCall{level: "info", msg: msg, fields: fields})
}

func (m *mockLogger) Debug(_ context.Context, msg string, fields map[string]any) {
	m.calls = append(m.calls, recordedCall{level: "debug", msg: msg, fields: fields})
}

func (m *mockLogger) Warn(_ context.Context, msg string, fields map[string]any) {
	m.calls = append(m.calls, recordedCall{level: "warn", msg: msg, fields: fields})
}

func (m *mockLogger) Error(_ context.Context, msg string, err error, fields map[string]any) {
	m.calls = append(m.calls, recordedCall{level: "error", msg: msg, err: err, fields: fields})
}

func TestZapAdapter_DelegatesEachLevel(t *testing.T) {
	ctx := context.Background()
	fields := map[string]any{"key": "value"}

	tests := []struct {
		level string
		call  func(a *ZapAdapter)
	}{
		{level: "info", call: func(a *ZapAdapter) { a.Info(ctx, "msg", fields) }},
		{level: "debug", call: func(a *ZapAdapter) { a.Debug(ctx, "msg", fields) }},
		{level: "warn", call: func(a *ZapAdapter) { a.Warn(ctx, "msg", fields) }},
		{level: "error", call: func(a *ZapAdapter) { a.Error(ctx, "msg", assert.AnError, fields) }},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			mock := &mockLogger{}
			adapter := NewZapAdapter(mock)

			tt.call(adapter)

			require.Len(t, mock.calls, 1)
			got := mock.calls[0]
			assert.Equal(t, tt.level, got.level)
			assert.Equal(t, "msg", got.msg)
			assert.Equal(t, fields, got.fields)
			if tt.level == "error" {
				assert.Equal(t, assert.AnError, got.err)
			}
		})
	}
}
