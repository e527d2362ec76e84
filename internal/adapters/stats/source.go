package stats

import (
	"bytes"
	"context"
	"os/exec"
)

// Logger defines the logging interface for the stats adapter.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
}

// ExecSource implements domain.UsageSource by invoking the configured
// usage-report command and capturing its stdout.
type ExecSource struct {
	argv   []string
	logger Logger
}

// NewExecSource creates an ExecSource for the given command argv.
func NewExecSource(argv []string, log Logger) *ExecSource {
	return &ExecSource{argv: argv, logger: log}
}

// Fetch runs the command. A missing binary or a non-zero exit yields "",
// which callers treat as "source unavailable".
func (s *ExecSource) Fetch(ctx context.Context) string {
	if len(s.argv) == 0 {
		return ""
	}

	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		s.logger.Warn(ctx, "usage command failed", map[string]interface{}{
			"command": s.argv,
			"error":   err.Error(),
		})
		return ""
	}
	return stdout.String()
}
