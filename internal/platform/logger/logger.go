package logger

import (
	"io"
	"log/slog"
	"strings"

	dErrors "actionkernel/pkg/domain-errors"
)

// New builds a structured logger writing to w. Level is one of debug, info,
// warn or error; format is json or text.
//
// Errors: CodeInvalidInput for an unknown level or format.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid log level: "+level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "json", "":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid log format: "+format)
	}
}
