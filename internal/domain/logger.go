package domain

import (
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a development-style console logger writing to stderr, leaving stdout to the report tools.
func NewLogger(atom *zap.AtomicLevel) *zap.Logger {
	zapConfig := zap.NewDevelopmentEncoderConfig()
	zapConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zapConfig), zapcore.AddSync(colorable.NewColorableStderr()), atom)
	logger := zap.New(core, zap.Development())
	if logger == nil {
		panic("failed to create logger")
	}

	return logger
}

// NewAtomicLevel parses the given level name, falling back to info for unknown names.
func NewAtomicLevel(level string) zap.AtomicLevel {
	atom := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if level == "" {
		return atom
	}

	if err := atom.UnmarshalText([]byte(level)); err != nil {
		atom.SetLevel(zapcore.InfoLevel)
	}

	return atom
}
