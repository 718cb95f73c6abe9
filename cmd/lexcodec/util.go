package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
	"github.com/urfave/cli/v2"
)

const stdIOPath = "-"

// Reads a JSON document. Comments and trailing commas are allowed, and are stripped before returning.
func readFileOrStdin(path string) ([]byte, error) {
	raw, err := readBytes(path)
	if err != nil {
		return nil, err
	}
	return jsonc.ToJSON(raw), nil
}

func readBytes(path string) ([]byte, error) {
	if path == stdIOPath {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
