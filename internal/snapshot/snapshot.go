// Package snapshot exports rendered dashboard text as an SVG or PNG image.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// Title is written into the SVG <title> element.
const Title = "B2B Engagement Dashboard"

// Background color shared by both formats.
const Background = "#0b1220"

// Format identifies an output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported snapshot extension %q (use .svg or .png)", filepath.Ext(path))
	}
}

// Lines splits rendered terminal output into plain lines with escape
// sequences removed and trailing blank lines trimmed.
func Lines(rendered string) []string {
	plain := ansi.Strip(rendered)
	plain = strings.ReplaceAll(plain, "\r\n", "\n")
	lines := strings.Split(plain, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Export writes rendered to path, choosing SVG or PNG by extension.
func Export(path, rendered string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	lines := Lines(rendered)

	var data []byte
	switch format {
	case FormatSVG:
		data = RenderSVG(lines)
	case FormatPNG:
		data, err = RenderPNG(lines)
		if err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	logger.Debug("snapshot written",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("lines", len(lines)),
		zap.Int("bytes", len(data)))
	return nil
}
