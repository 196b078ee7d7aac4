package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat — формат входных данных CLI.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ParseFormat — разбор флага формата (регистр и пробелы игнорируются).
func ParseFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatJSONL:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", s)
	}
}

// detectFormat — auto по расширению файла; без расширения считаем JSON.
func detectFormat(path string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверяет файл (JSON — одна запись, JSONL — поток) и пишет валидный вывод в ow.
func ValidateFile(ctx context.Context, validator inputValidator, path string, format InputFormat, ow io.Writer) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, validator, file, detectFormat(path, format), ow)
}

// ValidateReader — то же, что ValidateFile, но для произвольного источника (stdin).
// Для FormatAuto источник читается как JSONL.
func ValidateReader(ctx context.Context, validator inputValidator, ir io.Reader, format InputFormat, ow io.Writer) (Summary, error) {
	switch format {
	case FormatJSONL, FormatAuto:
		return ValidateJSONLStream(ctx, validator, ir, ow)
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return Summary{}, fmt.Errorf("read input: %w", err)
		}
		in, err := ValidatePartyFromJSON(ctx, validator, raw)
		if err != nil {
			return Summary{Invalid: 1, Errors: map[int]string{1: err.Error()}}, err
		}
		if err := writeCanonical(ow, in); err != nil {
			return Summary{}, err
		}
		return Summary{Valid: 1}, nil
	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}
