package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Summary — итог проверки потока записей.
type Summary struct {
	Valid   int
	Invalid int
	// Errors — причины по номерам строк (1-based), только для невалидных строк.
	Errors map[int]string
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// ValidateJSONLStream — читает JSONL, проверяет каждую строку, валидные пишет в ow
// каноническим JSON одной строкой. Пустые строки пропускаются, невалидные — считаются.
// Ошибка возвращается только при проблемах чтения/записи.
func ValidateJSONLStream(ctx context.Context, validator inputValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	res := Summary{Errors: map[int]string{}}

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		in, err := ValidatePartyFromJSON(ctx, validator, line)
		if err != nil {
			res.Invalid++
			res.Errors[lineNo] = err.Error()
			continue
		}

		if err := writeCanonical(ow, in); err != nil {
			return res, err
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// writeCanonical — компактный JSON + перевод строки.
func writeCanonical(ow io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := ow.Write(raw); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
