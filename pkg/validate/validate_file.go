package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// StdinPath — путь, означающий чтение из stdin.
const StdinPath = "-"

// Rejection — отклонённая запись: номер строки (для JSON всегда 1) и причина.
type Rejection struct {
	Line int
	Err  error
}

// Summary — итог проверки файла.
type Summary struct {
	Valid    int
	Invalid  int
	Rejected []Rejection
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

func (s *Summary) reject(line int, err error) {
	s.Invalid++
	s.Rejected = append(s.Rejected, Rejection{Line: line, Err: err})
}

// resolveFormat — auto: .jsonl и stdin → JSONL, остальное → JSON.
func resolveFormat(path string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if path == StdinPath || strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверяет формы оформления заказа из файла (JSON или JSONL)
// и пишет канонический OrderDraft каждой валидной записи в ow.
// Ошибка возвращается только для одиночного JSON и при сбоях ввода-вывода.
func ValidateFile(ctx context.Context, validator ports.CheckoutValidator, path string, format InputFormat, ow io.Writer) (Summary, error) {
	format = resolveFormat(path, format)
	if format != FormatJSON && format != FormatJSONL {
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}

	in := io.Reader(os.Stdin)
	if path != StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return Summary{}, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		in = f
	}

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, in, ow)
	}

	var sum Summary
	raw, err := io.ReadAll(in)
	if err != nil {
		return sum, fmt.Errorf("read file: %w", err)
	}
	draft, err := ValidateCheckoutFromJSON(ctx, validator, raw)
	if err != nil {
		sum.reject(1, err)
		return sum, err
	}
	if err := writeCanonical(ow, draft); err != nil {
		return sum, err
	}
	sum.Valid++
	return sum, nil
}

// writeCanonical — компактный JSON одной строкой.
func writeCanonical(ow io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if _, err := ow.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}
