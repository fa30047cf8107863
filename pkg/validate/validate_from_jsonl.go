package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

const maxLineSize = 10 << 20

// ValidateJSONLStream — проверяет каждую непустую строку JSONL.
// Валидные записи пишутся в ow каноническим JSON, невалидные попадают в Summary.Rejected
// с номером строки. Отмена контекста прерывает чтение.
func ValidateJSONLStream(ctx context.Context, validator ports.CheckoutValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		draft, err := ValidateCheckoutFromJSON(ctx, validator, raw)
		if err != nil {
			sum.reject(line, err)
			continue
		}
		if err := writeCanonical(ow, draft); err != nil {
			return sum, fmt.Errorf("line %d: %w", line, err)
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}
