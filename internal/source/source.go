package source

import (
	"context"
	"fmt"
	"time"

	"commerce-dashboard/internal/table"
)

// Source fetches a named table from some backend. Fetch errors describe why
// the table could not be produced; the loader converts them into empty
// tables, so backends should return errors freely rather than degrade
// silently.
type Source interface {
	Fetch(ctx context.Context, name string) (table.Table, error)
	Close() error
}

// formatValue renders a scanned database value as the string the decoding
// layer expects. Timestamps use the pipeline's primary layout so they
// round-trip through the timestamp normalizer.
func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case float64:
		return fmt.Sprintf("%g", v)
	case float32:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}
