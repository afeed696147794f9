package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/bisbm/search"
)

// ExportSummary writes sum as indented JSON under key (conventionally
// "<runID>/summary.json") to store.
func ExportSummary(ctx context.Context, store Storage, key string, sum search.Summary) error {
	body, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("artifact: marshal summary: %w", err)
	}
	if err := store.Upload(ctx, key, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("artifact: upload summary: %w", err)
	}
	return nil
}
