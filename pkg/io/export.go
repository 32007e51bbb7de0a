package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// WriteUsage encodes usage as an indented JSON object keyed by language
// name, with keys in sorted order. The output can be re-imported with
// [ReadUsage].
func WriteUsage(usage toplangs.Usage, w io.Writer) error {
	if usage == nil {
		usage = toplangs.Usage{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(usage); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportUsage writes usage to a JSON file at path.
// This is a convenience wrapper around [WriteUsage] for file-based output.
func ExportUsage(usage toplangs.Usage, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteUsage(usage, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
