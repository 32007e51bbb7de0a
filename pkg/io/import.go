package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// ReadUsage decodes language usage from r.
//
// The input is either a JSON object keyed by language name:
//
//	{
//	  "Go":     {"name": "Go", "size": 3000, "color": "#00ADD8"},
//	  "Python": {"size": 1200}
//	}
//
// or an array of languages:
//
//	[{"name": "Go", "size": 3000}, {"name": "Python", "size": 1200}]
//
// In the object form an entry without a name takes its key. ReadUsage
// returns an error if:
//   - The JSON is malformed
//   - A language has no name
//   - A language appears twice in the array form
//   - A size is negative
//
// ReadUsage does not close r.
func ReadUsage(r io.Reader) (toplangs.Usage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	usage := toplangs.Usage{}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var langs []toplangs.Language
		if err := json.Unmarshal(trimmed, &langs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode usage")
		}
		for i, l := range langs {
			if l.Name == "" {
				return nil, errors.New(errors.ErrCodeInvalidInput, "language %d: missing name", i)
			}
			if _, dup := usage[l.Name]; dup {
				return nil, errors.New(errors.ErrCodeInvalidInput, "language %s: duplicate entry", l.Name)
			}
			usage[l.Name] = l
		}
	} else {
		if err := json.Unmarshal(data, &usage); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode usage")
		}
		for key, l := range usage {
			if l.Name == "" {
				l.Name = key
				usage[key] = l
			}
			if l.Name == "" {
				return nil, errors.New(errors.ErrCodeInvalidInput, "language with empty key: missing name")
			}
		}
	}

	for _, l := range usage {
		if l.Size < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "language %s: negative size %d", l.Name, l.Size)
		}
	}
	return usage, nil
}

// ImportUsage reads a JSON file at path and returns the decoded usage.
// The error wraps the underlying cause with the file path for context.
func ImportUsage(path string) (toplangs.Usage, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "usage file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	usage, err := ReadUsage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return usage, nil
}
