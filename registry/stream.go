package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrPathNotFound = errors.New("path not found in JSON document")

	errNoSuchKey = errors.New("no such key")
)

// Pluck walks the JSON document in r down the object keys in path and returns the scalar found there.
// Everything before the target is skipped token by token, so large documents are never decoded whole.
func Pluck(ctx context.Context, r io.Reader, path ...string) (value any, err error) {
	if len(path) == 0 {
		return nil, errors.New("path must contain at least one key")
	}

	dec := json.NewDecoder(r)

	for depth, key := range path {
		if err = expectObject(dec, path[:depth]); err != nil {
			return nil, err
		}

		if err = seekKey(ctx, dec, key); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPathNotFound, dotted(path[:depth+1]), err)
		}
	}

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read value at %s: %w", dotted(path), err)
	}

	if d, ok := t.(json.Delim); ok {
		return nil, fmt.Errorf("the value at %s is not a scalar, it starts with %v", dotted(path), d)
	}

	return t, nil
}

func dotted(keys []string) string {
	return "." + strings.Join(keys, ".")
}

func expectObject(dec *json.Decoder, at []string) error {
	t, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read JSON at %s: %w", dotted(at), err)
	}

	if d, ok := t.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("the value at %s is not a JSON object", dotted(at))
	}

	return nil
}

// seekKey leaves the decoder positioned right before the value of key in the current object.
func seekKey(ctx context.Context, dec *json.Decoder, key string) error {
	for dec.More() {
		if err := context.Cause(ctx); err != nil {
			return err
		}

		t, err := dec.Token()
		if err != nil {
			return err
		}

		if name, ok := t.(string); ok && name == key {
			return nil
		}

		if err = skipValue(dec); err != nil {
			return err
		}
	}

	return errNoSuchKey
}

func skipValue(dec *json.Decoder) error {
	depth := 0

	for {
		t, err := dec.Token()
		if err != nil {
			return err
		}

		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}

		if depth == 0 {
			return nil
		}
	}
}
