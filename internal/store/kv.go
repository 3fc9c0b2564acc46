package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// KV is the durable key-value persistence the rest of the app is written
// against. Values are JSON documents.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// List returns the values of every key starting with prefix, ordered by key
	List(ctx context.Context, prefix string) ([][]byte, error)
}

const keyPrefix = "ttp_"

func recordKey(kind, id string) string {
	return keyPrefix + kind + ":" + id
}

func kindPrefix(kind string) string {
	return keyPrefix + kind + ":"
}

func getJSON[T any](ctx context.Context, kv KV, key string) (*T, error) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &v, nil
}

func putJSON(ctx context.Context, kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, data)
}

func listJSON[T any](ctx context.Context, kv KV, prefix string) ([]T, error) {
	values, err := kv.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(values))
	for _, data := range values {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode record under %s: %w", prefix, err)
		}
		items = append(items, v)
	}
	return items, nil
}
