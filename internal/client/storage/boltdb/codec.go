package boltdb

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// getJSON читает и десериализует значение; возвращает notFound если ключа нет
func getJSON[T any](tx *bbolt.Tx, bucket []byte, id string, notFound error) (*T, error) {
	b := tx.Bucket(bucket)
	if b == nil {
		return nil, fmt.Errorf("%s bucket not found", bucket)
	}

	data := b.Get([]byte(id))
	if data == nil {
		return nil, notFound
	}

	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s/%s: %w", bucket, id, err)
	}
	return v, nil
}

// putJSON сериализует и сохраняет значение по ключу id
func putJSON(tx *bbolt.Tx, bucket []byte, id string, v any) error {
	b := tx.Bucket(bucket)
	if b == nil {
		return fmt.Errorf("%s bucket not found", bucket)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", bucket, id, err)
	}

	if err := b.Put([]byte(id), data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", bucket, id, err)
	}
	return nil
}

// scanJSON обходит bucket и возвращает записи, для которых keep вернул true
func scanJSON[T any](tx *bbolt.Tx, bucket []byte, keep func(*T) bool) ([]*T, error) {
	b := tx.Bucket(bucket)
	if b == nil {
		return nil, fmt.Errorf("%s bucket not found", bucket)
	}

	var out []*T
	err := b.ForEach(func(k, data []byte) error {
		v := new(T)
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to unmarshal %s/%s: %w", bucket, k, err)
		}
		if keep(v) {
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func capLimit[T any](items []*T, limit int) []*T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
