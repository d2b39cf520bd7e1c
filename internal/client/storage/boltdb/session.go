package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ledgersync/internal/client/storage"
)

const keyCurrentSession = "current"

// SaveSession stores session data
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return putJSON(tx, bucketSession, keyCurrentSession, session)
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves stored session data
func (s *Storage) GetSession(ctx context.Context) (*storage.Session, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var session *storage.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		session, err = getJSON[storage.Session](tx, bucketSession, keyCurrentSession, storage.ErrSessionNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession removes stored session data
func (s *Storage) DeleteSession(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete([]byte(keyCurrentSession))
	})
}
