package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

var (
	_ storage.BookStorage     = (*Storage)(nil)
	_ storage.BillStorage     = (*Storage)(nil)
	_ storage.ImageStorage    = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
	_ storage.SessionStorage  = (*Storage)(nil)
	_ storage.Notifier        = (*Storage)(nil)
)

var (
	// BoltDB bucket names
	bucketBooks    = []byte("books")
	bucketBills    = []byte("bills")
	bucketImages   = []byte("images")
	bucketMetadata = []byte("metadata")
	bucketSession  = []byte("session")
)

// Storage represents BoltDB storage implementation for client.
// Every committed write to books, bills or images is reported through Subscribe.
type Storage struct {
	db       *bbolt.DB
	notifier *notifier
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB; таймаут защищает от второго процесса, держащего файл
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, notifier: newNotifier()}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Subscribe implements storage.Notifier
func (s *Storage) Subscribe(entity models.EntityType) (<-chan struct{}, func()) {
	return s.notifier.subscribe(entity)
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketBooks, bucketBills, bucketImages, bucketMetadata, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// update выполняет запись и уведомляет подписчиков коллекции после коммита
func (s *Storage) update(entity models.EntityType, fn func(tx *bbolt.Tx) error) error {
	if err := s.db.Update(fn); err != nil {
		return err
	}
	s.notifier.notify(entity)
	return nil
}
