package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/walklog/internal/client/storage"
)

var (
	// BoltDB bucket names, один bucket на слот
	bucketAuth     = []byte("auth")
	bucketWalks    = []byte("walks")
	bucketQueue    = []byte("queue")
	bucketGoals    = []byte("goals")
	bucketMetadata = []byte("metadata")

	allBuckets = [][]byte{bucketAuth, bucketWalks, bucketQueue, bucketGoals, bucketMetadata}
)

// Compile-time checks
var (
	_ storage.AuthStorage     = (*Storage)(nil)
	_ storage.WalkStorage     = (*Storage)(nil)
	_ storage.QueueStorage    = (*Storage)(nil)
	_ storage.GoalStorage     = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Таймаут защищает от вечного ожидания файловой блокировки,
	// если БД уже открыта другим процессом (например, walklog watch)
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
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

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// readSlot декодирует JSON значение слота в dst.
// Возвращает false, если значение отсутствует.
func readSlot(tx *bbolt.Tx, bucketName, key []byte, dst any) (bool, error) {
	bucket := tx.Bucket(bucketName)
	if bucket == nil {
		return false, fmt.Errorf("%s bucket not found", bucketName)
	}

	data := bucket.Get(key)
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", bucketName, key, err)
	}

	return true, nil
}

// writeSlot кодирует value в JSON и перезаписывает слот целиком
func writeSlot(tx *bbolt.Tx, bucketName, key []byte, value any) error {
	bucket := tx.Bucket(bucketName)
	if bucket == nil {
		return fmt.Errorf("%s bucket not found", bucketName)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", bucketName, key, err)
	}

	if err := bucket.Put(key, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", bucketName, key, err)
	}

	return nil
}
