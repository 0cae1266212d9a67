package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"expo-patch-backend/cmd/expo-patch/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultDirName  = "expo-patch"
	defaultFileName = "events.db"
)

// Store owns the active SQLite file. There is exactly one open handle at a
// time; Initialize closes the previous one before opening the next, and
// repositories fetch the handle per call so a runtime switch is picked up.
type Store struct {
	mu   sync.RWMutex
	db   *gorm.DB
	path string
}

func NewStore() *Store {
	return &Store{}
}

// Initialize opens (creating if absent) the database file at path, or at
// the default application-data location when path is empty, ensures the
// schema exists and makes it the active database. It returns the resolved
// absolute path.
func (s *Store) Initialize(path string) (string, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := closeDB(s.db); err != nil {
			return "", fmt.Errorf("close previous database: %w", err)
		}
		s.db = nil
		s.path = ""
	}

	db, err := openDB(resolved)
	if err != nil {
		return "", err
	}

	s.db = db
	s.path = resolved
	return resolved, nil
}

// CurrentPath reports the active file's path, or false when none is open.
func (s *Store) CurrentPath() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path, s.path != ""
}

// DB returns the active handle. Repositories must call this per operation
// rather than hold the result across calls.
func (s *Store) DB() (*gorm.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, model.ErrStorageUnavailable
	}
	return s.db, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := closeDB(s.db)
	s.db = nil
	s.path = ""
	return err
}

func openDB(path string) (*gorm.DB, error) {
	// _foreign_keys=on applies to every pooled connection, which the
	// events → patch_data cascade delete depends on.
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}
	// Single logical writer: every statement goes through one connection.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	// CREATE TABLE IF NOT EXISTS semantics: existing data is kept. A file
	// that is not a usable database fails here.
	if err := db.AutoMigrate(&model.Event{}, &model.PatchData{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %v", model.ErrSchemaMismatch, err)
	}

	var n int64
	if err := db.Model(&model.Event{}).Count(&n).Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %v", model.ErrSchemaMismatch, err)
	}

	return db, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func resolvePath(path string) (string, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(configDir, defaultDirName, defaultFileName)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}
