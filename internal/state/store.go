package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// DefaultPath is where the state document lives relative to the working
// directory. Config uses it unless state_path is set.
const DefaultPath = "data/state.json"

// Store reads and writes the single state file. It assumes one writer at a
// time; concurrent invocations race and the last save wins.
type Store struct {
	path          string
	now           func() time.Time
	logger        *zap.Logger
	backupCorrupt bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock injects the time source used for sample dates and backup names.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used to report recovered failures.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithBackupCorrupt controls whether an unreadable file is copied aside
// before it is replaced by sample data. Enabled by default.
func WithBackupCorrupt(enabled bool) StoreOption {
	return func(s *Store) { s.backupCorrupt = enabled }
}

// NewStore creates a store for the document at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:          path,
		now:           time.Now,
		logger:        zap.NewNop(),
		backupCorrupt: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file location backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted document. A missing file, unparseable JSON or a
// document of the wrong shape is replaced by freshly generated sample data,
// which is also persisted. Load never fails; if even the reset cannot be
// saved, the in-memory sample is returned.
func (s *Store) Load() *Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("state file unreadable, regenerating sample data",
				zap.String("path", s.path), zap.Error(err))
		}
		return s.resetOrSample()
	}

	doc, err := parse(data)
	if err != nil {
		s.logger.Warn("state file invalid, regenerating sample data",
			zap.String("path", s.path), zap.Error(err))
		s.backup(data)
		return s.resetOrSample()
	}

	s.logger.Debug("state loaded",
		zap.String("path", s.path),
		zap.Int("campaigns", len(doc.Campaigns)))
	return doc
}

// Save overwrites the state file with doc. The write is not atomic.
func (s *Store) Save(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("cannot save nil state document")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	s.logger.Debug("state saved", zap.String("path", s.path))
	return nil
}

// Reset replaces the state file with sample data and returns it.
func (s *Store) Reset() (*Document, error) {
	doc := Sample(s.now())
	if err := s.Save(doc); err != nil {
		return doc, err
	}
	s.logger.Info("state reset to sample data", zap.String("path", s.path))
	return doc, nil
}

func (s *Store) resetOrSample() *Document {
	doc, err := s.Reset()
	if err != nil {
		s.logger.Error("failed to persist sample data", zap.String("path", s.path), zap.Error(err))
	}
	return doc
}

// backup copies unreadable bytes next to the state file so a reset does not
// destroy hand-edited data.
func (s *Store) backup(data []byte) {
	if !s.backupCorrupt {
		return
	}
	target := BackupPath(s.path, s.now())
	if err := os.WriteFile(target, data, 0644); err != nil {
		s.logger.Error("failed to back up invalid state file",
			zap.String("path", target), zap.Error(err))
		return
	}
	s.logger.Warn("invalid state file backed up", zap.String("backup", target))
}

// BackupPath names the copy made of an unreadable state file.
func BackupPath(path string, at time.Time) string {
	return fmt.Sprintf("%s.corrupt-%s", path, at.Format("20060102T150405"))
}

func parse(data []byte) (*Document, error) {
	if err := CheckShape(data); err != nil {
		return nil, err
	}
	return Decode(data)
}
