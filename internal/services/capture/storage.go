package capture

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/pkg/models"
)

var ErrStorageShutdown = errors.New("snapshot storage is shutdown")

type SnapshotStorage interface {
	Add(snap *models.CapturedSnapshot) error
	Get(id string) (*models.CapturedSnapshot, bool)
	List() []*models.CapturedSnapshot
	AddLog(entry models.CapturedLog)
	Logs() []models.CapturedLog
	Reset()
	IsShutdown() bool
}

// LocalSnapshotStorage keeps snapshots in memory in the order they were received
type LocalSnapshotStorage struct {
	snapshots []*models.CapturedSnapshot
	index     map[string]*models.CapturedSnapshot
	logs      []models.CapturedLog
	shutdown  bool
	mtx       sync.RWMutex
	l         *zap.SugaredLogger
}

func NewLocalSnapshotStorage(l *zap.Logger) *LocalSnapshotStorage {
	return &LocalSnapshotStorage{
		index: make(map[string]*models.CapturedSnapshot),
		l:     l.Sugar(),
	}
}

func (s *LocalSnapshotStorage) Add(snap *models.CapturedSnapshot) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.shutdown {
		return ErrStorageShutdown
	}
	if _, ok := s.index[snap.ID]; ok {
		return errors.Errorf("snapshot %s already exists", snap.ID)
	}
	s.snapshots = append(s.snapshots, snap)
	s.index[snap.ID] = snap
	return nil
}

func (s *LocalSnapshotStorage) Get(id string) (*models.CapturedSnapshot, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snap, ok := s.index[id]
	return snap, ok
}

func (s *LocalSnapshotStorage) List() []*models.CapturedSnapshot {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return append(make([]*models.CapturedSnapshot, 0, len(s.snapshots)), s.snapshots...)
}

func (s *LocalSnapshotStorage) AddLog(entry models.CapturedLog) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.logs = append(s.logs, entry)
}

func (s *LocalSnapshotStorage) Logs() []models.CapturedLog {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return append(make([]models.CapturedLog, 0, len(s.logs)), s.logs...)
}

func (s *LocalSnapshotStorage) Reset() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.snapshots = nil
	s.logs = nil
	clear(s.index)
}

func (s *LocalSnapshotStorage) IsShutdown() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.shutdown
}

func (s *LocalSnapshotStorage) Shutdown(_ context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.shutdown = true

	s.l.Infof("snapshot storage is shutting down, %d snapshots and %d log entries received",
		len(s.snapshots), len(s.logs))
	return nil
}
