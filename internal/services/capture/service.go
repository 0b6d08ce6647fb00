package capture

import (
	"net/http"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/common/clock"
	"github.com/selebrow/percy-selenium/pkg/models"
)

const (
	dataSnapshotName = "snapshot-name"
	dataStatus       = "status"
	dataWidths       = "widths"
	dataID           = "id"

	statusSuccess = "success"
)

type IDFunc func() string

type snapshotPayload struct {
	Name            string                   `mapstructure:"name"`
	URL             string                   `mapstructure:"url"`
	DOMSnapshot     []map[string]interface{} `mapstructure:"domSnapshot"`
	Widths          []int                    `mapstructure:"widths"`
	ClientInfo      string                   `mapstructure:"clientInfo"`
	EnvironmentInfo string                   `mapstructure:"environmentInfo"`
	Sync            bool                     `mapstructure:"sync"`
}

// CaptureService validates and records what Percy SDKs upload
type CaptureService struct {
	storage SnapshotStorage
	profile *models.HealthProfile
	now     clock.NowFunc
	newID   IDFunc
	l       *zap.SugaredLogger
}

func NewCaptureService(
	storage SnapshotStorage,
	profile *models.HealthProfile,
	now clock.NowFunc,
	newID IDFunc,
	l *zap.Logger,
) *CaptureService {
	return &CaptureService{
		storage: storage,
		profile: profile,
		now:     now,
		newID:   newID,
		l:       l.Sugar(),
	}
}

// RecordSnapshot stores a DOM snapshot, response data is only returned for sync requests
func (s *CaptureService) RecordSnapshot(payload map[string]interface{}) (*models.Response, error) {
	if s.profile.Type == models.SessionTypeAutomate {
		return nil, models.NewHTTPError(http.StatusBadRequest, "DOM snapshots are not accepted in automate sessions")
	}

	var p snapshotPayload
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Decode(payload); err != nil {
		return nil, models.NewHTTPError(http.StatusBadRequest, "invalid snapshot payload: %v", err)
	}
	if p.Name == "" {
		return nil, models.NewHTTPError(http.StatusBadRequest, "missing required snapshot name")
	}
	if len(p.DOMSnapshot) == 0 {
		return nil, models.NewHTTPError(http.StatusBadRequest, "missing domSnapshot for %s", p.Name)
	}

	snap := &models.CapturedSnapshot{
		ID:              s.newID(),
		Kind:            models.SnapshotKindDOM,
		Name:            p.Name,
		URL:             p.URL,
		Widths:          s.snapshotWidths(p),
		ClientInfo:      p.ClientInfo,
		EnvironmentInfo: p.EnvironmentInfo,
		Received:        s.now(),
		Payload:         payload,
	}
	if err := s.store(snap); err != nil {
		return nil, err
	}

	return s.response(snap, p.Sync), nil
}

// RecordScreenshot stores an automate screenshot request
func (s *CaptureService) RecordScreenshot(req *models.ScreenshotRequest) (*models.Response, error) {
	if s.profile.Type != models.SessionTypeAutomate {
		return nil, models.NewHTTPError(http.StatusBadRequest, "automate screenshots are only accepted in automate sessions")
	}
	if req.SnapshotName == "" {
		return nil, models.NewHTTPError(http.StatusBadRequest, "missing required snapshot name")
	}
	if req.SessionID == "" || req.CommandExecutorURL == "" {
		return nil, models.NewHTTPError(http.StatusBadRequest, "missing session details for %s", req.SnapshotName)
	}

	payload := map[string]interface{}{
		"sessionId":          req.SessionID,
		"commandExecutorUrl": req.CommandExecutorURL,
		"capabilities":       req.Capabilities,
		"options":            req.Options,
	}
	snap := &models.CapturedSnapshot{
		ID:              s.newID(),
		Kind:            models.SnapshotKindAutomate,
		Name:            req.SnapshotName,
		ClientInfo:      req.ClientInfo,
		EnvironmentInfo: req.EnvironmentInfo,
		Received:        s.now(),
		Payload:         payload,
	}
	if err := s.store(snap); err != nil {
		return nil, err
	}

	sync, _ := req.Options[models.SyncOption].(bool)
	return s.response(snap, sync), nil
}

func (s *CaptureService) RecordLog(req models.LogRequest) {
	s.storage.AddLog(models.CapturedLog{LogRequest: req, Received: s.now()})
}

func (s *CaptureService) Snapshot(id string) (*models.CapturedSnapshot, error) {
	snap, ok := s.storage.Get(id)
	if !ok {
		return nil, models.NewHTTPError(http.StatusNotFound, "snapshot %s not found", id)
	}
	return snap, nil
}

func (s *CaptureService) Snapshots() []*models.CapturedSnapshot {
	return s.storage.List()
}

func (s *CaptureService) Logs() []models.CapturedLog {
	return s.storage.Logs()
}

func (s *CaptureService) Reset() {
	s.storage.Reset()
}

func (s *CaptureService) Profile() *models.HealthProfile {
	return s.profile
}

func (s *CaptureService) store(snap *models.CapturedSnapshot) error {
	if err := s.storage.Add(snap); err != nil {
		return models.NewHTTPError(http.StatusServiceUnavailable, "failed to store snapshot %s: %v", snap.Name, err)
	}
	s.l.Infow("snapshot received",
		zap.String("id", snap.ID),
		zap.String("kind", string(snap.Kind)),
		zap.String("name", snap.Name),
		zap.Ints("widths", snap.Widths),
	)
	return nil
}

// snapshotWidths lists widths the DOM was captured at, falling back to requested or configured widths
func (s *CaptureService) snapshotWidths(p snapshotPayload) []int {
	var widths []int
	for _, dom := range p.DOMSnapshot {
		if w, ok := toInt(dom[models.DOMSnapshotWidthKey]); ok {
			widths = append(widths, w)
		}
	}
	if len(widths) == 0 {
		widths = slices.Clone(p.Widths)
	}
	if len(widths) == 0 {
		widths = append(slices.Clone(s.profile.Widths.Mobile), s.profile.Widths.Config...)
	}
	slices.Sort(widths)
	return slices.Compact(widths)
}

func (*CaptureService) response(snap *models.CapturedSnapshot, sync bool) *models.Response {
	resp := &models.Response{Success: true}
	if sync {
		resp.Data = map[string]interface{}{
			dataID:           snap.ID,
			dataSnapshotName: snap.Name,
			dataStatus:       statusSuccess,
			dataWidths:       snap.Widths,
		}
	}
	return resp
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
