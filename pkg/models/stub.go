package models

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// HealthProfile is what the stub server reports on healthcheck
type HealthProfile struct {
	// CoreVersion empty value emulates obsolete @percy/agent server
	CoreVersion string                 `yaml:"coreVersion"`
	Type        SessionType            `yaml:"type"`
	Widths      EligibleWidths         `yaml:"widths"`
	Config      map[string]interface{} `yaml:"config"`
}

func ParseHealthProfile(data []byte) (*HealthProfile, error) {
	var p HealthProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to parse health profile")
	}
	if p.Type != "" && p.Type != SessionTypeWeb && p.Type != SessionTypeAutomate {
		return nil, errors.Errorf("invalid session type %s in health profile", p.Type)
	}
	return &p, nil
}

func (p *HealthProfile) Response() HealthcheckResponse {
	return HealthcheckResponse{
		Success: true,
		Type:    p.Type,
		Widths:  p.Widths,
		Config:  p.Config,
	}
}

type SnapshotKind string

const (
	SnapshotKindDOM      SnapshotKind = "dom"
	SnapshotKindAutomate SnapshotKind = "automate"
)

// CapturedSnapshot is a snapshot received by the stub server
type CapturedSnapshot struct {
	ID              string                 `json:"id"`
	Kind            SnapshotKind           `json:"kind"`
	Name            string                 `json:"name"`
	URL             string                 `json:"url,omitempty"`
	Widths          []int                  `json:"widths,omitempty"`
	ClientInfo      string                 `json:"clientInfo"`
	EnvironmentInfo string                 `json:"environmentInfo"`
	Received        time.Time              `json:"received"`
	Payload         map[string]interface{} `json:"payload"`
}

type CapturedLog struct {
	LogRequest
	Received time.Time `json:"received"`
}

type StubInfo struct {
	Name        string `json:"name"`
	GitRef      string `json:"gitRef"`
	GitSha      string `json:"gitSha"`
	CoreVersion string `json:"coreVersion"`
}

// HTTPError is an error carrying HTTP status code
type HTTPError struct {
	code int
	msg  string
}

func NewHTTPError(code int, format string, args ...interface{}) *HTTPError {
	return &HTTPError{code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *HTTPError) Error() string {
	return e.msg
}

func (e *HTTPError) Code() int {
	return e.code
}
