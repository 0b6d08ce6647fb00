package models

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

type SessionType string

const (
	SessionTypeWeb      SessionType = "web"
	SessionTypeAutomate SessionType = "automate"
)

// HealthcheckResponse is the body of GET /percy/healthcheck
type HealthcheckResponse struct {
	Success bool                   `json:"success"`
	Type    SessionType            `json:"type,omitempty"`
	Widths  EligibleWidths         `json:"widths"`
	Config  map[string]interface{} `json:"config,omitempty"`
}

type EligibleWidths struct {
	Mobile []int `json:"mobile" yaml:"mobile"`
	Config []int `json:"config" yaml:"config"`
}

// CLIConfig is the Percy CLI configuration reported by healthcheck.
// Raw keeps the whole blob, the flags the SDK acts upon are decoded from it.
type CLIConfig struct {
	Raw                       map[string]interface{}
	DeferUploads              bool
	ResponsiveSnapshotCapture bool
}

type cliConfigFlags struct {
	Percy struct {
		DeferUploads bool `mapstructure:"deferUploads"`
	} `mapstructure:"percy"`
	Snapshot struct {
		ResponsiveSnapshotCapture bool `mapstructure:"responsiveSnapshotCapture"`
	} `mapstructure:"snapshot"`
}

func NewCLIConfig(raw map[string]interface{}) (CLIConfig, error) {
	var flags cliConfigFlags
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &flags,
	})
	if err != nil {
		return CLIConfig{}, err
	}
	if err := d.Decode(raw); err != nil {
		return CLIConfig{Raw: raw}, errors.Wrap(err, "failed to decode Percy CLI config")
	}
	return CLIConfig{
		Raw:                       raw,
		DeferUploads:              flags.Percy.DeferUploads,
		ResponsiveSnapshotCapture: flags.Snapshot.ResponsiveSnapshotCapture,
	}, nil
}

// Negotiation is the outcome of the healthcheck handshake, immutable once produced
type Negotiation struct {
	Enabled     bool
	SessionType SessionType
	CoreVersion string
	Widths      EligibleWidths
	CLIConfig   CLIConfig
}

func DisabledNegotiation() Negotiation {
	return Negotiation{}
}

func (n Negotiation) IsAutomate() bool {
	return n.SessionType == SessionTypeAutomate
}
