package models

// DOMSnapshot is the serialized document produced by PercyDOM.serialize
type DOMSnapshot map[string]interface{}

const (
	DOMSnapshotCookiesKey = "cookies"
	DOMSnapshotWidthKey   = "width"
)

// ScreenshotRequest is the body of POST /percy/automateScreenshot
type ScreenshotRequest struct {
	SessionID          string                 `json:"sessionId"`
	CommandExecutorURL string                 `json:"commandExecutorUrl"`
	Capabilities       map[string]string      `json:"capabilities"`
	SnapshotName       string                 `json:"snapshotName"`
	ClientInfo         string                 `json:"clientInfo"`
	EnvironmentInfo    string                 `json:"environmentInfo"`
	Options            map[string]interface{} `json:"options"`
}

// Response is the common shape of Percy CLI responses
type Response struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

type LogRequest struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}
