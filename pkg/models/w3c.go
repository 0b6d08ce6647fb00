package models

import "encoding/json"

const (
	// W3CElementKey identifies web element references
	// see https://www.w3.org/TR/webdriver2/#dfn-web-element-identifier
	W3CElementKey = "element-6066-11e4-a5db-ecb4e5ee5f7b"
	// JsonWireElementKey is the element reference key of the legacy JsonWire protocol
	JsonWireElementKey = "ELEMENT"
)

// W3CCapabilities WebDriver capabilities model
// see details at https://www.w3.org/TR/webdriver2/#capabilities
type W3CCapabilities struct {
	AlwaysMatch map[string]interface{}   `json:"alwaysMatch,omitempty"`
	FirstMatch  []map[string]interface{} `json:"firstMatch,omitempty"`
}

type NewSessionRequest struct {
	Capabilities W3CCapabilities `json:"capabilities"`
}

// W3CResponse is the envelope of every WebDriver response
type W3CResponse struct {
	Value json.RawMessage `json:"value"`
}

type NewSessionValue struct {
	SessionID    string                 `json:"sessionId"`
	Capabilities map[string]interface{} `json:"capabilities"`
}

type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	Expiry   int64  `json:"expiry,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
}

type ExecuteScriptRequest struct {
	Script string        `json:"script"`
	Args   []interface{} `json:"args"`
}

type CDPExecuteRequest struct {
	Cmd    string      `json:"cmd"`
	Params interface{} `json:"params"`
}

// ElementID extracts the element id from a W3C or JsonWire element reference
func ElementID(ref map[string]interface{}) (string, bool) {
	for _, k := range []string{W3CElementKey, JsonWireElementKey} {
		if id, ok := ref[k].(string); ok {
			return id, true
		}
	}
	return "", false
}
