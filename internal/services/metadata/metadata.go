package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	"github.com/pkg/errors"

	"github.com/selebrow/percy-selenium/pkg/webdriver"
)

const (
	capabilitiesKeyPrefix = "capabilities_"
	executorURLKeyPrefix  = "commandExecutorUrl_"
)

// capabilities reported to the capture server, everything else the session advertises stays local
var allowedCapabilities = []string{
	"browserName",
	"platform",
	"platformName",
	"version",
	"browserVersion",
	"osVersion",
	"proxy",
	"deviceName",
}

type DriverMetadata struct {
	driver    webdriver.Driver
	sessionID string
	cache     Cache
}

func NewDriverMetadata(d webdriver.Driver, cache Cache) (*DriverMetadata, error) {
	id, err := d.SessionID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get WebDriver session id")
	}
	if id == "" {
		return nil, errors.New("WebDriver session id is empty")
	}
	if cache == nil {
		cache = DefaultCache
	}
	return &DriverMetadata{
		driver:    d,
		sessionID: id,
		cache:     cache,
	}, nil
}

func (m *DriverMetadata) SessionID() string {
	return m.sessionID
}

// Capabilities returns the allow-listed session capabilities, the driver is queried at most once per session
func (m *DriverMetadata) Capabilities(ctx context.Context) (map[string]string, error) {
	val, err := m.getOrCompute(capabilitiesKeyPrefix+m.sessionID, func() (interface{}, error) {
		caps, err := m.driver.Capabilities(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get capabilities of session %s", m.sessionID)
		}
		return filterCapabilities(caps), nil
	})
	if err != nil {
		return nil, err
	}
	return maps.Clone(val.(map[string]string)), nil
}

// CommandExecutorURL returns the address of the WebDriver endpoint the session lives on
func (m *DriverMetadata) CommandExecutorURL(_ context.Context) (string, error) {
	val, err := m.getOrCompute(executorURLKeyPrefix+m.sessionID, func() (interface{}, error) {
		u, err := webdriver.RemoteAddress(m.driver.CommandExecutor())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve command executor URL of session %s", m.sessionID)
		}
		return u.String(), nil
	})
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

func (m *DriverMetadata) getOrCompute(key string, compute func() (interface{}, error)) (interface{}, error) {
	if c, ok := m.cache.(Computer); ok {
		return c.GetOrCompute(key, compute)
	}

	if val, ok := m.cache.Get(key); ok {
		return val, nil
	}
	val, err := compute()
	if err != nil {
		return nil, err
	}
	m.cache.Put(key, val)
	return val, nil
}

func filterCapabilities(caps map[string]interface{}) map[string]string {
	res := make(map[string]string, len(allowedCapabilities))
	for _, name := range allowedCapabilities {
		v, ok := caps[name]
		if !ok || v == nil {
			continue
		}
		res[name] = stringify(v)
	}
	return res
}

func stringify(v interface{}) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
	}
	return fmt.Sprint(v)
}
