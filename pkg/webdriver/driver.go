package webdriver

import (
	"context"
	"net/url"
	"reflect"

	"github.com/pkg/errors"

	"github.com/selebrow/percy-selenium/pkg/models"
)

// maximum number of executor decorators peeled off before giving up
const maxUnwrapDepth = 16

type (
	// Driver is the subset of a WebDriver session the SDK consumes
	Driver interface {
		SessionID() (string, error)
		Capabilities(ctx context.Context) (map[string]interface{}, error)
		CommandExecutor() CommandExecutor
		ExecuteScript(ctx context.Context, script string, args []interface{}) (interface{}, error)
		CurrentURL(ctx context.Context) (string, error)
		WindowRect(ctx context.Context) (models.Rect, error)
		// SetWindowRect leaves a zero width or height as is
		SetWindowRect(ctx context.Context, rect models.Rect) error
		Cookies(ctx context.Context) ([]models.Cookie, error)
	}

	// CDPExecutor is implemented by drivers able to send Chrome DevTools Protocol commands
	CDPExecutor interface {
		ExecuteCDP(ctx context.Context, cmd string, params interface{}) (map[string]interface{}, error)
	}

	CommandExecutor interface {
		Execute(ctx context.Context, method, path string, body, result interface{}) error
	}

	// RemoteAddresser is implemented by executors talking to a remote WebDriver endpoint
	RemoteAddresser interface {
		RemoteAddress() (*url.URL, error)
	}

	// ExecutorWrapper is implemented by executor decorators (tracing, logging, retries)
	ExecutorWrapper interface {
		Unwrap() (CommandExecutor, error)
	}

	// DriverWrapper is implemented by drivers decorating another driver
	DriverWrapper interface {
		WrappedDriver() Driver
	}

	// Named drivers report their own name in environment info
	Named interface {
		DriverName() string
	}

	Element interface {
		ID() string
	}
)

// RemoteAddress resolves the address of the WebDriver endpoint behind e,
// peeling off any decorators implementing ExecutorWrapper.
func RemoteAddress(e CommandExecutor) (*url.URL, error) {
	for i := 0; i < maxUnwrapDepth; i++ {
		if e == nil {
			return nil, errors.New("command executor is not available")
		}
		if ra, ok := e.(RemoteAddresser); ok {
			return ra.RemoteAddress()
		}
		w, ok := e.(ExecutorWrapper)
		if !ok {
			return nil, errors.Errorf("command executor %T does not expose remote address", e)
		}
		var err error
		e, err = w.Unwrap()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to unwrap command executor %T", w)
		}
	}
	return nil, errors.Errorf("command executor is wrapped more than %d times", maxUnwrapDepth)
}

// Unwrap returns the innermost driver
func Unwrap(d Driver) Driver {
	for i := 0; i < maxUnwrapDepth; i++ {
		w, ok := d.(DriverWrapper)
		if !ok {
			return d
		}
		inner := w.WrappedDriver()
		if inner == nil {
			return d
		}
		d = inner
	}
	return d
}

// Name reports driver name: Named drivers name themselves, others are named by their type
func Name(d Driver) string {
	if n, ok := d.(Named); ok {
		return n.DriverName()
	}
	t := reflect.TypeOf(d)
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// ElementID converts an element handle into its id. Accepted handles are Element
// implementations, W3C/JsonWire element references and plain id strings.
func ElementID(v interface{}) (string, bool) {
	switch e := v.(type) {
	case Element:
		return e.ID(), true
	case string:
		return e, e != ""
	case map[string]interface{}:
		return models.ElementID(e)
	case map[string]string:
		m := make(map[string]interface{}, len(e))
		for k, val := range e {
			m[k] = val
		}
		return models.ElementID(m)
	default:
		return "", false
	}
}
