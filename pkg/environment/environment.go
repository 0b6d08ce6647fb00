package environment

import (
	"fmt"

	"github.com/selebrow/percy-selenium/pkg/webdriver"
)

const (
	SDKName       = "percy-selenium-go"
	frameworkName = "selenium-go"
)

// SDKVersion is set at build time with -ldflags "-X github.com/selebrow/percy-selenium/pkg/environment.SDKVersion=..."
var SDKVersion = "1.0.0"

type Environment struct {
	driver webdriver.Driver
}

func New(d webdriver.Driver) *Environment {
	return &Environment{driver: d}
}

func (*Environment) ClientInfo() string {
	return fmt.Sprintf("%s/%s", SDKName, SDKVersion)
}

// EnvironmentInfo names the innermost driver, wrapping drivers are looked through
func (e *Environment) EnvironmentInfo() string {
	return fmt.Sprintf("%s; %s", frameworkName, webdriver.Name(webdriver.Unwrap(e.driver)))
}
