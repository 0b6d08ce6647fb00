package html

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/selebrow/percy-selenium/pkg/config"
)

var (
	devFS   fs.FS
	devMode bool
)

// _PERCY_DEV_MODE makes assets load from ./html on every request
func init() {
	_, devMode = os.LookupEnv(fmt.Sprintf("_%s_DEV_MODE", config.ConfigPrefix))

	if devMode {
		devFS = os.DirFS("html")
	}
}
