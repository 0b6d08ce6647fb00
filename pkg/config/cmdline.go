package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/selebrow/percy-selenium/pkg/models"
)

// ParseCmdLine defines and parses percy-stub command line flags.
func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, DefaultStubListen, "Listening address and/or port")
	f.String(coreVersion, DefaultCoreVersion, "Version reported in the x-percy-core-version healthcheck header,"+
		" empty value emulates obsolete @percy/agent server")
	f.String(sessionType, string(models.SessionTypeWeb), "Session type reported by healthcheck, valid options are: "+validSessionTypesHelp)
	f.IntSlice(mobileWidths, []int{375}, "Mobile widths reported by healthcheck")
	f.IntSlice(configWidths, []int{375, 1280}, "Default config widths reported by healthcheck")
	f.Bool(deferUploads, false, "Report percy.deferUploads in healthcheck config")
	f.Bool(responsiveCap, false, "Report snapshot.responsiveSnapshotCapture in healthcheck config")
	f.String(healthProfile, "", "Path to YAML healthcheck profile, overrides the healthcheck flags above")
	f.String(logLevel, "info", "Log level (debug, info, warn, error)")
	f.Duration(postTimeout, 10*time.Minute, "Timeout for snapshot upload requests")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
