package router

const (
	PercyRoot = "/percy"

	HealthcheckPath        = "/healthcheck"
	DOMScriptPath          = "/dom.js"
	SnapshotPath           = "/snapshot"
	AutomateScreenshotPath = "/automateScreenshot"
	LogPath                = "/log"
	SnapshotsPath          = "/snapshots"
	LogsPath               = "/logs"
	SnapshotIDParam        = "id"

	FixturesRoot = "/fixtures"

	UIRoot     = "/ui"
	StaticRoot = "/static/"
	InfoPath   = "/info"

	CoreVersionHeader = "X-Percy-Core-Version"
)

func Percy(p string) string {
	return PercyRoot + p
}
