package main

import (
	"github.com/selebrow/percy-selenium/pkg/app"
)

const appName = "percy-stub"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
