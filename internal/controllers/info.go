package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/percy-selenium/pkg/models"
)

type InfoController struct {
	info models.StubInfo
}

func NewInfoController(appName, gitRef, gitSha, coreVersion string) *InfoController {
	return &InfoController{info: models.StubInfo{
		Name:        appName,
		GitRef:      gitRef,
		GitSha:      gitSha,
		CoreVersion: coreVersion,
	}}
}

func (i *InfoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, i.info)
}
