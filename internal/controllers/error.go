package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/pkg/models"
)

// ErrorHandler renders Percy API failures the way Percy CLI does, as {success: false, error: ...}
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := &echo.HTTPError{}
	if errors.As(err, &httpErr) {
		if !isPercyAPI(c) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}
		_ = c.JSON(httpErr.Code, models.Response{Error: http.StatusText(httpErr.Code)})
		return
	}

	code := http.StatusInternalServerError
	if e, ok := unwrapErrorWithCode(err); ok {
		code = e.Code()
	}
	if isPercyAPI(c) {
		_ = c.JSON(code, models.Response{Error: err.Error()})
		return
	}
	_ = c.String(code, err.Error())
}

func isPercyAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, router.PercyRoot+"/")
}

func unwrapErrorWithCode(err error) (models.ErrorWithCode, bool) {
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
