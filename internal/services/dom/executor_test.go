package dom_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/percy-selenium/internal/services/dom"
	"github.com/selebrow/percy-selenium/mocks"
	"github.com/selebrow/percy-selenium/pkg/models"
)

func TestExecutor_Inject(t *testing.T) {
	g := NewWithT(t)
	d := mocks.NewDriver(t)
	d.EXPECT().ExecuteScript(mock.Anything, "window.PercyDOM = {}", []interface{}(nil)).Return(nil, nil).Once()
	d.EXPECT().ExecuteScript(mock.Anything, "broken", []interface{}(nil)).Return(nil, errors.New("javascript error")).Once()

	e := dom.NewExecutor(d, zaptest.NewLogger(t))
	g.Expect(e.Inject(context.Background(), "window.PercyDOM = {}")).To(Succeed())
	g.Expect(e.Inject(context.Background(), "broken")).To(MatchError(ContainSubstring("javascript error")))
	g.Expect(e.Inject(context.Background(), "")).To(HaveOccurred())
}

func TestExecutor_Capture(t *testing.T) {
	g := NewWithT(t)
	d := mocks.NewDriver(t)
	d.EXPECT().
		ExecuteScript(mock.Anything, `return PercyDOM.serialize({"enableJavaScript":true,"widths":[375]})`, []interface{}(nil)).
		Return(map[string]interface{}{"html": "<html></html>"}, nil).
		Once()
	d.EXPECT().Cookies(mock.Anything).Return([]models.Cookie{{Name: "sid", Value: "1"}}, nil).Once()

	e := dom.NewExecutor(d, zaptest.NewLogger(t))
	snap := e.Capture(context.Background(), map[string]interface{}{"widths": []int{375}, "enableJavaScript": true})
	g.Expect(snap).To(Equal(models.DOMSnapshot{
		"html":    "<html></html>",
		"cookies": []models.Cookie{{Name: "sid", Value: "1"}},
	}))
}

func TestExecutor_CaptureCookiesFailure(t *testing.T) {
	g := NewWithT(t)
	d := mocks.NewDriver(t)
	d.EXPECT().ExecuteScript(mock.Anything, "return PercyDOM.serialize({})", []interface{}(nil)).
		Return(map[string]interface{}{"html": "<html></html>"}, nil).Once()
	d.EXPECT().Cookies(mock.Anything).Return(nil, errors.New("unsupported")).Once()

	e := dom.NewExecutor(d, zaptest.NewLogger(t))
	snap := e.Capture(context.Background(), nil)
	g.Expect(snap).To(Equal(models.DOMSnapshot{"html": "<html></html>"}))
}

func TestExecutor_CaptureScriptFailure(t *testing.T) {
	tests := []struct {
		name string
		res  interface{}
		err  error
	}{
		{name: "script error", err: models.NewW3CErr(500, models.JavascriptErr, "PercyDOM is not defined")},
		{name: "unexpected result", res: "<html></html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			d := mocks.NewDriver(t)
			d.EXPECT().ExecuteScript(mock.Anything, mock.Anything, mock.Anything).Return(tt.res, tt.err).Once()
			d.EXPECT().Cookies(mock.Anything).Return(nil, nil).Once()

			e := dom.NewExecutor(d, zaptest.NewLogger(t))
			snap := e.Capture(context.Background(), map[string]interface{}{})
			g.Expect(snap).To(Equal(models.DOMSnapshot{"cookies": []models.Cookie{}}))
		})
	}
}
