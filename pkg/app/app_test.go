package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/internal/services/capture"
	"github.com/selebrow/percy-selenium/pkg/models"
)

func startServer(t *testing.T, g *WithT, profile *models.HealthProfile) *httptest.Server {
	l := zaptest.NewLogger(t)
	cfg := createStubConfig(g)
	e, err := NewServer(cfg, profile, capture.NewLocalSnapshotStorage(l), models.StubInfo{Name: "percy-stub"}, l)
	g.Expect(err).ToNot(HaveOccurred())

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func get(g *WithT, u string) (*http.Response, string) {
	resp, err := http.Get(u)
	g.Expect(err).ToNot(HaveOccurred())
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	g.Expect(err).ToNot(HaveOccurred())
	return resp, string(data)
}

func post(g *WithT, u, body string) (*http.Response, string) {
	resp, err := http.Post(u, "application/json", strings.NewReader(body))
	g.Expect(err).ToNot(HaveOccurred())
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	g.Expect(err).ToNot(HaveOccurred())
	return resp, string(data)
}

func TestNewServer_PercyAPI(t *testing.T) {
	g := NewWithT(t)
	srv := startServer(t, g, &models.HealthProfile{
		CoreVersion: "1.28.0",
		Type:        models.SessionTypeWeb,
		Widths:      models.EligibleWidths{Mobile: []int{375}, Config: []int{1280}},
	})

	resp, body := get(g, srv.URL+"/percy/healthcheck")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(resp).To(HaveHTTPHeaderWithValue(router.CoreVersionHeader, "1.28.0"))
	g.Expect(body).To(MatchJSON(`{"success": true, "type": "web", "widths": {"mobile": [375], "config": [1280]}}`))

	resp, body = get(g, srv.URL+"/percy/dom.js")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(ContainSubstring("window.PercyDOM"))

	resp, body = post(g, srv.URL+"/percy/snapshot", `{
		"name": "home",
		"url": "http://localhost/fixtures/",
		"domSnapshot": [{"html": "<html></html>", "width": 1280}, {"html": "<html></html>", "width": 375}],
		"sync": true
	}`)
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	var snapResp models.Response
	g.Expect(json.Unmarshal([]byte(body), &snapResp)).To(Succeed())
	g.Expect(snapResp.Success).To(BeTrue())
	g.Expect(snapResp.Data).To(HaveKeyWithValue("snapshot-name", "home"))
	g.Expect(snapResp.Data).To(HaveKeyWithValue("widths", []interface{}{375.0, 1280.0}))
	id, _ := snapResp.Data["id"].(string)
	g.Expect(id).ToNot(BeEmpty())

	resp, body = get(g, srv.URL+"/percy/snapshots/"+id)
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(ContainSubstring(`"name":"home"`))

	resp, body = post(g, srv.URL+"/percy/snapshot", `{"url": "http://localhost/"}`)
	g.Expect(resp).To(HaveHTTPStatus(http.StatusBadRequest))
	g.Expect(body).To(MatchJSON(`{"success": false, "error": "missing required snapshot name"}`))

	resp, body = post(g, srv.URL+"/percy/automateScreenshot", `{"snapshotName": "checkout"}`)
	g.Expect(resp).To(HaveHTTPStatus(http.StatusBadRequest))
	g.Expect(body).To(ContainSubstring("only accepted in automate sessions"))

	resp, body = post(g, srv.URL+"/percy/log", `{"message": "[percy] hello", "level": "info"}`)
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(MatchJSON(`{"success": true}`))

	resp, body = get(g, srv.URL+"/percy/logs")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(ContainSubstring(`"message":"[percy] hello"`))

	resp, body = get(g, srv.URL+"/percy/unknown")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusNotFound))
	g.Expect(body).To(MatchJSON(`{"success": false, "error": "Not Found"}`))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/percy/snapshots", http.NoBody)
	g.Expect(err).ToNot(HaveOccurred())
	resp, err = http.DefaultClient.Do(req)
	g.Expect(err).ToNot(HaveOccurred())
	resp.Body.Close()
	g.Expect(resp).To(HaveHTTPStatus(http.StatusNoContent))

	_, body = get(g, srv.URL+"/percy/snapshots")
	g.Expect(body).To(MatchJSON(`[]`))
}

func TestNewServer_UIAndAssets(t *testing.T) {
	g := NewWithT(t)
	srv := startServer(t, g, &models.HealthProfile{Type: models.SessionTypeWeb})

	resp, body := get(g, srv.URL+"/ui")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(ContainSubstring("Emulating legacy agent"))
	g.Expect(body).To(ContainSubstring("No snapshots received yet"))

	resp, _ = get(g, srv.URL+"/static/style.css")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))

	resp, body = get(g, srv.URL+"/fixtures/")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(ContainSubstring(`class="new-todo"`))

	resp, body = get(g, srv.URL+"/info")
	g.Expect(resp).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(body).To(ContainSubstring(`"name":"percy-stub"`))

	resp, _ = get(g, srv.URL+"/")
	g.Expect(resp.Request.URL.Path).To(Equal("/ui"))
}
