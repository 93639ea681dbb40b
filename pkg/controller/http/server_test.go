package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	httpCtrl "github.com/secmon-lab/argus/pkg/controller/http"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func TestNewServerRequiresArtifactPath(t *testing.T) {
	_, err := httpCtrl.NewServer(testContext(), "127.0.0.1:0", "")
	gt.Error(t, err)
}

func TestServerHealthCheck(t *testing.T) {
	server, err := httpCtrl.NewServer(testContext(), "127.0.0.1:0",
		filepath.Join(t.TempDir(), "report.html"))
	gt.NoError(t, err).Required()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Server.Handler.ServeHTTP(w, req)

	gt.Equal(t, http.StatusOK, w.Code)
	gt.True(t, strings.Contains(w.Body.String(), "healthy"))
	gt.True(t, strings.Contains(w.Body.String(), "argus"))
}

func TestServerReport(t *testing.T) {
	artifactPath := filepath.Join(t.TempDir(), "report.html")
	server, err := httpCtrl.NewServer(testContext(), "127.0.0.1:0", artifactPath)
	gt.NoError(t, err).Required()

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		server.Server.Handler.ServeHTTP(w, req)
		return w
	}

	t.Run("missing artifact returns not found", func(t *testing.T) {
		w := serve()
		gt.Equal(t, http.StatusNotFound, w.Code)
		gt.True(t, strings.Contains(w.Body.String(), "report not generated yet"))
	})

	t.Run("serves the artifact as HTML", func(t *testing.T) {
		gt.NoError(t, os.WriteFile(artifactPath, []byte("<html lang=\"sv\"><body>rapport</body></html>"), 0644))

		w := serve()
		gt.Equal(t, http.StatusOK, w.Code)
		gt.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")
		gt.True(t, strings.Contains(w.Body.String(), "rapport"))
	})

	t.Run("regenerated artifact shows without restart", func(t *testing.T) {
		gt.NoError(t, os.WriteFile(artifactPath, []byte("<html><body>second run</body></html>"), 0644))

		w := serve()
		gt.Equal(t, http.StatusOK, w.Code)
		gt.True(t, strings.Contains(w.Body.String(), "second run"))
	})
}
