package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xmwu0124/predocker/models"
	"github.com/xmwu0124/predocker/storage"
)

// setupTest wires the controllers to a throwaway file store and returns its
// data directory plus a bare router for the test to register routes on.
func setupTest(t *testing.T) (string, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	Init(storage.NewFileStore(dir), nil)

	// No outbound mail from tests.
	origSendMail := sendMailFunc
	sendMailFunc = func(to []string, subject, html string) error { return nil }
	t.Cleanup(func() { sendMailFunc = origSendMail })

	return dir, gin.New()
}

func seedJobsFile(t *testing.T, dir string, jobs []models.Job) {
	t.Helper()
	data, err := json.Marshal(jobs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobs.json"), data, 0o644))
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
