package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

type stubPipeline struct {
	analysis *models.ResumeAnalysis
	err      error
	lastPath string
	lastRole string
	calls    int
}

func (s *stubPipeline) AnalyzeResume(_ context.Context, pdfPath, targetRole string) (*models.ResumeAnalysis, error) {
	s.calls++
	s.lastPath = pdfPath
	s.lastRole = targetRole
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func newTestApp(t *testing.T, pipeline services.Pipeline) *fiber.App {
	t.Helper()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	app := fiber.New()
	handler := NewAnalyzeHandler(pipeline, storage, 1024*1024)
	app.Post("/api/v1/analyze", handler.HandleAnalyze)
	return app
}

func multipartBody(t *testing.T, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if filename != "" {
		part, err := writer.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	analysis := &models.ResumeAnalysis{
		RoleMatchScore: 0.8,
		Summary:        "Strong fit.",
	}
	analysis.Normalize()

	pipeline := &stubPipeline{analysis: analysis}
	app := newTestApp(t, pipeline)

	body, contentType := multipartBody(t, "resume.pdf", map[string]string{"target_role": "Senior Backend Engineer"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.NotEmpty(t, payload.ID)
	assert.Equal(t, "Senior Backend Engineer", payload.TargetRole)
	assert.Equal(t, 0.8, payload.Analysis.RoleMatchScore)
	assert.Contains(t, payload.Report, "Strong fit.")

	assert.Equal(t, 1, pipeline.calls)
	assert.Equal(t, "Senior Backend Engineer", pipeline.lastRole)
}

func TestHandleAnalyzeRoleFromChatMessage(t *testing.T) {
	analysis := &models.ResumeAnalysis{RoleMatchScore: 0.5, Summary: "ok"}
	analysis.Normalize()

	pipeline := &stubPipeline{analysis: analysis}
	app := newTestApp(t, pipeline)

	body, contentType := multipartBody(t, "resume.pdf", map[string]string{
		"message": "analyze this resume for a Data Scientist position",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Data Scientist", pipeline.lastRole)
}

func TestHandleAnalyzeMissingRole(t *testing.T) {
	pipeline := &stubPipeline{}
	app := newTestApp(t, pipeline)

	body, contentType := multipartBody(t, "resume.pdf", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, pipeline.calls)
}

func TestHandleAnalyzeMissingFile(t *testing.T) {
	pipeline := &stubPipeline{}
	app := newTestApp(t, pipeline)

	body, contentType := multipartBody(t, "", map[string]string{"target_role": "Senior Backend Engineer"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "extraction failure",
			err:        &models.ExtractionError{Path: "x.pdf"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "analysis failure",
			err:        &models.AnalysisError{Reason: "unparsable model response"},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := &stubPipeline{err: tt.err}
			app := newTestApp(t, pipeline)

			body, contentType := multipartBody(t, "resume.pdf", map[string]string{"target_role": "Senior Backend Engineer"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req, 5000)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
