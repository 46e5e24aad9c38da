package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"resume-analyzer/internal/models"
)

// apiVersions are tried in order when submitting a document; regional
// deployments lag behind the newest API version.
var apiVersions = []string{"2024-02-29-preview", "2023-07-31", "2022-08-31"}

const analyzeModel = "prebuilt-layout"

// DocumentIntelligenceExtractor extracts text and paragraph structure from a
// PDF through the Azure Document Intelligence REST API: submit the document,
// then poll the returned operation until it succeeds or fails.
type DocumentIntelligenceExtractor struct {
	endpoint   string
	key        string
	httpClient *http.Client

	pollInterval time.Duration
	maxPolls     int
}

func NewDocumentIntelligenceExtractor(endpoint, key string) *DocumentIntelligenceExtractor {
	return &DocumentIntelligenceExtractor{
		endpoint:     endpoint,
		key:          key,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		pollInterval: 2 * time.Second,
		maxPolls:     30,
	}
}

func (d *DocumentIntelligenceExtractor) Method() string { return "remote" }

type analyzeResponse struct {
	Status        string `json:"status"`
	AnalyzeResult struct {
		Content    string `json:"content"`
		Paragraphs []struct {
			Content         string `json:"content"`
			Role            string `json:"role"`
			BoundingRegions []struct {
				PageNumber int       `json:"pageNumber"`
				Polygon    []float64 `json:"polygon"`
			} `json:"boundingRegions"`
		} `json:"paragraphs"`
		Pages []struct {
			PageNumber int `json:"pageNumber"`
			Words      []struct {
				Confidence float64 `json:"confidence"`
			} `json:"words"`
		} `json:"pages"`
	} `json:"analyzeResult"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (d *DocumentIntelligenceExtractor) Extract(ctx context.Context, pdfPath string) (*models.ExtractionResult, error) {
	if d.key == "" || d.endpoint == "" {
		return nil, fmt.Errorf("document intelligence credentials not configured")
	}

	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	operationURL, err := d.submit(ctx, pdfData)
	if err != nil {
		return nil, err
	}

	result, err := d.poll(ctx, operationURL)
	if err != nil {
		return nil, err
	}

	return decodeAnalyzeResult(result), nil
}

// submit starts the analysis, walking the API version candidates until one
// accepts the request. A 202 with an Operation-Location header means the
// service took the document.
func (d *DocumentIntelligenceExtractor) submit(ctx context.Context, pdfData []byte) (string, error) {
	urls := make([]string, 0, len(apiVersions)+1)
	for _, version := range apiVersions {
		urls = append(urls, fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
			d.endpoint, analyzeModel, version))
	}
	// Legacy Form Recognizer route, kept for older resources.
	urls = append(urls, fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=2022-08-31",
		d.endpoint, analyzeModel))

	var lastStatus int
	var lastBody string

	for _, analyzeURL := range urls {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, analyzeURL, bytes.NewReader(pdfData))
		if err != nil {
			return "", fmt.Errorf("failed to build analyze request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", d.key)
		req.Header.Set("Content-Type", "application/pdf")

		resp, err := d.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("failed to submit document: %w", err)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusAccepted {
			operationURL := resp.Header.Get("Operation-Location")
			if operationURL == "" {
				return "", fmt.Errorf("analyze accepted but no operation location returned")
			}
			return operationURL, nil
		}

		lastStatus = resp.StatusCode
		lastBody = string(body)

		log.Printf("⚠️  Document Intelligence rejected %s with status %d", analyzeURL, resp.StatusCode)
	}

	if lastStatus == http.StatusUnauthorized {
		return "", fmt.Errorf("authentication failed, check DI_KEY and DI_ENDPOINT: status %d: %s",
			lastStatus, lastBody)
	}

	return "", fmt.Errorf("failed to start analysis: status %d: %s", lastStatus, lastBody)
}

func (d *DocumentIntelligenceExtractor) poll(ctx context.Context, operationURL string) (*analyzeResponse, error) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= d.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		case <-ticker.C:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build poll request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", d.key)

		resp, err := d.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to poll analysis: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("failed to get results: status %d: %s", resp.StatusCode, string(body))
		}

		var result analyzeResponse
		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode analysis result: %w", err)
		}

		switch result.Status {
		case "succeeded":
			return &result, nil
		case "failed":
			return nil, fmt.Errorf("analysis failed: %s: %s", result.Error.Code, result.Error.Message)
		case "running", "notStarted":
			log.Printf("📊 Analysis status: %s (attempt %d/%d)", result.Status, attempt, d.maxPolls)
		default:
			return nil, fmt.Errorf("unknown analysis status: %s", result.Status)
		}
	}

	return nil, fmt.Errorf("analysis timed out after %d polls", d.maxPolls)
}

// decodeAnalyzeResult maps the service response onto the extraction model.
// Paragraph confidence comes from the average word confidence of the page it
// sits on; the layout model reports confidence per word, not per paragraph.
func decodeAnalyzeResult(result *analyzeResponse) *models.ExtractionResult {
	pageConfidence := make(map[int]float64)
	for _, page := range result.AnalyzeResult.Pages {
		if len(page.Words) == 0 {
			continue
		}
		var sum float64
		for _, word := range page.Words {
			sum += word.Confidence
		}
		pageConfidence[page.PageNumber] = sum / float64(len(page.Words))
	}

	extraction := &models.ExtractionResult{
		PageCount: len(result.AnalyzeResult.Pages),
		Method:    "remote",
	}

	for _, p := range result.AnalyzeResult.Paragraphs {
		paragraph := models.Paragraph{
			Content:    p.Content,
			Role:       models.RoleBody,
			Confidence: 1.0,
		}
		if p.Role != "" {
			paragraph.Role = models.ParagraphRole(p.Role)
		}
		if len(p.BoundingRegions) > 0 {
			paragraph.Page = p.BoundingRegions[0].PageNumber
			paragraph.BoundingBox = p.BoundingRegions[0].Polygon
			if c, ok := pageConfidence[paragraph.Page]; ok {
				paragraph.Confidence = c
			}
		}
		extraction.Paragraphs = append(extraction.Paragraphs, paragraph)
	}

	// Older models return plain content with no paragraph list.
	if len(extraction.Paragraphs) == 0 && result.AnalyzeResult.Content != "" {
		extraction.Paragraphs = append(extraction.Paragraphs, models.Paragraph{
			Content:    result.AnalyzeResult.Content,
			Role:       models.RoleBody,
			Confidence: 1.0,
		})
	}

	return extraction
}
