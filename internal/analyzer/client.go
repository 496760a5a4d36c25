package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"resume-client/internal/analyses"
	"resume-client/internal/shared/telemetry"
)

const (
	analyzePath    = "/analyze_resume"
	healthPath     = "/"
	DefaultTimeout = 30 * time.Second
	maxErrorBody   = 64 << 10
)

// File is the resume blob as picked by the user.
type File struct {
	Name     string
	MimeType string
	Content  []byte
}

// Request is one submission attempt.
type Request struct {
	File           File
	JobDescription string
}

// Client calls the external analysis service. One attempt per call, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds each call; non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the transport. Its Timeout is kept as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New constructs a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("ANALYZER_BASE_URL is required")
	}
	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Analyze submits req and returns the parsed result.
//
// Errors are *InputRejectedError (422), *analyses.ParseError (bad success
// body) or *TransportError (everything else).
func (c *Client) Analyze(ctx context.Context, req Request) (analyses.AnalysisResult, error) {
	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return analyses.AnalysisResult{}, &TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, body)
	if err != nil {
		return analyses.AnalysisResult{}, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		terr := &TransportError{Timeout: isTimeout(err), Err: err}
		telemetry.Error("analyzer.request_failed", map[string]any{
			"error":       terr.Diagnostic(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return analyses.AnalysisResult{}, terr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return analyses.AnalysisResult{}, &TransportError{Status: resp.StatusCode, Timeout: isTimeout(err), Err: err}
	}

	telemetry.Info("analyzer.response", map[string]any{
		"status":      resp.StatusCode,
		"bytes":       len(raw),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		msg := serverErrorText(raw)
		if msg == "" {
			msg = MessageInputRejected
		}
		return analyses.AnalysisResult{}, &InputRejectedError{Message: msg}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return analyses.AnalysisResult{}, &TransportError{
			Status: resp.StatusCode,
			Detail: truncate(serverErrorText(raw), 512),
		}
	}

	return analyses.ParseResult(raw)
}

// Ping checks that the service answers its health route.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Status: resp.StatusCode, Detail: "health check failed"}
	}
	return nil
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func encodeMultipart(req Request) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(req.File.Name)))
	mimeType := strings.TrimSpace(req.File.MimeType)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.File.Content); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("job_description", req.JobDescription); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// serverErrorText returns the "error" string of a JSON error body, if any.
func serverErrorText(raw []byte) string {
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Error) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(body.Error, &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
