package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-client/internal/analyzer"
	"resume-client/internal/keywords"
	"resume-client/internal/presenter"
	"resume-client/internal/workflow"
)

func newClient(t *testing.T, status int, body string) *analyzer.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	client, err := analyzer.New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestRunReturnsResult(t *testing.T) {
	client := newClient(t, http.StatusOK, `{"score":64,"matched_keywords":["python"],"missing_keywords":["docker"],"suggestions":[]}`)
	file := analyzer.File{Name: "cv.pdf", Content: []byte("%PDF-1.4")}

	result, err := run(context.Background(), workflow.New(client), file, "Go developer")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result == nil || result.Score != 64 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRunSurfacesUserMessage(t *testing.T) {
	client := newClient(t, http.StatusUnprocessableEntity, `{"error":"Resume is empty"}`)
	file := analyzer.File{Name: "cv.pdf", Content: []byte("x")}

	_, err := run(context.Background(), workflow.New(client), file, "Go developer")
	if err == nil || err.Error() != "Resume is empty" {
		t.Fatalf("expected service message, got %v", err)
	}

	_, err = run(context.Background(), workflow.New(client), file, "  ")
	if err == nil || err.Error() != workflow.MessageMissingInput {
		t.Fatalf("expected missing input message, got %v", err)
	}
}

func TestWriteReport(t *testing.T) {
	client := newClient(t, http.StatusOK, `{"score":82,"matched_keywords":["python","foo"],"missing_keywords":["docker"],"suggestions":["leadership"]}`)
	result, err := run(context.Background(), workflow.New(client), analyzer.File{Name: "cv.docx", Content: []byte("x")}, "JD")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	view, ok := presenter.New(keywords.Default(), nil).Present(result)
	if !ok {
		t.Fatalf("expected a view")
	}

	var buf bytes.Buffer
	writeReport(&buf, view)
	out := buf.String()

	for _, want := range []string{
		"ATS score: 82%",
		"Trend (sample): #1 45, #2 60, #3 72, #4 82",
		"Matched skills: python\n",
		"Missing skills: docker\n",
		"Recommendations:",
		"docker",
		"leadership",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
