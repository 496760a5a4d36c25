package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-client/internal/analyses"
	"resume-client/internal/analyzer"
	"resume-client/internal/keywords"
	"resume-client/internal/presenter"
	"resume-client/internal/preview"
	"resume-client/internal/shared/config"
	"resume-client/internal/shared/telemetry"
	"resume-client/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(err.Error())
	}

	resumePath := flag.String("resume", "", "Path to resume file (pdf, doc or docx)")
	jdPath := flag.String("jd", "", "Path to job description file")
	jdText := flag.String("jd-text", "", "Job description text (overrides -jd)")
	baseURL := flag.String("base-url", cfg.AnalyzerBaseURL, "Analysis service base URL")
	timeout := flag.Duration("timeout", cfg.AnalyzerTimeout, "Request timeout")
	asJSON := flag.Bool("json", false, "Print the result view as JSON")
	verbose := flag.Bool("v", false, "Log workflow events to stderr")
	flag.Parse()

	if *verbose {
		_ = telemetry.Init("debug", "console")
		defer telemetry.Sync()
	}

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}
	content, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	fileName := filepath.Base(*resumePath)
	if !preview.Accepted(fileName) {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %s is not one of %s\n", fileName, strings.Join(preview.AdvisoryAccept, ", "))
	}

	description := *jdText
	if description == "" && strings.TrimSpace(*jdPath) != "" {
		raw, err := os.ReadFile(*jdPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		description = string(raw)
	}

	client, err := analyzer.New(*baseURL, analyzer.WithTimeout(*timeout))
	if err != nil {
		exitErr(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+5*time.Second)
	defer cancel()

	file := analyzer.File{
		Name:     fileName,
		MimeType: preview.DetectMimeType("", fileName, content),
		Content:  content,
	}
	result, err := run(ctx, workflow.New(client), file, description)
	if err != nil {
		exitErr(err.Error())
	}

	view, _ := presenter.New(keywords.Default(), cfg.TrendFallback).Present(result)
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			exitErr(err.Error())
		}
		return
	}
	writeReport(os.Stdout, view)
}

// run drives the upload wizard end to end and returns the analysis, or the
// message the wizard would show the user.
func run(ctx context.Context, wf *workflow.Workflow, file analyzer.File, description string) (*analyses.AnalysisResult, error) {
	if err := wf.SelectFile(file); err != nil {
		return nil, err
	}
	if err := wf.Advance(); err != nil {
		return nil, err
	}
	if err := wf.SetDescription(description); err != nil {
		return nil, err
	}
	if err := wf.Submit(ctx); err != nil {
		if snap := wf.Snapshot(); snap.Error != "" {
			return nil, errors.New(snap.Error)
		}
		return nil, err
	}
	return wf.Snapshot().Result, nil
}

func writeReport(w io.Writer, view presenter.View) {
	_, _ = fmt.Fprintf(w, "ATS score: %s (%s)\n", view.ScorePercent, view.Verdict.Label)

	trend := make([]string, 0, len(view.Trend))
	for _, p := range view.Trend {
		trend = append(trend, fmt.Sprintf("#%d %d", p.Attempt, p.Score))
	}
	label := "Trend"
	if view.TrendIsPlaceholder {
		label = "Trend (sample)"
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", label, strings.Join(trend, ", "))

	_, _ = fmt.Fprintf(w, "Matched skills: %s\n", listOrNone(view.MatchedSkills))
	_, _ = fmt.Fprintf(w, "Missing skills: %s\n", listOrNone(view.MissingSkills))

	if len(view.Recommendations) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "Recommendations:")
	for _, rec := range view.Recommendations {
		_, _ = fmt.Fprintf(w, "  %d. [%s] %s: %s\n", rec.Order, rec.Priority, rec.Keyword, rec.Tip)
	}
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
