package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"resume-client/internal/analyses"
	"resume-client/internal/analyzer"
	"resume-client/internal/shared/metrics"
	"resume-client/internal/shared/telemetry"
)

// Analyzer performs one analysis call.
type Analyzer interface {
	Analyze(ctx context.Context, req analyzer.Request) (analyses.AnalysisResult, error)
}

// Snapshot is a consistent read of the workflow for rendering.
type Snapshot struct {
	State       State                    `json:"state"`
	Step        int                      `json:"step"`
	Progress    float64                  `json:"progress"`
	View        string                   `json:"view"`
	FileName    string                   `json:"fileName,omitempty"`
	FileSize    int                      `json:"fileSize,omitempty"`
	Description string                   `json:"description"`
	Error       string                   `json:"error,omitempty"`
	Result      *analyses.AnalysisResult `json:"-"`
}

// Workflow is the upload wizard for one user. It owns the selected file, the
// job description, the last error and the current result.
type Workflow struct {
	mu          sync.Mutex
	analyzer    Analyzer
	state       State
	file        *analyzer.File
	description string
	result      *analyses.AnalysisResult
	errMsg      string
	generation  uint64
}

// New returns a workflow in CollectingFile.
func New(a Analyzer) *Workflow {
	return &Workflow{analyzer: a, state: CollectingFile}
}

// SelectFile records the resume to submit. The picker's extension filter is
// advisory, so no content checks happen here.
func (w *Workflow) SelectFile(f analyzer.File) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case Submitting:
		return ErrSubmissionInFlight
	case ShowingResults:
		return ErrInvalidTransition
	}
	if strings.TrimSpace(f.Name) == "" {
		return w.rejectLocked(MessageMissingFile)
	}
	file := f
	w.file = &file
	w.errMsg = ""
	return nil
}

// Advance moves from CollectingFile to CollectingDescription once a file is selected.
func (w *Workflow) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case CollectingFile:
	case Submitting:
		return ErrSubmissionInFlight
	default:
		return ErrInvalidTransition
	}
	if w.file == nil {
		return w.rejectLocked(MessageMissingFile)
	}
	w.transitionLocked(CollectingDescription)
	return nil
}

// SetDescription stores the job description text as typed.
func (w *Workflow) SetDescription(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case Submitting:
		return ErrSubmissionInFlight
	case ShowingResults:
		return ErrInvalidTransition
	}
	w.description = text
	return nil
}

// Back returns from the description step to the file step, keeping inputs.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case CollectingDescription:
		w.errMsg = ""
		w.transitionLocked(CollectingFile)
		return nil
	case Submitting:
		return ErrSubmissionInFlight
	default:
		return ErrInvalidTransition
	}
}

// Submit sends the collected inputs to the analyzer.
//
// Only one submit may be outstanding; a concurrent call returns
// ErrSubmissionInFlight without contacting the service. On failure the
// workflow returns to CollectingDescription with the error text set. If the
// workflow is reset while the call is in flight, the late response is dropped
// and ErrSuperseded is returned.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	switch w.state {
	case CollectingDescription:
	case Submitting:
		w.mu.Unlock()
		return ErrSubmissionInFlight
	default:
		w.mu.Unlock()
		return ErrInvalidTransition
	}
	if w.file == nil || strings.TrimSpace(w.description) == "" {
		err := w.rejectLocked(MessageMissingInput)
		w.mu.Unlock()
		return err
	}

	req := analyzer.Request{File: *w.file, JobDescription: w.description}
	w.result = nil
	w.errMsg = ""
	w.transitionLocked(Submitting)
	gen := w.generation
	w.mu.Unlock()

	metrics.IncSubmissionStarted()
	start := time.Now()
	result, err := w.analyzer.Analyze(ctx, req)
	elapsed := time.Since(start)
	metrics.ObserveSubmissionDuration(elapsed)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generation != gen {
		telemetry.Info("workflow.submit_superseded", map[string]any{"duration_ms": elapsed.Milliseconds()})
		return ErrSuperseded
	}
	if err != nil {
		kind := Kind(err)
		metrics.IncSubmissionFailed(kind)
		w.errMsg = userMessage(err)
		w.transitionLocked(CollectingDescription)
		telemetry.Error("workflow.submit_failed", map[string]any{
			"kind":        kind,
			"error":       diagnostic(err),
			"duration_ms": elapsed.Milliseconds(),
		})
		return err
	}

	metrics.IncSubmissionCompleted()
	w.result = &result
	w.transitionLocked(ShowingResults)
	telemetry.Info("workflow.submit_completed", map[string]any{
		"score":       result.Score,
		"duration_ms": elapsed.Milliseconds(),
	})
	return nil
}

// Reset discards everything and returns to CollectingFile. Any in-flight
// submit will have its response ignored.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.file = nil
	w.description = ""
	w.result = nil
	w.errMsg = ""
	w.transitionLocked(CollectingFile)
}

// State returns the current state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Snapshot returns a copy of the workflow's visible state.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		State:       w.state,
		Step:        w.state.Step(),
		Progress:    w.state.Progress(),
		View:        w.state.View(),
		Description: w.description,
		Error:       w.errMsg,
		Result:      w.result,
	}
	if w.file != nil {
		snap.FileName = w.file.Name
		snap.FileSize = len(w.file.Content)
	}
	return snap
}

func (w *Workflow) rejectLocked(msg string) error {
	w.errMsg = msg
	return &ValidationError{Message: msg}
}

func (w *Workflow) transitionLocked(next State) {
	if w.state == next {
		return
	}
	telemetry.Info("workflow.transition", map[string]any{
		"from": w.state.String(),
		"to":   next.String(),
	})
	w.state = next
}

func diagnostic(err error) string {
	var d interface{ Diagnostic() string }
	if errors.As(err, &d) {
		return d.Diagnostic()
	}
	return err.Error()
}
