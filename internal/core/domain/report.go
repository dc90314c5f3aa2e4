package domain

// StepStatus represents the outcome of a plan step.
type StepStatus string

const (
	// StepStatusPending indicates the step has not run yet.
	StepStatusPending StepStatus = "pending"
	// StepStatusCompleted indicates the step succeeded.
	StepStatusCompleted StepStatus = "completed"
	// StepStatusIgnored indicates the step failed but the failure does not stop the run.
	StepStatusIgnored StepStatus = "ignored"
	// StepStatusFailed indicates the step failed and aborted the run.
	StepStatusFailed StepStatus = "failed"
	// StepStatusSkipped indicates the step never ran because an earlier step aborted the run.
	StepStatusSkipped StepStatus = "skipped"
)

// IsTerminal reports whether the status is final.
func (s StepStatus) IsTerminal() bool {
	return s != StepStatusPending && s != ""
}

// StepResult records what happened to one step.
type StepResult struct {
	Step   Step
	Status StepStatus
	Err    error
}

// Report collects step results in plan order.
type Report struct {
	Results []StepResult
}

// NewReport returns a report with every step of the plan pending.
func NewReport(p *Plan) *Report {
	results := make([]StepResult, len(p.Steps))
	for i, s := range p.Steps {
		results[i] = StepResult{Step: s, Status: StepStatusPending}
	}
	return &Report{Results: results}
}

// Completed returns the results of steps that succeeded.
func (r *Report) Completed() []StepResult {
	return r.byStatus(StepStatusCompleted)
}

// Ignored returns the results of steps whose failure was tolerated.
func (r *Report) Ignored() []StepResult {
	return r.byStatus(StepStatusIgnored)
}

// Failed returns the result of the step that aborted the run, if any.
func (r *Report) Failed() []StepResult {
	return r.byStatus(StepStatusFailed)
}

// Skipped returns the results of steps that never ran.
func (r *Report) Skipped() []StepResult {
	return r.byStatus(StepStatusSkipped)
}

func (r *Report) byStatus(status StepStatus) []StepResult {
	var out []StepResult
	for _, res := range r.Results {
		if res.Status == status {
			out = append(out, res)
		}
	}
	return out
}
