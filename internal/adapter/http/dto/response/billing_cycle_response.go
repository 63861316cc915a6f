package response

import (
	"time"

	"billing_scheduler/internal/domain/entities"
)

type TickReportResponse struct {
	RunID        string    `json:"run_id"`
	Stage        string    `json:"stage"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	DurationMS   int64     `json:"duration_ms"`
	FetchFailed  bool      `json:"fetch_failed"`
	Fetched      int       `json:"fetched"`
	Paid         int       `json:"paid"`
	Failed       int       `json:"failed"`
	ManualCheck  int       `json:"manual_check"`
	Unchanged    int       `json:"unchanged"`
	Skipped      int       `json:"skipped"`
	UpdateErrors int       `json:"update_errors"`
}

type BillingCycleResponse struct {
	Stage               string              `json:"stage"`
	Armed               bool                `json:"armed"`
	NextRunAt           *time.Time          `json:"next_run_at,omitempty"`
	PendingPeriod       string              `json:"pending_period"`
	FailedPeriod        string              `json:"failed_period"`
	AlignToFirstOfMonth bool                `json:"align_to_first_of_month"`
	LastRun             *TickReportResponse `json:"last_run,omitempty"`
}

func FromTickReport(r entities.TickReport) TickReportResponse {
	return TickReportResponse{
		RunID:        r.RunID,
		Stage:        string(r.Stage),
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		DurationMS:   r.Duration.Milliseconds(),
		FetchFailed:  r.FetchFailed,
		Fetched:      r.Fetched,
		Paid:         r.Paid,
		Failed:       r.Failed,
		ManualCheck:  r.ManualCheck,
		Unchanged:    r.Unchanged,
		Skipped:      r.Skipped,
		UpdateErrors: r.UpdateErrors,
	}
}

func FromCycleStatus(s entities.CycleStatus) BillingCycleResponse {
	resp := BillingCycleResponse{
		Stage:               string(s.Stage),
		Armed:               s.Armed,
		PendingPeriod:       s.Config.PendingPeriod.String(),
		FailedPeriod:        s.Config.FailedPeriod.String(),
		AlignToFirstOfMonth: s.Config.AlignToFirstOfMonth,
	}
	// A stopped cycle keeps its last next_run_at; only report it while armed.
	if s.Armed && !s.NextRunAt.IsZero() {
		at := s.NextRunAt
		resp.NextRunAt = &at
	}
	if s.LastRun != nil {
		last := FromTickReport(*s.LastRun)
		resp.LastRun = &last
	}
	return resp
}
