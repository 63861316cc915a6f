package entities

import "time"

// TickReport summarises one billing pass over a stage.
type TickReport struct {
	RunID        string        `json:"run_id"`
	Stage        BillingStage  `json:"stage"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	FetchFailed  bool          `json:"fetch_failed"`
	Fetched      int           `json:"fetched"`
	Paid         int           `json:"paid"`
	Failed       int           `json:"failed"`
	ManualCheck  int           `json:"manual_check"`
	Unchanged    int           `json:"unchanged"`
	Skipped      int           `json:"skipped"`
	UpdateErrors int           `json:"update_errors"`
	Duration     time.Duration `json:"duration"`
}

// CycleStatus is a snapshot of the billing cycle state machine.
type CycleStatus struct {
	Stage     BillingStage `json:"stage"`
	Armed     bool         `json:"armed"`
	NextRunAt time.Time    `json:"next_run_at"`
	LastRun   *TickReport  `json:"last_run,omitempty"`
	Config    CycleConfig  `json:"config"`
}
