package entities

import (
	"fmt"
	"strings"
	"time"
)

// PeriodUnit is the calendar granularity of a Period.
type PeriodUnit string

const (
	PeriodUnitSecond PeriodUnit = "second"
	PeriodUnitMinute PeriodUnit = "minute"
	PeriodUnitHour   PeriodUnit = "hour"
	PeriodUnitDay    PeriodUnit = "day"
	PeriodUnitWeek   PeriodUnit = "week"
	PeriodUnitMonth  PeriodUnit = "month"
	PeriodUnitYear   PeriodUnit = "year"
)

// ParsePeriodUnit accepts singular or plural unit names, case-insensitive.
func ParsePeriodUnit(raw string) (PeriodUnit, error) {
	u := PeriodUnit(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "s"))
	if !u.Valid() {
		return "", fmt.Errorf("unknown period unit %q", raw)
	}
	return u, nil
}

func (u PeriodUnit) Valid() bool {
	switch u {
	case PeriodUnitSecond, PeriodUnitMinute, PeriodUnitHour, PeriodUnitDay,
		PeriodUnitWeek, PeriodUnitMonth, PeriodUnitYear:
		return true
	}
	return false
}

// Period is an amount of calendar units, e.g. {month, 1} or {second, 5}.
type Period struct {
	Unit   PeriodUnit `json:"unit"`
	Amount int        `json:"amount"`
}

// AddTo returns t moved forward by the period.
// Day based units use calendar arithmetic so DST shifts keep the wall clock.
func (p Period) AddTo(t time.Time) time.Time {
	n := p.Amount
	switch p.Unit {
	case PeriodUnitSecond:
		return t.Add(time.Duration(n) * time.Second)
	case PeriodUnitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case PeriodUnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case PeriodUnitDay:
		return t.AddDate(0, 0, n)
	case PeriodUnitWeek:
		return t.AddDate(0, 0, 7*n)
	case PeriodUnitMonth:
		return t.AddDate(0, n, 0)
	case PeriodUnitYear:
		return t.AddDate(n, 0, 0)
	}
	return t
}

func (p Period) String() string {
	return fmt.Sprintf("%d %s", p.Amount, p.Unit)
}

func (p Period) Validate() error {
	if !p.Unit.Valid() {
		return fmt.Errorf("unknown period unit %q", p.Unit)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("period amount must be positive, got %d", p.Amount)
	}
	return nil
}

// CycleConfig holds the delays between billing cycle firings.
//
// AlignToFirstOfMonth only affects the PENDING stage: its firing is anchored
// to the 1st of the current month at 08:00 before PendingPeriod is added.
type CycleConfig struct {
	PendingPeriod       Period `json:"pending_period"`
	FailedPeriod        Period `json:"failed_period"`
	AlignToFirstOfMonth bool   `json:"align_to_first_of_month"`
}

func (c CycleConfig) Validate() error {
	if err := c.PendingPeriod.Validate(); err != nil {
		return fmt.Errorf("pending period: %w", err)
	}
	if err := c.FailedPeriod.Validate(); err != nil {
		return fmt.Errorf("failed period: %w", err)
	}
	return nil
}
