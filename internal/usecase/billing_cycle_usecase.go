package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"billing_scheduler/internal/domain/entities"
	"billing_scheduler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCycleConfig   = errors.New("invalid billing cycle config")
	ErrBillingCycleNotWired = errors.New("billing cycle dependencies not configured")
	ErrInvalidBillingStage  = errors.New("invalid billing stage")
)

// IBillingCycleUseCase exposes the recurring collection state machine.
//
// The cycle rotates PENDING -> FAILED1 -> FAILED2 -> FAILED3 -> PENDING forever.
// Each firing charges every invoice of the stage's status, persists the
// classified result, then re-arms the scheduler for the following stage.
type IBillingCycleUseCase interface {
	Start(ctx context.Context) error
	Stop()
	Tick(ctx context.Context, stage entities.BillingStage) entities.TickReport
	RunStage(ctx context.Context, stage entities.BillingStage) (entities.TickReport, error)
	Status() entities.CycleStatus
}

// BillingCycleOptions carries the optional collaborators and tunables.
type BillingCycleOptions struct {
	Config entities.CycleConfig
	// ChargeConcurrency bounds the per-tick fan-out. 1 charges sequentially.
	ChargeConcurrency int
	Notifier          interfaces.IManualReviewNotifier
	Recorder          interfaces.IBillingRecorder
	Now               func() time.Time
}

type BillingCycleUseCase struct {
	log       *zap.Logger
	repo      interfaces.IInvoiceRepository
	gateway   interfaces.IPaymentGateway
	scheduler interfaces.IScheduler
	notifier  interfaces.IManualReviewNotifier
	recorder  interfaces.IBillingRecorder
	cfg       entities.CycleConfig
	workers   int
	now       func() time.Time

	// tickMu serialises billing passes; mu guards the fields below it.
	tickMu    sync.Mutex
	mu        sync.Mutex
	stage     entities.BillingStage
	armed     bool
	nextRunAt time.Time
	lastRun   *entities.TickReport
}

var _ IBillingCycleUseCase = (*BillingCycleUseCase)(nil)

func NewBillingCycleUseCase(
	log *zap.Logger,
	repo interfaces.IInvoiceRepository,
	gateway interfaces.IPaymentGateway,
	scheduler interfaces.IScheduler,
	opts BillingCycleOptions,
) (*BillingCycleUseCase, error) {
	if repo == nil || gateway == nil || scheduler == nil {
		return nil, ErrBillingCycleNotWired
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCycleConfig, err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ChargeConcurrency <= 0 {
		opts.ChargeConcurrency = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Notifier == nil {
		opts.Notifier = NewLogManualReviewNotifier(log)
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	return &BillingCycleUseCase{
		log:       log.Named("billing.cycle"),
		repo:      repo,
		gateway:   gateway,
		scheduler: scheduler,
		notifier:  opts.Notifier,
		recorder:  opts.Recorder,
		cfg:       opts.Config,
		workers:   opts.ChargeConcurrency,
		now:       opts.Now,
		stage:     entities.BillingStagePending,
	}, nil
}

// Start arms the first firing for the current stage (PENDING on a fresh cycle).
func (u *BillingCycleUseCase) Start(ctx context.Context) error {
	u.mu.Lock()
	stage := u.stage
	u.mu.Unlock()

	u.log.Info("[billing][cycle] start",
		zap.String("stage", string(stage)),
		zap.Stringer("pending_period", u.cfg.PendingPeriod),
		zap.Stringer("failed_period", u.cfg.FailedPeriod),
		zap.Bool("align_to_first_of_month", u.cfg.AlignToFirstOfMonth),
		zap.Int("charge_concurrency", u.workers),
	)
	return u.arm(ctx, stage)
}

// Stop cancels the pending firing. A tick already running finishes its batch first.
func (u *BillingCycleUseCase) Stop() {
	u.log.Info("[billing][cycle] stopping")
	u.scheduler.Stop()

	u.mu.Lock()
	u.armed = false
	u.mu.Unlock()
	u.log.Info("[billing][cycle] stopped")
}

// Tick runs one billing pass for stage, advances the stage pointer and re-arms
// the scheduler. Nothing raised while billing escapes: the schedule keeps going.
func (u *BillingCycleUseCase) Tick(ctx context.Context, stage entities.BillingStage) entities.TickReport {
	u.tickMu.Lock()
	report := u.runStage(ctx, stage)
	next := stage.Next()

	u.mu.Lock()
	u.stage = next
	u.armed = false
	u.lastRun = &report
	u.mu.Unlock()
	u.tickMu.Unlock()

	u.recorder.ObserveTick(report)
	if err := u.arm(ctx, next); err != nil {
		if errors.Is(err, interfaces.ErrSchedulerStopped) {
			u.log.Info("[billing][cycle] scheduler stopped; not re-arming", zap.String("stage", string(next)))
		} else {
			u.log.Error("[billing][cycle] re-arm failed", zap.String("stage", string(next)), zap.Error(err))
		}
	}
	return report
}

// RunStage runs a single billing pass without touching the stage pointer or
// the schedule. It is meant for operators re-driving a stage by hand.
func (u *BillingCycleUseCase) RunStage(ctx context.Context, stage entities.BillingStage) (entities.TickReport, error) {
	if !stage.Valid() {
		return entities.TickReport{}, fmt.Errorf("%w: %q", ErrInvalidBillingStage, stage)
	}
	u.tickMu.Lock()
	defer u.tickMu.Unlock()

	report := u.runStage(ctx, stage)
	u.recorder.ObserveTick(report)
	return report, nil
}

func (u *BillingCycleUseCase) Status() entities.CycleStatus {
	u.mu.Lock()
	defer u.mu.Unlock()

	st := entities.CycleStatus{
		Stage:     u.stage,
		Armed:     u.armed,
		NextRunAt: u.nextRunAt,
		Config:    u.cfg,
	}
	if u.lastRun != nil {
		last := *u.lastRun
		st.LastRun = &last
	}
	return st
}

func (u *BillingCycleUseCase) arm(ctx context.Context, stage entities.BillingStage) error {
	now := u.now()
	at := NextFiring(stage, u.cfg, now)
	delay := at.Sub(now)
	if delay < 0 {
		// An aligned PENDING firing can land in the past when the period is
		// shorter than the time elapsed since the 1st of the month.
		delay = 0
	}

	err := u.scheduler.Schedule(ctx, delay, func(ctx context.Context) {
		u.Tick(ctx, stage)
	})
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.armed = true
	u.nextRunAt = at
	u.mu.Unlock()

	u.recorder.SetStage(stage, at)
	u.log.Info("[billing][cycle] next billing job scheduled",
		zap.String("stage", string(stage)),
		zap.Time("run_at", at),
		zap.Duration("delay", delay),
	)
	return nil
}

type invoiceResult struct {
	status       entities.InvoiceStatus
	skipped      bool
	unchanged    bool
	updateFailed bool
}

func (u *BillingCycleUseCase) runStage(ctx context.Context, stage entities.BillingStage) (report entities.TickReport) {
	report = entities.TickReport{
		RunID:     uuid.NewString(),
		Stage:     stage,
		StartedAt: u.now(),
	}
	log := u.log.With(zap.String("run_id", report.RunID), zap.String("stage", string(stage)))
	log.Info("[billing][cycle] tick start")

	defer func() {
		report.FinishedAt = u.now()
		report.Duration = report.FinishedAt.Sub(report.StartedAt)
	}()

	invoices, err := u.repo.FetchByStatus(ctx, stage.Status())
	if err != nil {
		log.Error("[billing][cycle] fetch invoices failed", zap.Error(err))
		report.FetchFailed = true
		return report
	}
	report.Fetched = len(invoices)
	if len(invoices) == 0 {
		log.Info("[billing][cycle] no invoices to bill")
		return report
	}

	// Workers never return an error, so one invoice cannot cancel its siblings.
	results := make([]invoiceResult, len(invoices))
	var g errgroup.Group
	g.SetLimit(u.workers)
	for i, invoice := range invoices {
		g.Go(func() error {
			results[i] = u.processInvoice(ctx, log, stage, invoice)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		switch {
		case r.skipped:
			report.Skipped++
			continue
		case r.unchanged:
			report.Unchanged++
		case r.status == entities.InvoiceStatusPaid:
			report.Paid++
		case r.status == entities.InvoiceStatusManualCheck:
			report.ManualCheck++
		default:
			report.Failed++
		}
		if r.updateFailed {
			report.UpdateErrors++
		}
	}

	log.Info("[billing][cycle] tick done",
		zap.Int("fetched", report.Fetched),
		zap.Int("paid", report.Paid),
		zap.Int("failed", report.Failed),
		zap.Int("manual_check", report.ManualCheck),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("skipped", report.Skipped),
		zap.Int("update_errors", report.UpdateErrors),
	)
	return report
}

func (u *BillingCycleUseCase) processInvoice(ctx context.Context, log *zap.Logger, stage entities.BillingStage, invoice entities.Invoice) invoiceResult {
	log = log.With(zap.String("invoice_id", invoice.ID), zap.String("customer_id", invoice.CustomerID))

	if invoice.Status.IsTerminal() {
		log.Warn("[billing][cycle] terminal invoice returned by store; not charging", zap.String("status", string(invoice.Status)))
		return invoiceResult{status: invoice.Status, skipped: true}
	}

	outcome := u.charge(ctx, invoice)
	if outcome.Cause != nil {
		log.Debug("[billing][cycle] charge raised an error", zap.String("outcome", outcome.Label()), zap.Error(outcome.Cause))
	}

	res := invoiceResult{}
	status, err := ClassifyChargeResult(invoice, outcome)
	if err != nil {
		log.Warn("[billing][cycle] invoice left unchanged", zap.String("status", string(invoice.Status)), zap.Error(err))
		res.unchanged = true
	}
	res.status = status

	updated := invoice.WithStatus(status)
	updated.UpdatedAt = u.now().UTC()
	if err := u.repo.Update(ctx, updated); err != nil {
		log.Error("[billing][cycle] persist invoice failed", zap.String("status", string(status)), zap.Error(err))
		res.updateFailed = true
	}

	u.recorder.ObserveCharge(stage, outcome.Label(), status)
	log.Info("[billing][cycle] invoice processed",
		zap.String("outcome", outcome.Label()),
		zap.String("from", string(invoice.Status)),
		zap.String("to", string(status)),
	)

	if status == entities.InvoiceStatusManualCheck && !res.updateFailed {
		u.notifier.NotifyManualCheck(ctx, updated)
	}
	return res
}

// charge calls the gateway and converts its answer into an outcome.
// A panicking gateway is reported as an unclassified error.
//
// No timeout is applied here: a charge call that never returns stalls the
// whole cycle until it does.
func (u *BillingCycleUseCase) charge(ctx context.Context, invoice entities.Invoice) (outcome entities.ChargeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = entities.ChargeErrored(entities.ChargeErrorOther, fmt.Errorf("charge panicked: %v", r))
		}
	}()
	paid, err := u.gateway.Charge(ctx, invoice)
	return entities.OutcomeFromCharge(paid, err)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCharge(entities.BillingStage, string, entities.InvoiceStatus) {}
func (nopRecorder) ObserveTick(entities.TickReport)                                    {}
func (nopRecorder) SetStage(entities.BillingStage, time.Time)                          {}
