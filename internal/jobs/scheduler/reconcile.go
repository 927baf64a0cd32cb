package scheduler

import (
	"context"
	"fmt"
	"time"

	"storefront-affiliates/internal/observability"
)

// LedgerReconciler rebuilds affiliate aggregates from the referral ledger
type LedgerReconciler interface {
	ReconcileAffiliateTotals(ctx context.Context) (int64, error)
}

// LedgerReconcileJob rewrites total_referrals and total_earnings for every
// affiliate whose stored aggregates disagree with the ledger.
type LedgerReconcileJob struct {
	store   LedgerReconciler
	spec    string
	timeout time.Duration
	metrics *observability.Metrics
	logger  *observability.Logger
}

// NewLedgerReconcileJob creates a reconcile job running on spec
func NewLedgerReconcileJob(store LedgerReconciler, spec string, metrics *observability.Metrics, logger *observability.Logger) *LedgerReconcileJob {
	return &LedgerReconcileJob{
		store:   store,
		spec:    spec,
		timeout: 10 * time.Minute,
		metrics: metrics,
		logger:  logger,
	}
}

func (j *LedgerReconcileJob) Name() string { return "ledger_reconcile" }

func (j *LedgerReconcileJob) Spec() string { return j.spec }

func (j *LedgerReconcileJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	repaired, err := j.store.ReconcileAffiliateTotals(ctx)
	if err != nil {
		return fmt.Errorf("failed to reconcile affiliate totals: %w", err)
	}

	j.metrics.DriftRepaired(repaired)
	if repaired > 0 {
		j.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "repaired", Value: repaired}), "affiliate aggregates drifted from the ledger")
	}
	return nil
}
