package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skuwatch/skuwatch/pkg/application/dto"
	"github.com/skuwatch/skuwatch/pkg/domain/entities"
	"github.com/skuwatch/skuwatch/pkg/domain/repositories"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/events"
	"github.com/skuwatch/skuwatch/pkg/infrastructure/feeds"
)

// ImportConfig holds throttling and retry settings for import runs
type ImportConfig struct {
	// CommitDelay is the pause between group commits, a throughput throttle
	// for the external store. Zero disables it (tests run with zero).
	CommitDelay time.Duration
	// CommitRetries bounds retry attempts for one failing store write
	CommitRetries uint64
	// InitialBackoff seeds the exponential backoff between retries
	InitialBackoff time.Duration
}

// DefaultImportConfig returns the production settings for import runs
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		CommitDelay:    120 * time.Millisecond,
		CommitRetries:  3,
		InitialBackoff: 200 * time.Millisecond,
	}
}

// ImportService reconciles an external import feed into per-variant
// assignment lists. One run moves through parse, group, validate and commit;
// a problem with one SKU group never aborts the rest of the batch.
type ImportService struct {
	catalog  repositories.SupplierCatalog
	variants repositories.VariantIndex
	store    repositories.AssignmentStore
	audit    events.EventStore
	loader   *feeds.Loader
	logger   *zap.Logger
	config   ImportConfig
}

// NewImportService creates an import service with production settings
func NewImportService(
	catalog repositories.SupplierCatalog,
	variants repositories.VariantIndex,
	store repositories.AssignmentStore,
	audit events.EventStore,
	logger *zap.Logger,
) *ImportService {
	return NewImportServiceWithConfig(catalog, variants, store, audit, logger, DefaultImportConfig())
}

// NewImportServiceWithConfig creates an import service with custom settings
func NewImportServiceWithConfig(
	catalog repositories.SupplierCatalog,
	variants repositories.VariantIndex,
	store repositories.AssignmentStore,
	audit events.EventStore,
	logger *zap.Logger,
	config ImportConfig,
) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		catalog:  catalog,
		variants: variants,
		store:    store,
		audit:    audit,
		loader:   feeds.NewLoader(),
		logger:   logger,
		config:   config,
	}
}

// Run executes one import over the given feed. Structurally fatal input
// returns an error with nothing committed. Otherwise the returned result
// always carries success, skipped and failed outcomes for every SKU group.
// Cancelling the context between commits stops the run; committed groups
// stay committed.
func (s *ImportService) Run(ctx context.Context, feed io.Reader, format feeds.Format) (*dto.ImportResult, error) {
	rows, err := s.loader.Parse(feed, format)
	if err != nil {
		return nil, err
	}

	batch := entities.GroupRows(rows)
	result := &dto.ImportResult{
		RunID:     uuid.NewString(),
		TotalSKUs: len(batch.Groups),
		TotalRows: batch.TotalRows,
	}

	s.appendEvent(result.RunID, events.ImportRunStartedEvent, events.ImportRunStarted{
		RunID:     result.RunID,
		TotalRows: result.TotalRows,
		TotalSKUs: result.TotalSKUs,
	})
	s.logger.Info("import run started",
		zap.String("run_id", result.RunID),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("total_skus", result.TotalSKUs),
	)

	for i, group := range batch.Groups {
		if i > 0 {
			if err := s.throttle(ctx); err != nil {
				s.finish(result)
				return result, err
			}
		}

		s.processGroup(ctx, group, result)
	}

	s.finish(result)
	return result, nil
}

// processGroup validates and commits one SKU group, recording exactly one
// outcome for it.
func (s *ImportService) processGroup(ctx context.Context, group entities.ImportGroup, result *dto.ImportResult) {
	variant, err := s.variants.GetVariant(group.SKU)
	if err != nil {
		s.skip(result, group.SKU, "SKU not found")
		return
	}

	// A partially valid group is not partially imported: one unknown
	// supplier skips the whole group.
	if unknown := s.unknownSuppliers(group.Assignments); len(unknown) > 0 {
		s.skip(result, group.SKU, fmt.Sprintf("unknown supplier ids: %s", strings.Join(unknown, ", ")))
		return
	}

	blob, err := json.Marshal(group.Assignments)
	if err != nil {
		s.fail(result, group.SKU, fmt.Sprintf("failed to encode assignment list: %v", err))
		return
	}

	if err := s.commitWithRetry(ctx, variant.VariantID, blob); err != nil {
		s.fail(result, group.SKU, err.Error())
		return
	}

	result.Success = append(result.Success, dto.ImportSuccess{
		SKU:           group.SKU,
		VariantID:     variant.VariantID,
		SupplierCount: len(group.Assignments),
	})
	s.appendEvent(result.RunID, events.ImportGroupCommittedEvent, events.ImportGroupCommitted{
		SKU:           group.SKU,
		VariantID:     variant.VariantID,
		SupplierCount: len(group.Assignments),
	})
	s.logger.Debug("import group committed",
		zap.String("run_id", result.RunID),
		zap.String("sku", string(group.SKU)),
		zap.Int("supplier_count", len(group.Assignments)),
	)
}

// unknownSuppliers returns the supplier ids of a group that are missing
// from the catalog, in first-appearance order without duplicates.
func (s *ImportService) unknownSuppliers(list entities.AssignmentList) []string {
	var unknown []string
	seen := make(map[entities.SupplierID]bool)

	for _, a := range list {
		if seen[a.SupplierID] {
			continue
		}
		seen[a.SupplierID] = true

		if _, err := s.catalog.GetSupplier(a.SupplierID); err != nil {
			unknown = append(unknown, string(a.SupplierID))
		}
	}

	return unknown
}

// commitWithRetry writes one group's blob, retrying transient store errors
// with bounded exponential backoff.
func (s *ImportService) commitWithRetry(ctx context.Context, owner entities.VariantID, blob []byte) error {
	policy := backoff.NewExponentialBackOff()
	if s.config.InitialBackoff > 0 {
		policy.InitialInterval = s.config.InitialBackoff
	}

	return backoff.Retry(func() error {
		return s.store.Set(ctx, owner, repositories.AssignmentNamespace, repositories.AssignmentKey, blob)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, s.config.CommitRetries), ctx))
}

// throttle waits out the inter-commit delay, honoring cancellation
func (s *ImportService) throttle(ctx context.Context) error {
	if s.config.CommitDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.config.CommitDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *ImportService) skip(result *dto.ImportResult, sku entities.SKU, reason string) {
	result.Skipped = append(result.Skipped, dto.ImportSkip{SKU: sku, Reason: reason})
	s.appendEvent(result.RunID, events.ImportGroupSkippedEvent, events.ImportGroupSkipped{SKU: sku, Reason: reason})
	s.logger.Debug("import group skipped",
		zap.String("run_id", result.RunID),
		zap.String("sku", string(sku)),
		zap.String("reason", reason),
	)
}

func (s *ImportService) fail(result *dto.ImportResult, sku entities.SKU, msg string) {
	result.Failed = append(result.Failed, dto.ImportFailure{SKU: sku, Error: msg})
	s.appendEvent(result.RunID, events.ImportGroupFailedEvent, events.ImportGroupFailed{SKU: sku, Error: msg})
	s.logger.Warn("import group failed",
		zap.String("run_id", result.RunID),
		zap.String("sku", string(sku)),
		zap.String("error", msg),
	)
}

func (s *ImportService) finish(result *dto.ImportResult) {
	s.appendEvent(result.RunID, events.ImportRunFinishedEvent, events.ImportRunFinished{
		RunID:     result.RunID,
		Committed: len(result.Success),
		Skipped:   len(result.Skipped),
		Failed:    len(result.Failed),
	})
	s.logger.Info("import run finished",
		zap.String("run_id", result.RunID),
		zap.Int("committed", len(result.Success)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("failed", len(result.Failed)),
	)
}

func (s *ImportService) appendEvent(runID, eventType string, data interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.AppendEvent(runID, events.NewEvent(eventType, runID, data)); err != nil {
		s.logger.Warn("failed to append audit event", zap.String("event_type", eventType), zap.Error(err))
	}
}
