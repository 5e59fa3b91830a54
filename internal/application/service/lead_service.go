package service

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/config"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/repository"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"github.com/sangkips/leadflow-api/pkg/metrics"
	"github.com/sangkips/leadflow-api/pkg/utils"
	"go.uber.org/zap"
)

// Operation names used in notifications, logs and metrics
const (
	OpFetch  = "fetch"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// StaffDirectory answers whether a staff id may be referenced by a lead
type StaffDirectory interface {
	Exists(id uuid.UUID) bool
}

// SyncStatus describes the in-memory lead set
type SyncStatus struct {
	Loading      bool       `json:"loading"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	Count        int        `json:"count"`
	InFlight     int64      `json:"in_flight"`
}

// LeadService owns the in-memory lead set and mirrors every change to the
// lead store. Local changes are applied before the remote call is issued;
// remote calls run in the background and report through a Pending.
type LeadService struct {
	repo     repository.LeadRepository
	staff    StaffDirectory
	notifier *Notifier
	log      *zap.Logger
	cfg      config.StoreConfig

	now   func() time.Time
	newID func() string

	mu           sync.RWMutex
	leads        []entity.Lead
	loading      bool
	lastSyncedAt *time.Time

	inflight      sync.WaitGroup
	inflightCount int64
}

// NewLeadService creates a new lead service with an empty lead set
func NewLeadService(
	repo repository.LeadRepository,
	staff StaffDirectory,
	notifier *Notifier,
	cfg config.StoreConfig,
	log *zap.Logger,
) *LeadService {
	return &LeadService{
		repo:     repo,
		staff:    staff,
		notifier: notifier,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
		newID:    utils.GenerateLeadID,
	}
}

// FetchAll replaces the in-memory set with every lead in the store. On
// failure the previous set is kept.
func (s *LeadService) FetchAll(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	leads, err := s.repo.ListAll(ctx)
	metrics.RecordStoreOperation(OpFetch, err)
	if err != nil {
		appErr := apperror.NewConnectivityError(err)
		s.log.Error("Failed to fetch leads", zap.Error(err))
		s.notifier.Publish(OpFetch, "", appErr)
		return appErr
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})

	synced := s.now().UTC()
	s.mu.Lock()
	s.leads = leads
	s.lastSyncedAt = &synced
	s.mu.Unlock()

	metrics.SetLeadsInMemory(len(leads))
	s.log.Debug("Fetched leads", zap.Int("count", len(leads)))
	return nil
}

// Create validates the draft, prepends the new lead to the in-memory set and
// starts persisting it
func (s *LeadService) Create(ctx context.Context, draft *LeadDraft) (*entity.Lead, *Pending, error) {
	var lead entity.Lead
	if err := CopyLeadFields(&lead, draft); err != nil {
		return nil, nil, apperror.NewBadRequestError("Invalid lead data")
	}
	normalize(&lead)
	if err := validateLead(&lead, s.staff); err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	s.mu.Lock()
	if lead.ID == "" {
		lead.ID = s.newID()
	} else if s.indexOf(lead.ID) >= 0 {
		s.mu.Unlock()
		return nil, nil, apperror.NewConflictError("Lead already exists")
	}
	s.leads = slices.Insert(s.leads, 0, lead.Clone())
	count := len(s.leads)
	s.mu.Unlock()

	metrics.SetLeadsInMemory(count)
	pending := s.persist(ctx, OpCreate, lead.Clone(), s.repo.Create)
	return &lead, pending, nil
}

// Update replaces the in-memory lead with the same id and starts persisting
// the full record. created_at is kept from the existing record.
func (s *LeadService) Update(ctx context.Context, lead *entity.Lead) (*entity.Lead, *Pending, error) {
	updated := lead.Clone()
	normalize(&updated)
	if err := validateLead(&updated, s.staff); err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(updated.ID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil, apperror.NewNotFoundError("Lead")
	}
	updated.CreatedAt = s.leads[idx].CreatedAt
	updated.UpdatedAt = s.now().UTC()
	s.leads[idx] = updated.Clone()
	s.mu.Unlock()

	pending := s.persist(ctx, OpUpdate, updated.Clone(), s.repo.Update)
	return &updated, pending, nil
}

// Replace overwrites every editable field of the lead with the draft
func (s *LeadService) Replace(ctx context.Context, id string, draft *LeadDraft) (*entity.Lead, *Pending, error) {
	lead, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if err := CopyLeadFields(lead, draft); err != nil {
		return nil, nil, apperror.NewBadRequestError("Invalid lead data")
	}
	lead.ID = id
	return s.Update(ctx, lead)
}

// Delete removes the lead from memory and starts the remote delete. A failed
// remote delete triggers a full refetch.
func (s *LeadService) Delete(ctx context.Context, id string) (*Pending, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, apperror.NewNotFoundError("Lead")
	}
	s.leads = slices.Delete(s.leads, idx, idx+1)
	count := len(s.leads)
	s.mu.Unlock()

	metrics.SetLeadsInMemory(count)

	pending := newPending()
	remoteCtx := context.WithoutCancel(ctx)
	s.track(func() {
		wctx, cancel := s.writeContext(remoteCtx)
		err := s.repo.Delete(wctx, id)
		cancel()
		metrics.RecordStoreOperation(OpDelete, err)
		if err == nil {
			pending.resolve(nil)
			return
		}

		appErr := apperror.NewDeleteError(err)
		s.log.Error("Failed to delete lead", zap.String("lead_id", id), zap.Error(err))
		s.notifier.Publish(OpDelete, id, appErr)
		s.reconcile(remoteCtx, OpDelete)
		pending.resolve(appErr)
	})
	return pending, nil
}

// List returns a copy of the in-memory set, newest first
func (s *LeadService) List() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Lead, len(s.leads))
	for i := range s.leads {
		out[i] = s.leads[i].Clone()
	}
	return out
}

// Get returns a copy of the lead with the given id
func (s *LeadService) Get(id string) (*entity.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, apperror.NewNotFoundError("Lead")
	}
	lead := s.leads[idx].Clone()
	return &lead, nil
}

// Status reports whether a fetch is running and when the set was last synced
func (s *LeadService) Status() SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := SyncStatus{
		Loading: s.loading,
		Count:   len(s.leads),
	}
	if s.lastSyncedAt != nil {
		t := *s.lastSyncedAt
		status.LastSyncedAt = &t
	}
	status.InFlight = s.inflightCount
	return status
}

// Drain waits for background writes to finish or ctx to end
func (s *LeadService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// persist runs write in the background against the store. The request
// context only contributes values; cancellation is detached.
func (s *LeadService) persist(ctx context.Context, op string, lead entity.Lead, write func(context.Context, *entity.Lead) error) *Pending {
	pending := newPending()
	remoteCtx := context.WithoutCancel(ctx)

	s.track(func() {
		wctx, cancel := s.writeContext(remoteCtx)
		err := write(wctx, &lead)
		cancel()
		metrics.RecordStoreOperation(op, err)
		if err == nil {
			pending.resolve(nil)
			return
		}

		appErr := apperror.NewWriteError(writeFailureMessage(op), err)
		s.log.Error("Failed to persist lead",
			zap.String("operation", op),
			zap.String("lead_id", lead.ID),
			zap.Error(err),
		)
		s.notifier.Publish(op, lead.ID, appErr)
		if s.cfg.ReconcileOnWriteFailure {
			s.reconcile(remoteCtx, op)
		}
		pending.resolve(appErr)
	})
	return pending
}

func (s *LeadService) reconcile(ctx context.Context, op string) {
	metrics.RecordReconciliation()
	fctx, cancel := s.writeContext(ctx)
	defer cancel()

	if err := s.FetchAll(fctx); err != nil {
		s.log.Warn("Reconciliation fetch failed", zap.String("operation", op), zap.Error(err))
	}
}

func (s *LeadService) track(fn func()) {
	s.inflight.Add(1)
	s.adjustInFlight(1)
	go func() {
		defer s.inflight.Done()
		defer s.adjustInFlight(-1)
		fn()
	}()
}

func (s *LeadService) adjustInFlight(delta int64) {
	s.mu.Lock()
	s.inflightCount += delta
	s.mu.Unlock()
}

func (s *LeadService) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.WriteTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.WriteTimeout)
}

func (s *LeadService) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// indexOf must be called with mu held
func (s *LeadService) indexOf(id string) int {
	return slices.IndexFunc(s.leads, func(l entity.Lead) bool {
		return l.ID == id
	})
}

func writeFailureMessage(op string) string {
	if op == OpCreate {
		return "Could not save the new lead"
	}
	return "Could not update the lead"
}
