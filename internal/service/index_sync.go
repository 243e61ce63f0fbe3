package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/events"
	"knowledge-base-backend/internal/index"
	"knowledge-base-backend/internal/lock"
	"knowledge-base-backend/internal/logger"
	"knowledge-base-backend/internal/repository"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

const (
	statusWriteTimeout = 10 * time.Second
	defaultQueryLimit  = 5

	interruptedReason = "sync interrupted before completion"
)

var errOperationPending = errors.New("index operation still running")

// SyncConfig tunes the upload and polling behaviour of the engine
type SyncConfig struct {
	PollInterval        time.Duration
	MaxPollAttempts     int
	UploadTimeout       time.Duration
	UploadMaxTries      int
	UploadRetryInterval time.Duration
	QueryLimit          int
	RecoveryInterval    time.Duration
}

func (c SyncConfig) withDefaults() SyncConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = 2 * time.Second
	}
	if c.MaxPollAttempts < 1 {
		c.MaxPollAttempts = 30
	}
	if c.UploadTimeout <= 0 {
		c.UploadTimeout = 60 * time.Second
	}
	if c.UploadMaxTries < 1 {
		c.UploadMaxTries = 3
	}
	if c.UploadRetryInterval <= 0 {
		c.UploadRetryInterval = 500 * time.Millisecond
	}
	if c.QueryLimit < 1 {
		c.QueryLimit = defaultQueryLimit
	}
	if c.RecoveryInterval <= 0 {
		c.RecoveryInterval = 5 * time.Minute
	}
	return c
}

// lockTTL bounds how long a crashed process can block a document
func (c SyncConfig) lockTTL() time.Duration {
	return time.Duration(c.UploadMaxTries)*c.UploadTimeout + c.pollCeiling() + time.Minute
}

func (c SyncConfig) pollCeiling() time.Duration {
	return time.Duration(c.MaxPollAttempts) * (c.PollInterval + c.UploadTimeout)
}

// RetrievedPassage is a passage that belongs to one of the caller's ready documents
type RetrievedPassage struct {
	DocumentID   uuid.UUID `json:"document_id"`
	DocumentName string    `json:"document_name"`
	Content      string    `json:"content"`
	Score        float64   `json:"score"`
}

// RetrievalResult is the outcome of a retrieval query.
// NoContent is set when the organization has nothing indexed in scope.
type RetrievalResult struct {
	Passages  []RetrievedPassage `json:"passages"`
	RawAnswer string             `json:"raw_answer,omitempty"`
	NoContent bool               `json:"no_content"`
}

// RemoteRef is the organization-scoped key of a document in the external index
func RemoteRef(orgID, documentID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", orgID, documentID)
}

// IndexSyncEngine pushes documents to the external index and reconciles their status
type IndexSyncEngine struct {
	docs      repository.DocumentRepositoryInterface
	provider  index.Provider
	locker    lock.Locker
	publisher events.Publisher
	cfg       SyncConfig

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	inFlight map[uuid.UUID]context.CancelFunc
	stopped  bool
}

// NewIndexSyncEngine creates an engine. provider may be nil when no index is
// configured; locker may be nil to rely on the in-process guard only.
func NewIndexSyncEngine(docs repository.DocumentRepositoryInterface, provider index.Provider, locker lock.Locker, publisher events.Publisher, cfg SyncConfig) *IndexSyncEngine {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &IndexSyncEngine{
		docs:      docs,
		provider:  provider,
		locker:    locker,
		publisher: publisher,
		cfg:       cfg.withDefaults(),
		ctx:       ctx,
		cancel:    cancel,
		inFlight:  make(map[uuid.UUID]context.CancelFunc),
	}
}

// SyncDocument starts the background upload of a pending document. The returned
// error only reports a rejected submission; the outcome is written to the document.
func (e *IndexSyncEngine) SyncDocument(doc *models.Document, content []byte) error {
	if doc.Status != models.DocumentStatusPending {
		return apperrors.ErrDocumentNotPending
	}

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return apperrors.ErrSyncEngineStopped
	}
	if _, running := e.inFlight[doc.ID]; running {
		e.mu.Unlock()
		return apperrors.ErrSyncInProgress
	}
	taskCtx, cancel := context.WithCancel(e.ctx)
	e.inFlight[doc.ID] = cancel
	e.wg.Add(1)
	e.mu.Unlock()

	log := logger.WithContext(taskCtx).WithFields(map[string]interface{}{
		"document_id":     doc.ID,
		"organization_id": doc.OrganizationID,
	})

	if e.locker != nil {
		acquired, err := e.locker.Acquire(taskCtx, lockKey(doc.ID), e.cfg.lockTTL())
		switch {
		case err != nil:
			log.WithError(err).Warn("sync lock unavailable, relying on in-process guard")
		case !acquired:
			e.finish(doc.ID, false)
			return apperrors.ErrSyncInProgress
		}
	}

	snapshot := *doc
	go e.run(taskCtx, &snapshot, content)
	return nil
}

func lockKey(documentID uuid.UUID) string {
	return "document-sync:" + documentID.String()
}

func (e *IndexSyncEngine) finish(documentID uuid.UUID, release bool) {
	e.mu.Lock()
	if cancel, ok := e.inFlight[documentID]; ok {
		cancel()
		delete(e.inFlight, documentID)
	}
	e.mu.Unlock()

	if release && e.locker != nil {
		ctx, cancel := context.WithTimeout(context.Background(), statusWriteTimeout)
		defer cancel()
		if err := e.locker.Release(ctx, lockKey(documentID)); err != nil {
			logger.New().WithError(err).WithField("document_id", documentID).Warn("failed to release sync lock")
		}
	}
	e.wg.Done()
}

func (e *IndexSyncEngine) run(ctx context.Context, doc *models.Document, content []byte) {
	defer e.finish(doc.ID, true)

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"document_id":     doc.ID,
		"organization_id": doc.OrganizationID,
	})

	if e.provider == nil {
		e.transition(doc, models.DocumentStatusPending, models.DocumentStatusFailed,
			repository.DocumentStatusUpdate{FailureReason: apperrors.ErrIndexProviderNotConfigured.Error()})
		return
	}

	upload, err := e.upload(ctx, doc, content)
	if err != nil {
		log.WithError(err).Warn("document upload failed")
		e.transition(doc, models.DocumentStatusPending, models.DocumentStatusFailed,
			repository.DocumentStatusUpdate{FailureReason: failureReason(ctx, "upload failed", err)})
		return
	}

	ref := upload.Ref
	if !e.transition(doc, models.DocumentStatusPending, models.DocumentStatusSyncing,
		repository.DocumentStatusUpdate{RemoteIndexRef: &ref}) {
		// the row is gone or was moved by someone else; do not leave an orphan behind
		cleanupCtx, cancel := context.WithTimeout(context.Background(), statusWriteTimeout)
		defer cancel()
		if err := e.DeleteRemote(cleanupCtx, ref); err != nil {
			log.WithError(err).Warn("failed to remove orphaned remote document")
		}
		return
	}

	status, err := e.poll(ctx, upload.OperationHandle)
	switch {
	case err != nil:
		log.WithError(err).Warn("index operation did not complete")
		e.transition(doc, models.DocumentStatusSyncing, models.DocumentStatusFailed,
			repository.DocumentStatusUpdate{FailureReason: failureReason(ctx, "indexing did not complete", err)})
	case status.Error != "":
		e.transition(doc, models.DocumentStatusSyncing, models.DocumentStatusFailed,
			repository.DocumentStatusUpdate{FailureReason: status.Error})
	default:
		e.transition(doc, models.DocumentStatusSyncing, models.DocumentStatusReady, repository.DocumentStatusUpdate{})
	}
}

func failureReason(ctx context.Context, stage string, err error) string {
	if ctx.Err() != nil {
		return interruptedReason
	}
	return fmt.Sprintf("%s: %v", stage, err)
}

func (e *IndexSyncEngine) upload(ctx context.Context, doc *models.Document, content []byte) (*index.UploadResult, error) {
	upload := index.Upload{
		Ref:         RemoteRef(doc.OrganizationID, doc.ID),
		DisplayName: doc.DisplayName,
		MimeType:    doc.MimeType,
		Content:     content,
	}

	operation := func() (*index.UploadResult, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, e.cfg.UploadTimeout)
		defer cancel()

		result, err := e.provider.CreateUpload(attemptCtx, upload)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, err
		}
		return result, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.cfg.UploadRetryInterval

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(e.cfg.UploadMaxTries)),
		backoff.WithMaxElapsedTime(time.Duration(e.cfg.UploadMaxTries)*(e.cfg.UploadTimeout+b.MaxInterval)),
	)
}

// poll waits for the remote operation to finish. Errors and unfinished
// snapshots both consume an attempt.
func (e *IndexSyncEngine) poll(ctx context.Context, handle string) (*index.OperationStatus, error) {
	attempts := 0
	operation := func() (*index.OperationStatus, error) {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, e.cfg.UploadTimeout)
		defer cancel()

		status, err := e.provider.PollOperation(attemptCtx, handle)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			logger.WithContext(ctx).WithError(err).WithField("attempt", attempts).Debug("poll failed, retrying")
			return nil, err
		}
		if !status.Done {
			return nil, errOperationPending
		}
		return status, nil
	}

	status, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(e.cfg.PollInterval)),
		backoff.WithMaxTries(uint(e.cfg.MaxPollAttempts)),
		backoff.WithMaxElapsedTime(e.cfg.pollCeiling()),
	)
	if err != nil {
		if errors.Is(err, errOperationPending) {
			return nil, fmt.Errorf("still running after %d polls", attempts)
		}
		return nil, err
	}
	return status, nil
}

// transition writes a status change and publishes it. It reports false when
// the document was no longer in the expected status.
func (e *IndexSyncEngine) transition(doc *models.Document, from, to models.DocumentStatus, update repository.DocumentStatusUpdate) bool {
	ctx, cancel := context.WithTimeout(context.Background(), statusWriteTimeout)
	defer cancel()

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"document_id":     doc.ID,
		"organization_id": doc.OrganizationID,
		"status":          to,
	})

	ok, err := e.docs.TransitionStatus(ctx, doc.ID, from, to, update)
	if err != nil {
		log.WithError(err).Error("failed to write document status")
		return false
	}
	if !ok {
		log.Info("document moved or was deleted, stopping sync")
		return false
	}

	event := events.DocumentStatusEvent{
		DocumentID:     doc.ID,
		OrganizationID: doc.OrganizationID,
		Status:         to,
		FailureReason:  update.FailureReason,
		OccurredAt:     time.Now().UTC(),
	}
	if update.RemoteIndexRef != nil {
		event.RemoteIndexRef = *update.RemoteIndexRef
	}
	if err := e.publisher.PublishDocumentStatus(ctx, event); err != nil {
		log.WithError(err).Warn("failed to publish document status")
	}

	if to == models.DocumentStatusFailed {
		log.WithField("reason", update.FailureReason).Warn("document sync failed")
	} else {
		log.Info("document status changed")
	}
	return true
}

// QueryIndex retrieves passages from the organization's ready documents,
// optionally restricted to scope. Ids outside the organization are ignored.
func (e *IndexSyncEngine) QueryIndex(ctx context.Context, orgID uuid.UUID, query string, scope []uuid.UUID) (*RetrievalResult, error) {
	ready, err := e.docs.ListReadyByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready documents: %w", err)
	}

	var inScope map[uuid.UUID]bool
	if len(scope) > 0 {
		inScope = make(map[uuid.UUID]bool, len(scope))
		for _, id := range scope {
			inScope[id] = true
		}
	}

	byRef := make(map[string]models.Document, len(ready))
	refs := make([]string, 0, len(ready))
	for _, doc := range ready {
		if doc.RemoteIndexRef == nil || *doc.RemoteIndexRef == "" {
			continue
		}
		if inScope != nil && !inScope[doc.ID] {
			continue
		}
		byRef[*doc.RemoteIndexRef] = doc
		refs = append(refs, *doc.RemoteIndexRef)
	}

	if len(refs) == 0 {
		return &RetrievalResult{NoContent: true}, nil
	}
	if e.provider == nil {
		return nil, apperrors.NewRemoteUnavailableError("index", apperrors.ErrIndexProviderNotConfigured)
	}

	result, err := e.provider.Query(ctx, query, refs, e.cfg.QueryLimit)
	if err != nil {
		return nil, apperrors.NewRemoteUnavailableError("index", err)
	}

	retrieval := &RetrievalResult{RawAnswer: result.RawAnswer}
	for _, passage := range result.Passages {
		doc, ok := byRef[passage.Ref]
		if !ok {
			logger.WithContext(ctx).WithField("ref", passage.Ref).Warn("dropping passage outside the query scope")
			continue
		}
		retrieval.Passages = append(retrieval.Passages, RetrievedPassage{
			DocumentID:   doc.ID,
			DocumentName: doc.DisplayName,
			Content:      passage.Content,
			Score:        passage.Score,
		})
	}
	return retrieval, nil
}

// DeleteRemote removes a document from the external index. Callers treat
// failures as best-effort.
func (e *IndexSyncEngine) DeleteRemote(ctx context.Context, ref string) error {
	if e.provider == nil {
		return apperrors.ErrIndexProviderNotConfigured
	}
	return e.provider.DeleteByRef(ctx, ref)
}

// RecoverInterrupted fails documents abandoned by a process that stopped without
// shutting down. Rows touched within the lock TTL may belong to a live sync,
// here or on another instance, and are left alone.
func (e *IndexSyncEngine) RecoverInterrupted(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-e.cfg.lockTTL())
	swept, err := e.docs.FailStaleSyncs(ctx, cutoff, interruptedReason)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep interrupted syncs: %w", err)
	}
	return swept, nil
}

// StartRecovery repeats RecoverInterrupted every RecoveryInterval until Shutdown
func (e *IndexSyncEngine) StartRecovery() {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ticker := time.NewTicker(e.cfg.RecoveryInterval)
		defer ticker.Stop()

		for {
			select {
			case <-e.ctx.Done():
				return
			case <-ticker.C:
				swept, err := e.RecoverInterrupted(e.ctx)
				if err != nil {
					if e.ctx.Err() == nil {
						logger.New().WithError(err).Warn("interrupted sync sweep failed")
					}
					continue
				}
				if swept > 0 {
					logger.New().WithField("documents", swept).Warn("marked interrupted syncs as failed")
				}
			}
		}
	}()
}

// Cancel stops the in-flight sync of a document, if any
func (e *IndexSyncEngine) Cancel(documentID uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cancel, ok := e.inFlight[documentID]; ok {
		cancel()
	}
}

// Shutdown stops accepting work, interrupts running syncs and waits for them
// to record their final status
func (e *IndexSyncEngine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
	e.cancel()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Health checks the external index
func (e *IndexSyncEngine) Health(ctx context.Context) error {
	if e.provider == nil {
		return apperrors.ErrIndexProviderNotConfigured
	}
	return e.provider.Health(ctx)
}
