package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/events"
	"knowledge-base-backend/internal/index"
	"knowledge-base-backend/internal/lock"
	"knowledge-base-backend/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memDocRepo is an in-memory document repository that records every status a document takes
type memDocRepo struct {
	mu      sync.Mutex
	docs    map[uuid.UUID]*models.Document
	history map[uuid.UUID][]models.DocumentStatus
}

func newMemDocRepo() *memDocRepo {
	return &memDocRepo{
		docs:    make(map[uuid.UUID]*models.Document),
		history: make(map[uuid.UUID][]models.DocumentStatus),
	}
}

func (r *memDocRepo) Create(_ context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	stored := *doc
	r.docs[doc.ID] = &stored
	r.history[doc.ID] = []models.DocumentStatus{doc.Status}
	return nil
}

func (r *memDocRepo) GetByIDForOrganization(_ context.Context, id, orgID uuid.UUID) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok || doc.OrganizationID != orgID {
		return nil, errors.New("record not found")
	}
	found := *doc
	return &found, nil
}

func (r *memDocRepo) ListByOrganization(_ context.Context, orgID uuid.UUID, _ string, _, _ int) ([]models.Document, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var docs []models.Document
	for _, doc := range r.docs {
		if doc.OrganizationID == orgID {
			docs = append(docs, *doc)
		}
	}
	return docs, int64(len(docs)), nil
}

func (r *memDocRepo) ListReadyByOrganization(_ context.Context, orgID uuid.UUID) ([]models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var docs []models.Document
	for _, doc := range r.docs {
		if doc.OrganizationID == orgID && doc.Status == models.DocumentStatusReady {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

func (r *memDocRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to models.DocumentStatus, update repository.DocumentStatusUpdate) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, apperrors.ErrInvalidStatusChange
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok || doc.Status != from {
		return false, nil
	}
	doc.Status = to
	if update.RemoteIndexRef != nil {
		ref := *update.RemoteIndexRef
		doc.RemoteIndexRef = &ref
	}
	if update.FailureReason != "" {
		doc.FailureReason = update.FailureReason
	}
	r.history[id] = append(r.history[id], to)
	return true, nil
}

func (r *memDocRepo) FailStaleSyncs(_ context.Context, cutoff time.Time, reason string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var swept int64
	for id, doc := range r.docs {
		if doc.Status != models.DocumentStatusPending && doc.Status != models.DocumentStatusSyncing {
			continue
		}
		if !doc.UpdatedAt.Before(cutoff) {
			continue
		}
		doc.Status = models.DocumentStatusFailed
		doc.FailureReason = reason
		r.history[id] = append(r.history[id], models.DocumentStatusFailed)
		swept++
	}
	return swept, nil
}

func (r *memDocRepo) DeleteForOrganization(_ context.Context, id, orgID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok || doc.OrganizationID != orgID {
		return false, nil
	}
	delete(r.docs, id)
	return true, nil
}

func (r *memDocRepo) get(id uuid.UUID) (models.Document, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return models.Document{}, false
	}
	return *doc, true
}

func (r *memDocRepo) statuses(id uuid.UUID) []models.DocumentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.DocumentStatus(nil), r.history[id]...)
}

// scriptedProvider is an index.Provider whose behaviour is set per test
type scriptedProvider struct {
	mu             sync.Mutex
	uploadFailures int
	uploads        int
	polls          int
	pollFn         func(ctx context.Context, n int) (*index.OperationStatus, error)
	queryResult    *index.QueryResult
	queryErr       error
	queriedRefs    [][]string
	deleted        []string
}

func (p *scriptedProvider) CreateUpload(_ context.Context, upload index.Upload) (*index.UploadResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.uploads++
	if p.uploadFailures < 0 || p.uploads <= p.uploadFailures {
		return nil, errors.New("upload rejected")
	}
	return &index.UploadResult{Ref: upload.Ref, OperationHandle: fmt.Sprintf("op-%d", p.uploads)}, nil
}

func (p *scriptedProvider) PollOperation(ctx context.Context, _ string) (*index.OperationStatus, error) {
	p.mu.Lock()
	p.polls++
	n, fn := p.polls, p.pollFn
	p.mu.Unlock()
	if fn == nil {
		return &index.OperationStatus{Done: true}, nil
	}
	return fn(ctx, n)
}

func (p *scriptedProvider) Query(_ context.Context, _ string, refs []string, _ int) (*index.QueryResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queriedRefs = append(p.queriedRefs, refs)
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	if p.queryResult == nil {
		return &index.QueryResult{}, nil
	}
	return p.queryResult, nil
}

func (p *scriptedProvider) DeleteByRef(_ context.Context, ref string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, ref)
	return nil
}

func (p *scriptedProvider) Health(context.Context) error { return nil }

func (p *scriptedProvider) counts() (uploads, polls int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.uploads, p.polls
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DocumentStatusEvent
}

func (p *recordingPublisher) PublishDocumentStatus(_ context.Context, event events.DocumentStatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) statuses() []models.DocumentStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	var statuses []models.DocumentStatus
	for _, e := range p.events {
		statuses = append(statuses, e.Status)
	}
	return statuses
}

var testSyncConfig = SyncConfig{
	PollInterval:        5 * time.Millisecond,
	MaxPollAttempts:     4,
	UploadTimeout:       time.Second,
	UploadMaxTries:      3,
	UploadRetryInterval: time.Millisecond,
}

type engineFixture struct {
	repo      *memDocRepo
	provider  *scriptedProvider
	publisher *recordingPublisher
	engine    *IndexSyncEngine
	orgID     uuid.UUID
}

func newEngineFixture(t *testing.T, locker lock.Locker) *engineFixture {
	f := &engineFixture{
		repo:      newMemDocRepo(),
		provider:  &scriptedProvider{},
		publisher: &recordingPublisher{},
		orgID:     uuid.New(),
	}
	f.engine = NewIndexSyncEngine(f.repo, f.provider, locker, f.publisher, testSyncConfig)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = f.engine.Shutdown(ctx)
	})
	return f
}

func (f *engineFixture) pendingDoc(t *testing.T) *models.Document {
	doc := &models.Document{
		OrganizationID: f.orgID,
		DisplayName:    "handbook.md",
		MimeType:       "text/markdown",
		SizeBytes:      10 * 1024,
		Status:         models.DocumentStatusPending,
	}
	require.NoError(t, f.repo.Create(context.Background(), doc))
	return doc
}

func (f *engineFixture) waitForStatus(t *testing.T, id uuid.UUID, status models.DocumentStatus) models.Document {
	require.Eventually(t, func() bool {
		doc, ok := f.repo.get(id)
		return ok && doc.Status == status
	}, 2*time.Second, 2*time.Millisecond)
	doc, _ := f.repo.get(id)
	return doc
}

func (f *engineFixture) waitIdle(t *testing.T) {
	require.Eventually(t, func() bool {
		f.engine.mu.Lock()
		defer f.engine.mu.Unlock()
		return len(f.engine.inFlight) == 0
	}, 2*time.Second, 2*time.Millisecond)
}

func TestSyncDocumentBecomesReady(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.pollFn = func(_ context.Context, n int) (*index.OperationStatus, error) {
		return &index.OperationStatus{Done: n >= 2}, nil
	}
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, make([]byte, 10*1024)))

	ready := f.waitForStatus(t, doc.ID, models.DocumentStatusReady)
	require.NotNil(t, ready.RemoteIndexRef)
	assert.Equal(t, RemoteRef(f.orgID, doc.ID), *ready.RemoteIndexRef)
	assert.Equal(t, []models.DocumentStatus{
		models.DocumentStatusPending,
		models.DocumentStatusSyncing,
		models.DocumentStatusReady,
	}, f.repo.statuses(doc.ID))

	f.waitIdle(t)
	assert.Equal(t, []models.DocumentStatus{models.DocumentStatusSyncing, models.DocumentStatusReady}, f.publisher.statuses())
}

func TestSyncDocumentPollBudgetExhausted(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.pollFn = func(context.Context, int) (*index.OperationStatus, error) {
		return &index.OperationStatus{}, nil
	}
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))

	failed := f.waitForStatus(t, doc.ID, models.DocumentStatusFailed)
	assert.Contains(t, failed.FailureReason, "still running after 4 polls")
	assert.Equal(t, []models.DocumentStatus{
		models.DocumentStatusPending,
		models.DocumentStatusSyncing,
		models.DocumentStatusFailed,
	}, f.repo.statuses(doc.ID))

	f.waitIdle(t)
	_, polls := f.provider.counts()
	assert.Equal(t, testSyncConfig.MaxPollAttempts, polls)

	time.Sleep(5 * testSyncConfig.PollInterval)
	_, pollsLater := f.provider.counts()
	assert.Equal(t, polls, pollsLater, "no task keeps polling after the budget is spent")
}

func TestSyncDocumentPollErrorsCountAgainstBudget(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.pollFn = func(_ context.Context, n int) (*index.OperationStatus, error) {
		if n < 3 {
			return nil, errors.New("connection reset")
		}
		return &index.OperationStatus{Done: true}, nil
	}
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))

	f.waitForStatus(t, doc.ID, models.DocumentStatusReady)
	_, polls := f.provider.counts()
	assert.Equal(t, 3, polls)
}

func TestSyncDocumentRemoteOperationFails(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.pollFn = func(context.Context, int) (*index.OperationStatus, error) {
		return &index.OperationStatus{Done: true, Error: "unsupported encoding"}, nil
	}
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))

	failed := f.waitForStatus(t, doc.ID, models.DocumentStatusFailed)
	assert.Equal(t, "unsupported encoding", failed.FailureReason)
	assert.NotNil(t, failed.RemoteIndexRef)
}

func TestSyncDocumentUploadRetried(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.uploadFailures = 2
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))

	f.waitForStatus(t, doc.ID, models.DocumentStatusReady)
	uploads, _ := f.provider.counts()
	assert.Equal(t, 3, uploads)
}

func TestSyncDocumentUploadExhausted(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.uploadFailures = -1
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))

	failed := f.waitForStatus(t, doc.ID, models.DocumentStatusFailed)
	assert.Contains(t, failed.FailureReason, "upload failed")
	assert.Nil(t, failed.RemoteIndexRef)
	assert.Equal(t, []models.DocumentStatus{models.DocumentStatusPending, models.DocumentStatusFailed}, f.repo.statuses(doc.ID))

	f.waitIdle(t)
	uploads, polls := f.provider.counts()
	assert.Equal(t, testSyncConfig.UploadMaxTries, uploads)
	assert.Zero(t, polls)
}

func TestSyncDocumentRejectsDuplicatesAndNonPending(t *testing.T) {
	f := newEngineFixture(t, nil)
	release := make(chan struct{})
	f.provider.pollFn = func(context.Context, int) (*index.OperationStatus, error) {
		<-release
		return &index.OperationStatus{Done: true}, nil
	}
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))
	assert.ErrorIs(t, f.engine.SyncDocument(doc, []byte("content")), apperrors.ErrSyncInProgress)

	close(release)
	f.waitForStatus(t, doc.ID, models.DocumentStatusReady)

	ready, _ := f.repo.get(doc.ID)
	assert.ErrorIs(t, f.engine.SyncDocument(&ready, []byte("content")), apperrors.ErrDocumentNotPending)
}

func TestSyncDocumentRedisLockHeldElsewhere(t *testing.T) {
	mr := miniredis.RunT(t)
	newLocker := func() *lock.RedisLocker {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		return lock.NewRedisLockerWithClient(client)
	}

	f := newEngineFixture(t, newLocker())
	doc := f.pendingDoc(t)

	other := newLocker()
	held, err := other.Acquire(context.Background(), lockKey(doc.ID), time.Minute)
	require.NoError(t, err)
	require.True(t, held)

	assert.ErrorIs(t, f.engine.SyncDocument(doc, []byte("content")), apperrors.ErrSyncInProgress)
	f.waitIdle(t)

	require.NoError(t, other.Release(context.Background(), lockKey(doc.ID)))
	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))
	f.waitForStatus(t, doc.ID, models.DocumentStatusReady)
	f.waitIdle(t)
	assert.False(t, mr.Exists("kb:lock:"+lockKey(doc.ID)))
}

func TestCancelStopsPolling(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.provider.pollFn = func(ctx context.Context, _ int) (*index.OperationStatus, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	doc := f.pendingDoc(t)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))
	f.waitForStatus(t, doc.ID, models.DocumentStatusSyncing)

	f.engine.Cancel(doc.ID)

	failed := f.waitForStatus(t, doc.ID, models.DocumentStatusFailed)
	assert.Equal(t, "sync interrupted before completion", failed.FailureReason)
	f.waitIdle(t)
}

func TestShutdownFailsInterruptedSyncs(t *testing.T) {
	repo := newMemDocRepo()
	provider := &scriptedProvider{pollFn: func(ctx context.Context, _ int) (*index.OperationStatus, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	engine := NewIndexSyncEngine(repo, provider, nil, nil, testSyncConfig)

	doc := &models.Document{OrganizationID: uuid.New(), DisplayName: "a.txt", MimeType: "text/plain", Status: models.DocumentStatusPending}
	require.NoError(t, repo.Create(context.Background(), doc))
	require.NoError(t, engine.SyncDocument(doc, []byte("a")))
	require.Eventually(t, func() bool {
		d, _ := repo.get(doc.ID)
		return d.Status == models.DocumentStatusSyncing
	}, time.Second, 2*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, engine.Shutdown(ctx))

	d, _ := repo.get(doc.ID)
	assert.Equal(t, models.DocumentStatusFailed, d.Status, "no document is left syncing")
	assert.ErrorIs(t, engine.SyncDocument(doc, []byte("a")), apperrors.ErrSyncEngineStopped)
}

func TestSyncDocumentDeletedWhileUploading(t *testing.T) {
	f := newEngineFixture(t, nil)
	doc := f.pendingDoc(t)
	_, err := f.repo.DeleteForOrganization(context.Background(), doc.ID, f.orgID)
	require.NoError(t, err)

	require.NoError(t, f.engine.SyncDocument(doc, []byte("content")))
	f.waitIdle(t)

	f.provider.mu.Lock()
	defer f.provider.mu.Unlock()
	assert.Equal(t, []string{RemoteRef(f.orgID, doc.ID)}, f.provider.deleted)
	assert.Zero(t, f.provider.polls)
}

func TestSyncWithoutProviderFails(t *testing.T) {
	repo := newMemDocRepo()
	engine := NewIndexSyncEngine(repo, nil, nil, nil, testSyncConfig)
	doc := &models.Document{OrganizationID: uuid.New(), DisplayName: "a.txt", MimeType: "text/plain", Status: models.DocumentStatusPending}
	require.NoError(t, repo.Create(context.Background(), doc))

	require.NoError(t, engine.SyncDocument(doc, []byte("a")))
	require.NoError(t, engine.Shutdown(context.Background()))

	d, _ := repo.get(doc.ID)
	assert.Equal(t, models.DocumentStatusFailed, d.Status)
	assert.Equal(t, apperrors.ErrIndexProviderNotConfigured.Error(), d.FailureReason)
}

func (f *engineFixture) readyDoc(t *testing.T, orgID uuid.UUID, name string) models.Document {
	doc := &models.Document{OrganizationID: orgID, DisplayName: name, MimeType: "text/plain", Status: models.DocumentStatusPending}
	require.NoError(t, f.repo.Create(context.Background(), doc))
	ref := RemoteRef(orgID, doc.ID)
	_, err := f.repo.TransitionStatus(context.Background(), doc.ID, models.DocumentStatusPending, models.DocumentStatusSyncing, repository.DocumentStatusUpdate{RemoteIndexRef: &ref})
	require.NoError(t, err)
	_, err = f.repo.TransitionStatus(context.Background(), doc.ID, models.DocumentStatusSyncing, models.DocumentStatusReady, repository.DocumentStatusUpdate{})
	require.NoError(t, err)
	stored, _ := f.repo.get(doc.ID)
	return stored
}

func TestQueryIndexWithoutReadyDocuments(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.pendingDoc(t)

	result, err := f.engine.QueryIndex(context.Background(), f.orgID, "hello", nil)

	require.NoError(t, err)
	assert.True(t, result.NoContent)
	assert.Empty(t, f.provider.queriedRefs, "provider is not called")
}

func TestQueryIndexIsTenantScoped(t *testing.T) {
	f := newEngineFixture(t, nil)
	mine := f.readyDoc(t, f.orgID, "mine.txt")
	also := f.readyDoc(t, f.orgID, "also-mine.txt")
	foreign := f.readyDoc(t, uuid.New(), "foreign.txt")
	f.provider.queryResult = &index.QueryResult{Passages: []index.Passage{
		{Ref: *mine.RemoteIndexRef, Content: "mine", Score: 0.9},
		{Ref: *foreign.RemoteIndexRef, Content: "leak", Score: 0.8},
	}}

	result, err := f.engine.QueryIndex(context.Background(), f.orgID, "q", []uuid.UUID{mine.ID, foreign.ID})

	require.NoError(t, err)
	require.Len(t, f.provider.queriedRefs, 1)
	assert.Equal(t, []string{*mine.RemoteIndexRef}, f.provider.queriedRefs[0])
	require.Len(t, result.Passages, 1)
	assert.Equal(t, mine.ID, result.Passages[0].DocumentID)
	assert.Equal(t, "mine.txt", result.Passages[0].DocumentName)
	assert.NotEqual(t, also.ID, result.Passages[0].DocumentID)
}

func TestQueryIndexScopeWithOnlyForeignIDs(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.readyDoc(t, f.orgID, "mine.txt")
	foreign := f.readyDoc(t, uuid.New(), "foreign.txt")

	result, err := f.engine.QueryIndex(context.Background(), f.orgID, "q", []uuid.UUID{foreign.ID})

	require.NoError(t, err)
	assert.True(t, result.NoContent)
	assert.Empty(t, f.provider.queriedRefs)
}

func TestQueryIndexProviderFailure(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.readyDoc(t, f.orgID, "mine.txt")
	f.provider.queryErr = errors.New("503")

	_, err := f.engine.QueryIndex(context.Background(), f.orgID, "q", nil)

	assert.True(t, apperrors.IsRemoteUnavailable(err))
}

func TestRecoverInterruptedFailsOnlyStaleSyncs(t *testing.T) {
	f := newEngineFixture(t, nil)
	stale := time.Now().Add(-24 * time.Hour)

	seed := func(status models.DocumentStatus, updatedAt time.Time) uuid.UUID {
		doc := &models.Document{OrganizationID: f.orgID, DisplayName: "a.txt", MimeType: "text/plain", Status: status}
		doc.UpdatedAt = updatedAt
		require.NoError(t, f.repo.Create(context.Background(), doc))
		return doc.ID
	}
	stalePending := seed(models.DocumentStatusPending, stale)
	staleSyncing := seed(models.DocumentStatusSyncing, stale)
	freshSyncing := seed(models.DocumentStatusSyncing, time.Now())
	staleReady := seed(models.DocumentStatusReady, stale)

	swept, err := f.engine.RecoverInterrupted(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), swept)
	for _, id := range []uuid.UUID{stalePending, staleSyncing} {
		doc, _ := f.repo.get(id)
		assert.Equal(t, models.DocumentStatusFailed, doc.Status)
		assert.Equal(t, "sync interrupted before completion", doc.FailureReason)
	}
	doc, _ := f.repo.get(freshSyncing)
	assert.Equal(t, models.DocumentStatusSyncing, doc.Status)
	doc, _ = f.repo.get(staleReady)
	assert.Equal(t, models.DocumentStatusReady, doc.Status)
}

func TestStartRecoverySweepsUntilShutdown(t *testing.T) {
	repo := newMemDocRepo()
	cfg := testSyncConfig
	cfg.RecoveryInterval = 5 * time.Millisecond
	engine := NewIndexSyncEngine(repo, &scriptedProvider{}, nil, nil, cfg)

	doc := &models.Document{OrganizationID: uuid.New(), DisplayName: "a.txt", MimeType: "text/plain", Status: models.DocumentStatusSyncing}
	doc.UpdatedAt = time.Now().Add(-24 * time.Hour)
	require.NoError(t, repo.Create(context.Background(), doc))

	engine.StartRecovery()

	require.Eventually(t, func() bool {
		d, _ := repo.get(doc.ID)
		return d.Status == models.DocumentStatusFailed
	}, time.Second, 2*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, engine.Shutdown(ctx))
}
