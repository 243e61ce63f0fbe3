package index

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"knowledge-base-backend/internal/logger"

	meili "github.com/meilisearch/meilisearch-go"
)

const (
	defaultIndexUID = "knowledge_documents"
	cropLength      = 80
)

// indexDocument is the record stored in Meilisearch for one uploaded document.
type indexDocument struct {
	ID       string `json:"id"`
	Ref      string `json:"ref"`
	Title    string `json:"title"`
	MimeType string `json:"mime_type"`
	Content  string `json:"content"`
}

// MeiliProvider implements Provider on a single Meilisearch index.
// Each uploaded document is one index record keyed by its ref; the
// indexing task uid is the operation handle.
type MeiliProvider struct {
	client   meili.ServiceManager
	indexUID string

	mu       sync.Mutex
	prepared bool
}

// NewMeiliProvider creates a Meilisearch-backed provider
func NewMeiliProvider(url, apiKey, indexUID string) *MeiliProvider {
	if indexUID == "" {
		indexUID = defaultIndexUID
	}
	return &MeiliProvider{
		client:   meili.New(url, meili.WithAPIKey(apiKey)),
		indexUID: indexUID,
	}
}

// EnsureIndex creates the index and its settings. Creating an index that
// already exists is reported by Meilisearch asynchronously and is harmless.
// Once it succeeds later calls return immediately.
func (m *MeiliProvider) EnsureIndex(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prepared {
		return nil
	}

	if _, err := m.client.CreateIndexWithContext(ctx, &meili.IndexConfig{
		Uid:        m.indexUID,
		PrimaryKey: "id",
	}); err != nil {
		return fmt.Errorf("create index %s: %w", m.indexUID, err)
	}

	index := m.client.Index(m.indexUID)
	filterable := []interface{}{"ref"}
	if _, err := index.UpdateFilterableAttributesWithContext(ctx, &filterable); err != nil {
		return fmt.Errorf("update filterable attributes for %s: %w", m.indexUID, err)
	}
	searchable := []string{"title", "content"}
	if _, err := index.UpdateSearchableAttributesWithContext(ctx, &searchable); err != nil {
		return fmt.Errorf("update searchable attributes for %s: %w", m.indexUID, err)
	}

	m.prepared = true
	return nil
}

// CreateUpload adds the document to the index and returns the indexing task
func (m *MeiliProvider) CreateUpload(ctx context.Context, upload Upload) (*UploadResult, error) {
	doc := indexDocument{
		ID:       upload.Ref,
		Ref:      upload.Ref,
		Title:    upload.DisplayName,
		MimeType: upload.MimeType,
		Content:  string(upload.Content),
	}

	if err := m.EnsureIndex(ctx); err != nil {
		return nil, err
	}

	task, err := m.client.Index(m.indexUID).AddDocumentsWithContext(ctx, []indexDocument{doc}, nil)
	if err != nil {
		return nil, fmt.Errorf("meilisearch add document %s: %w", upload.Ref, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"ref":      upload.Ref,
		"task_uid": task.TaskUID,
	}).Debug("meilisearch upload enqueued")

	return &UploadResult{
		Ref:             upload.Ref,
		OperationHandle: strconv.FormatInt(task.TaskUID, 10),
	}, nil
}

// PollOperation reads the state of an indexing task
func (m *MeiliProvider) PollOperation(ctx context.Context, handle string) (*OperationStatus, error) {
	uid, err := strconv.ParseInt(handle, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid operation handle %q: %w", handle, err)
	}

	task, err := m.client.GetTaskWithContext(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("meilisearch get task %d: %w", uid, err)
	}

	switch task.Status {
	case meili.TaskStatusSucceeded:
		return &OperationStatus{Done: true}, nil
	case meili.TaskStatusFailed:
		reason := task.Error.Message
		if reason == "" {
			reason = "indexing task failed"
		}
		return &OperationStatus{Done: true, Error: reason}, nil
	case meili.TaskStatusCanceled:
		return &OperationStatus{Done: true, Error: "indexing task canceled"}, nil
	default:
		return &OperationStatus{}, nil
	}
}

// Query searches only the records whose ref is in refs
func (m *MeiliProvider) Query(ctx context.Context, query string, refs []string, limit int) (*QueryResult, error) {
	if len(refs) == 0 {
		return &QueryResult{}, nil
	}
	if limit <= 0 {
		limit = 5
	}

	quoted := make([]string, len(refs))
	for i, ref := range refs {
		quoted[i] = strconv.Quote(ref)
	}

	if err := m.EnsureIndex(ctx); err != nil {
		return nil, err
	}

	resp, err := m.client.MultiSearchWithContext(ctx, &meili.MultiSearchRequest{
		Queries: []*meili.SearchRequest{{
			IndexUID:         m.indexUID,
			Query:            query,
			Limit:            int64(limit),
			Filter:           fmt.Sprintf("ref IN [%s]", strings.Join(quoted, ", ")),
			AttributesToCrop: []string{"content"},
			CropLength:       cropLength,
			ShowRankingScore: true,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	result := &QueryResult{}
	for _, sr := range resp.Results {
		for _, hit := range sr.Hits {
			result.Passages = append(result.Passages, hitToPassage(hit))
		}
	}
	return result, nil
}

// DeleteByRef removes the record of a document
func (m *MeiliProvider) DeleteByRef(ctx context.Context, ref string) error {
	if _, err := m.client.Index(m.indexUID).DeleteDocumentWithContext(ctx, ref, nil); err != nil {
		return fmt.Errorf("meilisearch delete %s: %w", ref, err)
	}
	return nil
}

// Health reports whether Meilisearch is reachable
func (m *MeiliProvider) Health(ctx context.Context) error {
	if _, err := m.client.HealthWithContext(ctx); err != nil {
		return fmt.Errorf("meilisearch health: %w", err)
	}
	return nil
}

func hitToPassage(hit meili.Hit) Passage {
	p := Passage{
		Ref:   decodeString(hit, "ref"),
		Title: decodeString(hit, "title"),
	}
	p.Content = decodeFormattedString(hit, "content")
	if p.Content == "" {
		p.Content = decodeString(hit, "content")
	}
	if raw, ok := hit["_rankingScore"]; ok {
		_ = json.Unmarshal(raw, &p.Score)
	}
	return p
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func decodeFormattedString(hit meili.Hit, key string) string {
	raw, ok := hit["_formatted"]
	if !ok {
		return ""
	}
	var formatted map[string]interface{}
	if err := json.Unmarshal(raw, &formatted); err != nil {
		return ""
	}
	s, _ := formatted[key].(string)
	return strings.TrimSpace(s)
}

var _ Provider = (*MeiliProvider)(nil)
