package index

import "context"

// Upload is the content handed to the external index for one document.
type Upload struct {
	Ref         string
	DisplayName string
	MimeType    string
	Content     []byte
}

// UploadResult identifies the remote document and the long-running
// operation that will make it searchable.
type UploadResult struct {
	Ref             string
	OperationHandle string
}

// OperationStatus is a snapshot of a long-running remote operation.
// Error is only meaningful once Done is true.
type OperationStatus struct {
	Done  bool
	Error string
}

// Passage is a retrieved fragment of an indexed document.
type Passage struct {
	Ref     string  `json:"ref"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// QueryResult is what the provider returns for a retrieval query.
// RawAnswer is set by providers that synthesize an answer themselves.
type QueryResult struct {
	Passages  []Passage
	RawAnswer string
}

// Provider is the external search index capability.
type Provider interface {
	CreateUpload(ctx context.Context, upload Upload) (*UploadResult, error)
	PollOperation(ctx context.Context, handle string) (*OperationStatus, error)
	Query(ctx context.Context, query string, refs []string, limit int) (*QueryResult, error)
	DeleteByRef(ctx context.Context, ref string) error
	Health(ctx context.Context) error
}
