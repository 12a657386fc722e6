package notion

import (
	"context"

	"github.com/jomei/notionapi"
)

// API is the subset of the Notion client consumed by the source.
// Abstracting it keeps the source mockable without network access.
type API interface {
	// QueryDatabase runs a filtered query against a database.
	QueryDatabase(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
	// CreatePage creates a new page.
	CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// NewAPI creates an API backed by the official Notion HTTP endpoints.
func NewAPI(cfg Config) API {
	return &clientWrapper{client: notionapi.NewClient(notionapi.Token(cfg.Token))}
}

type clientWrapper struct {
	client *notionapi.Client
}

func (w *clientWrapper) QueryDatabase(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	return w.client.Database.Query(ctx, id, req)
}

func (w *clientWrapper) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	return w.client.Page.Create(ctx, req)
}
