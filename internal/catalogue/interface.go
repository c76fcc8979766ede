package catalogue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Stateless listing
	Browse(ctx context.Context, input BrowseInput) (BrowseOutput, error)

	// Filter sessions
	OpenSession(ctx context.Context, input OpenSessionInput) (SessionView, error)
	EditFilter(ctx context.Context, input EditFilterInput) (SessionView, error)
	SetPage(ctx context.Context, input SetPageInput) (SessionView, error)
	ResetFilters(ctx context.Context, id string) (SessionView, error)
	GetSession(ctx context.Context, id string) (SessionView, error)
	CloseSession(ctx context.Context, id string) error
}
