// Package source defines the catalog entities scraped from the remote site and the interface navigating them.
package source

import "context"

// Source defines the navigation capabilities of a scraped catalog.
type Source interface {
	// Name returns the display name of the catalog.
	Name() string

	// Categories returns the fixed set of top-level categories.
	Categories() []*Category

	// ProgramsOf lists the programs published under a category.
	ProgramsOf(ctx context.Context, category *Category) ([]*Program, error)

	// SeasonsOf lists the seasons of a program. The result is never empty.
	SeasonsOf(ctx context.Context, program *Program) ([]*Season, error)

	// EpisodesOf lists the episodes of a single season.
	EpisodesOf(ctx context.Context, season *Season) ([]*Episode, error)

	// Search returns one page of search results. An empty page means there are no more results.
	Search(ctx context.Context, query string, page int) ([]*SearchResult, error)
}
