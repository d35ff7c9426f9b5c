package ui

import (
	"context"

	"github.com/VoxDroid/rolo/internal/record"
)

// Model is the subset of the framework-agnostic UI model the browser
// depends on. Tests provide fakes.
type Model interface {
	RefreshList(ctx context.Context) error
	ListCached() []record.Record
	Filter(query string) []record.Record
	Delete(ctx context.Context, id int64) error
}
