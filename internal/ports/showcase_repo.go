package ports

import (
	"context"

	"github.com/Vovarama1992/showcase/internal/models"
)

type ShowcaseRepository interface {
	// every column, newest first
	FetchAll(ctx context.Context) ([]models.ShowcaseItem, error)
	// explicit public projection, newest first
	FetchPublic(ctx context.Context) ([]models.ShowcaseItem, error)
	FetchByID(ctx context.Context, id string) (*models.ShowcaseItem, error)
}
