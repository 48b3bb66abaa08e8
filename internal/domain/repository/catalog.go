package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlink/marketplace/internal/domain/model"
)

// CatalogRepository gives read access to shops, buyers, and catalog items.
type CatalogRepository interface {
	// SellersForCategory returns the distinct shops that own at least one
	// product in the category. An empty result is valid.
	SellersForCategory(ctx context.Context, category string) ([]model.Shop, error)
	ShopByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	UserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
