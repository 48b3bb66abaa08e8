package model

import (
	"time"

	"github.com/google/uuid"
)

// Shop is the read-side projection of a registered storefront.
type Shop struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
}

// User is the read-side projection of a buyer account.
type User struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
}

// Product is a catalog item owned by a shop. Rating is nil until reviewed.
type Product struct {
	ID       uuid.UUID
	ShopID   uuid.UUID
	Name     string
	Category string
	Rating   *float64
}
