package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrItemNameTooLong = errors.New("item name is too long (max 255 characters)")
	ErrNegativePrice   = errors.New("item price cannot be negative")
)

const MaxItemNameLength = 255

// Item is a catalog product. The catalog itself is managed elsewhere;
// this service only reads items to validate fitting-room requests.
type Item struct {
	id         uuid.UUID
	name       string
	sku        string
	priceCents int64
	isActive   bool
	isDeleted  bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewItem(id uuid.UUID, name, sku string, priceCents int64, isActive, isDeleted bool) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyItemName
	}
	if len(name) > MaxItemNameLength {
		return nil, ErrItemNameTooLong
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:         id,
		name:       name,
		sku:        sku,
		priceCents: priceCents,
		isActive:   isActive,
		isDeleted:  isDeleted,
	}, nil
}

// IsRequestable reports whether a fitting-room request may target this item.
func (i *Item) IsRequestable() bool {
	return i.isActive && !i.isDeleted
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Name() string         { return i.name }
func (i *Item) SKU() string          { return i.sku }
func (i *Item) PriceCents() int64    { return i.priceCents }
func (i *Item) IsActive() bool       { return i.isActive }
func (i *Item) IsDeleted() bool      { return i.isDeleted }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
