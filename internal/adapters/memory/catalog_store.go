package memory

import (
	_ "embed"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/contracts"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

//go:embed data/cars.json
var defaultSeed []byte

// listingRecord - формат объявления в файле начальных данных
type listingRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        int64     `json:"price"`
	Mileage      int64     `json:"mileage"`
	FuelType     string    `json:"fuelType"`
	Transmission string    `json:"transmission"`
	Condition    string    `json:"condition"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	SellerID     string    `json:"sellerId"`
	SellerName   string    `json:"sellerName"`
	SellerPhone  string    `json:"sellerPhone"`
	CreatedAt    time.Time `json:"createdAt"`
	Color        string    `json:"color,omitempty"`
	Engine       string    `json:"engine,omitempty"`
}

func (r listingRecord) toDomain() domain.Listing {
	return domain.Listing{
		ID:           r.ID,
		Name:         r.Name,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Condition:    domain.Condition(r.Condition),
		Price:        r.Price,
		Mileage:      r.Mileage,
		Engine:       r.Engine,
		FuelType:     domain.FuelType(r.FuelType),
		Transmission: domain.Transmission(r.Transmission),
		Color:        r.Color,
		Location:     r.Location,
		Description:  r.Description,
		Images:       r.Images,
		SellerID:     r.SellerID,
		SellerName:   r.SellerName,
		SellerPhone:  r.SellerPhone,
		CreatedAt:    r.CreatedAt,
	}
}

// CatalogStore - неизменяемый каталог в памяти.
// Безопасен для конкурентного чтения без блокировок: после создания не меняется.
type CatalogStore struct {
	listings []domain.Listing
	byID     map[string]int
}

// NewDefaultCatalogStore загружает встроенные в бинарник объявления
func NewDefaultCatalogStore() (*CatalogStore, error) {
	return NewCatalogStore(defaultSeed)
}

// NewCatalogStore разбирает JSON-массив объявлений.
// Каждое объявление проверяется по схеме Listing/1.0.0, id должны быть уникальны.
func NewCatalogStore(seed []byte) (*CatalogStore, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(seed, &raw); err != nil {
		return nil, fmt.Errorf("%w: seed is not a JSON array: %v", domain.ErrInvalidCatalog, err)
	}

	store := &CatalogStore{
		listings: make([]domain.Listing, 0, len(raw)),
		byID:     make(map[string]int, len(raw)),
	}

	for i, doc := range raw {
		if err := contracts.ValidateDocument(contracts.ListingDocument, contracts.DocumentVersionV1, doc); err != nil {
			return nil, fmt.Errorf("%w: listing #%d: %v", domain.ErrInvalidCatalog, i, err)
		}

		var record listingRecord
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, fmt.Errorf("%w: listing #%d: %v", domain.ErrInvalidCatalog, i, err)
		}
		if _, exists := store.byID[record.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate listing id %q", domain.ErrInvalidCatalog, record.ID)
		}

		store.byID[record.ID] = len(store.listings)
		store.listings = append(store.listings, record.toDomain())
	}

	return store, nil
}

// All возвращает копию каталога в исходном порядке
func (s *CatalogStore) All(ctx context.Context) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]domain.Listing, len(s.listings))
	for i, l := range s.listings {
		result[i] = copyListing(l)
	}
	return result, nil
}

func (s *CatalogStore) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	listing := copyListing(s.listings[idx])
	return &listing, nil
}

func (s *CatalogStore) Len() int {
	return len(s.listings)
}

func copyListing(l domain.Listing) domain.Listing {
	l.Images = slices.Clone(l.Images)
	return l
}
