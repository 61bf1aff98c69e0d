package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListingSubmission - объявление, отправленное пользователем через форму.
// В каталог не попадает.
type ListingSubmission struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         int
	Price        int64
	Mileage      int64
	Engine       string
	Transmission string
	FuelType     string
	Color        string
	Location     string
	SellerPhone  string
	Description  string
	Images       []string

	SellerID   string
	SellerName string
	CreatedAt  time.Time
}
