package rest

import (
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
	"github.com/mnasyf821-dotcom/palcars/internal/core/search"
)

// ListingCardResponse - DTO для карточки объявления в списке
type ListingCardResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Condition      string    `json:"condition"`
	Price          int64     `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	Mileage        int64     `json:"mileage"`
	FuelType       string    `json:"fuel_type"`
	Transmission   string    `json:"transmission"`
	Location       string    `json:"location"`
	CoverImage     string    `json:"cover_image"`
	SellerName     string    `json:"seller_name"`
	IsDealer       bool      `json:"is_dealer"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListingResponse - полное объявление
type ListingResponse struct {
	ListingCardResponse
	Engine      string   `json:"engine,omitempty"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	SellerID    string   `json:"seller_id"`
	SellerPhone string   `json:"seller_phone"`
}

type PaginatedListingsResponse struct {
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
	Sort       string                `json:"sort"`
	Data       []ListingCardResponse `json:"data"`
}

type ContactResponse struct {
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
}

type ListingDetailsResponse struct {
	Listing ListingResponse       `json:"listing"`
	Gallery []string              `json:"gallery"`
	Related []ListingCardResponse `json:"related"`
	Contact ContactResponse       `json:"contact"`
}

type FeaturedListingsResponse struct {
	Data []ListingCardResponse `json:"data"`
}

type ModelsResponse struct {
	Brand  string   `json:"brand,omitempty"`
	Models []string `json:"models"`
}

type VariantsResponse struct {
	Model    string   `json:"model"`
	Variants []string `json:"variants"`
}

type ModelCountsResponse struct {
	Brand  string         `json:"brand"`
	Counts map[string]int `json:"counts"`
}

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type DictionariesResponse map[string][]DictionaryItemResponse

// SubmitListingRequest - тело POST /cars, поля как в форме подачи
type SubmitListingRequest struct {
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int64    `json:"price"`
	Mileage      int64    `json:"mileage"`
	Engine       string   `json:"engine"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Color        string   `json:"color"`
	Location     string   `json:"location"`
	SellerPhone  string   `json:"sellerPhone"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
}

func (req SubmitListingRequest) toDomain() domain.ListingSubmission {
	return domain.ListingSubmission{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Engine:       req.Engine,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Color:        req.Color,
		Location:     req.Location,
		SellerPhone:  req.SellerPhone,
		Description:  req.Description,
		Images:       req.Images,
	}
}

type SubmissionResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func newListingCardResponse(l domain.Listing, lang locale.Language) ListingCardResponse {
	return ListingCardResponse{
		ID:             l.ID,
		Name:           l.Name,
		Brand:          l.Brand,
		Model:          l.Model,
		Year:           l.Year,
		Condition:      string(l.Condition),
		Price:          l.Price,
		FormattedPrice: locale.FormatPrice(lang, l.Price),
		Mileage:        l.Mileage,
		FuelType:       string(l.FuelType),
		Transmission:   string(l.Transmission),
		Location:       l.Location,
		CoverImage:     l.CoverImage(),
		SellerName:     l.SellerName,
		IsDealer:       search.IsDealer(l.SellerName),
		CreatedAt:      l.CreatedAt,
	}
}

func newListingCards(listings []domain.Listing, lang locale.Language) []ListingCardResponse {
	cards := make([]ListingCardResponse, len(listings))
	for i, l := range listings {
		cards[i] = newListingCardResponse(l, lang)
	}
	return cards
}

func newListingResponse(l domain.Listing, lang locale.Language) ListingResponse {
	return ListingResponse{
		ListingCardResponse: newListingCardResponse(l, lang),
		Engine:              l.Engine,
		Color:               l.Color,
		Description:         l.Description,
		Images:              l.Images,
		SellerID:            l.SellerID,
		SellerPhone:         l.SellerPhone,
	}
}

func newUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Avatar: u.Avatar}
}
