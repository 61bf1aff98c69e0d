package usecase

import (
	"context"
	"errors"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/contact"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
)

type GetListingDetailsUseCase struct {
	catalog port.ListingCatalogPort
}

func NewGetListingDetailsUseCase(catalog port.ListingCatalogPort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{catalog: catalog}
}

// Execute собирает страницу объявления: галерею, похожие объявления той же марки
// и ссылки для связи с продавцом на выбранном языке.
func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, listingID string, lang locale.Language) (*domain.ListingDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": listingID,
		"lang":       string(lang),
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.catalog.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			ucLogger.Warn("Listing not found", nil)
		} else {
			ucLogger.Error("Catalog returned an error", err, nil)
		}
		return nil, err
	}

	all, err := uc.catalog.All(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	related := make([]domain.Listing, 0, constants.RelatedListingsCount)
	for _, candidate := range all {
		if len(related) == constants.RelatedListingsCount {
			break
		}
		if candidate.Brand == listing.Brand && candidate.ID != listing.ID {
			related = append(related, candidate)
		}
	}

	gallery := make([]string, 0, len(listing.Images)+len(constants.InteriorImages))
	gallery = append(gallery, listing.Images...)
	gallery = append(gallery, constants.InteriorImages...)

	message := locale.InterestMessage(lang, listing.Brand, listing.Model)

	details := &domain.ListingDetails{
		Listing: *listing,
		Gallery: gallery,
		Related: related,
		Contact: domain.ContactLinks{
			WhatsApp: contact.WhatsAppURL(listing.SellerPhone, message),
			Phone:    contact.PhoneURL(listing.SellerPhone),
		},
		FormattedPrice: locale.FormatPrice(lang, listing.Price),
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"related_count": len(related)})
	return details, nil
}
