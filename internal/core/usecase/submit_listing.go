package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/contracts"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/google/uuid"
)

// submissionDocument - представление формы для проверки по JSON Schema
type submissionDocument struct {
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

// SubmitListingUseCase сохраняет поданное объявление и публикует событие.
// Каталог при этом не меняется.
type SubmitListingUseCase struct {
	storage   port.SubmissionStoragePort
	publisher port.SubmissionPublisherPort
	now       func() time.Time
}

func NewSubmitListingUseCase(storage port.SubmissionStoragePort, publisher port.SubmissionPublisherPort) *SubmitListingUseCase {
	return &SubmitListingUseCase{
		storage:   storage,
		publisher: publisher,
		now:       time.Now,
	}
}

func (uc *SubmitListingUseCase) Execute(ctx context.Context, seller domain.User, submission domain.ListingSubmission) (*domain.ListingSubmission, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SubmitListing",
		"seller_id": seller.ID,
		"brand":     submission.Brand,
		"model":     submission.Model,
	})

	ucLogger.Info("Use case started", nil)

	if err := validateSubmission(submission); err != nil {
		ucLogger.Warn("Submission rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	submission.ID = uuid.New()
	submission.SellerID = seller.ID
	submission.SellerName = seller.Name
	submission.CreatedAt = uc.now().UTC()
	submission.Images = slices.Clone(submission.Images)

	ucLogger = ucLogger.WithFields(port.Fields{"submission_id": submission.ID.String()})

	if err := uc.storage.Save(ctx, &submission); err != nil {
		ucLogger.Error("Storage failed to save submission", err, nil)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	// Объявление уже сохранено, ошибка публикации не отменяет подачу
	if err := uc.publisher.PublishSubmitted(ctx, &submission); err != nil {
		ucLogger.Error("Failed to publish submission event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &submission, nil
}

func validateSubmission(s domain.ListingSubmission) error {
	doc := submissionDocument{
		Brand:        s.Brand,
		Model:        s.Model,
		Year:         s.Year,
		Price:        s.Price,
		Mileage:      s.Mileage,
		Engine:       s.Engine,
		Transmission: s.Transmission,
		FuelType:     s.FuelType,
		Color:        s.Color,
		Location:     s.Location,
		SellerPhone:  s.SellerPhone,
		Description:  s.Description,
		Images:       s.Images,
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}

	if err := contracts.ValidateValue(contracts.ListingSubmissionDocument, contracts.DocumentVersionV1, doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSubmission, err)
	}
	if !slices.Contains(constants.CarBrands, s.Brand) {
		return fmt.Errorf("%w: unknown brand %q", domain.ErrInvalidSubmission, s.Brand)
	}
	if !slices.Contains(constants.PalestinianCities, s.Location) {
		return fmt.Errorf("%w: unknown location %q", domain.ErrInvalidSubmission, s.Location)
	}
	return nil
}
