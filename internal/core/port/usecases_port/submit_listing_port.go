package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// SubmitListingUseCase принимает объявление от вошедшего пользователя
type SubmitListingUseCase interface {
	Execute(ctx context.Context, seller domain.User, submission domain.ListingSubmission) (*domain.ListingSubmission, error)
}
