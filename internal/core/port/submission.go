package port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// SubmissionStoragePort сохраняет поданные объявления отдельно от каталога
type SubmissionStoragePort interface {
	Save(ctx context.Context, submission *domain.ListingSubmission) error
}

// SubmissionPublisherPort оповещает другие системы о новом объявлении
type SubmissionPublisherPort interface {
	PublishSubmitted(ctx context.Context, submission *domain.ListingSubmission) error
}
