package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/jackc/pgx/v5/pgconn"
)

// execer - часть pgxpool.Pool, которой пользуется репозиторий
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS listing_submissions (
	id            UUID PRIMARY KEY,
	brand         TEXT NOT NULL,
	model         TEXT NOT NULL,
	year          INTEGER NOT NULL,
	price         BIGINT NOT NULL,
	mileage       BIGINT NOT NULL,
	engine        TEXT NOT NULL DEFAULT '',
	transmission  TEXT NOT NULL,
	fuel_type     TEXT NOT NULL,
	color         TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL,
	seller_id     TEXT NOT NULL DEFAULT '',
	seller_name   TEXT NOT NULL DEFAULT '',
	seller_phone  TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	images        TEXT[] NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
)`

const insertSubmission = `INSERT INTO listing_submissions
	(id, brand, model, year, price, mileage, engine, transmission, fuel_type, color,
	 location, seller_id, seller_name, seller_phone, description, images, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

// SubmissionRepository - реализация SubmissionStoragePort для PostgreSQL
type SubmissionRepository struct {
	pool execer
}

func NewSubmissionRepository(pool execer) (*SubmissionRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SubmissionRepository{pool: pool}, nil
}

// EnsureSchema создает таблицу, если ее еще нет
func (r *SubmissionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSubmissionsTable); err != nil {
		return fmt.Errorf("failed to create listing_submissions table: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) Save(ctx context.Context, s *domain.ListingSubmission) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":     "SubmissionRepository",
		"method":        "Save",
		"submission_id": s.ID.String(),
	})

	images := s.Images
	if images == nil {
		images = []string{}
	}

	repoLogger.Debug("Executing query to save listing submission.", nil)
	_, err := r.pool.Exec(ctx, insertSubmission,
		s.ID, s.Brand, s.Model, s.Year, s.Price, s.Mileage, s.Engine, s.Transmission, s.FuelType, s.Color,
		s.Location, s.SellerID, s.SellerName, s.SellerPhone, s.Description, images, s.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save listing submission", err, nil)
		return fmt.Errorf("failed to save listing submission: %w", err)
	}

	repoLogger.Debug("Listing submission saved successfully.", nil)
	return nil
}
