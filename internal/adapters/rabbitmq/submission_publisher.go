package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// messagePublisher - то, что нужно адаптеру от rabbitmq_producer.Publisher
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// SubmissionEventDTO - тело сообщения о новом объявлении
type SubmissionEventDTO struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        int64     `json:"price"`
	Mileage      int64     `json:"mileage"`
	Engine       string    `json:"engine,omitempty"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuel_type"`
	Color        string    `json:"color,omitempty"`
	Location     string    `json:"location"`
	SellerID     string    `json:"seller_id,omitempty"`
	SellerPhone  string    `json:"seller_phone"`
	ImagesCount  int       `json:"images_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func newSubmissionEventDTO(s *domain.ListingSubmission) SubmissionEventDTO {
	return SubmissionEventDTO{
		SubmissionID: s.ID,
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
		SellerID:     s.SellerID,
		SellerPhone:  s.SellerPhone,
		ImagesCount:  len(s.Images),
		CreatedAt:    s.CreatedAt,
	}
}

// SubmissionPublisherAdapter публикует событие о поданном объявлении
type SubmissionPublisherAdapter struct {
	producer   messagePublisher
	routingKey string
}

func NewSubmissionPublisherAdapter(producer messagePublisher, routingKey string) (*SubmissionPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &SubmissionPublisherAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *SubmissionPublisherAdapter) PublishSubmitted(ctx context.Context, submission *domain.ListingSubmission) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":     "SubmissionPublisherAdapter",
		"routing_key":   a.routingKey,
		"submission_id": submission.ID.String(),
	})

	body, err := json.Marshal(newSubmissionEventDTO(submission))
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal submission %s: %w", submission.ID, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		MessageId:    submission.ID.String(),
		Headers:      make(amqp.Table),
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Info("Publishing listing submission event", nil)
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish listing submission event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish submission %s: %w", submission.ID, err)
	}

	adapterLogger.Info("Successfully published listing submission event", nil)
	return nil
}

// NoopSubmissionPublisher используется, когда брокер не настроен
type NoopSubmissionPublisher struct{}

func (NoopSubmissionPublisher) PublishSubmitted(ctx context.Context, submission *domain.ListingSubmission) error {
	contextkeys.LoggerFromContext(ctx).Debug("Message broker disabled, submission event skipped", port.Fields{
		"submission_id": submission.ID.String(),
	})
	return nil
}
