package usecase

import (
	"context"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) All(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	listings, _ := args.Get(0).([]domain.Listing)
	return listings, args.Error(1)
}

func (m *MockCatalog) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	listing, _ := args.Get(0).(*domain.Listing)
	return listing, args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, user, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.User, error) {
	args := m.Called(ctx, sessionID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, sessionID, user, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*domain.Claims)
	return claims, args.Error(1)
}

type MockSubmissionStorage struct {
	mock.Mock
}

func (m *MockSubmissionStorage) Save(ctx context.Context, submission *domain.ListingSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

type MockSubmissionPublisher struct {
	mock.Mock
}

func (m *MockSubmissionPublisher) PublishSubmitted(ctx context.Context, submission *domain.ListingSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func sampleCatalog() []domain.Listing {
	base := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Listing{
		{ID: "1", Brand: "Toyota", Model: "Corolla", Year: 2021, Price: 98000, Mileage: 38000, Condition: domain.ConditionUsed,
			FuelType: domain.FuelHybrid, Transmission: domain.TransmissionAutomatic, SellerName: "Ahmad", SellerPhone: "+970 59-123-4567",
			Images: []string{"c1.jpg"}, CreatedAt: base},
		{ID: "2", Brand: "Hyundai", Model: "Tucson", Year: 2019, Price: 87000, Mileage: 72000, Condition: domain.ConditionUsed,
			FuelType: domain.FuelDiesel, Transmission: domain.TransmissionAutomatic, SellerName: "Nablus Auto Dealer",
			Images: []string{"t1.jpg"}, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "3", Brand: "Toyota", Model: "Camry", Year: 2023, Price: 145000, Mileage: 5000, Condition: domain.ConditionNew,
			FuelType: domain.FuelGasoline, Transmission: domain.TransmissionAutomatic, SellerName: "تاجر",
			Images: []string{"cm1.jpg"}, CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "4", Brand: "Toyota", Model: "Yaris", Year: 2017, Price: 45000, Mileage: 120000, Condition: domain.ConditionUsed,
			FuelType: domain.FuelGasoline, Transmission: domain.TransmissionManual, SellerName: "Omar",
			Images: []string{"y1.jpg"}, CreatedAt: base.AddDate(0, 0, 3)},
	}
}
