package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSubmission() domain.ListingSubmission {
	return domain.ListingSubmission{
		Brand:        "Kia",
		Model:        "Sportage",
		Year:         2020,
		Price:        89000,
		Mileage:      41000,
		Engine:       "2.0",
		Transmission: "Automatic",
		FuelType:     "Diesel",
		Color:        "Gray",
		Location:     "Hebron",
		SellerPhone:  "+970 59-555-1234",
		Images:       []string{"a.jpg"},
	}
}

var seller = domain.User{ID: "u_abcdefghi", Name: "Yousef"}

func TestSubmitListingUseCase_Success(t *testing.T) {
	storage := new(MockSubmissionStorage)
	publisher := new(MockSubmissionPublisher)
	storage.On("Save", mock.Anything, mock.AnythingOfType("*domain.ListingSubmission")).Return(nil)
	publisher.On("PublishSubmitted", mock.Anything, mock.AnythingOfType("*domain.ListingSubmission")).Return(nil)

	uc := NewSubmitListingUseCase(storage, publisher)
	fixed := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	saved, err := uc.Execute(context.Background(), seller, validSubmission())
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(saved.ID))
	assert.Equal(t, "u_abcdefghi", saved.SellerID)
	assert.Equal(t, "Yousef", saved.SellerName)
	assert.Equal(t, fixed, saved.CreatedAt)
	storage.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSubmitListingUseCase_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(s *domain.ListingSubmission)
	}{
		{name: "short phone", mutate: func(s *domain.ListingSubmission) { s.SellerPhone = "123" }},
		{name: "no images", mutate: func(s *domain.ListingSubmission) { s.Images = nil }},
		{name: "too many images", mutate: func(s *domain.ListingSubmission) {
			s.Images = []string{"1", "2", "3", "4", "5", "6", "7"}
		}},
		{name: "missing model", mutate: func(s *domain.ListingSubmission) { s.Model = "" }},
		{name: "negative price", mutate: func(s *domain.ListingSubmission) { s.Price = -1 }},
		{name: "unknown brand", mutate: func(s *domain.ListingSubmission) { s.Brand = "Lada" }},
		{name: "unknown location", mutate: func(s *domain.ListingSubmission) { s.Location = "Haifa" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := new(MockSubmissionStorage)
			publisher := new(MockSubmissionPublisher)
			sub := validSubmission()
			tc.mutate(&sub)

			_, err := NewSubmitListingUseCase(storage, publisher).Execute(context.Background(), seller, sub)
			assert.ErrorIs(t, err, domain.ErrInvalidSubmission)
			storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitListingUseCase_StorageError(t *testing.T) {
	storage := new(MockSubmissionStorage)
	publisher := new(MockSubmissionPublisher)
	storage.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := NewSubmitListingUseCase(storage, publisher).Execute(context.Background(), seller, validSubmission())
	assert.ErrorContains(t, err, "db down")
	publisher.AssertNotCalled(t, "PublishSubmitted", mock.Anything, mock.Anything)
}

func TestSubmitListingUseCase_PublishErrorIsNotFatal(t *testing.T) {
	storage := new(MockSubmissionStorage)
	publisher := new(MockSubmissionPublisher)
	storage.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("PublishSubmitted", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	saved, err := NewSubmitListingUseCase(storage, publisher).Execute(context.Background(), seller, validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "Sportage", saved.Model)
}
