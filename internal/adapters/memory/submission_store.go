package memory

import (
	"context"
	"sync"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// SubmissionStore складывает поданные объявления в память процесса
type SubmissionStore struct {
	mu          sync.RWMutex
	submissions []domain.ListingSubmission
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{}
}

func (s *SubmissionStore) Save(ctx context.Context, submission *domain.ListingSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, *submission)
	return nil
}

// List возвращает копию сохраненных объявлений
func (s *SubmissionStore) List() []domain.ListingSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ListingSubmission, len(s.submissions))
	copy(result, s.submissions)
	return result
}
