package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
)

type GetDictionariesUseCase interface {
	Execute(ctx context.Context, names []string, lang locale.Language) (map[string][]domain.DictionaryItem, error)
}
