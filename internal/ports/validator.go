package ports

import (
	"context"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

// PartyValidator — проверки входных данных, не требующие хранилища.
type PartyValidator interface {
	// ValidateRequired — обязательные поля (code, name, number).
	ValidateRequired(ctx context.Context, in *domain.PartyInput) error
	// ValidateShape — формат: номер из 2 цифр, имя не короче 5 символов.
	ValidateShape(ctx context.Context, in *domain.PartyInput) error
}
