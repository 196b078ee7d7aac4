package ports

import (
	"context"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

// PartyService — прикладные операции реестра (то, что нужно транспорту).
type PartyService interface {
	GetAll(ctx context.Context) ([]*domain.Party, error)
	Create(ctx context.Context, in *domain.PartyInput) (*domain.Party, error)
	GetByID(ctx context.Context, id int64) (*domain.Party, error)
	Update(ctx context.Context, id int64, in *domain.PartyInput) (*domain.Party, error)
	Delete(ctx context.Context, id int64) (*domain.Confirmation, error)
}
