package ports

import (
	"context"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

// PartyRepository — хранилище партий.
// Get* возвращают (nil, nil), если записи нет.
// Create/Update обязаны атомарно соблюдать уникальность code и number
// и возвращать domain.ErrCodeUnavailable / domain.ErrNumberUnavailable при конфликте.
type PartyRepository interface {
	List(ctx context.Context) ([]*domain.Party, error)
	LastN(ctx context.Context, n int) ([]*domain.Party, error) // LastN — последние n партий (по убыванию id).
	GetByID(ctx context.Context, id int64) (*domain.Party, error)
	GetByCode(ctx context.Context, code string) (*domain.Party, error)
	GetByNumber(ctx context.Context, number int) (*domain.Party, error)
	Create(ctx context.Context, party *domain.Party) error
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, id int64) error
}
