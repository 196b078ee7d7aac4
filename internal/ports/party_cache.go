package ports

import (
	"context"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

// PartyCache — кэш партий по ID.
// Требования к реализации: потокобезопасность; возврат копий сущности.
type PartyCache interface {
	// Get — (party, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id int64) (*domain.Party, bool)

	// Set — сохранить/обновить партию в кэше.
	Set(ctx context.Context, party *domain.Party) error

	// Delete — убрать партию из кэша (отсутствие записи — не ошибка).
	Delete(ctx context.Context, id int64) error

	// WarmUp — массовая загрузка кэша; должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, parties []*domain.Party) error
}
