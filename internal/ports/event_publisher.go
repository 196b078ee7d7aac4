package ports

import (
	"context"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

// PartyEventPublisher — публикация событий изменения реестра.
type PartyEventPublisher interface {
	Publish(ctx context.Context, event domain.PartyEvent) error
	Close() error
}
