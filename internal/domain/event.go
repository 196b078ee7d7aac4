package domain

import "time"

// EventType — тип события изменения реестра.
type EventType string

const (
	EventPartyCreated EventType = "party.created"
	EventPartyUpdated EventType = "party.updated"
	EventPartyDeleted EventType = "party.deleted"
)

// PartyEvent — событие об изменении партии.
// Для удаления Party — состояние до удаления.
type PartyEvent struct {
	Type       EventType `json:"type"`
	Party      Party     `json:"party"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPartyEvent — событие с текущим временем (UTC).
func NewPartyEvent(t EventType, p *Party) PartyEvent {
	return PartyEvent{Type: t, Party: *p, OccurredAt: time.Now().UTC()}
}
