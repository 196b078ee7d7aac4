package domain

import "strings"

// Party — партия, хранимая в реестре (она же — выходная форма API).
type Party struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// PartyInput — входные данные для создания/обновления партии.
// Number — указатель: nil означает, что номер не передан.
type PartyInput struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Number *int   `json:"number"`
}

// Confirmation — подтверждение операции без тела сущности.
type Confirmation struct {
	Message string `json:"message"`
}

// MessagePartyDeleted — текст подтверждения удаления.
const MessagePartyDeleted = "Party deleted"

// NewParty — новая партия из входных данных (ID назначает хранилище).
// Вызывать только после проверки обязательных полей.
func NewParty(in *PartyInput) Party {
	var p Party
	p.Apply(in)
	return p
}

// Apply — полная перезапись code/name/number из входных данных.
func (p *Party) Apply(in *PartyInput) {
	p.Code = in.Code
	p.Name = in.Name
	if in.Number != nil {
		p.Number = *in.Number
	}
}

// IsBlank — пустая строка или только пробельные символы.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }
