package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

// inputValidator — то, что нужно для офлайн-проверки одной записи.
type inputValidator interface {
	Validate(ctx context.Context, in *domain.PartyInput) error
}

// DecodePartyInput — строгий разбор одной записи PartyInput:
// неизвестные поля и данные после объекта запрещены.
// Ошибка разбора оборачивает domain.ErrMalformedInput.
func DecodePartyInput(raw []byte) (*domain.PartyInput, error) {
	var in domain.PartyInput
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", domain.ErrMalformedInput)
	}
	return &in, nil
}

// ValidatePartyFromJSON — разбор и валидация одной записи.
func ValidatePartyFromJSON(ctx context.Context, validator inputValidator, raw []byte) (*domain.PartyInput, error) {
	in, err := DecodePartyInput(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}
