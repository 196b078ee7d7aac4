package validate

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
)

// Проверка, что PartyValidator удовлетворяет интерфейсу PartyValidator.
var _ ports.PartyValidator = (*PartyValidator)(nil)

const (
	// MinNameLength — минимальная длина имени партии (в символах, не байтах).
	MinNameLength = 5
	numberLength  = 2
)

// PartyValidator — проверки входных данных партии без обращения к хранилищу.
// Все ошибки — доменные (domain.ErrValidation по виду), сообщение отдаётся клиенту как есть.
type PartyValidator struct{}

// NewPartyValidator — конструктор PartyValidator.
func NewPartyValidator() *PartyValidator { return &PartyValidator{} }

// ValidateRequired — обязательные поля в порядке code → name → number.
func (v *PartyValidator) ValidateRequired(_ context.Context, in *domain.PartyInput) error {
	if in == nil || domain.IsBlank(in.Code) {
		return domain.ErrCodeRequired
	}
	if domain.IsBlank(in.Name) {
		return domain.ErrNameRequired
	}
	if in.Number == nil {
		return domain.ErrNumberRequired
	}
	return nil
}

// ValidateShape — номер ровно из 2 цифр, имя не короче MinNameLength.
// Предполагает, что ValidateRequired уже пройден.
func (v *PartyValidator) ValidateShape(_ context.Context, in *domain.PartyInput) error {
	if !IsTwoDigit(*in.Number) {
		return domain.ErrNumberDigits
	}
	if utf8.RuneCountInString(in.Name) < MinNameLength {
		return domain.ErrNameTooShort
	}
	return nil
}

// Validate — обе проверки подряд (для офлайн-валидации файлов).
func (v *PartyValidator) Validate(ctx context.Context, in *domain.PartyInput) error {
	if err := v.ValidateRequired(ctx, in); err != nil {
		return err
	}
	return v.ValidateShape(ctx, in)
}

// IsTwoDigit — десятичная запись числа ровно из 2 символов, знак считается:
// проходят 10..99 и -9..-1.
func IsTwoDigit(n int) bool { return len(strconv.Itoa(n)) == numberLength }
