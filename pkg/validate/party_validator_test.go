package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/pkg/validate"
)

func num(n int) *int { return &n }

func validInput() *domain.PartyInput {
	return &domain.PartyInput{Code: "PP", Name: "Partido Progressista", Number: num(11)}
}

func TestPartyValidator_Validate(t *testing.T) {
	v := validate.NewPartyValidator()
	ctx := context.Background()

	t.Run("valid input", func(t *testing.T) {
		if err := v.Validate(ctx, validInput()); err != nil {
			t.Fatalf("expected valid input, got: %v", err)
		}
	})

	cases := []struct {
		name  string
		patch func(in *domain.PartyInput)
		want  error
	}{
		{"empty code", func(in *domain.PartyInput) { in.Code = "" }, domain.ErrCodeRequired},
		{"blank code", func(in *domain.PartyInput) { in.Code = "  \t" }, domain.ErrCodeRequired},
		{"empty name", func(in *domain.PartyInput) { in.Name = "" }, domain.ErrNameRequired},
		{"blank name", func(in *domain.PartyInput) { in.Name = "   " }, domain.ErrNameRequired},
		{"nil number", func(in *domain.PartyInput) { in.Number = nil }, domain.ErrNumberRequired},
		{"one digit", func(in *domain.PartyInput) { in.Number = num(7) }, domain.ErrNumberDigits},
		{"three digits", func(in *domain.PartyInput) { in.Number = num(100) }, domain.ErrNumberDigits},
		{"zero", func(in *domain.PartyInput) { in.Number = num(0) }, domain.ErrNumberDigits},
		{"negative two digits", func(in *domain.PartyInput) { in.Number = num(-42) }, domain.ErrNumberDigits},
		{"negative ten", func(in *domain.PartyInput) { in.Number = num(-10) }, domain.ErrNumberDigits},
		{"beyond smallint", func(in *domain.PartyInput) { in.Number = num(40000) }, domain.ErrNumberDigits},
		{"name of 4 letters", func(in *domain.PartyInput) { in.Name = "abcd" }, domain.ErrNameTooShort},
		// required-проверки идут раньше shape, независимо от остальных полей
		{"empty code wins over bad number", func(in *domain.PartyInput) { in.Code = ""; in.Number = num(7) }, domain.ErrCodeRequired},
		{"empty name wins over nil number", func(in *domain.PartyInput) { in.Name = ""; in.Number = nil }, domain.ErrNameRequired},
		{"digits checked before name length", func(in *domain.PartyInput) { in.Name = "ab"; in.Number = num(100) }, domain.ErrNumberDigits},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.patch(in)
			err := v.Validate(ctx, in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %q, got %v", tc.want, err)
			}
			if err.Error() != tc.want.Error() {
				t.Fatalf("message must be rendered as is: want %q, got %q", tc.want.Error(), err.Error())
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("want validation kind, got %v", domain.KindOf(err))
			}
		})
	}
}

func TestPartyValidator_Boundaries(t *testing.T) {
	v := validate.NewPartyValidator()
	ctx := context.Background()

	// знак входит в длину записи: "-5" — два символа
	for _, n := range []int{10, 42, 99, -1, -5, -9} {
		in := validInput()
		in.Number = num(n)
		if err := v.ValidateShape(ctx, in); err != nil {
			t.Fatalf("number %d must pass, got %v", n, err)
		}
	}

	in := validInput()
	in.Name = "abcde"
	if err := v.ValidateShape(ctx, in); err != nil {
		t.Fatalf("5-letter name must pass, got %v", err)
	}

	// длина считается в символах, а не в байтах
	in.Name = "Água"
	if err := v.ValidateShape(ctx, in); !errors.Is(err, domain.ErrNameTooShort) {
		t.Fatalf("4-rune name must fail, got %v", err)
	}
	in.Name = "Ações"
	if err := v.ValidateShape(ctx, in); err != nil {
		t.Fatalf("5-rune name must pass, got %v", err)
	}
}

func TestPartyValidator_NilInput(t *testing.T) {
	v := validate.NewPartyValidator()
	if err := v.ValidateRequired(context.Background(), nil); !errors.Is(err, domain.ErrCodeRequired) {
		t.Fatalf("nil input must fail on code, got %v", err)
	}
}
