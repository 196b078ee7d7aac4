//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/Gunvolt24/party_registry/internal/domain"
)

func UniqSuffix() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// MakeParty — валидная партия с уникальным code и случайным двузначным номером.
// Для тестов, где важна уникальность номера, задавайте его явно через WithNumber.
func MakeParty(opts ...func(*domain.Party)) domain.Party {
	n, _ := rand.Int(rand.Reader, big.NewInt(90))
	p := domain.Party{
		Code:   "P-" + UniqSuffix(),
		Name:   "Partido " + UniqSuffix(),
		Number: 10 + int(n.Int64()),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func WithNumber(n int) func(*domain.Party) {
	return func(p *domain.Party) { p.Number = n }
}
