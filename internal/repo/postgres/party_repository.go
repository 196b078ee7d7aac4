package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.PartyRepository = (*PartyRepository)(nil)

// Коды ошибок Postgres.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// constraintErrors — ограничения схемы (см. migrations) и соответствующие доменные ошибки.
var constraintErrors = map[string]error{
	"parties_code_key":          domain.ErrCodeUnavailable,
	"parties_number_key":        domain.ErrNumberUnavailable,
	"parties_code_blank_check":  domain.ErrCodeRequired,
	"parties_name_length_check": domain.ErrNameTooShort,
	"parties_number_check":      domain.ErrNumberDigits,
}

const selectParty = `SELECT id, code, name, number FROM parties`

// PartyRepository — реестр партий на Postgres (pgxpool).
type PartyRepository struct {
	pool *pgxpool.Pool
}

func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository { return &PartyRepository{pool: pool} }

func (r *PartyRepository) List(ctx context.Context) ([]*domain.Party, error) {
	return r.query(ctx, selectParty+` ORDER BY id`)
}

func (r *PartyRepository) LastN(ctx context.Context, n int) ([]*domain.Party, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.query(ctx, selectParty+` ORDER BY id DESC LIMIT $1`, n)
}

func (r *PartyRepository) GetByID(ctx context.Context, id int64) (*domain.Party, error) {
	return r.queryOne(ctx, selectParty+` WHERE id = $1`, id)
}

func (r *PartyRepository) GetByCode(ctx context.Context, code string) (*domain.Party, error) {
	return r.queryOne(ctx, selectParty+` WHERE code = $1`, code)
}

// GetByNumber — number вне диапазона INTEGER не может быть сохранён, такой записи нет.
func (r *PartyRepository) GetByNumber(ctx context.Context, number int) (*domain.Party, error) {
	if number < math.MinInt32 || number > math.MaxInt32 {
		return nil, nil
	}
	return r.queryOne(ctx, selectParty+` WHERE number = $1`, number)
}

// Create — вставка; ID назначает база и записывается в party.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO parties (code, name, number) VALUES ($1, $2, $3) RETURNING id`,
		party.Code, party.Name, party.Number,
	).Scan(&party.ID)
	if err != nil {
		return mapError("insert party", err)
	}
	return nil
}

func (r *PartyRepository) Update(ctx context.Context, party *domain.Party) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE parties SET code = $2, name = $3, number = $4 WHERE id = $1`,
		party.ID, party.Code, party.Name, party.Number,
	)
	if err != nil {
		return mapError("update party", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

func (r *PartyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

// queryOne — (nil, nil), если строки нет.
func (r *PartyRepository) queryOne(ctx context.Context, sql string, args ...any) (*domain.Party, error) {
	var p domain.Party
	err := r.pool.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Code, &p.Name, &p.Number)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select party: %w", err)
	}
	return &p, nil
}

func (r *PartyRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Party, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select parties: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Party, error) {
		var p domain.Party
		return &p, row.Scan(&p.ID, &p.Code, &p.Name, &p.Number)
	})
	if err != nil {
		return nil, fmt.Errorf("scan parties: %w", err)
	}
	return list, nil
}

// mapError — нарушения ограничений схемы превращаются в доменные ошибки.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgUniqueViolation || pgErr.Code == pgCheckViolation) {
		if derr, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return derr
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
