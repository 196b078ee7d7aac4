package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
)

var _ ports.PartyRepository = (*PartyRepository)(nil)

// PartyRepository — хранилище партий в памяти процесса (локальный запуск, тесты).
// Уникальность code/number проверяется и фиксируется под одной блокировкой.
type PartyRepository struct {
	mu       sync.RWMutex
	nextID   int64
	byID     map[int64]domain.Party
	byCode   map[string]int64
	byNumber map[int]int64
}

func NewPartyRepository() *PartyRepository {
	return &PartyRepository{
		byID:     make(map[int64]domain.Party),
		byCode:   make(map[string]int64),
		byNumber: make(map[int]int64),
	}
}

// List — все партии по возрастанию id.
func (r *PartyRepository) List(_ context.Context) ([]*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Party, 0, len(r.byID))
	for _, p := range r.byID {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LastN — последние n партий по убыванию id.
func (r *PartyRepository) LastN(ctx context.Context, n int) ([]*domain.Party, error) {
	if n <= 0 {
		return nil, nil
	}
	all, _ := r.List(ctx)
	if len(all) > n {
		all = all[len(all)-n:]
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

func (r *PartyRepository) GetByID(_ context.Context, id int64) (*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(id), nil
}

func (r *PartyRepository) GetByCode(_ context.Context, code string) (*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	return r.lookup(id), nil
}

func (r *PartyRepository) GetByNumber(_ context.Context, number int) (*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byNumber[number]
	if !ok {
		return nil, nil
	}
	return r.lookup(id), nil
}

func (r *PartyRepository) Create(_ context.Context, party *domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(party, 0); err != nil {
		return err
	}
	r.nextID++
	party.ID = r.nextID
	r.put(*party)
	return nil
}

func (r *PartyRepository) Update(_ context.Context, party *domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[party.ID]
	if !ok {
		return domain.ErrPartyNotFound
	}
	if err := r.checkUnique(party, party.ID); err != nil {
		return err
	}
	delete(r.byCode, old.Code)
	delete(r.byNumber, old.Number)
	r.put(*party)
	return nil
}

func (r *PartyRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPartyNotFound
	}
	delete(r.byID, id)
	delete(r.byCode, p.Code)
	delete(r.byNumber, p.Number)
	return nil
}

// checkUnique — code/number не заняты никем, кроме selfID. Вызывать под mu.
func (r *PartyRepository) checkUnique(p *domain.Party, selfID int64) error {
	if id, ok := r.byCode[p.Code]; ok && id != selfID {
		return domain.ErrCodeUnavailable
	}
	if id, ok := r.byNumber[p.Number]; ok && id != selfID {
		return domain.ErrNumberUnavailable
	}
	return nil
}

func (r *PartyRepository) put(p domain.Party) {
	r.byID[p.ID] = p
	r.byCode[p.Code] = p.ID
	r.byNumber[p.Number] = p.ID
}

// lookup — копия партии или nil. Вызывать под mu.
func (r *PartyRepository) lookup(id int64) *domain.Party {
	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &p
}
