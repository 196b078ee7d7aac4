package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/Gunvolt24/party_registry/pkg/metrics"
	"github.com/Gunvolt24/party_registry/pkg/validate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Gunvolt24/party_registry/internal/usecase"

// Имена операций — для метрик и спанов.
const (
	opGetAll = "get_all"
	opCreate = "create"
	opGet    = "get"
	opUpdate = "update"
	opDelete = "delete"
	opImport = "import"
)

var _ ports.PartyService = (*PartyService)(nil)

// PartyService — прикладная логика реестра партий (без знаний о транспорте).
type PartyService struct {
	repo      ports.PartyRepository     // источник истины, атомарно держит уникальность
	cache     ports.PartyCache          // кэш чтения по id
	events    ports.PartyEventPublisher // события изменений
	log       ports.Logger
	validator ports.PartyValidator
	tracer    trace.Tracer
}

// NewPartyService — DI-конструктор.
func NewPartyService(
	repo ports.PartyRepository,
	cache ports.PartyCache,
	events ports.PartyEventPublisher,
	log ports.Logger,
	validator ports.PartyValidator,
) *PartyService {
	return &PartyService{
		repo:      repo,
		cache:     cache,
		events:    events,
		log:       log,
		validator: validator,
		tracer:    otel.Tracer(tracerName),
	}
}

// GetAll — все партии по возрастанию id.
func (s *PartyService) GetAll(ctx context.Context) ([]*domain.Party, error) {
	var out []*domain.Party
	err := s.observe(ctx, opGetAll, func(ctx context.Context) error {
		list, err := s.repo.List(ctx)
		if err != nil {
			return fmt.Errorf("list parties: %w", err)
		}
		out = list
		return nil
	})
	return out, err
}

// Create — создание партии.
// Порядок проверок: обязательные поля → уникальность code/number → формат.
func (s *PartyService) Create(ctx context.Context, in *domain.PartyInput) (*domain.Party, error) {
	var out *domain.Party
	err := s.observe(ctx, opCreate, func(ctx context.Context) (err error) {
		out, err = s.create(ctx, in)
		return err
	})
	return out, err
}

// GetByID — сначала кэш, при промахе — хранилище с записью в кэш.
func (s *PartyService) GetByID(ctx context.Context, id int64) (*domain.Party, error) {
	var out *domain.Party
	err := s.observe(ctx, opGet, func(ctx context.Context) error {
		if id <= 0 {
			return domain.ErrInvalidID
		}
		if p, ok := s.cache.Get(ctx, id); ok {
			s.log.Debugf(ctx, "cache hit party id=%d", id)
			out = p
			return nil
		}

		p, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		s.remember(ctx, p)
		out = p
		return nil
	})
	return out, err
}

// Update — полная перезапись code/name/number существующей партии.
// Уникальность проверяется без учёта самой партии.
func (s *PartyService) Update(ctx context.Context, id int64, in *domain.PartyInput) (*domain.Party, error) {
	var out *domain.Party
	err := s.observe(ctx, opUpdate, func(ctx context.Context) error {
		if id <= 0 {
			return domain.ErrInvalidID
		}
		if err := s.validator.ValidateRequired(ctx, in); err != nil {
			return err
		}
		// читаем из хранилища, не из кэша: кэш может отставать
		p, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ensureAvailable(ctx, in, p.ID); err != nil {
			return err
		}
		if err := s.validator.ValidateShape(ctx, in); err != nil {
			return err
		}

		p.Apply(in)
		if err := s.repo.Update(ctx, p); err != nil {
			return storageErr("update party", err)
		}
		s.remember(ctx, p)
		s.publish(ctx, domain.EventPartyUpdated, p)
		out = p
		return nil
	})
	return out, err
}

// Delete — удаление партии по id.
func (s *PartyService) Delete(ctx context.Context, id int64) (*domain.Confirmation, error) {
	var out *domain.Confirmation
	err := s.observe(ctx, opDelete, func(ctx context.Context) error {
		if id <= 0 {
			return domain.ErrInvalidID
		}
		p, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return storageErr("delete party", err)
		}
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.Warnf(ctx, "cache.Delete failed id=%d err=%v", id, err)
		}
		s.publish(ctx, domain.EventPartyDeleted, p)
		out = &domain.Confirmation{Message: domain.MessagePartyDeleted}
		return nil
	})
	return out, err
}

// ImportFromMessage — создание партии из сообщения брокера (raw JSON).
// Битый JSON — ошибка вида Validation: консьюмер закоммитит её и пойдёт дальше.
func (s *PartyService) ImportFromMessage(ctx context.Context, raw []byte) error {
	return s.observe(ctx, opImport, func(ctx context.Context) error {
		in, err := validate.DecodePartyInput(raw)
		if err != nil {
			return err
		}
		p, err := s.create(ctx, in)
		if err != nil {
			return err
		}
		s.log.Infof(ctx, "party imported id=%d code=%s", p.ID, p.Code)
		return nil
	})
}

// WarmUpCache — прогрев кэша последними n партиями.
// n <= 0 — прогрев не выполняется (это не ошибка).
func (s *PartyService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Infof(ctx, "cache warm-up skipped: n=%d", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return fmt.Errorf("warm up cache: %w", err)
	}
	if err := s.cache.WarmUp(ctx, list); err != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", err)
	}
	s.log.Infof(ctx, "cache warmed with %d parties in %s", len(list), time.Since(start))
	return nil
}

func (s *PartyService) create(ctx context.Context, in *domain.PartyInput) (*domain.Party, error) {
	if err := s.validator.ValidateRequired(ctx, in); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, in, 0); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateShape(ctx, in); err != nil {
		return nil, err
	}

	p := domain.NewParty(in)
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, storageErr("create party", err)
	}
	s.remember(ctx, &p)
	s.publish(ctx, domain.EventPartyCreated, &p)
	return &p, nil
}

// load — партия из хранилища или ErrPartyNotFound.
func (s *PartyService) load(ctx context.Context, id int64) (*domain.Party, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get party id=%d: %w", id, err)
	}
	if p == nil {
		return nil, domain.ErrPartyNotFound
	}
	return p, nil
}

// ensureAvailable — code и number не заняты другой партией (selfID исключается).
func (s *PartyService) ensureAvailable(ctx context.Context, in *domain.PartyInput, selfID int64) error {
	byCode, err := s.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return fmt.Errorf("lookup party by code: %w", err)
	}
	if byCode != nil && byCode.ID != selfID {
		return domain.ErrCodeUnavailable
	}

	byNumber, err := s.repo.GetByNumber(ctx, *in.Number)
	if err != nil {
		return fmt.Errorf("lookup party by number: %w", err)
	}
	if byNumber != nil && byNumber.ID != selfID {
		return domain.ErrNumberUnavailable
	}
	return nil
}

func (s *PartyService) remember(ctx context.Context, p *domain.Party) {
	if err := s.cache.Set(ctx, p); err != nil {
		s.log.Warnf(ctx, "cache.Set failed id=%d err=%v", p.ID, err)
	}
}

func (s *PartyService) publish(ctx context.Context, t domain.EventType, p *domain.Party) {
	if err := s.events.Publish(ctx, domain.NewPartyEvent(t, p)); err != nil {
		s.log.Warnf(ctx, "publish %s failed id=%d err=%v", t, p.ID, err)
	}
}

// observe — спан, метрика и лог результата операции.
func (s *PartyService) observe(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "PartyService."+op)
	defer span.End()

	err := fn(ctx)
	kind := domain.KindOf(err)
	metrics.PartyOps.WithLabelValues(op, resultLabel(err, kind)).Inc()

	switch {
	case err == nil:
	case kind == domain.KindUnknown:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Errorf(ctx, "%s failed: %v", op, err)
	default:
		span.SetAttributes(attribute.String("party.rejected", kind.String()))
		s.log.Infof(ctx, "%s rejected: %v", op, err)
	}
	return err
}

func resultLabel(err error, kind domain.ErrorKind) string {
	switch {
	case err == nil:
		return "ok"
	case kind == domain.KindUnknown:
		return "error"
	default:
		return kind.String()
	}
}

// storageErr — доменные ошибки хранилища (конфликт уникальности, not found) отдаются как есть,
// остальные оборачиваются.
func storageErr(op string, err error) error {
	if domain.KindOf(err) != domain.KindUnknown {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
