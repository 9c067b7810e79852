package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"intervuex/config"
	"intervuex/infras/otel"
	"intervuex/infras/postgres"
	"intervuex/internal/domains/availability/model"
	"intervuex/internal/domains/availability/model/dto"
	"intervuex/internal/domains/availability/repository"
	bookingModel "intervuex/internal/domains/booking/model"
	bookingRepo "intervuex/internal/domains/booking/repository"
	"intervuex/shared"
	"intervuex/shared/cache"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	"intervuex/shared/failure"
	"intervuex/shared/timezone"
)

const (
	cacheGetRules = "availability:rules"
	cacheGetSlots = "availability:slots"
)

type Availability interface {
	GetRules(ctx context.Context, providerID string) (dto.RulesResponse, error)
	SaveRules(ctx context.Context, providerID string, req dto.SaveRulesRequest) error
	GetAvailableSlots(ctx context.Context, providerID, date string) (dto.SlotsResponse, error)
	// ResolveSlots always reconciles against live data, bypassing the cache.
	// Booking creation depends on it to re-check the chosen slot.
	ResolveSlots(ctx context.Context, providerID, date string) ([]dto.SlotResponse, error)
}

type serviceImpl struct {
	ruleRepo    repository.Rule
	blockedRepo repository.BlockedDate
	bookingRepo bookingRepo.Booking
	db          postgres.TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	ruleRepo repository.Rule,
	blockedRepo repository.BlockedDate,
	bookingRepo bookingRepo.Booking,
	db postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		ruleRepo:    ruleRepo,
		blockedRepo: blockedRepo,
		bookingRepo: bookingRepo,
		db:          db,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) GetRules(ctx context.Context, providerID string) (res dto.RulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRules")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRules, providerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability rules")

		return res, nil
	}

	rules, err := s.loadWeek(ctx, providerID)
	if err != nil {
		return res, err
	}

	blocked, err := s.blockedRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldBlockedDate, SortDir: gDto.SortDirAsc}, filterByProvider(providerID, model.BlockedTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked dates")

		return res, fmt.Errorf("failed to get blocked dates: %w", err)
	}

	res.FromModels(rules, blocked)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SaveRules(ctx context.Context, providerID string, req dto.SaveRulesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveRules")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := s.validateRules(req); err != nil {
		return err
	}

	rules, blocked, err := req.ToModels(providerID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse availability rules")

		return failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) // nolint:wrapcheck
	}

	// All-or-nothing replace: the previous template and the new one must
	// never be observable mixed together.
	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.ruleRepo.DeleteTx(ctx, tx, filterByProvider(providerID, model.RuleTableName)); err != nil {
			return fmt.Errorf("failed to delete day rules: %w", err)
		}

		if err := s.ruleRepo.InsertBulkTx(ctx, tx, rules); err != nil {
			return fmt.Errorf("failed to insert day rules: %w", err)
		}

		if err := s.blockedRepo.DeleteTx(ctx, tx, filterByProvider(providerID, model.BlockedTableName)); err != nil {
			return fmt.Errorf("failed to delete blocked dates: %w", err)
		}

		if len(blocked) > 0 {
			if err := s.blockedRepo.InsertBulkTx(ctx, tx, blocked); err != nil {
				return fmt.Errorf("failed to insert blocked dates: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save availability rules")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetRules, providerID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetSlots, providerID))
	}()

	return nil
}

func (s *serviceImpl) GetAvailableSlots(ctx context.Context, providerID, date string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateLayoutYMD, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	now := timezone.Now()
	today := now.Format(constant.DateLayoutYMD)

	// Dates already behind us have no offerable slots, and must never be
	// computed from the weekly template or land in the cache as available.
	if date < today {
		return dto.SlotsResponse{
			Date:    date,
			Weekday: day.Weekday().String(),
			Slots:   []dto.SlotResponse{},
		}, nil
	}

	isToday := date == today

	cacheKey := shared.BuildCacheKey(cacheGetSlots, providerID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability slots")

		return res, nil
	}

	slots, err := s.reconcile(ctx, providerID, date, day.Weekday(), isToday, now)
	if err != nil {
		return res, err
	}

	res = dto.SlotsResponse{
		Date:    date,
		Weekday: day.Weekday().String(),
		Slots:   slots,
	}

	// Same-day results depend on the wall clock, so they only get a short
	// cache lease; future dates stay valid until rules or bookings change.
	ttl := s.cfg.Cache.TTL
	if isToday {
		ttl = s.cfg.Cache.SlotTTL
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, ttl); err != nil {
			log.Error().Err(err).Msg("failed to save availability slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ResolveSlots(ctx context.Context, providerID, date string) (res []dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateLayoutYMD, date)
	if err != nil {
		return nil, failure.BadRequestFromString("date must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	now := timezone.Now()
	today := now.Format(constant.DateLayoutYMD)

	if date < today {
		return []dto.SlotResponse{}, nil
	}

	return s.reconcile(ctx, providerID, date, day.Weekday(), date == today, now)
}

// reconcile produces the truthful slot list for one provider and date: an
// empty list for blocked dates, and otherwise every generated window flagged
// against existing non-cancelled bookings and, for today, the current time.
func (s *serviceImpl) reconcile(ctx context.Context, providerID, date string, weekday time.Weekday, isToday bool, now time.Time) ([]dto.SlotResponse, error) {
	blocked, err := s.blockedRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.BlockedTableName,
			},
			gDto.Filter{
				Field:    model.FieldBlockedDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.BlockedTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check blocked date")

		return nil, fmt.Errorf("failed to check blocked date: %w", err)
	}

	if blocked {
		return []dto.SlotResponse{}, nil
	}

	rule, err := s.ruleRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.RuleTableName,
			},
			gDto.Filter{
				Field:    model.FieldWeekday,
				Operator: gDto.FilterOperatorEq,
				ArgName:  "rule_weekday",
				Value:    int(weekday),
				Table:    model.RuleTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get day rule")

		return nil, fmt.Errorf("failed to get day rule: %w", err)
	}

	windows := GenerateWindows(rule, s.cfg.Booking.InterviewDurationMinutes)
	if len(windows) == 0 {
		return []dto.SlotResponse{}, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				ArgName:  "booking_provider_id",
				Value:    providerID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    bookingModel.StatusCancelled,
				Table:    bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for date")

		return nil, fmt.Errorf("failed to get bookings for date: %w", err)
	}

	booked := make([]BookedRange, len(bookings))
	for i, booking := range bookings {
		booked[i] = BookedRange{
			StartMinute: MinuteOfDay(booking.StartTime),
			EndMinute:   MinuteOfDay(booking.EndTime),
		}
	}

	return ReconcileWindows(windows, booked, isToday, MinuteOfDay(now)), nil
}

// loadWeek returns the provider's 7-entry template, synthesizing a disabled
// default week for providers that have not saved rules yet.
func (s *serviceImpl) loadWeek(ctx context.Context, providerID string) ([]model.DayRule, error) {
	rules, err := s.ruleRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldWeekday, SortDir: gDto.SortDirAsc}, filterByProvider(providerID, model.RuleTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get day rules")

		return nil, fmt.Errorf("failed to get day rules: %w", err)
	}

	if len(rules) == 0 {
		rules = make([]model.DayRule, constant.DaysPerWeek)
		for weekday := range rules {
			rules[weekday] = model.DayRule{
				ProviderID: providerID,
				Weekday:    weekday,
				Enabled:    false,
			}
		}
	}

	return rules, nil
}

func (s *serviceImpl) validateRules(req dto.SaveRulesRequest) error {
	seen := map[int]bool{}

	for _, rule := range req.DayRules {
		if seen[rule.Weekday] {
			return failure.BadRequestFromString(fmt.Sprintf("duplicate rule for weekday %d", rule.Weekday)) // nolint:wrapcheck
		}

		seen[rule.Weekday] = true

		if rule.BufferMinutes > s.cfg.Booking.MaxBufferMinutes {
			return failure.BadRequestFromString(fmt.Sprintf("buffer_minutes must not exceed %d", s.cfg.Booking.MaxBufferMinutes)) // nolint:wrapcheck
		}

		if !rule.Enabled {
			continue
		}

		start, err := time.Parse(constant.TimeLayoutHHMM, rule.StartTime)
		if err != nil {
			return failure.BadRequestFromString("start_time must be a valid time in HH:MM format") // nolint:wrapcheck
		}

		end, err := time.Parse(constant.TimeLayoutHHMM, rule.EndTime)
		if err != nil {
			return failure.BadRequestFromString("end_time must be a valid time in HH:MM format") // nolint:wrapcheck
		}

		if !start.Before(end) {
			return failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
		}
	}

	today := timezone.Now().Format(constant.DateLayoutYMD)
	seenDates := map[string]bool{}

	for _, date := range req.BlockedDates {
		if seenDates[date] {
			return failure.BadRequestFromString(fmt.Sprintf("duplicate blocked date %s", date)) // nolint:wrapcheck
		}

		seenDates[date] = true

		if date < today {
			return failure.BadRequestFromString(fmt.Sprintf("blocked date %s is in the past", date)) // nolint:wrapcheck
		}
	}

	return nil
}

func filterByProvider(providerID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    table,
			},
		},
	}
}
