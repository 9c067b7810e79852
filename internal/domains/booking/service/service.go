package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"intervuex/config"
	"intervuex/infras/kafka"
	"intervuex/infras/otel"
	"intervuex/infras/postgres"
	availabilityDto "intervuex/internal/domains/availability/model/dto"
	availabilityService "intervuex/internal/domains/availability/service"
	"intervuex/internal/domains/booking/model"
	"intervuex/internal/domains/booking/model/dto"
	"intervuex/internal/domains/booking/repository"
	"intervuex/internal/domains/booking/split"
	ledgerModel "intervuex/internal/domains/ledger/model"
	ledgerService "intervuex/internal/domains/ledger/service"
	"intervuex/shared"
	"intervuex/shared/cache"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	"intervuex/shared/failure"
	"intervuex/shared/timezone"
)

const (
	cacheGetBooking  = "booking:get"
	cacheGetBookings = "booking:list"
	cacheSlots       = "availability:slots"
)

// errTransitionConflict signals that the guarded status update affected zero
// rows: a concurrent transition won between our read and our write.
var errTransitionConflict = errors.New("booking status changed concurrently")

// Filter narrows booking listings. Empty fields are ignored.
type Filter struct {
	RequesterID string
	ProviderID  string
	Status      string
	Date        string
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, bookingID string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	Get(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter Filter) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	availability availabilityService.Availability
	ledger       ledgerService.Wallet
	policy       split.Policy
	db           postgres.TxRunner
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	availability availabilityService.Availability,
	ledger ledgerService.Wallet,
	db postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		ledger:       ledger,
		policy:       split.NewPolicy(cfg),
		db:           db,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafkaClient,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	requester, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.BookingDate < timezone.Now().Format(constant.DateLayoutYMD) {
		return res, failure.BadRequestFromString("booking date is in the past") // nolint:wrapcheck
	}

	booking, err := req.ToModel(requester, s.cfg.Booking.InterviewDurationMinutes)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking time: %v", err)) // nolint:wrapcheck
	}

	// The chosen slot must still come out of a fresh reconciliation as an
	// available generated window. Anything else is a conflict, not a
	// validation problem.
	slots, err := s.availability.ResolveSlots(ctx, req.ProviderID, req.BookingDate)
	if err != nil {
		return res, err
	}

	if !slotAvailable(slots, req.StartTime) {
		return res, failure.SlotUnavailableError // nolint:wrapcheck
	}

	result := s.policy.Apply(req.GrossAmount)
	booking.PlatformFee = result.PlatformFee
	booking.ProviderPayout = result.ProviderPayout

	switch req.PaymentMethod {
	case model.PaymentMethodWallet:
		err = s.createWalletFunded(ctx, &booking, requester)
	case model.PaymentMethodGateway:
		booking.Status = model.StatusPending

		err = s.repo.Insert(ctx, booking)
	default:
		return res, failure.BadRequestFromString("payment_method must be wallet or gateway") // nolint:wrapcheck
	}

	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.SlotUnavailableError // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.afterTransition(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// createWalletFunded checks the requester's balance, then inserts the
// confirmed booking and all three ledger movements in one transaction. Either
// everything lands or nothing does.
func (s *serviceImpl) createWalletFunded(ctx context.Context, booking *model.Booking, requester string) error {
	balance, err := s.ledger.GetBalance(ctx, requester)
	if err != nil {
		return err
	}

	if balance.Balance < booking.GrossAmount {
		return failure.BadRequestFromString("insufficient wallet balance") // nolint:wrapcheck
	}

	booking.Status = model.StatusConfirmed

	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error { // nolint:wrapcheck
		if err := s.repo.InsertTx(ctx, tx, *booking); err != nil {
			return err
		}

		if err := s.ledger.DebitTx(ctx, tx, ledgerService.Entry{
			AccountID: booking.RequesterID,
			Amount:    booking.GrossAmount,
			Reason:    ledgerModel.ReasonBookingPayment,
			BookingID: booking.ID,
			Actor:     requester,
		}); err != nil {
			return err
		}

		return s.recordCaptureTx(ctx, tx, *booking, requester)
	})
}

func (s *serviceImpl) Confirm(ctx context.Context, bookingID string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusPending {
		return res, failure.InvalidTransition(booking.Status, model.StatusConfirmed) // nolint:wrapcheck
	}

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		moved, err := s.repo.TransitionTx(ctx, tx, bookingID, []string{model.StatusPending}, map[string]any{
			model.FieldStatus:      model.StatusConfirmed,
			model.FieldExternalRef: req.ExternalRef,
			"modified_at":          timezone.Now(),
			"modified_by":          user,
		})
		if err != nil {
			return err
		}

		// A replayed payment webhook loses here and must not credit the
		// payout and fee a second time.
		if !moved {
			return errTransitionConflict
		}

		return s.recordCaptureTx(ctx, tx, booking, user)
	})
	if err != nil {
		if errors.Is(err, errTransitionConflict) {
			return res, s.transitionConflict(ctx, bookingID, booking.Status, model.StatusConfirmed)
		}

		log.Error().Err(err).Msg("failed to confirm booking")

		return res, err
	}

	booking.Status = model.StatusConfirmed
	booking.ExternalRef = req.ExternalRef

	s.afterTransition(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if len(req.Reason) < s.cfg.Booking.MinCancelReasonLength {
		return res, failure.BadRequestFromString(fmt.Sprintf("reason must be at least %d characters", s.cfg.Booking.MinCancelReasonLength)) // nolint:wrapcheck
	}

	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusPending && booking.Status != model.StatusConfirmed {
		return res, failure.InvalidTransition(booking.Status, model.StatusCancelled) // nolint:wrapcheck
	}

	cutoff := time.Duration(s.cfg.Booking.CancelCutoffHours) * time.Hour
	if startAt(booking).Before(timezone.Now().Add(cutoff)) {
		return res, failure.CancellationWindowClosedError // nolint:wrapcheck
	}

	captured := booking.Status == model.StatusConfirmed

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		// The guard pins the exact status the compensation below was computed
		// from. A concurrent confirm or cancel makes this affect zero rows
		// instead of refunding twice or skipping a refund.
		moved, err := s.repo.TransitionTx(ctx, tx, bookingID, []string{booking.Status}, map[string]any{
			model.FieldStatus:       model.StatusCancelled,
			model.FieldCancelReason: req.Reason,
			"modified_at":           timezone.Now(),
			"modified_by":           user,
		})
		if err != nil {
			return err
		}

		if !moved {
			return errTransitionConflict
		}

		if !captured {
			return nil
		}

		// Compensating entries: the refund always lands in the requester's
		// wallet, regardless of how the booking was originally paid.
		if err := s.ledger.CreditTx(ctx, tx, ledgerService.Entry{
			AccountID: booking.RequesterID,
			Amount:    booking.GrossAmount,
			Reason:    ledgerModel.ReasonBookingRefund,
			BookingID: booking.ID,
			Actor:     user,
		}); err != nil {
			return err
		}

		if booking.ProviderPayout > 0 {
			if err := s.ledger.DebitTx(ctx, tx, ledgerService.Entry{
				AccountID: booking.ProviderID,
				Amount:    booking.ProviderPayout,
				Reason:    ledgerModel.ReasonPayoutReversal,
				BookingID: booking.ID,
				Actor:     user,
			}); err != nil {
				return err
			}
		}

		if booking.PlatformFee > 0 {
			if err := s.ledger.DebitTx(ctx, tx, ledgerService.Entry{
				AccountID: s.cfg.Booking.PlatformAccountID,
				Amount:    booking.PlatformFee,
				Reason:    ledgerModel.ReasonFeeReversal,
				BookingID: booking.ID,
				Actor:     user,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errTransitionConflict) {
			return res, s.transitionConflict(ctx, bookingID, booking.Status, model.StatusCancelled)
		}

		log.Error().Err(err).Msg("failed to cancel booking")

		return res, err
	}

	booking.Status = model.StatusCancelled
	booking.CancelReason = req.Reason

	s.afterTransition(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	// Completing twice is harmless, so replays of the same call succeed.
	if booking.Status == model.StatusCompleted {
		res.FromModel(booking)

		return res, nil
	}

	if booking.Status != model.StatusConfirmed {
		return res, failure.InvalidTransition(booking.Status, model.StatusCompleted) // nolint:wrapcheck
	}

	moved, err := s.repo.Transition(ctx, bookingID, []string{model.StatusConfirmed}, map[string]any{
		model.FieldStatus: model.StatusCompleted,
		"modified_at":     timezone.Now(),
		"modified_by":     user,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to complete booking")

		return res, fmt.Errorf("failed to complete booking: %w", err)
	}

	if !moved {
		current, err := s.getByID(ctx, bookingID)
		if err != nil {
			return res, err
		}

		// The racing completion already won; replays stay a no-op.
		if current.Status == model.StatusCompleted {
			res.FromModel(current)

			return res, nil
		}

		return res, failure.InvalidTransition(current.Status, model.StatusCompleted) // nolint:wrapcheck
	}

	booking.Status = model.StatusCompleted

	s.afterTransition(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getByID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter Filter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	group := buildFilter(filter)

	if params.SortBy == "" {
		params.SortBy = model.FieldBookingDate
		params.SortDir = gDto.SortDirDesc
	}

	bookings, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// transitionConflict reports the transition that actually lost, re-reading
// the booking because the in-memory status predates the winning write.
func (s *serviceImpl) transitionConflict(ctx context.Context, bookingID, fallbackFrom, to string) error {
	from := fallbackFrom

	if current, err := s.getByID(ctx, bookingID); err == nil {
		from = current.Status
	}

	return failure.InvalidTransition(from, to) // nolint:wrapcheck
}

func (s *serviceImpl) getByID(ctx context.Context, bookingID string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// recordCaptureTx writes the payout and fee credits that accompany a capture
// of funds, skipping zero amounts.
func (s *serviceImpl) recordCaptureTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking, actor string) error {
	if booking.ProviderPayout > 0 {
		if err := s.ledger.CreditTx(ctx, tx, ledgerService.Entry{
			AccountID: booking.ProviderID,
			Amount:    booking.ProviderPayout,
			Reason:    ledgerModel.ReasonProviderPayout,
			BookingID: booking.ID,
			Actor:     actor,
		}); err != nil {
			return err
		}
	}

	if booking.PlatformFee > 0 {
		if err := s.ledger.CreditTx(ctx, tx, ledgerService.Entry{
			AccountID: s.cfg.Booking.PlatformAccountID,
			Amount:    booking.PlatformFee,
			Reason:    ledgerModel.ReasonPlatformFee,
			BookingID: booking.ID,
			Actor:     actor,
		}); err != nil {
			return err
		}
	}

	return nil
}

// afterTransition runs the advisory side effects of a successful state
// change. Both are detached from the request and never affect the outcome.
func (s *serviceImpl) afterTransition(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheSlots, booking.ProviderID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, booking.ID))
		shared.InvalidateCaches(c, s.cache, cacheGetBookings)

		if !s.cfg.Kafka.Enable {
			return
		}

		err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{
			Key:   booking.ID,
			Value: dto.NewBookingEvent(booking),
		})
		if err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func slotAvailable(slots []availabilityDto.SlotResponse, startTime string) bool {
	for _, slot := range slots {
		if slot.StartTime == startTime {
			return slot.Available
		}
	}

	return false
}

func startAt(booking model.Booking) time.Time {
	d := booking.BookingDate
	t := booking.StartTime

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, timezone.GetLocation())
}

func buildFilter(filter Filter) gDto.FilterGroup {
	filters := []any{}

	if filter.RequesterID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRequesterID,
			Operator: gDto.FilterOperatorEq,
			Value:    filter.RequesterID,
			Table:    model.TableName,
		})
	}

	if filter.ProviderID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldProviderID,
			Operator: gDto.FilterOperatorEq,
			Value:    filter.ProviderID,
			Table:    model.TableName,
		})
	}

	if filter.Status != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    filter.Status,
			Table:    model.TableName,
		})
	}

	if filter.Date != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Operator: gDto.FilterOperatorEq,
			Value:    filter.Date,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
