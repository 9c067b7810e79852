package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"intervuex/config"
	otelMocks "intervuex/infras/otel/mocks"
	pgMocks "intervuex/infras/postgres/mocks"
	availabilityMocks "intervuex/internal/domains/availability/mocks"
	"intervuex/internal/domains/availability/model"
	"intervuex/internal/domains/availability/model/dto"
	"intervuex/internal/domains/availability/service"
	bookingMocks "intervuex/internal/domains/booking/mocks"
	bookingModel "intervuex/internal/domains/booking/model"
	cacheMocks "intervuex/shared/cache/mocks"
	"intervuex/shared/failure"
	"intervuex/shared/timezone"
)

type availabilityFixture struct {
	ruleRepo    *availabilityMocks.MockRule
	blockedRepo *availabilityMocks.MockBlockedDate
	bookingRepo *bookingMocks.MockBooking
	db          *pgMocks.MockTxRunner
	cache       *cacheMocks.MockRedisCache
	svc         service.Availability
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.SlotTTL = 30
	cfg.Booking.InterviewDurationMinutes = 60
	cfg.Booking.MaxBufferMinutes = 60

	f := &availabilityFixture{
		ruleRepo:    availabilityMocks.NewMockRule(ctrl),
		blockedRepo: availabilityMocks.NewMockBlockedDate(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		db:          pgMocks.NewMockTxRunner(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.ruleRepo, f.blockedRepo, f.bookingRepo, f.db, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func validWeek() []dto.DayRuleRequest {
	rules := make([]dto.DayRuleRequest, 7)
	for weekday := range rules {
		rules[weekday] = dto.DayRuleRequest{
			Weekday:       weekday,
			Enabled:       true,
			StartTime:     "09:00",
			EndTime:       "17:00",
			BufferMinutes: 15,
		}
	}

	return rules
}

func TestAvailabilityService_SaveRules(t *testing.T) {
	futureDate := timezone.Now().AddDate(0, 1, 0).Format("2006-01-02")
	pastDate := timezone.Now().AddDate(0, 0, -1).Format("2006-01-02")

	tests := []struct {
		name      string
		req       dto.SaveRulesRequest
		setupMock func(f *availabilityFixture)
		wantErr   string
	}{
		{
			name: "successful replace",
			req:  dto.SaveRulesRequest{DayRules: validWeek(), BlockedDates: []string{futureDate}},
			setupMock: func(f *availabilityFixture) {
				f.db.EXPECT().
					WithTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})

				f.ruleRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.ruleRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(7)).Return(nil)
				f.blockedRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.blockedRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "duplicate weekday rejected before any write",
			req: dto.SaveRulesRequest{DayRules: func() []dto.DayRuleRequest {
				rules := validWeek()
				rules[6].Weekday = 0

				return rules
			}()},
			wantErr: "duplicate rule for weekday 0",
		},
		{
			name: "start not before end rejected",
			req: dto.SaveRulesRequest{DayRules: func() []dto.DayRuleRequest {
				rules := validWeek()
				rules[2].StartTime = "17:00"
				rules[2].EndTime = "09:00"

				return rules
			}()},
			wantErr: "start_time must be before end_time",
		},
		{
			name: "start equal to end rejected",
			req: dto.SaveRulesRequest{DayRules: func() []dto.DayRuleRequest {
				rules := validWeek()
				rules[2].StartTime = "09:00"
				rules[2].EndTime = "09:00"

				return rules
			}()},
			wantErr: "start_time must be before end_time",
		},
		{
			name: "buffer above limit rejected",
			req: dto.SaveRulesRequest{DayRules: func() []dto.DayRuleRequest {
				rules := validWeek()
				rules[3].BufferMinutes = 61

				return rules
			}()},
			wantErr: "buffer_minutes must not exceed 60",
		},
		{
			name:    "past blocked date rejected",
			req:     dto.SaveRulesRequest{DayRules: validWeek(), BlockedDates: []string{pastDate}},
			wantErr: "is in the past",
		},
		{
			name:    "duplicate blocked date rejected",
			req:     dto.SaveRulesRequest{DayRules: validWeek(), BlockedDates: []string{futureDate, futureDate}},
			wantErr: "duplicate blocked date",
		},
		{
			name: "transaction failure leaves no partial save",
			req:  dto.SaveRulesRequest{DayRules: validWeek()},
			setupMock: func(f *availabilityFixture) {
				f.db.EXPECT().
					WithTx(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAvailabilityFixture(t)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			err := f.svc.SaveRules(context.Background(), "provider-1", tt.req)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAvailabilityService_GetRules_DefaultWeek(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.ruleRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.blockedRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetRules(context.Background(), "provider-1")

	assert.NoError(t, err)
	assert.Len(t, res.DayRules, 7)

	for weekday, rule := range res.DayRules {
		assert.Equal(t, weekday, rule.Weekday)
		assert.False(t, rule.Enabled)
	}
}

func TestAvailabilityService_GetRules_CacheHit(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := f.svc.GetRules(context.Background(), "provider-1")

	assert.NoError(t, err)
}

func TestAvailabilityService_GetAvailableSlots(t *testing.T) {
	futureDate := timezone.Now().AddDate(0, 1, 0).Format("2006-01-02")

	t.Run("invalid date format", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.GetAvailableSlots(context.Background(), "provider-1", "15-01-2030")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("date before today yields empty list without lookups", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		yesterday := timezone.Now().AddDate(0, 0, -1).Format("2006-01-02")

		res, err := f.svc.GetAvailableSlots(context.Background(), "provider-1", yesterday)

		assert.NoError(t, err)
		assert.Empty(t, res.Slots)
		assert.Equal(t, yesterday, res.Date)
	})

	t.Run("blocked date yields empty list", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.blockedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAvailableSlots(context.Background(), "provider-1", futureDate)

		assert.NoError(t, err)
		assert.Empty(t, res.Slots)
		assert.Equal(t, futureDate, res.Date)
	})

	t.Run("resolving a past date offers no slots", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		yesterday := timezone.Now().AddDate(0, 0, -1).Format("2006-01-02")

		slots, err := f.svc.ResolveSlots(context.Background(), "provider-1", yesterday)

		assert.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("bookings mask overlapping slots", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		day, err := timezone.Parse("2006-01-02", futureDate)
		assert.NoError(t, err)

		rule := model.DayRule{
			ProviderID:    "provider-1",
			Weekday:       int(day.Weekday()),
			Enabled:       true,
			StartTime:     hhmm(t, "09:00"),
			EndTime:       hhmm(t, "12:00"),
			BufferMinutes: 0,
		}

		booking := bookingModel.Booking{
			ID:        "booking-1",
			StartTime: hhmm(t, "10:00"),
			EndTime:   hhmm(t, "11:00"),
			Status:    bookingModel.StatusConfirmed,
		}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.blockedRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.ruleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rule, nil)
		f.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{booking}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAvailableSlots(context.Background(), "provider-1", futureDate)

		assert.NoError(t, err)
		assert.Len(t, res.Slots, 3)
		assert.True(t, res.Slots[0].Available)
		assert.False(t, res.Slots[1].Available)
		assert.True(t, res.Slots[2].Available)
	})
}
