package dto

import (
	"time"

	"github.com/google/uuid"

	"intervuex/internal/domains/availability/model"
	"intervuex/shared/constant"
	gModel "intervuex/shared/model"
	"intervuex/shared/timezone"
)

type DayRuleRequest struct {
	Weekday       int    `json:"weekday"        validate:"gte=0,lte=6"`
	Enabled       bool   `json:"enabled"`
	StartTime     string `json:"start_time"     validate:"required_if=Enabled true,omitempty,hhmm"`
	EndTime       string `json:"end_time"       validate:"required_if=Enabled true,omitempty,hhmm"`
	BufferMinutes int    `json:"buffer_minutes" validate:"gte=0"`
}

type SaveRulesRequest struct {
	DayRules     []DayRuleRequest `json:"day_rules"     validate:"required,len=7,dive"`
	BlockedDates []string         `json:"blocked_dates" validate:"omitempty,dive,dateymd"`
}

func (r *DayRuleRequest) ToModel(providerID, user string) (model.DayRule, error) {
	rule := model.DayRule{
		ID:            uuid.NewString(),
		ProviderID:    providerID,
		Weekday:       r.Weekday,
		Enabled:       r.Enabled,
		BufferMinutes: r.BufferMinutes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if !r.Enabled {
		return rule, nil
	}

	startTime, err := time.Parse(constant.TimeLayoutHHMM, r.StartTime)
	if err != nil {
		return model.DayRule{}, err
	}

	endTime, err := time.Parse(constant.TimeLayoutHHMM, r.EndTime)
	if err != nil {
		return model.DayRule{}, err
	}

	rule.StartTime = startTime
	rule.EndTime = endTime

	return rule, nil
}

func (r *SaveRulesRequest) ToModels(providerID, user string) ([]model.DayRule, []model.BlockedDate, error) {
	rules := make([]model.DayRule, 0, len(r.DayRules))

	for _, dayRule := range r.DayRules {
		rule, err := dayRule.ToModel(providerID, user)
		if err != nil {
			return nil, nil, err
		}

		rules = append(rules, rule)
	}

	blocked := make([]model.BlockedDate, 0, len(r.BlockedDates))

	for _, date := range r.BlockedDates {
		day, err := time.Parse(constant.DateLayoutYMD, date)
		if err != nil {
			return nil, nil, err
		}

		blocked = append(blocked, model.BlockedDate{
			ID:          uuid.NewString(),
			ProviderID:  providerID,
			BlockedDate: day,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	return rules, blocked, nil
}

type DayRuleResponse struct {
	Weekday       int    `json:"weekday"`
	Enabled       bool   `json:"enabled"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	BufferMinutes int    `json:"buffer_minutes"`
}

func (r *DayRuleResponse) FromModel(rule model.DayRule) {
	r.Weekday = rule.Weekday
	r.Enabled = rule.Enabled
	r.BufferMinutes = rule.BufferMinutes

	if rule.Enabled {
		r.StartTime = rule.StartTime.Format(constant.TimeLayoutHHMM)
		r.EndTime = rule.EndTime.Format(constant.TimeLayoutHHMM)
	}
}

type RulesResponse struct {
	DayRules     []DayRuleResponse `json:"day_rules"`
	BlockedDates []string          `json:"blocked_dates"`
}

func (r *RulesResponse) FromModels(rules []model.DayRule, blocked []model.BlockedDate) {
	r.DayRules = make([]DayRuleResponse, len(rules))
	for i, rule := range rules {
		r.DayRules[i].FromModel(rule)
	}

	r.BlockedDates = make([]string, len(blocked))
	for i, day := range blocked {
		r.BlockedDates[i] = day.BlockedDate.Format(constant.DateLayoutYMD)
	}
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type SlotsResponse struct {
	Date    string         `json:"date"`
	Weekday string         `json:"weekday"`
	Slots   []SlotResponse `json:"slots"`
}
