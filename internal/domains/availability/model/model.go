package model

import (
	"time"

	"intervuex/shared/model"
)

const (
	RuleTableName  = "interviewer_day_rules"
	RuleEntityName = "day_rule"

	BlockedTableName  = "interviewer_blocked_dates"
	BlockedEntityName = "blocked_date"

	FieldID            = "id"
	FieldProviderID    = "provider_id"
	FieldWeekday       = "weekday"
	FieldEnabled       = "enabled"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldBufferMinutes = "buffer_minutes"
	FieldBlockedDate   = "blocked_date"
)

// DayRule is one entry of a provider's weekly availability template. A
// provider owns exactly one rule per weekday; a disabled rule contributes no
// slots regardless of its times.
type DayRule struct {
	ID            string    `db:"id"`
	ProviderID    string    `db:"provider_id"`
	Weekday       int       `db:"weekday"`
	Enabled       bool      `db:"enabled"`
	StartTime     time.Time `db:"start_time"`
	EndTime       time.Time `db:"end_time"`
	BufferMinutes int       `db:"buffer_minutes"`
	model.Metadata
}

// BlockedDate suppresses every slot for a provider on one calendar date,
// overriding the weekly rule.
type BlockedDate struct {
	ID          string    `db:"id"`
	ProviderID  string    `db:"provider_id"`
	BlockedDate time.Time `db:"blocked_date"`
	model.Metadata
}
