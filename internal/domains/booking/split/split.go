// Package split derives the platform fee and provider payout from a booking's
// gross amount. All amounts are integer minor units; the split always
// conserves the gross exactly, with any rounding remainder absorbed by the
// platform fee.
package split

import (
	"intervuex/config"
)

const (
	PolicyFlat   = "flat"
	PolicyTiered = "tiered"

	basisPoints = 10000
)

type Split struct {
	Gross          int64
	PlatformFee    int64
	ProviderPayout int64
}

type Policy struct {
	kind           string
	flatFeeBps     int
	tierThresholds []int64
	tierFeesBps    []int
}

func NewPolicy(cfg *config.Config) Policy {
	return Policy{
		kind:           cfg.Commission.Policy,
		flatFeeBps:     cfg.Commission.FlatFeeBps,
		tierThresholds: cfg.Commission.TierThresholds,
		tierFeesBps:    cfg.Commission.TierFeesBps,
	}
}

// Apply splits gross into fee and payout. The payout is floored so the fee
// collects the remainder, keeping fee + payout == gross for every input.
func (p Policy) Apply(gross int64) Split {
	feeBps := p.feeBps(gross)

	payout := gross * int64(basisPoints-feeBps) / basisPoints
	fee := gross - payout

	return Split{
		Gross:          gross,
		PlatformFee:    fee,
		ProviderPayout: payout,
	}
}

func (p Policy) feeBps(gross int64) int {
	if p.kind != PolicyTiered || len(p.tierFeesBps) != len(p.tierThresholds)+1 {
		return p.flatFeeBps
	}

	for i, threshold := range p.tierThresholds {
		if gross < threshold {
			return p.tierFeesBps[i]
		}
	}

	return p.tierFeesBps[len(p.tierFeesBps)-1]
}
