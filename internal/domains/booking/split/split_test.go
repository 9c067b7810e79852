package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"intervuex/config"
	"intervuex/internal/domains/booking/split"
)

func flatPolicy(feeBps int) split.Policy {
	cfg := &config.Config{}
	cfg.Commission.Policy = split.PolicyFlat
	cfg.Commission.FlatFeeBps = feeBps

	return split.NewPolicy(cfg)
}

func tieredPolicy(thresholds []int64, feesBps []int) split.Policy {
	cfg := &config.Config{}
	cfg.Commission.Policy = split.PolicyTiered
	cfg.Commission.FlatFeeBps = 1000
	cfg.Commission.TierThresholds = thresholds
	cfg.Commission.TierFeesBps = feesBps

	return split.NewPolicy(cfg)
}

func TestApplyFlat(t *testing.T) {
	tests := []struct {
		name           string
		feeBps         int
		gross          int64
		expectedFee    int64
		expectedPayout int64
	}{
		{
			name:           "even split",
			feeBps:         1000,
			gross:          10000,
			expectedFee:    1000,
			expectedPayout: 9000,
		},
		{
			name:           "remainder goes to fee",
			feeBps:         1000,
			gross:          10001,
			expectedFee:    1001,
			expectedPayout: 9000,
		},
		{
			name:           "small gross",
			feeBps:         1000,
			gross:          3,
			expectedFee:    1,
			expectedPayout: 2,
		},
		{
			name:           "zero fee",
			feeBps:         0,
			gross:          12345,
			expectedFee:    0,
			expectedPayout: 12345,
		},
		{
			name:           "zero gross",
			feeBps:         1000,
			gross:          0,
			expectedFee:    0,
			expectedPayout: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := flatPolicy(tt.feeBps).Apply(tt.gross)

			assert.Equal(t, tt.expectedFee, result.PlatformFee)
			assert.Equal(t, tt.expectedPayout, result.ProviderPayout)
			assert.Equal(t, tt.gross, result.PlatformFee+result.ProviderPayout)
		})
	}
}

func TestApplyTiered(t *testing.T) {
	policy := tieredPolicy([]int64{10000, 50000}, []int{1500, 1000, 500})

	tests := []struct {
		name        string
		gross       int64
		expectedFee int64
	}{
		{name: "below first threshold", gross: 9999, expectedFee: 1500},
		{name: "at first threshold", gross: 10000, expectedFee: 1000},
		{name: "mid tier", gross: 20000, expectedFee: 2000},
		{name: "top tier", gross: 100000, expectedFee: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := policy.Apply(tt.gross)

			assert.Equal(t, tt.expectedFee, result.PlatformFee)
			assert.Equal(t, tt.gross, result.PlatformFee+result.ProviderPayout)
		})
	}
}

func TestApplyTieredMisconfiguredFallsBackToFlat(t *testing.T) {
	policy := tieredPolicy([]int64{10000}, []int{1500})

	result := policy.Apply(10000)

	assert.Equal(t, int64(1000), result.PlatformFee)
	assert.Equal(t, int64(9000), result.ProviderPayout)
}

func TestConservationAcrossGrossRange(t *testing.T) {
	policy := flatPolicy(733)

	for gross := int64(0); gross < 2000; gross++ {
		result := policy.Apply(gross)

		assert.Equal(t, gross, result.PlatformFee+result.ProviderPayout)
		assert.GreaterOrEqual(t, result.PlatformFee, int64(0))
		assert.GreaterOrEqual(t, result.ProviderPayout, int64(0))
	}
}
