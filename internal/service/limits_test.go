package service

import (
	"testing"

	"battery_alert/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStrategies = []models.CoolingStrategy{models.Passive, models.HighActive, models.MediumActive}

func TestResolveLimits_Table(t *testing.T) {
	cases := map[models.CoolingStrategy]models.SafetyRange{
		models.Passive:      {Lower: 0, Upper: 35},
		models.HighActive:   {Lower: 0, Upper: 45},
		models.MediumActive: {Lower: 0, Upper: 40},
	}
	for s, want := range cases {
		got, err := ResolveLimits(s)
		require.NoError(t, err, s.String())
		assert.Equal(t, want, got, s.String())
		assert.LessOrEqual(t, got.Lower, got.Upper)
	}
}

func TestResolveLimits_UnknownStrategy(t *testing.T) {
	for _, s := range []models.CoolingStrategy{-1, 3, 42} {
		r, err := ResolveLimits(s)
		assert.ErrorIs(t, err, ErrUnknownStrategy)
		assert.Equal(t, models.SafetyRange{}, r)

		_, err = ClassifyForStrategy(s, 20)
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	r := models.SafetyRange{Lower: 0, Upper: 35}
	cases := []struct {
		temp float64
		want models.Breach
	}{
		{-0.001, models.TooLow},
		{0, models.Normal},
		{17.5, models.Normal},
		{35, models.Normal},
		{35.001, models.TooHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.temp, r), "temp=%v", tc.temp)
	}
}

func TestClassifyForStrategy_MatchesLimits(t *testing.T) {
	temps := []float64{-100, -1, -0.5, 0, 0.5, 20, 30, 34.9, 35, 35.1, 39, 40, 40.5, 44, 45, 46, 1000}
	for _, s := range allStrategies {
		r, err := ResolveLimits(s)
		require.NoError(t, err)
		for _, temp := range temps {
			got, err := ClassifyForStrategy(s, temp)
			require.NoError(t, err)

			var want models.Breach
			switch {
			case temp < float64(r.Lower):
				want = models.TooLow
			case temp > float64(r.Upper):
				want = models.TooHigh
			default:
				want = models.Normal
			}
			assert.Equal(t, want, got, "%s at %v", s, temp)
		}

		// both bounds are inside the range
		lower, _ := ClassifyForStrategy(s, float64(r.Lower))
		upper, _ := ClassifyForStrategy(s, float64(r.Upper))
		assert.Equal(t, models.Normal, lower, s.String())
		assert.Equal(t, models.Normal, upper, s.String())
	}
}

func TestClassifyForStrategy_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		strategy models.CoolingStrategy
		temp     float64
		want     models.Breach
	}{
		{"passive normal", models.Passive, 20, models.Normal},
		{"passive too low", models.Passive, -1, models.TooLow},
		{"passive too high", models.Passive, 36, models.TooHigh},
		{"high active normal", models.HighActive, 30, models.Normal},
		{"high active too high", models.HighActive, 46, models.TooHigh},
		{"medium active upper bound", models.MediumActive, 40, models.Normal},
		{"medium active too high", models.MediumActive, 41, models.TooHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyForStrategy(tc.strategy, tc.temp)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLimitsService(t *testing.T) {
	svc := NewLimitsService()

	r, err := svc.Resolve(models.HighActive)
	require.NoError(t, err)
	assert.Equal(t, 45, r.Upper)

	b, r, err := svc.Classify(models.MediumActive, 41)
	require.NoError(t, err)
	assert.Equal(t, models.TooHigh, b)
	assert.Equal(t, models.SafetyRange{Lower: 0, Upper: 40}, r)

	_, _, err = svc.Classify(models.CoolingStrategy(9), 41)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
