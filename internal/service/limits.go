package service

import (
	"fmt"

	"battery_alert/internal/models"
)

var coolingLimits = map[models.CoolingStrategy]models.SafetyRange{
	models.Passive:      {Lower: 0, Upper: 35},
	models.HighActive:   {Lower: 0, Upper: 45},
	models.MediumActive: {Lower: 0, Upper: 40},
}

// ResolveLimits returns the safe range for a cooling strategy.
func ResolveLimits(s models.CoolingStrategy) (models.SafetyRange, error) {
	r, ok := coolingLimits[s]
	if !ok {
		return models.SafetyRange{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return r, nil
}

// Classify compares t against r. Both bounds are inclusive.
func Classify(t float64, r models.SafetyRange) models.Breach {
	if t < float64(r.Lower) {
		return models.TooLow
	}
	if t > float64(r.Upper) {
		return models.TooHigh
	}
	return models.Normal
}

func ClassifyForStrategy(s models.CoolingStrategy, t float64) (models.Breach, error) {
	r, err := ResolveLimits(s)
	if err != nil {
		return models.Normal, err
	}
	return Classify(t, r), nil
}

// LimitsService exposes the resolver and classifier behind the Limits interface.
type LimitsService struct{}

func NewLimitsService() *LimitsService { return &LimitsService{} }

func (LimitsService) Resolve(s models.CoolingStrategy) (models.SafetyRange, error) {
	return ResolveLimits(s)
}

func (LimitsService) Classify(s models.CoolingStrategy, t float64) (models.Breach, models.SafetyRange, error) {
	r, err := ResolveLimits(s)
	if err != nil {
		return models.Normal, models.SafetyRange{}, err
	}
	return Classify(t, r), r, nil
}
