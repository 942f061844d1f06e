package model

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultRateConfigValid(t *testing.T) {
	if err := DefaultRateConfig().Validate(); err != nil {
		t.Fatalf("default rates should validate: %v", err)
	}
}

func TestValidateMissingRates(t *testing.T) {
	mutations := []func(*RateConfig){
		func(r *RateConfig) { r.CuttingRate = 0 },
		func(r *RateConfig) { r.PolishingRate = 0 },
		func(r *RateConfig) { r.LaminationRate = 0 },
		func(r *RateConfig) { r.JoinRate = 0 },
		func(r *RateConfig) { r.InstallationRate = 0 },
		func(r *RateConfig) { r.BaseSlabThicknessMm = 0 },
		func(r *RateConfig) { r.MaxSlabLengthMm = 0 },
		func(r *RateConfig) { r.MaxSlabWidthMm = 0 },
	}
	for i, mutate := range mutations {
		r := DefaultRateConfig()
		mutate(&r)
		err := r.Validate()
		var rateErr *RateError
		if !errors.As(err, &rateErr) {
			t.Errorf("mutation %d: got %v, want RateError", i, err)
		}
	}
}

func TestSlabAreaSqm(t *testing.T) {
	r := DefaultRateConfig()
	r.MaxSlabLengthMm = 3200
	r.MaxSlabWidthMm = 1600
	if got := r.SlabAreaSqm(); math.Abs(got-5.12) > 1e-9 {
		t.Errorf("slab area = %v, want 5.12", got)
	}
}
