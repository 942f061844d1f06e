package model

import "fmt"

// CuttingBasis selects the quantity unit the cutting charge is measured in.
type CuttingBasis int

const (
	CutPerLm  CuttingBasis = iota // Charged on the full cut perimeter in linear metres
	CutPerSqm                     // Charged on the piece area in square metres
)

func (b CuttingBasis) String() string {
	if b == CutPerSqm {
		return "Per Sqm"
	}
	return "Per Lm"
}

// RateConfig bundles the fabrication rates and workable slab limits the
// pricing engine needs. Edge profile and cutout rates live in the Catalog.
type RateConfig struct {
	CuttingBasis     CuttingBasis `json:"cutting_basis"`
	CuttingRate      float64      `json:"cutting_rate"`      // per Lm or per Sqm per basis
	PolishingRate    float64      `json:"polishing_rate"`    // per Lm of finished edge
	LaminationRate   float64      `json:"lamination_rate"`   // per Lm of finished edge per layer
	JoinRate         float64      `json:"join_rate"`         // per Lm of join line
	InstallationRate float64      `json:"installation_rate"` // per Sqm of piece area

	BaseSlabThicknessMm float64 `json:"base_slab_thickness_mm"`
	MaxSlabLengthMm     float64 `json:"max_slab_length_mm"` // Largest workable slab dimensions
	MaxSlabWidthMm      float64 `json:"max_slab_width_mm"`
	MinSegmentLengthMm  float64 `json:"min_segment_length_mm"` // Below this a join split is flagged

	GrainMatchSurchargePercent float64 `json:"grain_match_surcharge_percent"`
}

// DefaultRateConfig returns rates matching a typical engineered-stone shop.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		CuttingBasis:     CutPerLm,
		CuttingRate:      12.00,
		PolishingRate:    18.00,
		LaminationRate:   38.00,
		JoinRate:         95.00,
		InstallationRate: 65.00,

		BaseSlabThicknessMm: 20.0,
		MaxSlabLengthMm:     3200.0,
		MaxSlabWidthMm:      1600.0,
		MinSegmentLengthMm:  300.0,

		GrainMatchSurchargePercent: 15.0,
	}
}

// RateError reports a required rate that is absent from the configuration.
// A silent zero would misprice the quote, so this aborts the computation.
type RateError struct {
	Missing string
}

func (e *RateError) Error() string {
	return fmt.Sprintf("missing rate configuration: %s", e.Missing)
}

// Validate checks that every rate the engine multiplies by is present.
func (r RateConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"cutting rate", r.CuttingRate > 0},
		{"polishing rate", r.PolishingRate > 0},
		{"lamination rate", r.LaminationRate > 0},
		{"join rate", r.JoinRate > 0},
		{"installation rate", r.InstallationRate > 0},
		{"base slab thickness", r.BaseSlabThicknessMm > 0},
		{"max slab length", r.MaxSlabLengthMm > 0},
		{"max slab width", r.MaxSlabWidthMm > 0},
	}
	for _, c := range checks {
		if !c.ok {
			return &RateError{Missing: c.name}
		}
	}
	return nil
}

// SlabAreaSqm returns the workable area of a single slab in square metres.
func (r RateConfig) SlabAreaSqm() float64 {
	return (r.MaxSlabLengthMm / 1000.0) * (r.MaxSlabWidthMm / 1000.0)
}
