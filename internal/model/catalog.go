package model

import "github.com/google/uuid"

// EdgeProfile is a finishing treatment applied to one side of a piece.
type EdgeProfile struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	BaseRate float64 `json:"base_rate"` // currency per linear metre
}

// NewEdgeProfile creates an edge profile with a generated ID.
func NewEdgeProfile(name, category string, baseRate float64) EdgeProfile {
	return EdgeProfile{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Category: category,
		BaseRate: baseRate,
	}
}

// CutoutType is a machined opening kind (sink, cooktop, tap hole).
type CutoutType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BaseRate float64 `json:"base_rate"` // currency per unit
}

// NewCutoutType creates a cutout type with a generated ID.
func NewCutoutType(name string, baseRate float64) CutoutType {
	return CutoutType{
		ID:       uuid.New().String()[:8],
		Name:     name,
		BaseRate: baseRate,
	}
}

// PricingBasis selects how a material is charged.
type PricingBasis int

const (
	PerSqm  PricingBasis = iota // Charged by adjusted area
	PerSlab                     // Charged by whole slabs, shared across a slab group
)

func (b PricingBasis) String() string {
	if b == PerSlab {
		return "Per Slab"
	}
	return "Per Sqm"
}

// MaterialCatalogEntry is one orderable material.
type MaterialCatalogEntry struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Basis              PricingBasis `json:"basis"`
	PricePerSqm        float64      `json:"price_per_sqm,omitempty"`
	PricePerSlab       float64      `json:"price_per_slab,omitempty"`
	WasteFactorPercent float64      `json:"waste_factor_percent"`
}

// NewMaterial creates a per-sqm material entry with a generated ID.
func NewMaterial(name string, pricePerSqm, wastePercent float64) MaterialCatalogEntry {
	return MaterialCatalogEntry{
		ID:                 uuid.New().String()[:8],
		Name:               name,
		Basis:              PerSqm,
		PricePerSqm:        pricePerSqm,
		WasteFactorPercent: wastePercent,
	}
}

// NewSlabMaterial creates a per-slab material entry with a generated ID.
func NewSlabMaterial(name string, pricePerSlab, wastePercent float64) MaterialCatalogEntry {
	return MaterialCatalogEntry{
		ID:                 uuid.New().String()[:8],
		Name:               name,
		Basis:              PerSlab,
		PricePerSlab:       pricePerSlab,
		WasteFactorPercent: wastePercent,
	}
}

// Catalog holds the rate-bearing reference data a quote prices against.
type Catalog struct {
	EdgeProfiles []EdgeProfile          `json:"edge_profiles"`
	CutoutTypes  []CutoutType           `json:"cutout_types"`
	Materials    []MaterialCatalogEntry `json:"materials"`
}

// DefaultCatalog returns a catalog populated with common defaults.
func DefaultCatalog() Catalog {
	return Catalog{
		EdgeProfiles: []EdgeProfile{
			NewEdgeProfile("Pencil Round", "Standard", 18.00),
			NewEdgeProfile("Arris", "Standard", 15.00),
			NewEdgeProfile("Bullnose", "Premium", 32.00),
			NewEdgeProfile("Bevel 45", "Premium", 28.00),
			NewEdgeProfile("Shark Nose", "Premium", 45.00),
			NewEdgeProfile("Mitred Waterfall", "Premium", 85.00),
		},
		CutoutTypes: []CutoutType{
			NewCutoutType("Undermount Sink", 180.00),
			NewCutoutType("Drop-in Sink", 120.00),
			NewCutoutType("Cooktop", 140.00),
			NewCutoutType("Tap Hole", 25.00),
			NewCutoutType("Powerpoint", 45.00),
		},
		Materials: []MaterialCatalogEntry{
			NewMaterial("Engineered Stone 20mm", 450.00, 10),
			NewMaterial("Porcelain 12mm", 620.00, 15),
			NewSlabMaterial("Granite Slab 3200x1600", 1850.00, 0),
			NewSlabMaterial("Marble Slab 3000x1400", 2600.00, 0),
		},
	}
}

// FindEdgeProfile returns a pointer to the edge profile with the given ID, or nil.
func (c *Catalog) FindEdgeProfile(id string) *EdgeProfile {
	for i := range c.EdgeProfiles {
		if c.EdgeProfiles[i].ID == id {
			return &c.EdgeProfiles[i]
		}
	}
	return nil
}

// FindCutoutType returns a pointer to the cutout type with the given ID, or nil.
func (c *Catalog) FindCutoutType(id string) *CutoutType {
	for i := range c.CutoutTypes {
		if c.CutoutTypes[i].ID == id {
			return &c.CutoutTypes[i]
		}
	}
	return nil
}

// FindMaterial returns a pointer to the material with the given ID, or nil.
func (c *Catalog) FindMaterial(id string) *MaterialCatalogEntry {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindEdgeProfileByName returns the first edge profile with the given name, or nil.
func (c *Catalog) FindEdgeProfileByName(name string) *EdgeProfile {
	for i := range c.EdgeProfiles {
		if c.EdgeProfiles[i].Name == name {
			return &c.EdgeProfiles[i]
		}
	}
	return nil
}

// FindMaterialByName returns the first material with the given name, or nil.
func (c *Catalog) FindMaterialByName(name string) *MaterialCatalogEntry {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// EdgeProfileNames returns the profile names for display pickers.
func (c *Catalog) EdgeProfileNames() []string {
	names := make([]string, len(c.EdgeProfiles))
	for i, p := range c.EdgeProfiles {
		names[i] = p.Name
	}
	return names
}

// MaterialNames returns the material names for display pickers.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		names[i] = m.Name
	}
	return names
}
