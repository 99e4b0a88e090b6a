package composite

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sghaida/patterns/internal/numfmt"
)

// RoofParams is passed unchanged to every node of the tree.
type RoofParams struct {
	Width  float64
	Length float64
}

func (p RoofParams) area() float64 { return p.Width * p.Length }

// RoofComponent is implemented by leaves and composites alike.
type RoofComponent interface {
	CalculateMaterials(p RoofParams) float64
}

// RoofType is the composite node: an ordered list of children whose results are summed.
type RoofType struct {
	children []RoofComponent
}

// NewRoofType returns an empty composite.
func NewRoofType() *RoofType {
	return &RoofType{}
}

// Add appends a child.
func (r *RoofType) Add(c RoofComponent) {
	r.children = append(r.children, c)
}

// CalculateMaterials sums the children. An empty composite yields 0.
func (r *RoofType) CalculateMaterials(p RoofParams) float64 {
	var total float64
	for _, child := range r.children {
		total += child.CalculateMaterials(p)
	}
	return total
}

// Material is the base covering; on its own it needs nothing.
type Material struct{}

func (Material) CalculateMaterials(RoofParams) float64 { return 0 }

/*
   Roof shapes
*/

type SingleSlopeRoof struct{}

func (SingleSlopeRoof) CalculateMaterials(p RoofParams) float64 { return p.area() / 10 }

type DoubleSlopeRoof struct{}

func (DoubleSlopeRoof) CalculateMaterials(p RoofParams) float64 { return p.area() / 8 }

type FourSlopeRoof struct{}

func (FourSlopeRoof) CalculateMaterials(p RoofParams) float64 { return p.area() / 6 }

/*
   Coverings
*/

type RollMaterial struct{ Material }

func (RollMaterial) CalculateMaterials(p RoofParams) float64 { return p.area() / 10 }

type TileMaterial struct{ Material }

func (TileMaterial) CalculateMaterials(p RoofParams) float64 { return p.area() / 5 }

type SheetMaterial struct{ Material }

func (SheetMaterial) CalculateMaterials(p RoofParams) float64 { return p.area() / 15 }

type FilmMaterial struct{ Material }

func (FilmMaterial) CalculateMaterials(p RoofParams) float64 { return p.area() / 3 }

type MasticMaterial struct{ Material }

func (MasticMaterial) CalculateMaterials(p RoofParams) float64 { return p.area() / 7 }

// Selector values accepted by ChooseRoof and ChooseMaterial.
const (
	RoofSingleSlope = "single-slope"
	RoofDoubleSlope = "double-slope"
	RoofFourSlope   = "four-slope"

	MaterialRoll   = "roll"
	MaterialTile   = "tile"
	MaterialSheet  = "sheet"
	MaterialFilm   = "film"
	MaterialMastic = "mastic"
)

// RoofTypes lists the roof selectors in display order.
func RoofTypes() []string {
	return []string{RoofSingleSlope, RoofDoubleSlope, RoofFourSlope}
}

// MaterialTypes lists the material selectors in display order.
func MaterialTypes() []string {
	return []string{MaterialRoll, MaterialTile, MaterialSheet, MaterialFilm, MaterialMastic}
}

// ChooseRoof adds the roof shape named by selected. Unknown selectors add nothing.
func ChooseRoof(roof *RoofType, selected string) *RoofType {
	switch selected {
	case RoofSingleSlope:
		roof.Add(SingleSlopeRoof{})
	case RoofDoubleSlope:
		roof.Add(DoubleSlopeRoof{})
	case RoofFourSlope:
		roof.Add(FourSlopeRoof{})
	}
	return roof
}

// ChooseMaterial adds the covering named by selected. Unknown selectors add nothing.
func ChooseMaterial(roof *RoofType, selected string) *RoofType {
	switch selected {
	case MaterialRoll:
		roof.Add(RollMaterial{})
	case MaterialTile:
		roof.Add(TileMaterial{})
	case MaterialSheet:
		roof.Add(SheetMaterial{})
	case MaterialFilm:
		roof.Add(FilmMaterial{})
	case MaterialMastic:
		roof.Add(MasticMaterial{})
	}
	return roof
}

// CalculateMaterialsForRoofType builds roof + material under one composite and totals it.
func CalculateMaterialsForRoofType(roofType, materialType string, p RoofParams) float64 {
	roof := NewRoofType()
	roof = ChooseRoof(roof, roofType)
	roof = ChooseMaterial(roof, materialType)
	return roof.CalculateMaterials(p)
}

// Summary is the text shown to the user for a total.
func Summary(total float64) string {
	return "Необхідно матеріалів: " + numfmt.Format(total) + " одиниць"
}

// decimalPrefix is the leading number a browser's parseFloat accepts.
var decimalPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

// ParseDimension reads a width or length form value the way a browser's parseFloat
// does: leading whitespace is skipped and the longest leading decimal number is used,
// so "10 m" is 10 and "12,5" is 12. Input without a leading number is NaN, which
// propagates through the calculation instead of failing.
func ParseDimension(s string) float64 {
	prefix := decimalPrefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if prefix == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out-of-range literals such as "1e400" saturate to ±Inf.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
