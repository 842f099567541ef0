package object

import "github.com/mdimension/mdim/pkg/errors"

// Generate dispatches to the family's generator. The result is freshly
// allocated on every call and safe to cache or share.
func Generate(t Type, dim int, cfg Config) (*Geometry, error) {
	switch t {
	case TypeSimplex:
		return GenerateSimplex(dim, cfg)
	case TypeHypercube:
		return GenerateHypercube(dim, cfg)
	case TypeCrossPolytope:
		return GenerateCrossPolytope(dim, cfg)
	case TypeDemihypercube:
		return GenerateDemihypercube(dim, cfg)
	case TypeRectified:
		return GenerateRectified(dim, cfg)
	case TypeTruncated:
		return GenerateTruncated(dim, cfg)
	case TypeRootSystem:
		return GenerateRootSystem(dim, cfg)
	case TypeCliffordTorus:
		return GenerateCliffordTorus(dim, cfg)
	case TypeNestedTorus:
		return GenerateNestedTorus(dim, cfg)
	case TypeMandelbulb:
		return GenerateFractal(dim, cfg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidObject, "unknown object type: %q", t)
	}
}
