package animation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves return 0
// at 0 and 1 at 1.
type Curve func(t float64) float64

// CurveLinear returns linear progress (no easing).
func CurveLinear(t float64) float64 {
	return t
}

// Standard curves, equivalent to their CSS counterparts.
var (
	CurveEase      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	CurveEaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	CurveEaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	CurveEaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

var namedCurves = map[string]Curve{
	"linear":      CurveLinear,
	"ease":        CurveEase,
	"ease-in":     CurveEaseIn,
	"ease-out":    CurveEaseOut,
	"ease-in-out": CurveEaseInOut,
}

// CurveByName returns the standard curve called name, such as
// "ease-in-out".
func CurveByName(name string) (Curve, error) {
	if c, ok := namedCurves[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown curve %q (want one of %s)", name, strings.Join(CurveNames(), ", "))
}

// CurveNames lists the names accepted by CurveByName.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CubicBezier returns a cubic-bezier easing curve matching CSS
// cubic-bezier(). The curve runs from (0,0) to (1,1) with control points
// (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection keeps flat regions stable.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
