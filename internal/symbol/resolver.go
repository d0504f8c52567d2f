package symbol

// DoubleRingSpacing is the radial gap between the outer and inner ring of a
// double ring, in unit-square coordinates.
const DoubleRingSpacing = 0.05

// StyleDescriptor describes how the rings of a pictograph are drawn.
// Radius is in unit-square coordinates, LineWidth in points.
type StyleDescriptor struct {
	RingStyle RingStyle
	Radius    float64
	LineWidth float64
}

// Resolve returns the ring style for a hostility class.
func Resolve(h Hostility) (StyleDescriptor, error) {
	switch h {
	case HostilitySafe:
		return StyleDescriptor{RingStyle: RingDotted, Radius: 0.2, LineWidth: 1.5}, nil
	case HostilityModerate:
		return StyleDescriptor{RingStyle: RingSolid, Radius: 0.2, LineWidth: 1.5}, nil
	case HostilityHazardous:
		return StyleDescriptor{RingStyle: RingDouble, Radius: 0.2, LineWidth: 2.0}, nil
	default:
		return StyleDescriptor{}, hostilityError(string(h))
	}
}

// Radii returns the ring radii to draw, outermost first.
func (s StyleDescriptor) Radii() []float64 {
	if s.RingStyle == RingDouble {
		return []float64{s.Radius, s.Radius - DoubleRingSpacing}
	}
	return []float64{s.Radius}
}
