package sim

// EffectKind identifies a visual effect marker.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Effect is a transient, visual-only marker. Physics never reads it.
type Effect struct {
	Kind   EffectKind
	X, Y   float64
	Radius float64
	TTL    float64
	MaxTTL float64
}

// Life returns the remaining lifetime as a fraction in [0, 1].
func (e *Effect) Life() float64 {
	if e.MaxTTL <= 0 {
		return 0
	}
	f := e.TTL / e.MaxTTL
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
