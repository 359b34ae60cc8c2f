package regions

// Spatial is the spatial-only layer of a specification: exactly one Sum.
// Its semiring instance delegates straight through to the inner sum.
type Spatial struct {
	Sum Sum
}

func NewSpatial(s Sum) Spatial {
	return Spatial{Sum: s}
}

func (s Spatial) Plus(other Spatial) Spatial {
	return Spatial{Sum: s.Sum.Plus(other.Sum)}
}

func (s Spatial) Mul(other Spatial) Spatial {
	return Spatial{Sum: s.Sum.Mul(other.Sum)}
}

func (Spatial) Zero() Spatial {
	return Spatial{Sum: Sum{}.Zero()}
}

func (Spatial) One() Spatial {
	return Spatial{Sum: Sum{}.One()}
}

func (s Spatial) IsUnit() bool {
	return s.Sum.IsUnit()
}

func (s Spatial) Equal(other Spatial) bool {
	return s.Sum.Equal(other.Sum)
}

func (s Spatial) String() string {
	return s.Sum.String()
}
