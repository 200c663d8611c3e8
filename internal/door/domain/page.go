package domain

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the page into the supported range.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	return p
}
