package cart

import "kazhicho/internal/domain"

// Cart is the in-progress selection of items for one customer session. Lines
// are an ordered sequence and duplicates are kept as separate lines; adding
// the same item twice yields two lines, not a quantity bump.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Add(line domain.CartLine) {
	c.lines = append(c.lines, line)
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) TotalCents() int64 {
	return domain.LinesTotalCents(c.lines)
}

// Lines returns a copy so callers cannot mutate the cart behind its back.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
