package engine

// Calculator applies a factor table to activity data. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	factors FactorTable
}

// NewCalculator returns a Calculator over factors.
func NewCalculator(factors FactorTable) *Calculator {
	return &Calculator{factors: factors}
}

// NewStandardCalculator returns a Calculator over the built-in table.
func NewStandardCalculator() *Calculator {
	return NewCalculator(StandardFactors())
}

// Factors returns the table the calculator uses.
func (c *Calculator) Factors() FactorTable {
	return c.factors
}
