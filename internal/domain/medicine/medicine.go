package medicine

// Medicine is a pharmacy inventory line. Stock is the only field mutated
// after seeding.
type Medicine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Price    int    `json:"price"`
	Expiry   string `json:"expiry"`
	MinLevel int    `json:"minLevel"`
}

// IsLowStock is the derived reorder predicate; it is never stored.
func (m *Medicine) IsLowStock() bool {
	return m.Stock < m.MinLevel
}
