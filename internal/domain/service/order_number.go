package service

// OrderNumberGenerator produces candidate order numbers. Global uniqueness is
// enforced by the persistence layer's unique index; the checkout path retries
// generation on a collision instead of failing the checkout outright.
type OrderNumberGenerator interface {
	// Next returns a new candidate order number.
	Next() (string, error)
}
