//go:build !windows

package platform

// Apartment is a no-op on platforms without a COM-style threading model. It exists so plugin
// lifecycle code acquires and releases the guard unconditionally.
type Apartment struct{}

func EnterApartment() (*Apartment, error) {
	return &Apartment{}, nil
}

// Leave is idempotent.
func (a *Apartment) Leave() {}
