package store

import (
	"errors"

	"xdao.co/hashid/hashid"
)

// Tiered provides deterministic, ordered fallback across multiple stores,
// typically a writable cache in front of read-mostly seed stores.
//
// Lookup order is the slice order in Tiers; callers MUST supply a fixed
// order. Put is defined to write only to the first tier.
type Tiered struct {
	Tiers []Store
}

func (m Tiered) Put(blob []byte) (hashid.ID, error) {
	if len(m.Tiers) == 0 {
		return hashid.Zero, errors.New("store: Tiered has no tiers")
	}
	return m.Tiers[0].Put(blob)
}

func (m Tiered) Get(id hashid.ID) ([]byte, error) {
	for _, s := range m.Tiers {
		b, err := s.Get(id)
		if err == nil {
			return b, nil
		}
		if IsNotFound(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrNotFound
}

func (m Tiered) Has(id hashid.ID) bool {
	for _, s := range m.Tiers {
		if s.Has(id) {
			return true
		}
	}
	return false
}
