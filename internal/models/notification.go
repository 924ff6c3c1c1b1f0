package models

// NotificationFilters restricts which new listings trigger a Telegram
// notification. Zero values mean the constraint is not applied.
type NotificationFilters struct {
	MinPrice int      `json:"min_price"`
	MaxPrice int      `json:"max_price"`
	Types    []string `json:"types"`
	Cities   []string `json:"cities"`
}

// IsBillboardAllowed checks if a billboard matches the filter criteria.
func (f *NotificationFilters) IsBillboardAllowed(b *Billboard) bool {
	if f == nil {
		return true // No filters means allow all
	}

	if f.MinPrice > 0 && b.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && b.Price > f.MaxPrice {
		return false
	}

	if len(f.Types) > 0 {
		allowed := false
		for _, t := range f.Types {
			if t == b.Type {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	if len(f.Cities) > 0 {
		allowed := false
		for _, city := range f.Cities {
			if containsFold(b.Location, city) || containsFold(b.Address, city) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	return true
}
