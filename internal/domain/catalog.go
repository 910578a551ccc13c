package domain

// Service represents a bookable service from the catalog.
// Immutable once fetched; owned by the catalog cache for the session lifetime.
type Service struct {
	ID                  int64
	Name                string
	Description         string
	BasePrice           float64
	PricePerSquareMeter float64
	BaseDurationMinutes int
	SortOrder           int
	Active              bool
}

// Extra represents an add-on that can be attached to a service.
// The service/extra association is resolved by the backend; the engine only
// ever sees "the extras available for the currently selected service".
type Extra struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Active          bool
}
