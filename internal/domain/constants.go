package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default pricing values
const (
	// DefaultPromoMultiplier means no discount.
	DefaultPromoMultiplier = 1.0
)

// Business validation constants
const (
	ZipCodeLength      = 5
	MaxSquareMeters    = 100000
	MaxNotesLength     = 500
	MaxCustomerField   = 200
	MaxPromoCodeLength = 50
)

// ZipAvailability is the verdict of the asynchronous zip-availability check.
type ZipAvailability string

const (
	// ZipUnknown means the check has not run or has not returned yet.
	// It does not block the Location step; only an explicit unavailable verdict does.
	ZipUnknown     ZipAvailability = "unknown"
	ZipAvailable   ZipAvailability = "available"
	ZipUnavailable ZipAvailability = "unavailable"
)
