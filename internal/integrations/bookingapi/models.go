package bookingapi

// Service модель услуги из каталога бэкенда
type Service struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	BasePrice           float64 `json:"basePrice"`
	PricePerSquareMeter float64 `json:"pricePerSquareMeter"`
	BaseDurationMinutes int     `json:"baseDurationMinutes"`
	SortOrder           int     `json:"sortOrder"`
	Active              bool    `json:"active"`
}

// Extra модель дополнительной услуги из каталога бэкенда
type Extra struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Active          bool    `json:"active"`
}

// ZipSurchargeResponse ответ на запрос надбавки по индексу
type ZipSurchargeResponse struct {
	Surcharge float64 `json:"surcharge"`
}

// ZipAvailabilityResponse ответ проверки обслуживаемости индекса
type ZipAvailabilityResponse struct {
	Available bool    `json:"available"`
	Message   *string `json:"message,omitempty"`
}

// Slot модель временного слота из бэкенда
type Slot struct {
	Time   string `json:"time"` // "HH:MM"
	IsOpen bool   `json:"isOpen"`
}

// SlotsResponse ответ на запрос доступных слотов
type SlotsResponse struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// SubmitExtra строка дополнительной услуги в заявке на бронирование
type SubmitExtra struct {
	ID    int64   `json:"id"`
	Price float64 `json:"price"`
}

// SubmitRequest заявка на создание бронирования
// Содержит весь черновик плюс актуальную детализацию цены
type SubmitRequest struct {
	ZipCode       string        `json:"zipCode"`
	ServiceID     int64         `json:"serviceId"`
	SquareMeters  int           `json:"squareMeters"`
	ExtraIDs      []int64       `json:"extraIds"`
	BookingDate   string        `json:"bookingDate"` // "2025-10-15"
	BookingTime   string        `json:"bookingTime"` // "10:00"
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes,omitempty"`
	Extras        []SubmitExtra `json:"extras,omitempty"`

	BasePrice            float64  `json:"basePrice"`
	SquareMeterPrice     float64  `json:"squareMeterPrice"`
	ExtrasPrice          float64  `json:"extrasPrice"`
	ZipSurcharge         float64  `json:"zipSurcharge"`
	TotalPrice           float64  `json:"totalPrice"`
	OriginalPrice        *float64 `json:"originalPrice,omitempty"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	PromoCode            string   `json:"promoCode,omitempty"`
}

// SubmitResult результат создания бронирования
type SubmitResult struct {
	Message     string  `json:"message"`
	CheckoutURL *string `json:"checkoutUrl,omitempty"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
