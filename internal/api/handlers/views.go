package handlers

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

// SnapshotResponse HTTP модель снапшота состояния сессии.
// Каждая мутирующая команда отвечает свежим снапшотом, чтобы виджет
// перерисовывался из одного payload
type SnapshotResponse struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`

	Draft        DraftView         `json:"draft"`
	Services     []ServiceView     `json:"services"`
	Extras       []ExtraView       `json:"extras"`
	Pricing      *PricingView      `json:"pricing,omitempty"`
	Availability *AvailabilityView `json:"availability,omitempty"`

	ZipStatus  string `json:"zipStatus"`
	ZipMessage string `json:"zipMessage,omitempty"`

	PromoCode       string  `json:"promoCode,omitempty"`
	PromoMultiplier float64 `json:"promoMultiplier"`

	ZipCheckPending bool `json:"zipCheckPending"`
	SlotsPending    bool `json:"slotsPending"`
	Submitting      bool `json:"submitting"`
	Submitted       bool `json:"submitted"`

	SubmitResult *SubmitResultView `json:"submitResult,omitempty"`

	CatalogError string `json:"catalogError,omitempty"`
	SlotsError   string `json:"slotsError,omitempty"`
	SubmitError  string `json:"submitError,omitempty"`

	IsAdvanceEnabled bool             `json:"isAdvanceEnabled"`
	FieldErrors      []FieldErrorBody `json:"fieldErrors"`
}

// DraftView HTTP модель черновика бронирования
type DraftView struct {
	ZipCode       string  `json:"zipCode"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	SquareMeters  *int    `json:"squareMeters,omitempty"`
	ExtraIDs      []int64 `json:"extraIds"`
	BookingDate   *string `json:"bookingDate,omitempty"` // "2025-10-15"
	BookingTime   string  `json:"bookingTime,omitempty"` // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Address       string  `json:"address"`
	Notes         string  `json:"notes"`
}

// ServiceView HTTP модель услуги каталога
type ServiceView struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	BasePrice           float64 `json:"basePrice"`
	PricePerSquareMeter float64 `json:"pricePerSquareMeter"`
	BaseDurationMinutes int     `json:"baseDurationMinutes"`
}

// ExtraView HTTP модель допуслуги
type ExtraView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Selected        bool    `json:"selected"`
}

// PricingView HTTP модель детализации цены
type PricingView struct {
	BasePrice            float64  `json:"basePrice"`
	SquareMeterPrice     float64  `json:"squareMeterPrice"`
	ExtrasPrice          float64  `json:"extrasPrice"`
	ZipSurcharge         float64  `json:"zipSurcharge"`
	TotalPrice           float64  `json:"totalPrice"`
	OriginalPrice        *float64 `json:"originalPrice,omitempty"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
}

// SlotView HTTP модель временного слота
type SlotView struct {
	Time   string `json:"time"`
	IsOpen bool   `json:"isOpen"`
}

// AvailabilityView HTTP модель набора доступности
type AvailabilityView struct {
	Date            string     `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []SlotView `json:"slots"`
}

// SubmitResultView HTTP модель результата бронирования
type SubmitResultView struct {
	Message     string  `json:"message"`
	CheckoutURL *string `json:"checkoutUrl,omitempty"`
}

// FromSnapshot конвертирует снапшот сессии в HTTP модель
func FromSnapshot(snap *wizard.Snapshot) *SnapshotResponse {
	draft := DraftView{
		ZipCode:       snap.Draft.ZipCode,
		ServiceID:     snap.Draft.ServiceID,
		SquareMeters:  snap.Draft.SquareMeters,
		ExtraIDs:      snap.Draft.ExtraIDs(),
		BookingTime:   snap.Draft.BookingTime,
		CustomerName:  snap.Draft.CustomerName,
		CustomerEmail: snap.Draft.CustomerEmail,
		CustomerPhone: snap.Draft.CustomerPhone,
		Address:       snap.Draft.Address,
		Notes:         snap.Draft.Notes,
	}
	if draft.ExtraIDs == nil {
		draft.ExtraIDs = []int64{}
	}
	if snap.Draft.BookingDate != nil {
		formatted := snap.Draft.BookingDate.Format(domain.DateFormat)
		draft.BookingDate = &formatted
	}

	services := make([]ServiceView, 0, len(snap.Services))
	for _, s := range snap.Services {
		services = append(services, ServiceView{
			ID:                  s.ID,
			Name:                s.Name,
			Description:         s.Description,
			BasePrice:           s.BasePrice,
			PricePerSquareMeter: s.PricePerSquareMeter,
			BaseDurationMinutes: s.BaseDurationMinutes,
		})
	}

	extras := make([]ExtraView, 0, len(snap.Extras))
	for _, e := range snap.Extras {
		extras = append(extras, ExtraView{
			ID:              e.ID,
			Name:            e.Name,
			Description:     e.Description,
			Price:           e.Price,
			DurationMinutes: e.DurationMinutes,
			Selected:        snap.Draft.ExtraSelected(e.ID),
		})
	}

	resp := &SnapshotResponse{
		SessionID:        snap.SessionID,
		Step:             snap.Step.String(),
		Draft:            draft,
		Services:         services,
		Extras:           extras,
		ZipStatus:        string(snap.ZipStatus),
		ZipMessage:       snap.ZipMessage,
		PromoCode:        snap.PromoCode,
		PromoMultiplier:  snap.PromoMultiplier,
		ZipCheckPending:  snap.ZipCheckPending,
		SlotsPending:     snap.SlotsPending,
		Submitting:       snap.Submitting,
		Submitted:        snap.Submitted,
		CatalogError:     snap.CatalogError,
		SlotsError:       snap.SlotsError,
		SubmitError:      snap.SubmitError,
		IsAdvanceEnabled: snap.IsAdvanceEnabled,
		FieldErrors:      make([]FieldErrorBody, 0, len(snap.FieldErrors)),
	}

	for _, fe := range snap.FieldErrors {
		resp.FieldErrors = append(resp.FieldErrors, FieldErrorBody{Field: fe.Field, Message: fe.Message})
	}

	if snap.Pricing != nil {
		pricing := PricingView{
			BasePrice:            snap.Pricing.BasePrice,
			SquareMeterPrice:     snap.Pricing.SquareMeterPrice,
			ExtrasPrice:          snap.Pricing.ExtrasPrice,
			ZipSurcharge:         snap.Pricing.ZipSurcharge,
			TotalPrice:           snap.Pricing.TotalPrice,
			OriginalPrice:        snap.Pricing.OriginalPrice,
			TotalDurationMinutes: snap.Pricing.TotalDurationMinutes,
		}
		resp.Pricing = &pricing
	}

	if snap.Availability != nil {
		slots := make([]SlotView, 0, len(snap.Availability.Slots))
		for _, slot := range snap.Availability.Slots {
			slots = append(slots, SlotView{Time: slot.Time.String(), IsOpen: slot.IsOpen})
		}
		resp.Availability = &AvailabilityView{
			Date:            snap.Availability.Date.Format(domain.DateFormat),
			DurationMinutes: snap.Availability.DurationMinutes,
			Slots:           slots,
		}
	}

	if snap.SubmitResult != nil {
		resp.SubmitResult = &SubmitResultView{
			Message:     snap.SubmitResult.Message,
			CheckoutURL: snap.SubmitResult.CheckoutURL,
		}
	}

	return resp
}

// FromValidationError конвертирует ошибку валидации в HTTP модель полей
func FromValidationError(verr *wizard.ValidationError) []FieldErrorBody {
	fields := make([]FieldErrorBody, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		fields = append(fields, FieldErrorBody{Field: fe.Field, Message: fe.Message})
	}
	return fields
}
