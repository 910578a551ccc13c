package domain

import "time"

// CustomerField names an editable customer-info field of the draft.
type CustomerField string

const (
	FieldCustomerName  CustomerField = "customerName"
	FieldCustomerEmail CustomerField = "customerEmail"
	FieldCustomerPhone CustomerField = "customerPhone"
	FieldAddress       CustomerField = "address"
	FieldNotes         CustomerField = "notes"
)

// IsValid reports whether the field name is one of the known customer fields.
func (f CustomerField) IsValid() bool {
	switch f {
	case FieldCustomerName, FieldCustomerEmail, FieldCustomerPhone, FieldAddress, FieldNotes:
		return true
	default:
		return false
	}
}

// BookingDraft is the mutable in-progress booking selection.
// A single instance is owned by one wizard session; all mutation goes through
// the session's transition methods.
type BookingDraft struct {
	ZipCode          string
	ServiceID        *int64
	SquareMeters     *int
	SelectedExtraIDs map[int64]struct{}
	BookingDate      *time.Time
	BookingTime      string // "HH:MM", must be open in the latest availability set

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	Notes         string
}

// NewBookingDraft creates an empty draft.
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		SelectedExtraIDs: make(map[int64]struct{}),
	}
}

// HasService reports whether a service has been selected.
func (d *BookingDraft) HasService() bool {
	return d.ServiceID != nil
}

// HasDate reports whether a booking date has been chosen.
func (d *BookingDraft) HasDate() bool {
	return d.BookingDate != nil
}

// ExtraSelected reports whether the given extra is currently selected.
func (d *BookingDraft) ExtraSelected(extraID int64) bool {
	_, ok := d.SelectedExtraIDs[extraID]
	return ok
}

// ExtraIDs returns the selected extra ids as a slice. Order is unspecified.
func (d *BookingDraft) ExtraIDs() []int64 {
	ids := make([]int64, 0, len(d.SelectedExtraIDs))
	for id := range d.SelectedExtraIDs {
		ids = append(ids, id)
	}
	return ids
}

// SetCustomerField writes one customer-info field. Unknown fields are ignored
// by the caller via CustomerField.IsValid.
func (d *BookingDraft) SetCustomerField(field CustomerField, value string) {
	switch field {
	case FieldCustomerName:
		d.CustomerName = value
	case FieldCustomerEmail:
		d.CustomerEmail = value
	case FieldCustomerPhone:
		d.CustomerPhone = value
	case FieldAddress:
		d.Address = value
	case FieldNotes:
		d.Notes = value
	}
}

// Clone returns a deep copy of the draft for snapshots.
func (d *BookingDraft) Clone() *BookingDraft {
	cp := *d
	cp.SelectedExtraIDs = make(map[int64]struct{}, len(d.SelectedExtraIDs))
	for id := range d.SelectedExtraIDs {
		cp.SelectedExtraIDs[id] = struct{}{}
	}
	if d.ServiceID != nil {
		v := *d.ServiceID
		cp.ServiceID = &v
	}
	if d.SquareMeters != nil {
		v := *d.SquareMeters
		cp.SquareMeters = &v
	}
	if d.BookingDate != nil {
		v := *d.BookingDate
		cp.BookingDate = &v
	}
	return &cp
}
