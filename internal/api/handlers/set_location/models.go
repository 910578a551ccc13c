package set_location

// SetLocationRequest тело запроса на установку почтового индекса
type SetLocationRequest struct {
	ZipCode string `json:"zipCode"`
}
