package set_details

// SetDetailsRequest тело запроса на установку параметров объекта
type SetDetailsRequest struct {
	SquareMeters int `json:"squareMeters"`
}
