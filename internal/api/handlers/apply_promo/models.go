package apply_promo

// ApplyPromoRequest тело запроса на применение промокода
type ApplyPromoRequest struct {
	Code string `json:"code"`
}
