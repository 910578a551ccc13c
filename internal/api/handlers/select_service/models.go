package select_service

// SelectServiceRequest тело запроса на выбор услуги
type SelectServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}
