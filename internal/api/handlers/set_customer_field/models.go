package set_customer_field

// SetCustomerFieldRequest тело запроса на запись одного поля клиента
type SetCustomerFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
