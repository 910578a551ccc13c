package set_schedule

// SetScheduleRequest тело запроса на выбор даты и времени.
// Поля независимы: виджет присылает date при смене даты в календаре
// и time при клике по слоту
type SetScheduleRequest struct {
	Date *string `json:"date,omitempty"` // "2025-10-15"
	Time *string `json:"time,omitempty"` // "10:00"
}
