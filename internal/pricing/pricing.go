package pricing

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// Compute вычисляет детализацию цены и длительности для текущего выбора.
// Чистая функция без I/O: все входные данные передаются явно.
//
// Алгоритм:
//
//	basePrice        = service.BasePrice
//	squareMeterPrice = service.PricePerSquareMeter * squareMeters (0, если метраж не задан)
//	extrasPrice      = сумма цен выбранных допуслуг
//	totalDuration    = service.BaseDurationMinutes + сумма длительностей допуслуг
//	subtotal         = basePrice + squareMeterPrice + extrasPrice + zipSurcharge
//	totalPrice       = subtotal * promoMultiplier
//
// OriginalPrice заполняется только при promoMultiplier < 1.0 - для отображения
// зачеркнутой цены. Округление здесь не выполняется: форматирование до двух
// знаков - задача виджета.
//
// Множитель всегда применяется к заново выведенному subtotal, никогда к уже
// дисконтированной сумме - повторное применение промокода не компаундится.
func Compute(
	service *domain.Service,
	squareMeters *int,
	extras []domain.Extra,
	zipSurcharge float64,
	promoMultiplier float64,
) *domain.PricingBreakdown {
	// Без услуги расчет не выполняется - прежняя детализация остается в силе
	if service == nil {
		return nil
	}

	if promoMultiplier <= 0 {
		promoMultiplier = domain.DefaultPromoMultiplier
	}

	breakdown := &domain.PricingBreakdown{
		BasePrice:            service.BasePrice,
		ZipSurcharge:         zipSurcharge,
		TotalDurationMinutes: service.BaseDurationMinutes,
	}

	if squareMeters != nil && *squareMeters > 0 {
		breakdown.SquareMeterPrice = service.PricePerSquareMeter * float64(*squareMeters)
	}

	for _, extra := range extras {
		breakdown.ExtrasPrice += extra.Price
		breakdown.TotalDurationMinutes += extra.DurationMinutes
	}

	subtotal := breakdown.Subtotal()
	breakdown.TotalPrice = subtotal * promoMultiplier

	if promoMultiplier < domain.DefaultPromoMultiplier {
		original := subtotal
		breakdown.OriginalPrice = &original
	}

	return breakdown
}

// RequiredDuration вычисляет суммарную длительность услуги с допуслугами.
// Используется как параметр запроса слотов: изменение длительности при
// выбранной дате обязывает перезапросить доступность.
func RequiredDuration(service *domain.Service, extras []domain.Extra) int {
	if service == nil {
		return 0
	}
	total := service.BaseDurationMinutes
	for _, extra := range extras {
		total += extra.DurationMinutes
	}
	return total
}
