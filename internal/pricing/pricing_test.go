package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

func intPtr(v int) *int { return &v }

func testService() *domain.Service {
	return &domain.Service{
		ID:                  1,
		Name:                "Window Cleaning",
		BasePrice:           40,
		PricePerSquareMeter: 0.5,
		BaseDurationMinutes: 60,
	}
}

func TestCompute_FullBreakdown(t *testing.T) {
	extras := []domain.Extra{
		{ID: 10, Name: "Frame wipe-down", Price: 15, DurationMinutes: 20},
	}

	breakdown := Compute(testService(), intPtr(100), extras, 5, 1.0)
	require.NotNil(t, breakdown)

	assert.Equal(t, 40.0, breakdown.BasePrice)
	assert.Equal(t, 50.0, breakdown.SquareMeterPrice)
	assert.Equal(t, 15.0, breakdown.ExtrasPrice)
	assert.Equal(t, 5.0, breakdown.ZipSurcharge)
	assert.Equal(t, 110.0, breakdown.TotalPrice)
	assert.Equal(t, 80, breakdown.TotalDurationMinutes)
	assert.Nil(t, breakdown.OriginalPrice)
}

func TestCompute_NoService(t *testing.T) {
	breakdown := Compute(nil, intPtr(50), nil, 5, 1.0)
	assert.Nil(t, breakdown)
}

func TestCompute_NoSquareMeters(t *testing.T) {
	breakdown := Compute(testService(), nil, nil, 0, 1.0)
	require.NotNil(t, breakdown)

	assert.Equal(t, 0.0, breakdown.SquareMeterPrice)
	assert.Equal(t, 40.0, breakdown.TotalPrice)
	assert.Equal(t, 60, breakdown.TotalDurationMinutes)
}

func TestCompute_PromoSetsOriginalPrice(t *testing.T) {
	breakdown := Compute(testService(), intPtr(100), nil, 0, 0.9)
	require.NotNil(t, breakdown)

	// subtotal = 40 + 50 = 90, со скидкой 10% = 81
	assert.InDelta(t, 81.0, breakdown.TotalPrice, 1e-9)
	require.NotNil(t, breakdown.OriginalPrice)
	assert.Equal(t, 90.0, *breakdown.OriginalPrice)
}

func TestCompute_PromoDoesNotCompound(t *testing.T) {
	// Повторное применение того же множителя дает тот же результат:
	// множитель применяется к subtotal, а не к дисконтированной сумме
	first := Compute(testService(), intPtr(100), nil, 0, 0.9)
	second := Compute(testService(), intPtr(100), nil, 0, 0.9)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.TotalPrice, second.TotalPrice)
}

func TestCompute_InvalidMultiplierFallsBackToDefault(t *testing.T) {
	breakdown := Compute(testService(), nil, nil, 0, -1)
	require.NotNil(t, breakdown)

	assert.Equal(t, 40.0, breakdown.TotalPrice)
	assert.Nil(t, breakdown.OriginalPrice)
}

func TestRequiredDuration(t *testing.T) {
	extras := []domain.Extra{
		{ID: 10, DurationMinutes: 20},
		{ID: 11, DurationMinutes: 15},
	}

	assert.Equal(t, 95, RequiredDuration(testService(), extras))
	assert.Equal(t, 60, RequiredDuration(testService(), nil))
	assert.Equal(t, 0, RequiredDuration(nil, extras))
}
