package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airbooking/internal/domain/models"
)

func TestExtrasTotal(t *testing.T) {
	var e models.SelectedExtras
	assert.Equal(t, int64(0), ExtrasTotal(e))

	e.SetBaggage("p1", &models.BaggageSelection{WeightKg: 20, Price: 3000})
	e.SetBaggage("p2", &models.BaggageSelection{WeightKg: 15, Price: 2500})
	e.SetMeal("p1", &models.MealSelection{Type: "vegetarian", Price: 1200})
	e.Insurance = &models.InsuranceOption{Type: "basic", Coverage: 5000000, Price: 900}
	e.Lounge = &models.LoungeAccess{Airport: "CGK", Price: 2000}

	assert.Equal(t, int64(9600), ExtrasTotal(e))

	// Clearing a selection removes the entry rather than storing a zero.
	e.SetBaggage("p2", nil)
	assert.NotContains(t, e.BaggageByPassenger, "p2")
	assert.Equal(t, int64(7100), ExtrasTotal(e))

	e.RemovePassenger("p1")
	assert.Equal(t, int64(2900), ExtrasTotal(e))
}

// Shuffled insertion order must not change the total.
func TestExtrasTotalOrderIndependent(t *testing.T) {
	build := func(order []string) models.SelectedExtras {
		var e models.SelectedExtras
		prices := map[string]int64{"p1": 1000, "p2": 2000, "p3": 3000, "p4": 4000}
		for _, id := range order {
			e.SetBaggage(id, &models.BaggageSelection{WeightKg: 10, Price: prices[id]})
			e.SetMeal(id, &models.MealSelection{Type: "standard", Price: prices[id] / 2})
		}
		return e
	}

	a := ExtrasTotal(build([]string{"p1", "p2", "p3", "p4"}))
	b := ExtrasTotal(build([]string{"p4", "p2", "p1", "p3"}))
	c := ExtrasTotal(build([]string{"p3", "p1", "p4", "p2"}))
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, int64(15000), a)
}

func TestComputePriceBreakdown(t *testing.T) {
	flight := models.Flight{BaseFare: 100000, Taxes: 11000, Fees: 2500, Currency: "USD"}

	m := NewSeatMap(sampleSeats())
	require.NoError(t, m.Assign("p1", "12A"))
	require.NoError(t, m.Assign("p2", "12B"))

	var extras models.SelectedExtras
	extras.SetBaggage("p1", &models.BaggageSelection{WeightKg: 20, Price: 3000})
	extras.SetMeal("p2", &models.MealSelection{Type: "halal", Price: 1500})
	extras.Insurance = &models.InsuranceOption{Type: "full", Coverage: 10000000, Price: 2200}

	bd := ComputePriceBreakdown(flight, 2, m.Assignment(), extras)

	assert.Equal(t, int64(200000), bd.BaseFare)
	assert.Equal(t, int64(22000), bd.Taxes)
	assert.Equal(t, int64(5000), bd.Fees)
	assert.Equal(t, int64(3000), bd.SeatFees)
	assert.Equal(t, int64(3000), bd.ExtraBaggage)
	assert.Equal(t, int64(1500), bd.Meals)
	assert.Equal(t, int64(2200), bd.Insurance)
	assert.Equal(t, int64(0), bd.LoungeAccess)

	sum := bd.BaseFare + bd.Taxes + bd.Fees + bd.SeatFees +
		bd.ExtraBaggage + bd.Meals + bd.Insurance + bd.LoungeAccess
	assert.Equal(t, sum, bd.Total)
}

func TestComputePriceBreakdownZeroExtras(t *testing.T) {
	flight := models.Flight{BaseFare: 50000, Taxes: 5000, Fees: 1000}

	bd := ComputePriceBreakdown(flight, 1, nil, models.SelectedExtras{})

	assert.Equal(t, int64(56000), bd.Total)
	sum := bd.BaseFare + bd.Taxes + bd.Fees + bd.SeatFees +
		bd.ExtraBaggage + bd.Meals + bd.Insurance + bd.LoungeAccess
	assert.Equal(t, sum, bd.Total)
}
