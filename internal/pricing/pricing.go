// Package pricing turns a product's material composition, the shop's labor
// schedule and the monthly fixed costs into a sale price. Everything here is
// pure computation over already-loaded records.
package pricing

import "github.com/villela/precificador/internal/model"

// weeksPerMonth is the fixed approximation used to amortize the weekly
// schedule into a monthly minute total.
const weeksPerMonth = 4

// Breakdown contains the line values of a product price calculation.
type Breakdown struct {
	MaterialCost float64
	LaborCost    float64
	ProfitWage   float64
	Total        float64
}

// LineItemCost prices a single material line item according to its variant:
//
//   - unit/weight: unit price times quantity
//   - length: unit price is per meter, quantity is stored in centimeters
//   - area: consumed area times the per-area unit price derived from the
//     material's base dimensions
func LineItemCost(item model.LineItem) float64 {
	switch item.Kind {
	case model.MeasureLength:
		return item.UnitPrice * (item.Quantity / 100.0)
	case model.MeasureArea:
		area := item.Width * item.Length
		unitCost := item.UnitPrice / (item.BaseWidth * item.BaseLength)
		return area * unitCost
	default:
		return item.UnitPrice * item.Quantity
	}
}

// MaterialCost sums the cost of every line item of the product.
func MaterialCost(p model.Product) float64 {
	sum := 0.0
	for _, item := range p.Materials {
		sum += LineItemCost(item)
	}
	return sum
}

// LaborCost amortizes the salary plus fixed monthly costs over the monthly
// scheduled minutes and charges the product's production time against that
// rate. A schedule with zero minutes yields zero labor cost.
func LaborCost(p model.Product, info model.SalaryInfo, costs []model.MonthlyCost) float64 {
	monthlyMinutes := info.Week.TotalMinutes() * weeksPerMonth
	if monthlyMinutes == 0 {
		return 0
	}

	fixedCostSum := 0.0
	for _, c := range costs {
		fixedCostSum += c.Value
	}

	wagePerMinute := (info.Salary + fixedCostSum) / float64(monthlyMinutes)
	return wagePerMinute * float64(p.MinutesNeeded)
}

// ProfitWage is the margin on top of material and labor cost.
func ProfitWage(p model.Product, info model.SalaryInfo, costs []model.MonthlyCost) float64 {
	return (MaterialCost(p) + LaborCost(p, info, costs)) * (float64(p.ProfitPercent) / 100.0)
}

// FinalPrice is material cost plus labor cost plus profit wage.
func FinalPrice(p model.Product, info model.SalaryInfo, costs []model.MonthlyCost) float64 {
	return MaterialCost(p) + LaborCost(p, info, costs) + ProfitWage(p, info, costs)
}

// Calculate computes the full breakdown in one pass.
func Calculate(p model.Product, info model.SalaryInfo, costs []model.MonthlyCost) Breakdown {
	materialCost := MaterialCost(p)
	laborCost := LaborCost(p, info, costs)
	profitWage := (materialCost + laborCost) * (float64(p.ProfitPercent) / 100.0)

	return Breakdown{
		MaterialCost: materialCost,
		LaborCost:    laborCost,
		ProfitWage:   profitWage,
		Total:        materialCost + laborCost + profitWage,
	}
}
