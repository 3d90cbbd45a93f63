package model

import "fmt"

// MeasureType classifies how a material is measured and priced. The integer
// values are the on-disk representation and must not be reordered.
type MeasureType int

const (
	MeasureUnit   MeasureType = 0
	MeasureLength MeasureType = 1
	MeasureArea   MeasureType = 2
	MeasureWeight MeasureType = 3
)

// MeasureTypeFromInt decodes a stored measure type. An unknown value means
// the database holds data this version of the program never wrote.
func MeasureTypeFromInt(v int) (MeasureType, error) {
	switch MeasureType(v) {
	case MeasureUnit, MeasureLength, MeasureArea, MeasureWeight:
		return MeasureType(v), nil
	default:
		return 0, fmt.Errorf("unknown measure type value: %d", v)
	}
}

func (t MeasureType) String() string {
	switch t {
	case MeasureUnit:
		return "unit"
	case MeasureLength:
		return "length"
	case MeasureArea:
		return "area"
	case MeasureWeight:
		return "weight"
	default:
		return fmt.Sprintf("MeasureType(%d)", int(t))
	}
}

// Material is a catalog entry. BaseWidth and BaseLength are set only for
// area-measured materials; for every other type they are nil.
type Material struct {
	ID          int64
	Name        string
	Note        string
	MeasureType MeasureType
	Price       float64
	BaseWidth   *int64
	BaseLength  *int64
}

// MonthlyCost is a recurring fixed cost amortized into the labor rate.
type MonthlyCost struct {
	ID    int64
	Name  string
	Value float64
}

// Weekday indexes the fixed Sunday..Saturday week used by the labor schedule.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (d Weekday) String() string {
	return [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}[d]
}

// WorkDay holds the minutes worked on one weekday.
type WorkDay struct {
	Day     Weekday
	Minutes int
}

// WorkWeek always carries exactly one entry per weekday, Sunday first.
type WorkWeek struct {
	Days [7]WorkDay
}

// TotalMinutes sums the scheduled minutes over the whole week.
func (w WorkWeek) TotalMinutes() int {
	total := 0
	for _, d := range w.Days {
		total += d.Minutes
	}
	return total
}

// SalaryInfo is the shop-wide labor schedule singleton: the weekly wage base
// plus the work week.
type SalaryInfo struct {
	Salary float64
	Week   WorkWeek
}

// LineItem associates one material with a product. Kind is fixed at the time
// the line item is created and dictates which quantity fields are meaningful:
//
//   - MeasureUnit / MeasureWeight: Quantity is a plain count.
//   - MeasureLength: Quantity is centimeters; UnitPrice is per meter.
//   - MeasureArea: Width and Length are the consumed dimensions, BaseWidth and
//     BaseLength the material's reference dimensions.
type LineItem struct {
	ID           int64
	MaterialID   int64
	MaterialName string
	UnitPrice    float64
	Kind         MeasureType

	Quantity float64

	Width      float64
	Length     float64
	BaseWidth  float64
	BaseLength float64
}

// Product is a composite good built from material line items, ordered by
// line-item id ascending.
type Product struct {
	ID            int64
	Name          string
	Description   string
	MinutesNeeded int
	ProfitPercent int
	Materials     []LineItem
}

// ProductSummary is the listing row for the products page.
type ProductSummary struct {
	ID          int64
	Name        string
	Description string
}
