package core

// Category is the closed set of expense categories.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryRent           Category = "Rent"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryOther          Category = "Other"

	// CategoryHealth carries display metadata but is not offered at
	// creation time. Keeping the mismatch until product decides whether
	// Health becomes selectable.
	CategoryHealth Category = "Health"
)

// DefaultCategory is assigned when the caller leaves the category unset.
const DefaultCategory = CategoryFood

// SelectableCategories returns the categories offered at creation time,
// in display order.
func SelectableCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryRent,
		CategoryEntertainment,
		CategoryShopping,
		CategoryOther,
	}
}

// Selectable reports whether the category may be assigned to a new expense.
func (c Category) Selectable() bool {
	switch c {
	case CategoryFood, CategoryTransportation, CategoryRent,
		CategoryEntertainment, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryFood:
		return "🍔"
	case CategoryTransportation:
		return "🚗"
	case CategoryRent:
		return "💡"
	case CategoryEntertainment:
		return "🎬"
	case CategoryHealth:
		return "🏥"
	case CategoryShopping:
		return "🛍️"
	case CategoryOther:
		return "📌"
	}
	return "📌"
}

// Color returns the display color for the category. Health has an icon but
// no color of its own and falls through to the fallback.
func (c Category) Color() string {
	switch c {
	case CategoryFood:
		return "#0af244ff"
	case CategoryTransportation:
		return "#4ecdc4"
	case CategoryRent:
		return "#848484ff"
	case CategoryEntertainment:
		return "#1bb7e7ff"
	case CategoryShopping:
		return "#f30400ff"
	case CategoryOther:
		return "#ccfc0aff"
	}
	return "#ccc"
}
