package model

// Menu categories. The menu is fixed to these three; anything else is a
// client error.
const (
	CategoryMain     = "main"
	CategorySalad    = "salad"
	CategoryOptional = "optional"
)

// ValidCategory reports whether c is one of the three menu categories.
func ValidCategory(c string) bool {
	return c == CategoryMain || c == CategorySalad || c == CategoryOptional
}

// MenuItem represents a dish on the weekly menu. Items are owned by the
// database; the service only reads them. DayOfWeek runs 1 (Monday) through
// 6 (Saturday); there is no Sunday menu.
type MenuItem struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"imageUrl" db:"image_url"`
	DayOfWeek   int    `json:"dayOfWeek" db:"day_of_week"`
	Category    string `json:"category" db:"category"`
}

// OpeningWindow is the daily interval during which ordering is permitted,
// expressed as minutes since midnight (e.g. 9:00 = 540). Read from the
// settings table; absent until configured.
type OpeningWindow struct {
	OpensAt  int `json:"opensAt" db:"opens_at"`
	ClosesAt int `json:"closesAt" db:"closes_at"`
}

// CartEntry is the (id, name) projection of a MenuItem held in a session
// cart. It carries just enough for display and for submission.
type CartEntry struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
}
