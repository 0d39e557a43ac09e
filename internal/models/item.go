package models

// Item represents a single wishlist entry.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is the display name of the item (e.g., "Bike", "Headphones").
	Name string `json:"name"`

	// Price is the item's price. Non-negative; legacy rows with text or
	// null prices are coerced to a number when read.
	Price float64 `json:"price"`

	// Priority marks the item as a priority wish.
	Priority bool `json:"priority"`

	// UserEmail is the email of the user who created the item. It is the
	// sole ownership key: only this user may update or delete the item.
	UserEmail string `json:"userEmail"`

	// Link is an optional product URL.
	Link string `json:"link,omitempty"`

	// ImageURL is an optional URL of an uploaded photo.
	ImageURL string `json:"imageUrl,omitempty"`

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64 `json:"createdAt"`
}
