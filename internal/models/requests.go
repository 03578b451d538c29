package models

// CategoryCreate is the payload for creating a category. Name and Slug
// are required.
type CategoryCreate struct {
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Slug   string `json:"slug"`
	Image  string `json:"image"`
	Order  int    `json:"order"`
}

// MenuItemCreate is the payload for creating a menu item. Title, Price
// and CategoryID are required; Price is a pointer so an absent price is
// distinguishable from a free item. IsPublished defaults to true when
// omitted.
type MenuItemCreate struct {
	Title         string   `json:"title"`
	TitleAr       string   `json:"title_ar"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"description_ar"`
	Price         *float64 `json:"price"`
	Image         string   `json:"image"`
	CategoryID    string   `json:"category_id"`
	IsPublished   *bool    `json:"is_published"`
}

// ReorderEntry assigns a display order to one entity of a batch reorder
// request.
type ReorderEntry struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// OrderCreate is the public order intake payload. Items and Total are
// required.
type OrderCreate struct {
	TableNumber   string      `json:"table_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	Total         *float64    `json:"total"`
	Notes         string      `json:"notes"`
	Language      string      `json:"language"`
}

// ContactMessageCreate is the public contact form payload. Name and
// Message are required.
type ContactMessageCreate struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Language string `json:"language"`
}
