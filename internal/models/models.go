// Package models defines the persisted domain entities for the restaurant
// backend: the admin principal, the public catalog (categories and menu
// items), the settings singleton that carries the data_version counter,
// and the intake records (orders, contact messages, notification outbox).
//
// Entities carry both bson and json tags so the same struct round-trips
// through MongoDB and the HTTP layer. Optional fields that must preserve
// the "unset vs explicitly set" distinction are pointers; see patch.go for
// the partial-update counterparts.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is an authenticated back-office principal. Password holds a
// sha256 hex digest, never the plain text.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Category groups menu items for display. Order is the ascending display
// position; it is not required to be unique.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameAr    string             `bson:"name_ar,omitempty" json:"name_ar,omitempty"`
	Slug      string             `bson:"slug" json:"slug"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// MenuItem is a single dish or drink. IsPublished is a pointer because
// legacy documents predate the field: nil means published, and is distinct
// from an explicit false.
type MenuItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	TitleAr       string             `bson:"title_ar,omitempty" json:"title_ar,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string             `bson:"description_ar,omitempty" json:"description_ar,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	CategoryID    string             `bson:"category_id" json:"category_id"`
	Order         int                `bson:"order" json:"order"`
	IsPublished   *bool              `bson:"is_published,omitempty" json:"is_published,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Published reports whether the item should appear on the public menu,
// treating an unset flag as published.
func (m *MenuItem) Published() bool {
	return m.IsPublished == nil || *m.IsPublished
}

// Settings is the site-wide singleton document. Exactly one instance
// exists per deployment; DataVersion is the global sync counter bumped by
// every catalog or settings mutation.
type Settings struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CompanyName      string             `bson:"company_name,omitempty" json:"company_name,omitempty"`
	CompanyNameAr    string             `bson:"company_name_ar,omitempty" json:"company_name_ar,omitempty"`
	CompanySubtitle  string             `bson:"company_subtitle,omitempty" json:"company_subtitle,omitempty"`
	CompanySubtitleAr string            `bson:"company_subtitle_ar,omitempty" json:"company_subtitle_ar,omitempty"`
	TitleFont        string             `bson:"title_font,omitempty" json:"title_font,omitempty"`
	SubtitleFont     string             `bson:"subtitle_font,omitempty" json:"subtitle_font,omitempty"`
	BgColor          string             `bson:"bg_color,omitempty" json:"bg_color,omitempty"`
	TextColor        string             `bson:"text_color,omitempty" json:"text_color,omitempty"`
	HeroVideo        string             `bson:"hero_video,omitempty" json:"hero_video,omitempty"`
	HeroImage        string             `bson:"hero_image,omitempty" json:"hero_image,omitempty"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	AddressAr        string             `bson:"address_ar,omitempty" json:"address_ar,omitempty"`
	OpeningHours     string             `bson:"opening_hours,omitempty" json:"opening_hours,omitempty"`
	OpeningHoursAr   string             `bson:"opening_hours_ar,omitempty" json:"opening_hours_ar,omitempty"`
	Instagram        string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	GoogleMaps       string             `bson:"google_maps,omitempty" json:"google_maps,omitempty"`
	AboutStory       string             `bson:"about_story,omitempty" json:"about_story,omitempty"`
	AboutStoryAr     string             `bson:"about_story_ar,omitempty" json:"about_story_ar,omitempty"`
	AboutMission     string             `bson:"about_mission,omitempty" json:"about_mission,omitempty"`
	AboutMissionAr   string             `bson:"about_mission_ar,omitempty" json:"about_mission_ar,omitempty"`
	AboutVision      string             `bson:"about_vision,omitempty" json:"about_vision,omitempty"`
	AboutVisionAr    string             `bson:"about_vision_ar,omitempty" json:"about_vision_ar,omitempty"`
	DefaultLanguage  string             `bson:"default_language,omitempty" json:"default_language,omitempty"`
	RestaurantEmail  string             `bson:"restaurant_email,omitempty" json:"restaurant_email,omitempty"`
	EnableFavorites  *bool              `bson:"enable_favorites,omitempty" json:"enable_favorites,omitempty"`
	EnableCart       *bool              `bson:"enable_cart,omitempty" json:"enable_cart,omitempty"`
	EnableMenu       *bool              `bson:"enable_menu,omitempty" json:"enable_menu,omitempty"`
	DataVersion      int64              `bson:"data_version,omitempty" json:"data_version,omitempty"`
	UpdatedAt        *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// OrderStatusPending is assigned to every new order; later transitions are
// free-form strings controlled by the admin UI.
const OrderStatusPending = "pending"

// OrderItem is one line of a customer order, captured as submitted.
type OrderItem struct {
	Title    string  `bson:"title" json:"title"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// Order is a customer order placed from the public app. It is not part of
// the cached public dataset and never moves the data version.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TableNumber   string             `bson:"table_number,omitempty" json:"table_number,omitempty"`
	CustomerName  string             `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerPhone string             `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	CustomerEmail string             `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Total         float64            `bson:"total" json:"total"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Language      string             `bson:"language" json:"language"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ContactMessage is a message from the public contact form.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Language  string             `bson:"language" json:"language"`
	IsRead    bool               `bson:"is_read" json:"is_read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ReadAt    *time.Time         `bson:"read_at,omitempty" json:"read_at,omitempty"`
}

// Notification is an outbox record for an email the restaurant should
// receive. Sent is written false here; delivery (and the transition to
// true) belongs to an external worker.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	To        string             `bson:"to" json:"to"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Sent      bool               `bson:"sent" json:"sent"`
}
