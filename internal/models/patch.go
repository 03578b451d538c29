package models

// Patch types carry partial updates. Every field is a pointer: nil means
// "leave untouched", a non-nil pointer (including one to a zero value)
// means "set to this". This keeps the unset / explicitly-empty distinction
// that the admin UI relies on.
//
// Fields() flattens a patch into provided name/value pairs in declaration
// order; storage layers build their update documents or SET clauses from
// it, and IsEmpty (len(Fields()) == 0) backs the "reject empty update"
// rule.

// PatchField is one provided field of a partial update. Name is the wire
// name shared by the bson tag and the SQL column.
type PatchField struct {
	Name  string
	Value any
}

type fieldList []PatchField

func (fs *fieldList) add(name string, v any, set bool) {
	if set {
		*fs = append(*fs, PatchField{Name: name, Value: v})
	}
}

// CategoryPatch is a partial update for a Category.
type CategoryPatch struct {
	Name   *string `json:"name"`
	NameAr *string `json:"name_ar"`
	Slug   *string `json:"slug"`
	Image  *string `json:"image"`
	Order  *int    `json:"order"`
}

// Fields returns the provided fields in declaration order.
func (p *CategoryPatch) Fields() []PatchField {
	var fs fieldList
	fs.add("name", deref(p.Name), p.Name != nil)
	fs.add("name_ar", deref(p.NameAr), p.NameAr != nil)
	fs.add("slug", deref(p.Slug), p.Slug != nil)
	fs.add("image", deref(p.Image), p.Image != nil)
	fs.add("order", deref(p.Order), p.Order != nil)
	return fs
}

// IsEmpty reports whether no field is set.
func (p *CategoryPatch) IsEmpty() bool { return p == nil || len(p.Fields()) == 0 }

// MenuItemPatch is a partial update for a MenuItem.
type MenuItemPatch struct {
	Title         *string  `json:"title"`
	TitleAr       *string  `json:"title_ar"`
	Description   *string  `json:"description"`
	DescriptionAr *string  `json:"description_ar"`
	Price         *float64 `json:"price"`
	Image         *string  `json:"image"`
	CategoryID    *string  `json:"category_id"`
	Order         *int     `json:"order"`
	IsPublished   *bool    `json:"is_published"`
}

// Fields returns the provided fields in declaration order.
func (p *MenuItemPatch) Fields() []PatchField {
	var fs fieldList
	fs.add("title", deref(p.Title), p.Title != nil)
	fs.add("title_ar", deref(p.TitleAr), p.TitleAr != nil)
	fs.add("description", deref(p.Description), p.Description != nil)
	fs.add("description_ar", deref(p.DescriptionAr), p.DescriptionAr != nil)
	fs.add("price", deref(p.Price), p.Price != nil)
	fs.add("image", deref(p.Image), p.Image != nil)
	fs.add("category_id", deref(p.CategoryID), p.CategoryID != nil)
	fs.add("order", deref(p.Order), p.Order != nil)
	fs.add("is_published", deref(p.IsPublished), p.IsPublished != nil)
	return fs
}

// IsEmpty reports whether no field is set.
func (p *MenuItemPatch) IsEmpty() bool { return p == nil || len(p.Fields()) == 0 }

// SettingsPatch is a partial update for the Settings singleton. The
// data_version counter is deliberately absent; only the synchronizer moves
// it.
type SettingsPatch struct {
	CompanyName       *string `json:"company_name"`
	CompanyNameAr     *string `json:"company_name_ar"`
	CompanySubtitle   *string `json:"company_subtitle"`
	CompanySubtitleAr *string `json:"company_subtitle_ar"`
	TitleFont         *string `json:"title_font"`
	SubtitleFont      *string `json:"subtitle_font"`
	BgColor           *string `json:"bg_color"`
	TextColor         *string `json:"text_color"`
	HeroVideo         *string `json:"hero_video"`
	HeroImage         *string `json:"hero_image"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	AddressAr         *string `json:"address_ar"`
	OpeningHours      *string `json:"opening_hours"`
	OpeningHoursAr    *string `json:"opening_hours_ar"`
	Instagram         *string `json:"instagram"`
	GoogleMaps        *string `json:"google_maps"`
	AboutStory        *string `json:"about_story"`
	AboutStoryAr      *string `json:"about_story_ar"`
	AboutMission      *string `json:"about_mission"`
	AboutMissionAr    *string `json:"about_mission_ar"`
	AboutVision       *string `json:"about_vision"`
	AboutVisionAr     *string `json:"about_vision_ar"`
	DefaultLanguage   *string `json:"default_language"`
	RestaurantEmail   *string `json:"restaurant_email"`
	EnableFavorites   *bool   `json:"enable_favorites"`
	EnableCart        *bool   `json:"enable_cart"`
	EnableMenu        *bool   `json:"enable_menu"`
}

// Fields returns the provided fields in declaration order.
func (p *SettingsPatch) Fields() []PatchField {
	var fs fieldList
	fs.add("company_name", deref(p.CompanyName), p.CompanyName != nil)
	fs.add("company_name_ar", deref(p.CompanyNameAr), p.CompanyNameAr != nil)
	fs.add("company_subtitle", deref(p.CompanySubtitle), p.CompanySubtitle != nil)
	fs.add("company_subtitle_ar", deref(p.CompanySubtitleAr), p.CompanySubtitleAr != nil)
	fs.add("title_font", deref(p.TitleFont), p.TitleFont != nil)
	fs.add("subtitle_font", deref(p.SubtitleFont), p.SubtitleFont != nil)
	fs.add("bg_color", deref(p.BgColor), p.BgColor != nil)
	fs.add("text_color", deref(p.TextColor), p.TextColor != nil)
	fs.add("hero_video", deref(p.HeroVideo), p.HeroVideo != nil)
	fs.add("hero_image", deref(p.HeroImage), p.HeroImage != nil)
	fs.add("phone", deref(p.Phone), p.Phone != nil)
	fs.add("address", deref(p.Address), p.Address != nil)
	fs.add("address_ar", deref(p.AddressAr), p.AddressAr != nil)
	fs.add("opening_hours", deref(p.OpeningHours), p.OpeningHours != nil)
	fs.add("opening_hours_ar", deref(p.OpeningHoursAr), p.OpeningHoursAr != nil)
	fs.add("instagram", deref(p.Instagram), p.Instagram != nil)
	fs.add("google_maps", deref(p.GoogleMaps), p.GoogleMaps != nil)
	fs.add("about_story", deref(p.AboutStory), p.AboutStory != nil)
	fs.add("about_story_ar", deref(p.AboutStoryAr), p.AboutStoryAr != nil)
	fs.add("about_mission", deref(p.AboutMission), p.AboutMission != nil)
	fs.add("about_mission_ar", deref(p.AboutMissionAr), p.AboutMissionAr != nil)
	fs.add("about_vision", deref(p.AboutVision), p.AboutVision != nil)
	fs.add("about_vision_ar", deref(p.AboutVisionAr), p.AboutVisionAr != nil)
	fs.add("default_language", deref(p.DefaultLanguage), p.DefaultLanguage != nil)
	fs.add("restaurant_email", deref(p.RestaurantEmail), p.RestaurantEmail != nil)
	fs.add("enable_favorites", deref(p.EnableFavorites), p.EnableFavorites != nil)
	fs.add("enable_cart", deref(p.EnableCart), p.EnableCart != nil)
	fs.add("enable_menu", deref(p.EnableMenu), p.EnableMenu != nil)
	return fs
}

// IsEmpty reports whether no field is set.
func (p *SettingsPatch) IsEmpty() bool { return p == nil || len(p.Fields()) == 0 }

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
