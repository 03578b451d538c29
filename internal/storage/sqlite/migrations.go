package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Identifier ids are stored as 24-char ObjectID hex so the two backends
// agree on the wire format. Timestamps are unix seconds. "order" needs
// quoting everywhere; it is kept anyway because the column name doubles
// as the patch field name.
const schema = `
CREATE TABLE IF NOT EXISTS admins (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_ar TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    "order" INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER
);

CREATE TABLE IF NOT EXISTS menu_items (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    title_ar TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    description_ar TEXT NOT NULL DEFAULT '',
    price REAL NOT NULL DEFAULT 0,
    image TEXT NOT NULL DEFAULT '',
    category_id TEXT NOT NULL,
    "order" INTEGER NOT NULL DEFAULT 0,
    is_published INTEGER,
    created_at INTEGER NOT NULL,
    updated_at INTEGER
);

CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    doc_id TEXT NOT NULL,
    company_name TEXT NOT NULL DEFAULT '',
    company_name_ar TEXT NOT NULL DEFAULT '',
    company_subtitle TEXT NOT NULL DEFAULT '',
    company_subtitle_ar TEXT NOT NULL DEFAULT '',
    title_font TEXT NOT NULL DEFAULT '',
    subtitle_font TEXT NOT NULL DEFAULT '',
    bg_color TEXT NOT NULL DEFAULT '',
    text_color TEXT NOT NULL DEFAULT '',
    hero_video TEXT NOT NULL DEFAULT '',
    hero_image TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    address_ar TEXT NOT NULL DEFAULT '',
    opening_hours TEXT NOT NULL DEFAULT '',
    opening_hours_ar TEXT NOT NULL DEFAULT '',
    instagram TEXT NOT NULL DEFAULT '',
    google_maps TEXT NOT NULL DEFAULT '',
    about_story TEXT NOT NULL DEFAULT '',
    about_story_ar TEXT NOT NULL DEFAULT '',
    about_mission TEXT NOT NULL DEFAULT '',
    about_mission_ar TEXT NOT NULL DEFAULT '',
    about_vision TEXT NOT NULL DEFAULT '',
    about_vision_ar TEXT NOT NULL DEFAULT '',
    default_language TEXT NOT NULL DEFAULT '',
    restaurant_email TEXT NOT NULL DEFAULT '',
    enable_favorites INTEGER,
    enable_cart INTEGER,
    enable_menu INTEGER,
    data_version INTEGER NOT NULL DEFAULT 1,
    updated_at INTEGER
);

CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    table_number TEXT NOT NULL DEFAULT '',
    customer_name TEXT NOT NULL DEFAULT '',
    customer_phone TEXT NOT NULL DEFAULT '',
    customer_email TEXT NOT NULL DEFAULT '',
    items TEXT NOT NULL,
    total REAL NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    language TEXT NOT NULL DEFAULT 'en',
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER
);

CREATE TABLE IF NOT EXISTS contact_messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    language TEXT NOT NULL DEFAULT 'en',
    is_read INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    read_at INTEGER
);

CREATE TABLE IF NOT EXISTS notifications (
    id TEXT PRIMARY KEY,
    recipient TEXT NOT NULL,
    subject TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    sent INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_categories_order ON categories("order");
CREATE INDEX IF NOT EXISTS idx_menu_items_category_id ON menu_items(category_id);
CREATE INDEX IF NOT EXISTS idx_menu_items_order ON menu_items("order");
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
