package entity

import "time"

// Well-known setting keys. The settings table is a free-form key/value store;
// these are the keys the storefront and dashboard actually read.
const (
	SettingStoreName      = "store.name"
	SettingStorePhone     = "store.phone"
	SettingStoreEmail     = "store.email"
	SettingSEOTitleEn     = "seo.title.en"
	SettingSEOTitleFr     = "seo.title.fr"
	SettingSEOTitleAr     = "seo.title.ar"
	SettingSEODescription = "seo.description"
	SettingSEOKeywords    = "seo.keywords"
)

// Setting is a single key/value pair of store configuration, covering contact
// details and SEO metadata served to the storefront.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
