package models

import "time"

// Product prices are stored in centavos (integer minor units) so cart math
// never touches floating point.
type Product struct {
	ID            string   `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Price         int64    `gorm:"not null" json:"price"`
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Discount      int      `json:"discount,omitempty"`
	Description   string   `json:"description"`
	Images        []string `gorm:"serializer:json" json:"images"`
	CoverImage    string   `json:"coverImage"`
	Category      string   `gorm:"index" json:"category"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	BestSeller    bool     `json:"bestSeller"`
	ForYou        bool     `json:"forYou"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// DisplayBucket names one of the storefront's curated product shelves.
type DisplayBucket string

const (
	BucketFeatured   DisplayBucket = "featured"
	BucketBestSeller DisplayBucket = "best-seller"
	BucketForYou     DisplayBucket = "for-you"
)

// ParseDisplayBucket returns the bucket for a query-string value.
func ParseDisplayBucket(v string) (DisplayBucket, bool) {
	switch DisplayBucket(v) {
	case BucketFeatured, BucketBestSeller, BucketForYou:
		return DisplayBucket(v), true
	default:
		return "", false
	}
}

// InBucket reports whether the product belongs to the given shelf.
func (p Product) InBucket(b DisplayBucket) bool {
	switch b {
	case BucketFeatured:
		return p.Featured
	case BucketBestSeller:
		return p.BestSeller
	case BucketForYou:
		return p.ForYou
	default:
		return false
	}
}
