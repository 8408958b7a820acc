package models

import "time"

// Country is the persisted record for a single country. Name is the unique
// identity, matched case-insensitively during reconciliation.
type Country struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"-"`
	Name       string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Capital    string `gorm:"type:varchar(255)" json:"capital"`
	Region     string `gorm:"type:varchar(255);index" json:"region"`
	Population int64  `gorm:"not null;default:0" json:"population"`

	// CurrencyCode is nil when the source lists no currencies at all.
	CurrencyCode *string `gorm:"type:varchar(10);index" json:"currency_code"`

	// ExchangeRate is nil when the currency code is missing or cannot be
	// resolved against the rate table.
	ExchangeRate *float64 `json:"exchange_rate"`

	// EstimatedGdp is exactly zero for countries without a currency and nil
	// when the currency exists but its rate is unresolvable. The two cases
	// are distinct on purpose.
	EstimatedGdp *float64 `json:"estimated_gdp"`

	FlagUrl         string    `gorm:"type:text" json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// RefreshMetadata is the singleton row describing the last refresh cycle.
// It is overwritten atomically at the end of each successful refresh.
type RefreshMetadata struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	TotalCountries  int       `gorm:"not null;default:0" json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// TableName keeps the singleton table name explicit.
func (RefreshMetadata) TableName() string {
	return "refresh_metadata"
}
