package models

// Stock is a display-only ticker snapshot. Price/change fields are the exact
// strings shown on the site; no arithmetic is ever performed on them.
type Stock struct {
	ID            uint    `json:"id" gorm:"primarykey"`
	Symbol        string  `json:"symbol" gorm:"column:symbol;uniqueIndex;not null"`
	Name          string  `json:"name" gorm:"column:name;not null"`
	Price         string  `json:"price" gorm:"column:price;not null"`
	Change        string  `json:"change" gorm:"column:change;not null"`
	ChangePercent string  `json:"changePercent" gorm:"column:change_percent;not null"`
	Sector        *string `json:"sector" gorm:"column:sector"`
}
