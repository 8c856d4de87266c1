package db_models

// Destination is a geographic point within a trip. OrderIndex defines its
// position among siblings: appends take max+1 (gaps allowed), a full reorder
// reassigns the dense sequence 0..n-1. VisitDate is a plain YYYY-MM-DD
// string and is intentionally not validated as a calendar date.
type Destination struct {
	BaseModel
	Name       string  `gorm:"size:140;not null"`
	Address    string  `gorm:"size:255"`
	Lat        float64 `gorm:"not null"`
	Lng        float64 `gorm:"not null"`
	VisitDate  *string `gorm:"size:10"`
	Notes      *string
	OrderIndex int  `gorm:"not null;default:0"`
	TripID     uint `gorm:"index;not null"`
}
