package db_models

type Trip struct {
	BaseModel
	Name   string `gorm:"size:140;not null"`
	UserID uint   `gorm:"index;not null"`

	Destinations []Destination `gorm:"constraint:OnDelete:CASCADE"`
}
