package db_models

// User owns trips. Email is nullable: legacy rows were created before the
// field existed, and a NULL email must never match a login identifier.
type User struct {
	BaseModel
	Username     string  `gorm:"size:64;uniqueIndex;not null"`
	Email        *string `gorm:"size:120;uniqueIndex"`
	PasswordHash string  `gorm:"size:128"`
	IsAdmin      bool

	Trips []Trip `gorm:"constraint:OnDelete:CASCADE"`
}
