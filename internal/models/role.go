package models

import "time"

type Role struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"type:varchar(60);uniqueIndex;not null"`
	Description string     `gorm:"type:varchar(200);not null"`
	IsReserved  bool       `gorm:"not null;default:false"`
	Employees   []Employee `gorm:"foreignKey:RoleID;references:ID"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// ReservedRoleName is the seeded administrator role. It is identified by
// the IsReserved column rather than by name, since names are editable.
const ReservedRoleName = "Administrator"
