package models

import "time"

type Employee struct {
	ID           uint        `gorm:"primaryKey"`
	Email        string      `gorm:"type:varchar(120);uniqueIndex;not null"`
	Username     string      `gorm:"type:varchar(60);not null"`
	IsAdmin      bool        `gorm:"not null;default:false"`
	DepartmentID *uint       `gorm:"index"`
	Department   *Department `gorm:"foreignKey:DepartmentID"`
	RoleID       *uint       `gorm:"index"`
	Role         *Role       `gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
