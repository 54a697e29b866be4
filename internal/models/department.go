package models

import "time"

type Department struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"type:varchar(60);uniqueIndex;not null"`
	Description string     `gorm:"type:varchar(200);not null"`
	Employees   []Employee `gorm:"foreignKey:DepartmentID;references:ID"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
