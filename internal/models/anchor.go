package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiveSession is the time-of-day slot an anchor streams in.
type LiveSession string

const (
	SessionMorning   LiveSession = "morning"
	SessionAfternoon LiveSession = "afternoon"
	SessionEvening   LiveSession = "evening"
	SessionNight     LiveSession = "night"
)

func (s LiveSession) Valid() bool {
	switch s {
	case SessionMorning, SessionAfternoon, SessionEvening, SessionNight:
		return true
	}
	return false
}

// Anchor is an on-air worker compensated either by a fixed basic salary or
// by a commission percentage, selected by BasicSalaryOrNot. Exactly one of
// BasicSalary/Percentage is meaningful per record; the other stays zero.
type Anchor struct {
	ID               uint            `gorm:"primaryKey"`
	Name             string          `gorm:"type:varchar(60);uniqueIndex;not null"`
	EntryTime        *time.Time      `gorm:"type:date"`
	Address          string          `gorm:"type:varchar(200)"`
	MomoNumber       string          `gorm:"type:varchar(60)"`
	MobileNumber     string          `gorm:"type:varchar(60)"`
	IDNumber         string          `gorm:"type:varchar(60)"`
	BasicSalaryOrNot bool            `gorm:"not null;default:false"`
	BasicSalary      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Percentage       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LiveTime         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LiveSession      LiveSession     `gorm:"type:varchar(20)"`
	AceAnchorOrNot   bool            `gorm:"not null;default:false"`
	Agent            string          `gorm:"type:varchar(60)"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	OwnedSalary      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Photo            string          `gorm:"type:varchar(255)"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
