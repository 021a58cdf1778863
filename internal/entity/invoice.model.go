package entity

import "time"

type Invoice struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	CompCode string     `json:"comp_code" gorm:"type:varchar(60);not null;index"`
	Amt      float64    `json:"amt" gorm:"not null"`
	Paid     bool       `json:"paid" gorm:"not null;default:false"`
	AddDate  time.Time  `json:"add_date" gorm:"type:date;not null"`
	PaidDate *time.Time `json:"paid_date" gorm:"type:date"`
	Company  Company    `json:"-" gorm:"foreignKey:CompCode;references:Code"`
}
