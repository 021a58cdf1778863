package entity

type Company struct {
	Code        string    `json:"code" gorm:"type:varchar(60);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	Description string    `json:"description" gorm:"type:text"`
	Invoices    []Invoice `json:"-" gorm:"foreignKey:CompCode;references:Code"`
}
