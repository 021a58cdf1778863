package entity

// IndustryCompany is the join row linking an industry to a company. The
// composite primary key doubles as the uniqueness constraint on the pair.
type IndustryCompany struct {
	IndustryID  uint   `json:"industry_id" gorm:"primaryKey;autoIncrement:false"`
	CompanyCode string `json:"company_code" gorm:"type:varchar(60);primaryKey"`
}

func (IndustryCompany) TableName() string {
	return "industries_companies"
}
