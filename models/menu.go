package models

type Menu struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Temperature string  `gorm:"type:varchar(10);not null" json:"temperature"`
	Price       int     `gorm:"not null" json:"price"`
	Category    string  `gorm:"type:varchar(50);not null" json:"category"`
	IsActive    bool    `gorm:"column:is_active;default:true" json:"isActive"`
	IsPopular   bool    `gorm:"column:popular;default:false" json:"isPopular"`
	Profile     *string `gorm:"type:varchar(500)" json:"profile"`
}

func (Menu) TableName() string {
	return "menu"
}
