package models

// OrderItem snapshots menu name, price and temperature at commit time so
// history stays accurate when the catalog changes later.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderID  uint   `gorm:"not null;index" json:"order_id"`
	MenuID   uint   `gorm:"not null" json:"menu_id"`
	MenuName string `gorm:"type:varchar(100);not null" json:"menu_name"`
	Price    int    `gorm:"not null" json:"price"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Temp     string `gorm:"type:varchar(10);not null" json:"temp"`
}
