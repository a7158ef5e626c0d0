package models

type Ingredient struct {
	CategoryID int64  `gorm:"column:category_id;not null" json:"category"`
	ID         int64  `gorm:"column:id;primary_key" json:"id"`
	Name       string `gorm:"column:name;size:64;not null;unique_index" json:"name"`
	Price      int64  `gorm:"column:price;not null" json:"price"`
}

// TableName sets the insert table name for this struct type
func (i *Ingredient) TableName() string {
	return "ingredients"
}
