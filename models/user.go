package models

type User struct {
	Email       string `gorm:"column:email;size:100" json:"email"`
	FirstName   string `gorm:"column:first_name;size:100" json:"first_name"`
	ID          int64  `gorm:"column:id;primary_key" json:"id"`
	IsSuperuser bool   `gorm:"column:is_superuser;not null" json:"is_superuser"`
	LastName    string `gorm:"column:last_name;size:100" json:"last_name"`
	Password    string `gorm:"column:password;size:100;not null" json:"-"`
	Username    string `gorm:"column:username;size:100;not null;unique_index" json:"username"`
}

// TableName sets the insert table name for this struct type
func (u *User) TableName() string {
	return "users"
}
