package entity

type User struct {
	ID       uint   `gorm:"primaryKey;column:id"`
	Name     string `gorm:"not null;column:name"`
	Email    string `gorm:"unique;not null;column:email"`
	Username string `gorm:"unique;column:username"`
	Password string `gorm:"not null;column:password"`
}
