package entity

type PetProfile struct {
	ID      uint `gorm:"primaryKey;column:id"`
	OwnerID uint `gorm:"uniqueIndex;not null;column:owner_id"`

	Name     string `gorm:"not null;column:name"`
	Species  string `gorm:"not null;column:species"`
	Breed    string `gorm:"column:breed"`
	AgeYears int    `gorm:"column:age_years"`
	Bio      string `gorm:"column:bio"`
	PhotoURL string `gorm:"column:photo_url"`

	// Denormalized popularity counter, mutated only by the like counter.
	// The swipe rows are the source of truth.
	LikesCount int `gorm:"not null;default:0;column:likes_count"`
}

func (PetProfile) TableName() string {
	return "pet_profiles"
}
