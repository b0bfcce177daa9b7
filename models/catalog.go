package models

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type Shape struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type Material struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// Rating holds one row per distinct star value (0-5).
type Rating struct {
	ID    uint `gorm:"primaryKey;autoIncrement" json:"id"`
	Value int  `gorm:"unique;not null" json:"value"`
}
