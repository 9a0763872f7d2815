package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type"`
}
