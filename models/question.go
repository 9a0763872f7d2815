package models

// Question is a single trivia question. Text fields and the category are
// nullable because creation accepts partial bodies.
type Question struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category" gorm:"index"`
	Difficulty *int    `json:"difficulty"`
}
