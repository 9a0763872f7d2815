package testutil

import (
	"context"
	"testing"

	"triviaapi/models"
	"triviaapi/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	question   string
	answer     string
	category   int
	difficulty int
}

// questionFixtures is a slice of the classic trivia dump: 19 questions over
// the six default categories.
var questionFixtures = []fixture{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 5, 3},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{"Who invented Peanut Butter?", "George Washington Carver", 4, 2},
	{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{"Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 2, 1},
	{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{"Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", 2, 2},
	{"What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4, 4},
}

// QuestionFixtureCount is the number of questions SeedQuestions inserts.
var QuestionFixtureCount = len(questionFixtures)

// NewTestDB opens a private in-memory sqlite database with the schema
// migrated and the default categories seeded. The pool is pinned to one
// connection so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	_, err = repository.SeedCategories(context.Background(), db)
	require.NoError(t, err)

	return db
}

// SeedQuestions inserts the question fixtures in order and returns them
// with their assigned ids.
func SeedQuestions(t *testing.T, db *gorm.DB) []models.Question {
	t.Helper()

	questions := make([]models.Question, 0, len(questionFixtures))
	for _, f := range questionFixtures {
		questions = append(questions, models.Question{
			Question:   Ptr(f.question),
			Answer:     Ptr(f.answer),
			Category:   Ptr(f.category),
			Difficulty: Ptr(f.difficulty),
		})
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

// CountInCategory reports how many fixtures belong to category.
func CountInCategory(category int) int {
	n := 0
	for _, f := range questionFixtures {
		if f.category == category {
			n++
		}
	}
	return n
}

func Ptr[T any](v T) *T {
	return &v
}
