package repository_test

import (
	"context"
	"testing"

	"triviaapi/models"
	"triviaapi/repository"
	"triviaapi/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories_OrderedByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := repository.NewTriviaRepository(db)

	categories, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, len(repository.DefaultCategories))
	for i, category := range categories {
		assert.Equal(t, uint(i+1), category.ID)
	}
	assert.Equal(t, "Science", categories[0].Type)
}

func TestSeedCategories_OnlyWhenEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)

	seeded, err := repository.SeedCategories(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, seeded)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, len(repository.DefaultCategories), count)
}

func TestListQuestions_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	seeded := testutil.SeedQuestions(t, db)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	t.Run("no filter returns all ordered by id", func(t *testing.T) {
		questions, err := store.ListQuestions(ctx, repository.QuestionFilter{})
		require.NoError(t, err)
		require.Len(t, questions, len(seeded))
		for i := 1; i < len(questions); i++ {
			assert.Less(t, questions[i-1].ID, questions[i].ID)
		}
	})

	t.Run("category", func(t *testing.T) {
		questions, err := store.ListQuestions(ctx, repository.QuestionFilter{Category: testutil.Ptr(2)})
		require.NoError(t, err)
		assert.Len(t, questions, testutil.CountInCategory(2))
		for _, q := range questions {
			assert.Equal(t, 2, *q.Category)
		}
	})

	t.Run("exclude ids", func(t *testing.T) {
		excluded := []uint{seeded[0].ID, seeded[1].ID}
		questions, err := store.ListQuestions(ctx, repository.QuestionFilter{ExcludeIDs: excluded})
		require.NoError(t, err)
		assert.Len(t, questions, len(seeded)-2)
		for _, q := range questions {
			assert.NotContains(t, excluded, q.ID)
		}
	})

	t.Run("empty exclude list excludes nothing", func(t *testing.T) {
		questions, err := store.ListQuestions(ctx, repository.QuestionFilter{ExcludeIDs: []uint{}})
		require.NoError(t, err)
		assert.Len(t, questions, len(seeded))
	})

	t.Run("category and exclude combined", func(t *testing.T) {
		all, err := store.ListQuestions(ctx, repository.QuestionFilter{Category: testutil.Ptr(6)})
		require.NoError(t, err)
		require.NotEmpty(t, all)

		rest, err := store.ListQuestions(ctx, repository.QuestionFilter{
			Category:   testutil.Ptr(6),
			ExcludeIDs: []uint{all[0].ID},
		})
		require.NoError(t, err)
		assert.Len(t, rest, len(all)-1)
	})
}

func TestSearchQuestions(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedQuestions(t, db)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	tests := []struct {
		name string
		term string
		want int
	}{
		{"single match", "autobiography", 1},
		{"case insensitive", "AUTOBIOGRAPHY", 1},
		{"substring inside a word", "utobiog", 1},
		{"several matches", "soccer", 2},
		{"no match", "zzzz-not-there", 0},
		{"percent is literal", "%", 0},
		{"underscore is literal", "_", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := store.SearchQuestions(ctx, tt.term)
			require.NoError(t, err)
			assert.Len(t, questions, tt.want)
			assert.NotNil(t, questions)
		})
	}
}

func TestSearchQuestions_LiteralWildcards(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	require.NoError(t, store.CreateQuestion(ctx, &models.Question{Question: testutil.Ptr("What is 50% of 10?")}))
	require.NoError(t, store.CreateQuestion(ctx, &models.Question{Question: testutil.Ptr("What is 50 of 10?")}))

	questions, err := store.SearchQuestions(ctx, "50%")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is 50% of 10?", *questions[0].Question)
}

func TestSearchQuestions_EmptyTermSkipsQuestionsWithoutText(t *testing.T) {
	db := testutil.NewTestDB(t)
	seeded := testutil.SeedQuestions(t, db)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	require.NoError(t, store.CreateQuestion(ctx, &models.Question{}))

	questions, err := store.SearchQuestions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, questions, len(seeded))
	for _, q := range questions {
		assert.NotNil(t, q.Question)
	}

	all, err := store.ListQuestions(ctx, repository.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(seeded)+1)
}

func TestGetQuestion(t *testing.T) {
	db := testutil.NewTestDB(t)
	seeded := testutil.SeedQuestions(t, db)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	question, err := store.GetQuestion(ctx, seeded[3].ID)
	require.NoError(t, err)
	assert.Equal(t, *seeded[3].Question, *question.Question)
	assert.Equal(t, *seeded[3].Answer, *question.Answer)

	_, err = store.GetQuestion(ctx, 100000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateQuestion_AssignsIDAndAllowsNulls(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	first := &models.Question{
		Question:   testutil.Ptr("What is the capital of France?"),
		Answer:     testutil.Ptr("Paris"),
		Category:   testutil.Ptr(3),
		Difficulty: testutil.Ptr(1),
	}
	require.NoError(t, store.CreateQuestion(ctx, first))
	assert.NotZero(t, first.ID)

	empty := &models.Question{}
	require.NoError(t, store.CreateQuestion(ctx, empty))
	assert.Greater(t, empty.ID, first.ID)

	stored, err := store.GetQuestion(ctx, empty.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Question)
	assert.Nil(t, stored.Answer)
	assert.Nil(t, stored.Category)
	assert.Nil(t, stored.Difficulty)
}

func TestDeleteQuestion(t *testing.T) {
	db := testutil.NewTestDB(t)
	seeded := testutil.SeedQuestions(t, db)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	require.NoError(t, store.DeleteQuestion(ctx, seeded[0].ID))

	_, err := store.GetQuestion(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = store.DeleteQuestion(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	remaining, err := store.ListQuestions(ctx, repository.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, len(seeded)-1)
}

func TestDeleteQuestion_IDsNotReused(t *testing.T) {
	db := testutil.NewTestDB(t)
	seeded := testutil.SeedQuestions(t, db)
	store := repository.NewTriviaRepository(db)
	ctx := context.Background()

	last := seeded[len(seeded)-1]
	require.NoError(t, store.DeleteQuestion(ctx, last.ID))

	created := &models.Question{Question: testutil.Ptr("New question?")}
	require.NoError(t, store.CreateQuestion(ctx, created))
	assert.NotEqual(t, last.ID, created.ID)
}

func TestPing(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := repository.NewTriviaRepository(db)

	require.NoError(t, store.Ping(context.Background()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, store.Ping(context.Background()))
}
