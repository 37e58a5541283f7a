package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/store"
	"github.com/phrazzld/recipe-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$10$abcdefghijklmnopqrstuuv8G1y1aU9i8nq0bJcR2y3m9b4rQ6a2"

func TestAccountStore(t *testing.T) {
	t.Parallel()

	for _, e := range testdb.Engines(t) {
		t.Run(e.Name, func(t *testing.T) {
			ctx := context.Background()
			s := testdb.NewStores(e)
			login := testdb.UniqueLogin("acct")

			a := testdb.CreateAccount(t, s, login, testHash)
			assert.Positive(t, a.ID)

			byID, err := s.Accounts.GetByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, login, byID.Login)
			assert.Equal(t, testHash, byID.PasswordHash)

			byLogin, err := s.Accounts.GetByLogin(ctx, login)
			require.NoError(t, err)
			assert.Equal(t, a.ID, byLogin.ID)

			byEmail, err := s.Accounts.GetByEmail(ctx, "  "+login+"@EXAMPLE.com ")
			require.NoError(t, err)
			assert.Equal(t, a.ID, byEmail.ID)

			_, err = s.Accounts.GetByLogin(ctx, login+"-missing")
			assert.ErrorIs(t, err, store.ErrAccountNotFound)

			exists, err := s.Accounts.LoginExists(ctx, login)
			require.NoError(t, err)
			assert.True(t, exists)

			exists, err = s.Accounts.NicknameExists(ctx, "nobody-"+login)
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, s.Accounts.UpdatePasswordHash(ctx, a.ID, "$2a$10$new"))
			updated, err := s.Accounts.GetByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, "$2a$10$new", updated.PasswordHash)

			assert.ErrorIs(t, s.Accounts.UpdatePasswordHash(ctx, a.ID+100000, "$2a$10$x"), store.ErrAccountNotFound)
		})
	}
}

func TestAccountStoreDuplicates(t *testing.T) {
	t.Parallel()

	for _, e := range testdb.Engines(t) {
		t.Run(e.Name, func(t *testing.T) {
			ctx := context.Background()
			s := testdb.NewStores(e)
			login := testdb.UniqueLogin("dup")
			existing := testdb.CreateAccount(t, s, login, testHash)

			tests := []struct {
				name    string
				account func() *domain.Account
				wantErr error
			}{
				{
					name: "same login",
					account: func() *domain.Account {
						a, _ := domain.NewAccount(login, "other-"+login, "other-"+login+"@example.com", testHash)
						return a
					},
					wantErr: store.ErrLoginExists,
				},
				{
					name: "same nickname",
					account: func() *domain.Account {
						a, _ := domain.NewAccount("x"+login, existing.Nickname, "x"+login+"@example.com", testHash)
						return a
					},
					wantErr: store.ErrNicknameExists,
				},
				{
					name: "same email",
					account: func() *domain.Account {
						a, _ := domain.NewAccount("y"+login, "y-"+login, existing.Email, testHash)
						return a
					},
					wantErr: store.ErrEmailExists,
				},
			}

			for _, tt := range tests {
				err := s.Accounts.Create(ctx, tt.account())
				assert.ErrorIs(t, err, tt.wantErr, tt.name)
			}
		})
	}
}

func TestBookmarkStore(t *testing.T) {
	t.Parallel()

	for _, e := range testdb.Engines(t) {
		t.Run(e.Name, func(t *testing.T) {
			ctx := context.Background()
			s := testdb.NewStores(e)
			a := testdb.CreateAccount(t, s, testdb.UniqueLogin("bm"), testHash)
			r := testdb.CreateRecipe(t, s, a.ID, "Kimchi stew")

			found, err := s.Bookmarks.Exists(ctx, a.ID, r.ID)
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, s.Bookmarks.Insert(ctx, a.ID, r.ID))
			assert.ErrorIs(t, s.Bookmarks.Insert(ctx, a.ID, r.ID), store.ErrBookmarkExists)

			found, err = s.Bookmarks.Exists(ctx, a.ID, r.ID)
			require.NoError(t, err)
			assert.True(t, found)

			require.NoError(t, s.Bookmarks.Delete(ctx, a.ID, r.ID))
			assert.ErrorIs(t, s.Bookmarks.Delete(ctx, a.ID, r.ID), store.ErrNotFound)
		})
	}
}

func TestLikeStore(t *testing.T) {
	t.Parallel()

	for _, e := range testdb.Engines(t) {
		t.Run(e.Name, func(t *testing.T) {
			ctx := context.Background()
			s := testdb.NewStores(e)
			a := testdb.CreateAccount(t, s, testdb.UniqueLogin("like"), testHash)
			r := testdb.CreateRecipe(t, s, a.ID, "Bibimbap")

			require.NoError(t, s.Likes.Insert(ctx, a.ID, r.ID))

			err := s.Likes.Insert(ctx, a.ID, r.ID)
			assert.ErrorIs(t, err, store.ErrLikeExists)

			err = s.Likes.Insert(ctx, a.ID, r.ID+100000)
			assert.ErrorIs(t, err, store.ErrConstraintViolation, "unknown recipe violates the foreign key")
			assert.NotErrorIs(t, err, store.ErrLikeExists)

			n, err := s.Likes.DeleteByAccount(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestRecipeStoreDeleteByAuthor(t *testing.T) {
	t.Parallel()

	for _, e := range testdb.Engines(t) {
		t.Run(e.Name, func(t *testing.T) {
			ctx := context.Background()
			s := testdb.NewStores(e)
			author := testdb.CreateAccount(t, s, testdb.UniqueLogin("author"), testHash)
			fan := testdb.CreateAccount(t, s, testdb.UniqueLogin("fan"), testHash)
			r1 := testdb.CreateRecipe(t, s, author.ID, "Japchae")
			r2 := testdb.CreateRecipe(t, s, author.ID, "Tteokbokki")
			other := testdb.CreateRecipe(t, s, fan.ID, "Mandu")

			require.NoError(t, s.Likes.Insert(ctx, fan.ID, r1.ID))
			require.NoError(t, s.Bookmarks.Insert(ctx, fan.ID, r2.ID))
			require.NoError(t, s.References.Insert(ctx, &domain.UserReference{
				AccountID: fan.ID, RecipeID: r1.ID, Kind: domain.ReferenceCompletion,
			}))
			require.NoError(t, s.Likes.Insert(ctx, author.ID, other.ID))

			got, err := s.Recipes.GetByID(ctx, r1.ID)
			require.NoError(t, err)
			assert.Equal(t, "Japchae", got.Title)

			n, err := s.Recipes.DeleteByAuthor(ctx, author.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(2), n)

			_, err = s.Recipes.GetByID(ctx, r1.ID)
			assert.ErrorIs(t, err, store.ErrRecipeNotFound)
			assert.Zero(t, testdb.CountRows(t, e, "likes", "recipe_id = $1", r1.ID))
			assert.Zero(t, testdb.CountRows(t, e, "bookmarks", "recipe_id = $1", r2.ID))
			assert.Zero(t, testdb.CountRows(t, e, "user_references", "recipe_id = $1", r1.ID))

			// The author's like on someone else's recipe is not part of this step.
			assert.Equal(t, 1, testdb.CountRows(t, e, "likes", "account_id = $1", author.ID))
			_, err = s.Recipes.GetByID(ctx, other.ID)
			assert.NoError(t, err)
		})
	}
}

func TestReferenceStore(t *testing.T) {
	t.Parallel()

	for _, e := range testdb.Engines(t) {
		t.Run(e.Name, func(t *testing.T) {
			ctx := context.Background()
			s := testdb.NewStores(e)
			a := testdb.CreateAccount(t, s, testdb.UniqueLogin("ref"), testHash)
			r := testdb.CreateRecipe(t, s, a.ID, "Galbi")

			ref := &domain.UserReference{AccountID: a.ID, RecipeID: r.ID, Kind: domain.ReferenceCompletion}
			require.NoError(t, s.References.Insert(ctx, ref))
			assert.Positive(t, ref.ID)

			assert.ErrorIs(t, s.References.Insert(ctx, &domain.UserReference{AccountID: a.ID, RecipeID: r.ID}),
				store.ErrInvalidEntity)

			n, err := s.References.DeleteByAccount(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestStoresWithTx(t *testing.T) {
	t.Parallel()

	e := testdb.NewSQLite(t)
	s := testdb.NewStores(e)
	a := testdb.CreateAccount(t, s, testdb.UniqueLogin("tx"), testHash)

	testdb.WithTx(t, e.DB, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		locked, err := s.Accounts.WithTx(tx).LockByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Login, locked.Login)

		require.NoError(t, s.Accounts.WithTx(tx).UpdatePasswordHash(ctx, a.ID, "$2a$10$rolledback"))
	})

	after, err := s.Accounts.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, testHash, after.PasswordHash, "rolled back update must not persist")
}
