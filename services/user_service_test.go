package services

import (
	"testing"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewStoreRepository(db))
}

func TestCreateUserWithRole(t *testing.T) {
	db := openTestDB(t)
	svc := newUserService(db)

	user, err := svc.Create(CreateUserInput{
		Name:     "Bob Builder",
		Email:    "bob@test.dev",
		Password: "Valid#Pass1",
		Role:     entity.RoleStoreOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, user.Role)

	// empty role falls back to USER
	user2, err := svc.Create(CreateUserInput{
		Name:     "Cara Plain",
		Email:    "cara@test.dev",
		Password: "Valid#Pass1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user2.Role)

	_, err = svc.Create(CreateUserInput{
		Name:     "Bad Role",
		Email:    "bad@test.dev",
		Password: "Valid#Pass1",
		Role:     entity.Role("SUPERUSER"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestGetStoreOwnerCarriesAverage(t *testing.T) {
	db := openTestDB(t)
	svc := newUserService(db)

	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	rater := seedUser(t, db, "Rater", "rater@test.dev", entity.RoleUser)
	store := seedStore(t, db, "corner-shop", owner.ID)
	seedRating(t, db, rater.ID, store.ID, 4, time.Now())

	detail, err := svc.Get(owner.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.AverageRating)
	assert.Equal(t, 4.0, *detail.AverageRating)

	plain, err := svc.Get(rater.ID)
	require.NoError(t, err)
	assert.Nil(t, plain.AverageRating)

	_, err = svc.Get(9999)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateUserRole(t *testing.T) {
	db := openTestDB(t)
	svc := newUserService(db)
	u := seedUser(t, db, "Plain", "plain@test.dev", entity.RoleUser)

	updated, err := svc.Update(u.ID, UpdateUserInput{
		Name:  "Plain Renamed",
		Email: "plain@test.dev",
		Role:  entity.RoleStoreOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, updated.Role)
	assert.Equal(t, "Plain Renamed", updated.Name)

	_, err = svc.Update(u.ID, UpdateUserInput{Name: "X", Email: "plain@test.dev", Role: entity.Role("NOPE")})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestDeleteUserRemovesRatings(t *testing.T) {
	db := openTestDB(t)
	svc := newUserService(db)

	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	rater := seedUser(t, db, "Rater", "rater@test.dev", entity.RoleUser)
	store := seedStore(t, db, "corner-shop", owner.ID)
	seedRating(t, db, rater.ID, store.ID, 4, time.Now())

	require.NoError(t, svc.Delete(rater.ID))

	var ratings int64
	require.NoError(t, db.Model(&entity.Rating{}).Where("user_id = ?", rater.ID).Count(&ratings).Error)
	assert.EqualValues(t, 0, ratings)
}

func TestDeleteOwnerWithStoresConflicts(t *testing.T) {
	db := openTestDB(t)
	svc := newUserService(db)

	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	seedStore(t, db, "corner-shop", owner.ID)

	err := svc.Delete(owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestSearchFilters(t *testing.T) {
	db := openTestDB(t)
	svc := newUserService(db)

	seedUser(t, db, "Alice Admin", "alice@test.dev", entity.RoleAdmin)
	seedUser(t, db, "Bob User", "bob@test.dev", entity.RoleUser)
	seedUser(t, db, "Carla User", "carla@test.dev", entity.RoleUser)

	users, err := svc.Search(repository.UserFilter{Role: entity.RoleUser})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = svc.Search(repository.UserFilter{Name: "alice"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice Admin", users[0].Name)
}
