package services

import (
	"testing"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStorePromotesOwner(t *testing.T) {
	db := openTestDB(t)
	plain := seedUser(t, db, "Plain", "plain@test.dev", entity.RoleUser)
	svc := newStoreService(db)

	store, err := svc.Create(StoreInput{
		Name:    "fresh-mart",
		Email:   "Fresh@Mart.Test",
		Address: "12 Main St",
		OwnerID: plain.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, plain.ID, store.UserID)
	assert.Equal(t, "fresh@mart.test", store.Email)

	var owner entity.User
	require.NoError(t, db.First(&owner, plain.ID).Error)
	assert.Equal(t, entity.RoleStoreOwner, owner.Role)
}

func TestCreateStorePromotesAnyNonOwnerRole(t *testing.T) {
	db := openTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@test.dev", entity.RoleAdmin)
	svc := newStoreService(db)

	_, err := svc.Create(StoreInput{Name: "side-biz", Email: "s@b.test", OwnerID: admin.ID})
	require.NoError(t, err)

	// promotion applies to every role except STORE_OWNER itself
	var u entity.User
	require.NoError(t, db.First(&u, admin.ID).Error)
	assert.Equal(t, entity.RoleStoreOwner, u.Role)
}

func TestCreateStoreUnknownOwner(t *testing.T) {
	db := openTestDB(t)
	svc := newStoreService(db)

	_, err := svc.Create(StoreInput{Name: "ghost", Email: "g@g.test", OwnerID: 404})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "store owner not found")
}

func TestDeleteStoreCascadesRatings(t *testing.T) {
	db := openTestDB(t)
	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	a := seedUser(t, db, "A", "a@test.dev", entity.RoleUser)
	b := seedUser(t, db, "B", "b@test.dev", entity.RoleUser)
	store := seedStore(t, db, "corner-shop", owner.ID)
	keep := seedStore(t, db, "other-shop", owner.ID)
	svc := newStoreService(db)

	now := time.Now()
	seedRating(t, db, a.ID, store.ID, 4, now)
	seedRating(t, db, b.ID, store.ID, 2, now)
	seedRating(t, db, a.ID, keep.ID, 5, now)

	require.NoError(t, svc.Delete(store.ID))

	var orphans int64
	require.NoError(t, db.Model(&entity.Rating{}).Where("store_id = ?", store.ID).Count(&orphans).Error)
	assert.EqualValues(t, 0, orphans)

	// unrelated store untouched
	var kept int64
	require.NoError(t, db.Model(&entity.Rating{}).Where("store_id = ?", keep.ID).Count(&kept).Error)
	assert.EqualValues(t, 1, kept)

	err := svc.Delete(store.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListCarriesAggregatesAndOwnRating(t *testing.T) {
	db := openTestDB(t)
	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	rater := seedUser(t, db, "Rater", "rater@test.dev", entity.RoleUser)
	other := seedUser(t, db, "Other", "other@test.dev", entity.RoleUser)
	store := seedStore(t, db, "corner-shop", owner.ID)
	seedStore(t, db, "quiet-shop", owner.ID)
	svc := newStoreService(db)

	now := time.Now()
	seedRating(t, db, rater.ID, store.ID, 5, now)
	seedRating(t, db, other.ID, store.ID, 4, now)

	items, err := svc.List(identOf(rater), "", "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// ordered by name
	assert.Equal(t, "corner-shop", items[0].Name)
	assert.Equal(t, "quiet-shop", items[1].Name)

	assert.Equal(t, 4.5, items[0].AverageRating)
	assert.Equal(t, 2, items[0].TotalRatings)
	require.NotNil(t, items[0].UserRating)
	assert.Equal(t, 5, *items[0].UserRating)

	assert.Equal(t, 0.0, items[1].AverageRating)
	assert.Equal(t, 0, items[1].TotalRatings)
	assert.Nil(t, items[1].UserRating)
}

func TestListFiltersByNameCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	seedStore(t, db, "Corner Shop", owner.ID)
	seedStore(t, db, "Fresh Mart", owner.ID)
	svc := newStoreService(db)

	items, err := svc.List(identOf(owner), "corner", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Corner Shop", items[0].Name)
}

func TestDetailIncludesRatersAndDistribution(t *testing.T) {
	db := openTestDB(t)
	owner := seedUser(t, db, "Owner", "owner@test.dev", entity.RoleStoreOwner)
	rater := seedUser(t, db, "Rater", "rater@test.dev", entity.RoleUser)
	store := seedStore(t, db, "corner-shop", owner.ID)
	svc := newStoreService(db)

	seedRating(t, db, rater.ID, store.ID, 3, time.Now())

	detail, err := svc.Detail(identOf(rater), store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owner", detail.Owner.Name)
	assert.Equal(t, 1, detail.TotalRatings)
	assert.Equal(t, 3.0, detail.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 0}, detail.RatingDistribution)
	require.Len(t, detail.Ratings, 1)
	assert.Equal(t, "Rater", detail.Ratings[0].User.Name)
	require.NotNil(t, detail.UserRating)
	assert.Equal(t, 3, *detail.UserRating)
}
