package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Store{}, &entity.Rating{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret#123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedStore(t *testing.T, db *gorm.DB, name string, ownerID uint) *entity.Store {
	t.Helper()
	store := &entity.Store{Name: name, Email: name + "@stores.test", UserID: ownerID}
	require.NoError(t, db.Create(store).Error)
	return store
}

func seedRating(t *testing.T, db *gorm.DB, userID, storeID uint, value int, at time.Time) *entity.Rating {
	t.Helper()
	rating := &entity.Rating{Rating: value, UserID: userID, StoreID: storeID, CreatedAt: at, UpdatedAt: at}
	require.NoError(t, db.Create(rating).Error)
	return rating
}

func identOf(u *entity.User) authz.Identity {
	return authz.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func newRatingService(db *gorm.DB) *RatingService {
	return NewRatingService(repository.NewRatingRepository(db), repository.NewStoreRepository(db))
}

func newStoreService(db *gorm.DB) *StoreService {
	return NewStoreService(repository.NewStoreRepository(db), repository.NewUserRepository(db))
}
