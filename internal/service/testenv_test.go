package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/repo"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
		return nil
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.NailSizeOption{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.TokenBlocklist{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return repo.New(initTestDB(t))
}

func createTestProduct(t *testing.T, rp *repo.GormRepo, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, QuantityAvailable: stock}
	require.NoError(t, rp.DB.Create(&product).Error)
	return &product
}

func createTestSizeOption(t *testing.T, rp *repo.GormRepo, name string) *models.NailSizeOption {
	t.Helper()
	option := models.NailSizeOption{Name: name}
	require.NoError(t, rp.DB.Create(&option).Error)
	return &option
}

func createTestUser(t *testing.T, rp *repo.GormRepo, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, rp.DB.Create(&user).Error)
	return &user
}
