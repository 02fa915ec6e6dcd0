package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/waveforge/waveforge/app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Reseller{},
		&models.ResellerCode{},
		&models.ProductGrant{},
	))
	return db
}

func seedCode(t *testing.T, db *gorm.DB) *models.ResellerCode {
	t.Helper()

	price := 49.0
	product := models.Product{Name: "Tape Saturator", Slug: "tape-saturator", Category: "effect", Status: models.ProductStatusActive, Price: &price}
	require.NoError(t, db.Create(&product).Error)

	reseller := models.Reseller{Name: "Plugin Depot", Active: true}
	require.NoError(t, db.Create(&reseller).Error)

	code := models.ResellerCode{ResellerID: reseller.ID, ProductID: product.ID, Code: "TESTCODE0001"}
	require.NoError(t, db.Create(&code).Error)
	return &code
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, Password: "x", Role: models.ROLE_USER, Status: models.STATUS_ACTIVE}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestRedeemCodeIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	repo := NewResellerRepository(db)

	code := seedCode(t, db)
	first := seedUser(t, db, "first@example.com")
	second := seedUser(t, db, "second@example.com")

	grant := &models.ProductGrant{
		UserID:         first.ID,
		ProductID:      code.ProductID,
		Source:         models.GrantSourceRedeem,
		ResellerCodeID: &code.ID,
	}
	require.NoError(t, repo.RedeemCode(code.ID, first.ID, grant))

	var stored models.ResellerCode
	require.NoError(t, db.First(&stored, "id = ?", code.ID).Error)
	assert.True(t, stored.IsRedeemed())
	require.NotNil(t, stored.RedeemedBy)
	assert.Equal(t, first.ID, *stored.RedeemedBy)

	// a racing second redemption must lose, even though it read the code
	// as unredeemed before the first one committed
	lateGrant := &models.ProductGrant{
		UserID:         second.ID,
		ProductID:      code.ProductID,
		Source:         models.GrantSourceRedeem,
		ResellerCodeID: &code.ID,
	}
	err := repo.RedeemCode(code.ID, second.ID, lateGrant)
	assert.ErrorIs(t, err, ErrCodeAlreadyRedeemed)

	var grants int64
	require.NoError(t, db.Model(&models.ProductGrant{}).Where("reseller_code_id = ?", code.ID).Count(&grants).Error)
	assert.EqualValues(t, 1, grants)
}

func TestRedeemCodeRollsBackClaimWhenGrantFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewResellerRepository(db)

	code := seedCode(t, db)
	user := seedUser(t, db, "owner@example.com")

	// existing grant trips the (user_id, product_id) unique index
	existing := models.ProductGrant{UserID: user.ID, ProductID: code.ProductID, Source: models.GrantSourceAdmin}
	require.NoError(t, db.Create(&existing).Error)

	grant := &models.ProductGrant{
		UserID:         user.ID,
		ProductID:      code.ProductID,
		Source:         models.GrantSourceRedeem,
		ResellerCodeID: &code.ID,
	}
	err := repo.RedeemCode(code.ID, user.ID, grant)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCodeAlreadyRedeemed)

	// the claim must not survive the failed grant
	var stored models.ResellerCode
	require.NoError(t, db.First(&stored, "id = ?", code.ID).Error)
	assert.False(t, stored.IsRedeemed())
}
