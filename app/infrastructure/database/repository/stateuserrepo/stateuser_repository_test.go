package stateuserrepo_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"menlo.ai/state-user-api/app/domain/stateuser"
	"menlo.ai/state-user-api/app/infrastructure/database"
	"menlo.ai/state-user-api/app/infrastructure/database/dbschema"
	"menlo.ai/state-user-api/app/infrastructure/database/repository/stateuserrepo"
	"menlo.ai/state-user-api/app/infrastructure/database/repository/transaction"
	"menlo.ai/state-user-api/app/utils/ptr"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "state_user.sqlite")), database.GormConfig())
	require.NoError(t, err)
	require.NoError(t, database.NewDBMigrator(db).Migrate())
	return db
}

func TestFindByAddress(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&dbschema.User{
		Address:         "0xabc",
		TwitterUsername: ptr.ToString("bob"),
	}).Error)
	repo := stateuserrepo.NewStateUserGormRepository(transaction.NewDatabase(db))

	user, err := repo.FindByAddress(context.Background(), "0xabc")
	require.NoError(t, err)

	assert.Equal(t, "0xabc", user.Address)
	assert.Nil(t, user.Image)
	assert.Equal(t, "bob", ptr.FromString(user.Username))
}

func TestFindByAddressNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := stateuserrepo.NewStateUserGormRepository(transaction.NewDatabase(db))

	user, err := repo.FindByAddress(context.Background(), "0xmissing")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, stateuser.ErrUserNotFound)
}

func TestFindByAddressIgnoresSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	row := &dbschema.User{Address: "0xgone"}
	require.NoError(t, db.Create(row).Error)
	require.NoError(t, db.Delete(row).Error)
	repo := stateuserrepo.NewStateUserGormRepository(transaction.NewDatabase(db))

	_, err := repo.FindByAddress(context.Background(), "0xgone")

	assert.ErrorIs(t, err, stateuser.ErrUserNotFound)
}

func TestUpsertNormalizesAndUpdates(t *testing.T) {
	db := setupTestDB(t)
	repo := stateuserrepo.NewStateUserGormRepository(transaction.NewDatabase(db))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &stateuser.StateUser{Address: "0xABC", Username: ptr.ToString("bob")}))
	require.NoError(t, repo.Upsert(ctx, &stateuser.StateUser{
		Address:  "0xabc",
		Image:    ptr.ToString("https://pbs.twimg.com/bob.png"),
		Username: ptr.ToString("bobby"),
	}))

	var count int64
	require.NoError(t, db.Model(&dbschema.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	user, err := repo.FindByAddress(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "bobby", ptr.FromString(user.Username))
	assert.Equal(t, "https://pbs.twimg.com/bob.png", ptr.FromString(user.Image))
}

func TestUpsertInsideRolledBackTransaction(t *testing.T) {
	db := setupTestDB(t)
	txdb := transaction.NewDatabase(db)
	repo := stateuserrepo.NewStateUserGormRepository(txdb)
	ctx := context.Background()

	err := txdb.InTx(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, &stateuser.StateUser{Address: "0xtx"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = repo.FindByAddress(ctx, "0xtx")
	assert.ErrorIs(t, err, stateuser.ErrUserNotFound)
}

func TestMigrateLeavesMixedCaseRowsUntouched(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mixed.sqlite")), database.GormConfig())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dbschema.User{}))
	require.NoError(t, db.Create(&dbschema.User{Address: "0xABC", TwitterUsername: ptr.ToString("upper")}).Error)
	require.NoError(t, db.Create(&dbschema.User{Address: "0xabc", TwitterUsername: ptr.ToString("lower")}).Error)

	require.NoError(t, database.NewDBMigrator(db).Migrate())

	var addresses []string
	require.NoError(t, db.Model(&dbschema.User{}).Order("address").Pluck("address", &addresses).Error)
	assert.Equal(t, []string{"0xABC", "0xabc"}, addresses)

	repo := stateuserrepo.NewStateUserGormRepository(transaction.NewDatabase(db))
	user, err := repo.FindByAddress(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "lower", ptr.FromString(user.Username))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, database.NewDBMigrator(db).Migrate())

	var count int64
	require.NoError(t, db.Model(&database.DatabaseMigration{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
