package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/activ/internal/database"
	"github.com/example/activ/internal/models"
	"github.com/example/activ/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func validRegisterInput(email string) RegisterInput {
	return RegisterInput{
		FullName:    "A B",
		PhoneNumber: "+919999999999",
		Email:       email,
		DateOfBirth: "2000-01-01",
		Gender:      "Male",
		Password:    "longenough1",
		State:       "S",
		District:    "Z",
		Block:       "Y",
		City:        "X",
	}
}

func TestMemberStoreRegister(t *testing.T) {
	t.Run("creates member and credential", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		member, err := s.Register(validRegisterInput("A@B.com"))
		require.NoError(t, err)
		require.NotNil(t, member)

		assert.Equal(t, "a@b.com", member.Email)
		assert.False(t, member.ProfileCompleted)
		assert.NotEqual(t, uuid.Nil, member.ID)

		var cred models.Credential
		require.NoError(t, db.Where("email = ?", "a@b.com").First(&cred).Error)
		assert.True(t, cred.IsActive)
		assert.Nil(t, cred.LastLogin)
		assert.NotEqual(t, "longenough1", cred.PasswordHash)
		assert.True(t, utils.CheckPassword(cred.PasswordHash, "longenough1"))
	})

	t.Run("rejects duplicate email and creates nothing", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		_, err := s.Register(validRegisterInput("a@b.com"))
		require.NoError(t, err)

		_, err = s.Register(validRegisterInput("A@B.COM"))
		assert.ErrorIs(t, err, ErrConflict)

		var members, creds int64
		db.Model(&models.Member{}).Count(&members)
		db.Model(&models.Credential{}).Count(&creds)
		assert.Equal(t, int64(1), members)
		assert.Equal(t, int64(1), creds)
	})

	t.Run("rejects missing required fields with field detail", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		in := validRegisterInput("a@b.com")
		in.FullName = ""
		in.City = ""

		_, err := s.Register(in)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		fields := make([]string, len(ve.Fields))
		for i, f := range ve.Fields {
			fields[i] = f.Field
		}
		assert.Contains(t, fields, "fullName")
		assert.Contains(t, fields, "city")
	})

	t.Run("rejects short password and bad phone", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		in := validRegisterInput("a@b.com")
		in.Password = "short"
		in.PhoneNumber = "0abc"

		_, err := s.Register(in)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 2)
	})
}

func TestMemberStoreLogin(t *testing.T) {
	db := setupTestDB(t)
	s := NewMemberStore(db)

	_, err := s.Register(validRegisterInput("a@b.com"))
	require.NoError(t, err)

	t.Run("succeeds and updates lastLogin", func(t *testing.T) {
		member, err := s.Login("A@B.com", "longenough1")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", member.Email)

		var cred models.Credential
		require.NoError(t, db.Where("email = ?", "a@b.com").First(&cred).Error)
		require.NotNil(t, cred.LastLogin)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := s.Login("missing@b.com", "longenough1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login("a@b.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing credential", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Member{
			FullName: "No Cred", Email: "nocred@b.com", PhoneNumber: "+911111111111",
			DateOfBirth: "1990-01-01", Gender: "Female", State: "S", District: "D", Block: "B", City: "C",
		}).Error)

		_, err := s.Login("nocred@b.com", "whatever1")
		assert.ErrorIs(t, err, ErrInactiveAccount)
	})

	t.Run("inactive credential", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Credential{}).
			Where("email = ?", "a@b.com").
			Update("is_active", false).Error)

		_, err := s.Login("a@b.com", "longenough1")
		assert.ErrorIs(t, err, ErrInactiveAccount)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := s.Login("", "")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 2)
	})
}

func TestMemberStoreListAndSearch(t *testing.T) {
	db := setupTestDB(t)
	s := NewMemberStore(db)

	names := []string{"Asha Patel", "Binod Kumar", "Chitra Devi", "Dinesh Rao", "Esha Singh"}
	for i, name := range names {
		require.NoError(t, db.Create(&models.Member{
			FullName: name, Email: fmt.Sprintf("m%d@b.com", i),
			PhoneNumber: fmt.Sprintf("+91900000000%d", i), DateOfBirth: "1990-01-01",
			Gender: "Other", State: "Bihar", District: "Patna", Block: "B", City: "C",
		}).Error)
	}

	t.Run("pages respect limit", func(t *testing.T) {
		members, total, err := s.List(utils.Pagination{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, members, 2)

		meta := utils.Pagination{Page: 1, Limit: 2}.Meta(total)
		assert.Equal(t, 3, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("last page is short", func(t *testing.T) {
		members, _, err := s.List(utils.Pagination{Page: 3, Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		members, total, err := s.Search("asha", utils.Pagination{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, members, 1)
		assert.Equal(t, "Asha Patel", members[0].FullName)
	})

	t.Run("search matches district", func(t *testing.T) {
		_, total, err := s.Search("PATNA", utils.Pagination{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("search matches phone substring", func(t *testing.T) {
		_, total, err := s.Search("9000000003", utils.Pagination{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("no matches", func(t *testing.T) {
		members, total, err := s.Search("zzz", utils.Pagination{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, members)
	})
}

func TestMemberStoreUpsert(t *testing.T) {
	t.Run("updates whitelisted fields only", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		member, err := s.Register(validRegisterInput("a@b.com"))
		require.NoError(t, err)

		updated, err := s.Upsert(member.ID, map[string]interface{}{
			"fullName":    "New Name",
			"religion":    "Hindu",
			"hackerField": "x",
		})
		require.NoError(t, err)

		assert.Equal(t, "New Name", updated.FullName)
		assert.Equal(t, "Hindu", updated.Religion)
		assert.Equal(t, "a@b.com", updated.Email)
		assert.Equal(t, member.ID, updated.ID)

		var count int64
		db.Model(&models.Member{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("creates a member for an unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		id := uuid.New()
		created, err := s.Upsert(id, map[string]interface{}{
			"fullName": "Fresh Member",
			"email":    "Fresh@B.com",
		})
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, "fresh@b.com", created.Email)

		got, err := s.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, "Fresh Member", got.FullName)
	})

	t.Run("rejects invalid field values", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		member, err := s.Register(validRegisterInput("a@b.com"))
		require.NoError(t, err)

		_, err = s.Upsert(member.ID, map[string]interface{}{"gender": "Unknown"})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestMemberStoreCreate(t *testing.T) {
	db := setupTestDB(t)
	s := NewMemberStore(db)

	payload := map[string]interface{}{
		"fullName": "A B", "email": "c@d.com", "phoneNumber": "+919999999999",
		"dateOfBirth": "2000-01-01", "gender": "Male", "state": "S",
		"district": "Z", "block": "Y", "city": "X",
	}

	t.Run("creates from whitelisted payload", func(t *testing.T) {
		member, err := s.Create(payload)
		require.NoError(t, err)
		assert.Equal(t, "c@d.com", member.Email)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := s.Create(payload)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing required fields are listed", func(t *testing.T) {
		_, err := s.Create(map[string]interface{}{"fullName": "Only Name"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 8)
	})
}

func TestMemberStoreDelete(t *testing.T) {
	t.Run("removes member and credential", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		member, err := s.Register(validRegisterInput("a@b.com"))
		require.NoError(t, err)

		require.NoError(t, s.Delete(member.ID))

		_, err = s.GetByID(member.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		var creds int64
		db.Model(&models.Credential{}).Where("email = ?", "a@b.com").Count(&creds)
		assert.Equal(t, int64(0), creds)
	})

	t.Run("missing credential is tolerated", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		member := &models.Member{
			FullName: "No Cred", Email: "nocred@b.com", PhoneNumber: "+911111111111",
			DateOfBirth: "1990-01-01", Gender: "Male", State: "S", District: "D", Block: "B", City: "C",
		}
		require.NoError(t, db.Create(member).Error)

		assert.NoError(t, s.Delete(member.ID))
	})

	t.Run("unknown member", func(t *testing.T) {
		db := setupTestDB(t)
		s := NewMemberStore(db)

		assert.ErrorIs(t, s.Delete(uuid.New()), ErrNotFound)
	})
}

func TestMemberStoreMarkProfileCompleted(t *testing.T) {
	db := setupTestDB(t)
	s := NewMemberStore(db)

	member, err := s.Register(validRegisterInput("a@b.com"))
	require.NoError(t, err)
	require.False(t, member.ProfileCompleted)

	updated, err := s.MarkProfileCompleted(member.ID)
	require.NoError(t, err)
	assert.True(t, updated.ProfileCompleted)

	got, err := s.GetByID(member.ID)
	require.NoError(t, err)
	assert.True(t, got.ProfileCompleted)

	_, err = s.MarkProfileCompleted(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
