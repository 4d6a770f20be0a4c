package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/database"
	"marseille-immobilier/internal/models"
	"marseille-immobilier/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite test db")
	require.NoError(t, database.Migrate(db), "migrate test schema")
	return db
}

func setupFileStore(t *testing.T) *storage.FileStore {
	t.Helper()

	files, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return files
}

func adminIdentity() auth.Identity {
	return auth.Identity{UserID: 1, Username: "admin"}
}

// uploadFile builds a real multipart.FileHeader the way an HTTP request
// would deliver it.
func uploadFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func validAgencyInput(name string) AgencyInput {
	return AgencyInput{
		Name:     name,
		City:     "Marseille",
		Website:  "example.com",
		Plan:     models.PlanBasic,
		IsActive: true,
	}
}
