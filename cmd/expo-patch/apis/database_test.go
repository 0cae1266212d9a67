package apis

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatabaseState implements IDatabaseState interface for testing
type MockDatabaseState struct {
	mock.Mock
}

func (m *MockDatabaseState) SwitchDatabase(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

func (m *MockDatabaseState) CurrentPath() string {
	args := m.Called()
	return args.String(0)
}

func TestDatabaseAPI_CreateDatabase_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")
	body := fmt.Sprintf(`{"path": %q}`, path)
	c, rec := testContext(http.MethodPost, "/api/v1/database/new", body)

	mockState := new(MockDatabaseState)
	api := NewDatabaseAPI(mockState)

	mockState.On("SwitchDatabase", mock.Anything, path).Return(path, nil)

	err := api.createDatabase(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), path)

	mockState.AssertExpectations(t)
}

func TestDatabaseAPI_CreateDatabase_MissingPath(t *testing.T) {
	c, rec := testContext(http.MethodPost, "/api/v1/database/new", `{}`)

	mockState := new(MockDatabaseState)
	api := NewDatabaseAPI(mockState)

	err := api.createDatabase(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "path is required")

	mockState.AssertNotCalled(t, "SwitchDatabase", mock.Anything, mock.Anything)
}

func TestDatabaseAPI_OpenDatabase_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.db")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	body := fmt.Sprintf(`{"path": %q}`, path)
	c, rec := testContext(http.MethodPost, "/api/v1/database/open", body)

	mockState := new(MockDatabaseState)
	api := NewDatabaseAPI(mockState)

	mockState.On("SwitchDatabase", mock.Anything, path).Return(path, nil)

	err := api.openDatabase(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	mockState.AssertExpectations(t)
}

func TestDatabaseAPI_OpenDatabase_FileMissing(t *testing.T) {
	body := fmt.Sprintf(`{"path": %q}`, filepath.Join(t.TempDir(), "nope.db"))
	c, rec := testContext(http.MethodPost, "/api/v1/database/open", body)

	mockState := new(MockDatabaseState)
	api := NewDatabaseAPI(mockState)

	err := api.openDatabase(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "does not exist")

	mockState.AssertNotCalled(t, "SwitchDatabase", mock.Anything, mock.Anything)
}

func TestDatabaseAPI_OpenDatabase_StorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.db")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	body := fmt.Sprintf(`{"path": %q}`, path)
	c, rec := testContext(http.MethodPost, "/api/v1/database/open", body)

	mockState := new(MockDatabaseState)
	api := NewDatabaseAPI(mockState)

	mockState.On("SwitchDatabase", mock.Anything, path).
		Return("", model.ErrSchemaMismatch)

	err := api.openDatabase(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	mockState.AssertExpectations(t)
}

func TestDatabaseAPI_CurrentPath(t *testing.T) {
	c, rec := testContext(http.MethodGet, "/api/v1/database/path", "")

	mockState := new(MockDatabaseState)
	api := NewDatabaseAPI(mockState)

	mockState.On("CurrentPath").Return("/home/user/.config/expo-patch/events.db")

	err := api.currentPath(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "events.db")

	mockState.AssertExpectations(t)
}
