package apis

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPatchDataRepo implements IPatchDataRepo interface for testing
type MockPatchDataRepo struct {
	mock.Mock
}

func (m *MockPatchDataRepo) ListForEvent(ctx context.Context, eventID string) ([]model.PatchData, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]model.PatchData), args.Error(1)
}

func (m *MockPatchDataRepo) Create(ctx context.Context, patch model.PatchData) (model.PatchData, error) {
	args := m.Called(ctx, patch)
	return args.Get(0).(model.PatchData), args.Error(1)
}

func (m *MockPatchDataRepo) Update(ctx context.Context, id string, changes model.PatchDataChangeset) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockPatchDataRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatchDataRepo) Duplicate(ctx context.Context, id string) (*model.PatchData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatchData), args.Error(1)
}

func TestPatchDataAPI_ListPatchData_Success(t *testing.T) {
	c, rec := testContext(http.MethodGet, "/api/v1/events/event-1/patchdata", "")
	c.SetParamNames("id")
	c.SetParamValues("event-1")

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	expected := []model.PatchData{
		{ID: "patch-1", EventID: "event-1", Hall: "1", Stand: "A-101", Company: "Acme"},
		{ID: "patch-2", EventID: "event-1", Hall: "3", Stand: "C-301", Company: "Globex"},
	}
	mockRepo.On("ListForEvent", mock.Anything, "event-1").Return(expected, nil)

	err := api.listPatchData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response model.BaseResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Message)

	patchesData, err := json.Marshal(response.Data)
	assert.NoError(t, err)

	var actual []model.PatchData
	err = json.Unmarshal(patchesData, &actual)
	assert.NoError(t, err)
	assert.Len(t, actual, 2)
	assert.Equal(t, "patch-1", actual[0].ID)

	mockRepo.AssertExpectations(t)
}

func TestPatchDataAPI_CreatePatchData_Success(t *testing.T) {
	body := `{
		"eventId": "event-1",
		"hall": "1",
		"stand": "A-101",
		"company": "Acme",
		"status": "pending",
		"priority": "normal"
	}`
	c, rec := testContext(http.MethodPost, "/api/v1/patchdata", body)

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	created := model.PatchData{ID: "patch-1", EventID: "event-1", Hall: "1", Stand: "A-101", Company: "Acme"}
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.PatchData) bool {
		return p.ID == "" && p.EventID == "event-1" && p.Status == model.PatchPending
	})).Return(created, nil)

	err := api.createPatchData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	mockRepo.AssertExpectations(t)
}

func TestPatchDataAPI_CreatePatchData_MissingRequiredFields(t *testing.T) {
	body := `{"eventId": "event-1", "hall": "1", "stand": "", "company": "Acme"}`
	c, rec := testContext(http.MethodPost, "/api/v1/patchdata", body)

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	err := api.createPatchData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPatchDataAPI_UpdatePatchData_NotFound(t *testing.T) {
	body := `{"status": "distributed"}`
	c, rec := testContext(http.MethodPatch, "/api/v1/patchdata/no-such-id", body)
	c.SetParamNames("id")
	c.SetParamValues("no-such-id")

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	mockRepo.On("Update", mock.Anything, "no-such-id", mock.Anything).Return(model.ErrNotFound)

	err := api.updatePatchData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mockRepo.AssertExpectations(t)
}

func TestPatchDataAPI_DuplicatePatchData_Success(t *testing.T) {
	c, rec := testContext(http.MethodPost, "/api/v1/patchdata/patch-1/duplicate", "")
	c.SetParamNames("id")
	c.SetParamValues("patch-1")

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	duplicate := &model.PatchData{ID: "patch-2", Stand: "A-101-COPY", Status: model.PatchPending}
	mockRepo.On("Duplicate", mock.Anything, "patch-1").Return(duplicate, nil)

	err := api.duplicatePatchData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A-101-COPY")

	mockRepo.AssertExpectations(t)
}

func TestPatchDataAPI_DuplicatePatchData_SourceMissing(t *testing.T) {
	c, rec := testContext(http.MethodPost, "/api/v1/patchdata/no-such-id/duplicate", "")
	c.SetParamNames("id")
	c.SetParamValues("no-such-id")

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	mockRepo.On("Duplicate", mock.Anything, "no-such-id").Return(nil, nil)

	err := api.duplicatePatchData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "patch data not found")

	mockRepo.AssertExpectations(t)
}

func TestPatchDataAPI_ExportCSV(t *testing.T) {
	c, rec := testContext(http.MethodGet, "/api/v1/events/event-1/patchdata.csv", "")
	c.SetParamNames("id")
	c.SetParamValues("event-1")

	mockRepo := new(MockPatchDataRepo)
	api := NewPatchDataAPI(mockRepo)

	expected := []model.PatchData{
		{ID: "patch-1", EventID: "event-1", Hall: "1", Stand: "A-101", Company: "Acme",
			Status: model.PatchPending, Priority: model.PriorityNormal},
	}
	mockRepo.On("ListForEvent", mock.Anything, "event-1").Return(expected, nil)

	err := api.exportPatchDataCSV(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "patchdata-event-1.csv")

	csvContent := rec.Body.String()
	assert.Contains(t, csvContent, "hall,stand,company")
	assert.Contains(t, csvContent, "1,A-101,Acme")

	mockRepo.AssertExpectations(t)
}
