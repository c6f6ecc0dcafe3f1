package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commondto "github.com/codearena/arena-admin/internal/application/common/dto"
	plandto "github.com/codearena/arena-admin/internal/application/plan/dto"
	planUsecases "github.com/codearena/arena-admin/internal/application/plan/usecases"
	"github.com/codearena/arena-admin/internal/interfaces/http/handlers/testutil"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/sdk/platform"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListPlansUC struct {
	query  planUsecases.ListPlansQuery
	result *commondto.ListResult[plandto.PlanDTO]
	err    error
}

func (m *mockListPlansUC) Execute(ctx context.Context, query planUsecases.ListPlansQuery) (*commondto.ListResult[plandto.PlanDTO], error) {
	m.query = query
	return m.result, m.err
}

type mockGetPlanUC struct {
	result *plandto.PlanDTO
	err    error
}

func (m *mockGetPlanUC) Execute(ctx context.Context, id string) (*plandto.PlanDTO, error) {
	return m.result, m.err
}

type mockCreatePlanUC struct {
	cmd    planUsecases.PlanCommand
	result *plandto.PlanDTO
	err    error
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd planUsecases.PlanCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	cmd    planUsecases.UpdatePlanCommand
	result *plandto.PlanDTO
	err    error
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd planUsecases.UpdatePlanCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeletePlanUC struct {
	id  string
	err error
}

func (m *mockDeletePlanUC) Execute(ctx context.Context, id string) error {
	m.id = id
	return m.err
}

type mockSetPlanActiveUC struct {
	cmd    planUsecases.SetPlanActiveCommand
	result *plandto.PlanDTO
	err    error
}

func (m *mockSetPlanActiveUC) Execute(ctx context.Context, cmd planUsecases.SetPlanActiveCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockReorderFeaturesUC struct {
	cmd    planUsecases.ReorderFeaturesCommand
	result []platform.SubscriptionFeature
	err    error
}

func (m *mockReorderFeaturesUC) Execute(ctx context.Context, cmd planUsecases.ReorderFeaturesCommand) ([]platform.SubscriptionFeature, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateFeatureUC struct {
	cmd    planUsecases.UpdateFeatureCommand
	result *platform.SubscriptionFeature
	err    error
}

func (m *mockUpdateFeatureUC) Execute(ctx context.Context, cmd planUsecases.UpdateFeatureCommand) (*platform.SubscriptionFeature, error) {
	m.cmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestPlanDTO() *plandto.PlanDTO {
	dto := plandto.ToPlanDTO(platform.SubscriptionPlan{
		ID:           "plan-1",
		Names:        map[string]string{"en": "Pro"},
		Price:        "9.99",
		Currency:     "USD",
		DurationDays: 30,
		Active:       true,
	})
	return &dto
}

type planHandlerMocks struct {
	list     *mockListPlansUC
	get      *mockGetPlanUC
	create   *mockCreatePlanUC
	update   *mockUpdatePlanUC
	del      *mockDeletePlanUC
	active   *mockSetPlanActiveUC
	updateFt *mockUpdateFeatureUC
	reorder  *mockReorderFeaturesUC
}

func newTestPlanHandler() (*PlanHandler, *planHandlerMocks) {
	m := &planHandlerMocks{
		list:     &mockListPlansUC{},
		get:      &mockGetPlanUC{},
		create:   &mockCreatePlanUC{},
		update:   &mockUpdatePlanUC{},
		del:      &mockDeletePlanUC{},
		active:   &mockSetPlanActiveUC{},
		updateFt: &mockUpdateFeatureUC{},
		reorder:  &mockReorderFeaturesUC{},
	}
	h := NewPlanHandler(m.list, m.get, m.create, m.update, m.del, m.active,
		nil, m.updateFt, nil, m.reorder, testutil.NewMockLogger())
	return h, m
}

// =====================================================================
// Tests
// =====================================================================

func TestPlanHandler_ListPlans_ParsesFilters(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.list.result = &commondto.ListResult[plandto.PlanDTO]{
		Items: []plandto.PlanDTO{*createTestPlanDTO()}, Total: 1, Page: 2, PageSize: 5,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/plans", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "5", "active": "true", "search": " pro "})

	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, m.list.query.Page)
	assert.Equal(t, 5, m.list.query.PageSize)
	assert.Equal(t, "pro", m.list.query.Search)
	require.NotNil(t, m.list.query.Active)
	assert.True(t, *m.list.query.Active)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(1), data.Total)
	assert.Equal(t, 2, data.Page)
}

func TestPlanHandler_ListPlans_InvalidActiveFilter(t *testing.T) {
	handler, _ := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/plans", nil)
	testutil.SetQueryParams(c, map[string]string{"active": "maybe"})

	handler.ListPlans(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_CreatePlan_Success(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.create.result = createTestPlanDTO()

	body := map[string]any{
		"names":         map[string]string{"en": "Pro"},
		"price":         "9.99",
		"currency":      "USD",
		"duration_days": 30,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/plans", body)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "9.99", m.create.cmd.Price)
	assert.Equal(t, "Pro", m.create.cmd.Names["en"])

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	var plan plandto.PlanDTO
	require.NoError(t, json.Unmarshal(resp.Data, &plan))
	assert.Equal(t, "Pro", plan.DisplayName)
	assert.Contains(t, plan.PriceDisplay, "9.99")
}

func TestPlanHandler_CreatePlan_MalformedBody(t *testing.T) {
	handler, _ := newTestPlanHandler()

	c, w := testutil.NewRawContext(http.MethodPost, "/api/admin/plans", `{"names":`)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestPlanHandler_CreatePlan_UseCaseError(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.create.err = errors.NewValidationError("price must be a decimal with at most two places")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/plans", map[string]any{"price": "1.234"})

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_UpdatePlan_TakesIDFromPath(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.update.result = createTestPlanDTO()

	body := map[string]any{"id": "ignored", "names": map[string]string{"en": "Pro"}, "price": "9.99", "currency": "USD", "duration_days": 30}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/plans/plan-1", body)
	testutil.SetURLParam(c, "id", "plan-1")

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan-1", m.update.cmd.ID)
}

func TestPlanHandler_GetPlan_NotFound(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.get.err = errors.NewNotFoundError("plan not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/plans/missing", nil)
	testutil.SetURLParam(c, "id", "missing")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanHandler_DeletePlan(t *testing.T) {
	handler, m := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/plans/plan-1", nil)
	testutil.SetURLParam(c, "id", "plan-1")

	handler.DeletePlan(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "plan-1", m.del.id)
}

func TestPlanHandler_UpdatePlanStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantCode   int
		wantActive bool
	}{
		{"activate", "active", http.StatusOK, true},
		{"deactivate", "inactive", http.StatusOK, false},
		{"unknown status", "archived", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newTestPlanHandler()
			m.active.result = createTestPlanDTO()

			c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/plans/plan-1/status", map[string]string{"status": tt.status})
			testutil.SetURLParam(c, "id", "plan-1")

			handler.UpdatePlanStatus(c)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "plan-1", m.active.cmd.ID)
				assert.Equal(t, tt.wantActive, m.active.cmd.Active)
			}
		})
	}
}

func TestPlanHandler_UpdateFeature_PathParams(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.updateFt.result = &platform.SubscriptionFeature{ID: "f1", PlanID: "plan-1", Key: "ai_hints"}

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/plans/plan-1/features/f1", map[string]string{"key": "ai_hints", "value": "10"})
	testutil.SetURLParam(c, "id", "plan-1")
	testutil.SetURLParam(c, "feature_id", "f1")

	handler.UpdateFeature(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan-1", m.updateFt.cmd.PlanID)
	assert.Equal(t, "f1", m.updateFt.cmd.FeatureID)
	assert.Equal(t, "10", m.updateFt.cmd.Value)
}

func TestPlanHandler_ReorderFeatures_Rollback(t *testing.T) {
	handler, m := newTestPlanHandler()
	m.reorder.err = errors.NewConflictError("feature order changed on the platform")

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/plans/plan-1/features/order", map[string][]string{"ids": {"f2", "f1"}})
	testutil.SetURLParam(c, "id", "plan-1")

	handler.ReorderFeatures(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, []string{"f2", "f1"}, m.reorder.cmd.IDs)
	assert.Equal(t, "plan-1", m.reorder.cmd.PlanID)
}
