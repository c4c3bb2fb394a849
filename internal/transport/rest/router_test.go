package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"milletsurvey/internal/catalog"
	"milletsurvey/internal/model"
	"milletsurvey/internal/service"
)

type memoryRepo struct {
	mu        sync.Mutex
	responses []*model.SurveyResponse
}

func (m *memoryRepo) Create(ctx context.Context, response *model.SurveyResponse) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, response)
	return response.ID, nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*model.SurveyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.responses {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) List(ctx context.Context) ([]*model.SurveyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.SurveyResponse{}, m.responses...), nil
}

func (m *memoryRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type memoryDrafts struct {
	mu     sync.Mutex
	drafts map[string]model.InterviewState
}

func (m *memoryDrafts) Save(ctx context.Context, state model.InterviewState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.drafts == nil {
		m.drafts = make(map[string]model.InterviewState)
	}
	m.drafts[state.SessionID] = state
	return nil
}

func (m *memoryDrafts) Get(ctx context.Context, sessionID string) (*model.InterviewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.drafts[sessionID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (m *memoryDrafts) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, sessionID)
	return nil
}

type memorySnapshots struct {
	snapshot *model.DashboardSnapshot
}

func (m *memorySnapshots) Get(ctx context.Context) (*model.DashboardSnapshot, error) {
	return m.snapshot, nil
}

func (m *memorySnapshots) Set(ctx context.Context, snapshot *model.DashboardSnapshot) error {
	m.snapshot = snapshot
	return nil
}

func (m *memorySnapshots) Invalidate(ctx context.Context) error {
	m.snapshot = nil
	return nil
}

func testRouter(t *testing.T) (http.Handler, *service.AuthService) {
	t.Helper()
	logger := zap.NewNop()
	cat := catalog.Default()
	repo := &memoryRepo{}
	authSvc := service.NewAuthService("1677", "test-secret")

	return NewRouter(&Container{
		AuthService:      authSvc,
		InterviewService: service.NewInterviewService(cat, repo, &memoryDrafts{}, "Tester", logger),
		AnalyticsService: service.NewAnalyticsService(repo, &memorySnapshots{}, cat, []string{"water"}, logger),
		ReportService:    service.NewReportService(repo, cat),
		ResponseRepo:     repo,
		Catalog:          cat,
		Logger:           logger,
	}), authSvc
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", "", model.LoginRequest{AccessCode: "1677"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	rec = doJSON(t, router, http.MethodPost, "/v1/auth/login", "", model.LoginRequest{AccessCode: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, authSvc := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login, err := authSvc.Login("1677")
	require.NoError(t, err)

	rec = doJSON(t, router, http.MethodGet, "/v1/dashboard", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot model.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Zero(t, snapshot.TotalResponses)
}

func TestInterviewFlowOverHTTP(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/interviews", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var state model.InterviewState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.NotEmpty(t, state.SessionID)
	assert.Equal(t, model.InterviewInProgress, state.Status)
	assert.Equal(t, 0, state.Position)

	rec = doJSON(t, router, http.MethodPost, "/v1/interviews/"+state.SessionID+"/answers", "",
		map[string]any{"questionId": "ward_location", "value": "North"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "North", state.Answers.String("ward_location"))

	rec = doJSON(t, router, http.MethodPost, "/v1/interviews/"+state.SessionID+"/next", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 1, state.Position)

	rec = doJSON(t, router, http.MethodPost, "/v1/interviews/"+state.SessionID+"/previous", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 0, state.Position)

	rec = doJSON(t, router, http.MethodGet, "/v1/interviews/unknown-session", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/interviews/"+state.SessionID+"/answers", "",
		map[string]any{"questionId": "no_such_question", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoint(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/catalog", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []model.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Greater(t, len(body.Questions), 30)
}
