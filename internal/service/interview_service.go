package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"milletsurvey/internal/cache"
	"milletsurvey/internal/catalog"
	"milletsurvey/internal/engine"
	"milletsurvey/internal/model"
	"milletsurvey/internal/repository"
)

// wardQuestionID is the catalog question whose answer becomes the record's
// ward field.
const wardQuestionID = "ward_location"

var ErrSessionNotFound = errors.New("interview session not found")

// InterviewService owns the live interview sessions: one flow engine
// instance per enumerator session, draft persistence in Redis, and the
// submission adapter that turns finished answers into a stored record.
type InterviewService struct {
	mu       sync.RWMutex
	sessions map[string]*engine.Interview

	catalog   *catalog.Catalog
	drafts    cache.DraftCache
	submitter *submissionAdapter
	logger    *zap.Logger
}

// NewInterviewService creates a new interview service
func NewInterviewService(
	cat *catalog.Catalog,
	responseRepo repository.ResponseRepo,
	drafts cache.DraftCache,
	enumerator string,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		sessions: make(map[string]*engine.Interview),
		catalog:  cat,
		drafts:   drafts,
		submitter: &submissionAdapter{
			responseRepo: responseRepo,
			enumerator:   enumerator,
		},
		logger: logger,
	}
}

// Start opens a new interview session and returns its initial state.
func (s *InterviewService) Start(ctx context.Context) (model.InterviewState, error) {
	sessionID := uuid.New().String()
	interview := engine.New(s.catalog, s.submitter)

	s.mu.Lock()
	s.sessions[sessionID] = interview
	s.mu.Unlock()

	state := interview.Snapshot(sessionID)
	s.saveDraft(ctx, state)
	return state, nil
}

// Get returns the current state of a session, restoring it from the draft
// cache when the in-memory instance is gone (e.g. after a restart).
func (s *InterviewService) Get(ctx context.Context, sessionID string) (model.InterviewState, error) {
	interview, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.InterviewState{}, err
	}
	return interview.Snapshot(sessionID), nil
}

// Answer records one answer value and returns the updated state.
func (s *InterviewService) Answer(ctx context.Context, sessionID, questionID string, value any) (model.InterviewState, error) {
	interview, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.InterviewState{}, err
	}
	if err := interview.Answer(questionID, value); err != nil {
		return model.InterviewState{}, err
	}

	state := interview.Snapshot(sessionID)
	s.saveDraft(ctx, state)
	return state, nil
}

// Next advances the session, submitting at the end of the questionnaire.
// A submission failure is returned alongside the unchanged state so the
// enumerator can retry without losing answers.
func (s *InterviewService) Next(ctx context.Context, sessionID string) (model.InterviewState, error) {
	interview, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.InterviewState{}, err
	}

	submitted, err := interview.Next(ctx)
	state := interview.Snapshot(sessionID)
	if err != nil {
		return state, err
	}

	if submitted {
		if err := s.drafts.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("failed to drop interview draft", zap.String("session", sessionID), zap.Error(err))
		}
		return state, nil
	}

	s.saveDraft(ctx, state)
	return state, nil
}

// Previous steps the session back one question.
func (s *InterviewService) Previous(ctx context.Context, sessionID string) (model.InterviewState, error) {
	interview, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.InterviewState{}, err
	}

	interview.Previous()
	state := interview.Snapshot(sessionID)
	s.saveDraft(ctx, state)
	return state, nil
}

func (s *InterviewService) lookup(ctx context.Context, sessionID string) (*engine.Interview, error) {
	s.mu.RLock()
	interview, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return interview, nil
	}

	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		s.logger.Warn("draft cache read failed", zap.String("session", sessionID), zap.Error(err))
		return nil, ErrSessionNotFound
	}
	if draft == nil {
		return nil, ErrSessionNotFound
	}

	interview = engine.Restore(s.catalog, s.submitter, *draft)
	s.mu.Lock()
	// Another request may have restored it in the meantime; keep the first.
	if existing, ok := s.sessions[sessionID]; ok {
		interview = existing
	} else {
		s.sessions[sessionID] = interview
	}
	s.mu.Unlock()
	return interview, nil
}

// saveDraft persists the session snapshot; draft loss is tolerable, so
// failures are logged and swallowed.
func (s *InterviewService) saveDraft(ctx context.Context, state model.InterviewState) {
	if err := s.drafts.Save(ctx, state); err != nil {
		s.logger.Warn("failed to save interview draft", zap.String("session", state.SessionID), zap.Error(err))
	}
}

// submissionAdapter packages final answers into a SurveyResponse and writes
// it to the record store exactly once per call.
type submissionAdapter struct {
	responseRepo repository.ResponseRepo
	enumerator   string
}

func (a *submissionAdapter) Submit(ctx context.Context, answers model.AnswerMap) (string, error) {
	now := time.Now().UTC()

	ward := answers.String(wardQuestionID)
	if ward == "" {
		ward = "Unknown"
	}

	response := &model.SurveyResponse{
		ID:         "SR-" + uuid.New().String()[:8],
		Date:       now,
		Ward:       ward,
		Enumerator: a.enumerator,
		FarmerID:   farmerID(now),
		Answers:    answers.Sanitize(),
		Status:     model.ResponseSubmitted,
	}

	return a.responseRepo.Create(ctx, response)
}

// farmerID derives the short display id printed on the dashboard table.
func farmerID(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return "F-" + millis[len(millis)-4:]
}
