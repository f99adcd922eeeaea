package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/assessment"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/cache"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/repository"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAssessmentComplete = errors.New("assessment already completed")
	ErrFlowNotFinished    = errors.New("questionnaire still has eligible questions")
	ErrQuestionNotInFlow  = errors.New("question is not the current eligible question")
)

// AssessmentService drives the rider session lifecycle: start, answer-by-answer
// flow, completion and profile persistence.
type AssessmentService struct {
	bank           *assessment.Bank
	assessmentRepo repository.AssessmentRepo
	profileRepo    repository.ProfileRepo
	sessionCache   cache.SessionCache
	statsCache     cache.StatsCache
	authSvc        *AuthService
	broadcaster    Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	bank *assessment.Bank,
	assessmentRepo repository.AssessmentRepo,
	profileRepo repository.ProfileRepo,
	sessionCache cache.SessionCache,
	statsCache cache.StatsCache,
	authSvc *AuthService,
) *AssessmentService {
	return &AssessmentService{
		bank:           bank,
		assessmentRepo: assessmentRepo,
		profileRepo:    profileRepo,
		sessionCache:   sessionCache,
		statsCache:     statsCache,
		authSvc:        authSvc,
	}
}

// SetBroadcaster sets the broadcaster for live admin events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a rider session and returns the first question
func (s *AssessmentService) Start(ctx context.Context, riderID string) (*model.StartAssessmentResponse, error) {
	if riderID == "" {
		riderID = "rider_" + uuid.New().String()[:8]
	}

	a := &model.Assessment{
		RiderID:   riderID,
		Status:    model.AssessmentInProgress,
		Answers:   model.AnswerSet{},
		StartedAt: time.Now(),
	}
	if err := s.assessmentRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	if err := s.sessionCache.SetAnswers(ctx, a.ID, a.Answers); err != nil {
		return nil, fmt.Errorf("cache session: %w", err)
	}

	token, err := s.authSvc.GenerateRiderToken(a.ID, riderID)
	if err != nil {
		return nil, fmt.Errorf("generate rider token: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins("assessment_started", map[string]interface{}{
			"assessmentId": a.ID,
			"riderId":      riderID,
		})
	}

	return &model.StartAssessmentResponse{
		AssessmentID:  a.ID,
		Token:         token,
		FirstQuestion: assessment.NextQuestion(s.bank, a.Answers),
	}, nil
}

// CurrentQuestion returns the next eligible unanswered question, nil when done
func (s *AssessmentService) CurrentQuestion(ctx context.Context, assessmentID string) (*model.Question, error) {
	answers, err := s.answers(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return assessment.NextQuestion(s.bank, answers), nil
}

// SubmitAnswer validates and records one answer, returning the next question
func (s *AssessmentService) SubmitAnswer(ctx context.Context, assessmentID string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != model.AssessmentInProgress {
		return nil, ErrAssessmentComplete
	}

	q := s.bank.Question(req.QuestionID)
	if q == nil {
		return nil, fmt.Errorf("unknown question %q", req.QuestionID)
	}
	current := assessment.NextQuestion(s.bank, a.Answers)
	if current == nil || current.ID != q.ID {
		return nil, ErrQuestionNotInFlow
	}

	value := model.AnswerValue{
		Selected:     req.Selected,
		SelectedMany: req.SelectedMany,
		Text:         req.Text,
	}
	if err := assessment.ValidateAnswerShape(q, value); err != nil {
		return nil, err
	}

	a.Answers[q.ID] = value
	if err := s.assessmentRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("persist answer: %w", err)
	}
	if err := s.sessionCache.SetAnswers(ctx, a.ID, a.Answers); err != nil {
		return nil, fmt.Errorf("cache answers: %w", err)
	}

	next := assessment.NextQuestion(s.bank, a.Answers)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins("assessment_progress", map[string]interface{}{
			"assessmentId": a.ID,
			"riderId":      a.RiderID,
			"answered":     len(a.Answers),
			"completed":    next == nil,
		})
	}

	return &model.SubmitAnswerResponse{
		NextQuestion: next,
		Completed:    next == nil,
		Answered:     len(a.Answers),
	}, nil
}

// Complete scores the finished answer set, persists the profile and updates
// the distribution counters
func (s *AssessmentService) Complete(ctx context.Context, assessmentID string) (*model.Profile, error) {
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if a.Status == model.AssessmentCompleted {
		return a.Profile, nil
	}
	if assessment.NextQuestion(s.bank, a.Answers) != nil {
		return nil, ErrFlowNotFinished
	}

	profile := assessment.ScoreAndClassify(s.bank, a.Answers)
	profile.AssessmentID = a.ID
	profile.RiderID = a.RiderID
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}

	now := time.Now()
	a.Status = model.AssessmentCompleted
	a.CompletedAt = &now
	a.Profile = profile
	if err := s.assessmentRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("finalize assessment: %w", err)
	}
	if err := s.statsCache.RecordProfile(ctx, profile); err != nil {
		// Counters are advisory; the profile itself is already durable.
		log.Printf("stats update failed: %v", err)
	}
	// Best effort, the key has a TTL anyway.
	_ = s.sessionCache.Delete(ctx, a.ID)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins("assessment_completed", map[string]interface{}{
			"assessmentId": a.ID,
			"riderId":      a.RiderID,
			"archetype":    profile.Archetype,
			"dangerLevel":  profile.DangerLevel,
		})
	}

	return profile, nil
}

// GetProfile fetches the persisted result for a completed assessment
func (s *AssessmentService) GetProfile(ctx context.Context, assessmentID string) (*model.Profile, error) {
	p, err := s.profileRepo.GetByAssessmentID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *AssessmentService) load(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	a, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	// Prefer the cached answer set when present; it is the hot copy.
	if cached, err := s.sessionCache.GetAnswers(ctx, assessmentID); err == nil && cached != nil {
		a.Answers = cached
	}
	if a.Answers == nil {
		a.Answers = model.AnswerSet{}
	}
	return a, nil
}

func (s *AssessmentService) answers(ctx context.Context, assessmentID string) (model.AnswerSet, error) {
	if cached, err := s.sessionCache.GetAnswers(ctx, assessmentID); err == nil && cached != nil {
		return cached, nil
	}
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return a.Answers, nil
}
