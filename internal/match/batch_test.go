package match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jordanhope/matchengine/internal/types"
)

// fakeProfileStore serves a single profile
type fakeProfileStore struct {
	profile *types.CandidateProfile
	err     error
}

func (s *fakeProfileStore) GetCandidateProfile(_ context.Context, _ uuid.UUID) (*types.CandidateProfile, error) {
	return s.profile, s.err
}

// fakeJobStore serves a fixed posting list
type fakeJobStore struct {
	jobs []types.JobPosting
	err  error
}

func (s *fakeJobStore) GetJobPosting(_ context.Context, jobID uuid.UUID) (*types.JobPosting, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			return &s.jobs[i], nil
		}
	}
	return nil, nil
}

func (s *fakeJobStore) ListOpenJobs(_ context.Context, _ int) ([]types.JobPosting, error) {
	return s.jobs, s.err
}

// fakeMatchStore records upserts with injectable per-match failures
type fakeMatchStore struct {
	upserted []types.JobMatch
	failFor  map[string]error
}

func (s *fakeMatchStore) UpsertJobMatch(_ context.Context, match *types.JobMatch) error {
	if err := s.failFor[match.ID]; err != nil {
		return err
	}
	s.upserted = append(s.upserted, *match)
	return nil
}

func (s *fakeMatchStore) ListJobMatches(_ context.Context, _ uuid.UUID) ([]types.JobMatch, error) {
	return s.upserted, nil
}

// fakeNotifier records emitted notifications
type fakeNotifier struct {
	notifications []fakeNotification
	err           error
}

type fakeNotification struct {
	userID  uuid.UUID
	kind    string
	title   string
	content string
	data    map[string]any
}

func (n *fakeNotifier) Notify(_ context.Context, userID uuid.UUID, kind, title, content string, data map[string]any) error {
	if n.err != nil {
		return n.err
	}
	n.notifications = append(n.notifications, fakeNotification{userID, kind, title, content, data})
	return nil
}

func batchCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:                uuid.New(),
		Skills:            []string{"go", "sql", "docker"},
		ExperienceYears:   8,
		Location:          "Zurich",
		Remote:            true,
		SalaryExpectation: &types.SalaryRange{Min: 100000, Max: 120000},
	}
}

// strongJob scores 60: full skill ratio plus all three factor bonuses
func strongJob(title, company string) types.JobPosting {
	return types.JobPosting{
		ID:           uuid.New(),
		Title:        title,
		Company:      company,
		Skills:       []string{"go", "sql", "docker"},
		Requirements: []string{"go"},
		Location:     "Zurich",
		Salary:       &types.SalaryRange{Min: 100000, Max: 120000},
	}
}

// weakJob shares nothing with the candidate and falls below the relevance floor
func weakJob() types.JobPosting {
	return types.JobPosting{
		ID:       uuid.New(),
		Title:    "Marketing Lead",
		Skills:   []string{"seo", "copywriting"},
		Location: "Tokyo",
		Salary:   &types.SalaryRange{Min: 40000, Max: 50000},
	}
}

func newTestTrigger(profiles *fakeProfileStore, jobs *fakeJobStore, matches *fakeMatchStore, notifier *fakeNotifier) *Trigger {
	return NewTrigger(profiles, jobs, matches, notifier, nil, zap.NewNop())
}

func TestFindJobMatches_UnknownCandidate(t *testing.T) {
	trigger := newTestTrigger(&fakeProfileStore{}, &fakeJobStore{}, &fakeMatchStore{}, &fakeNotifier{})

	_, err := trigger.FindJobMatches(context.Background(), uuid.New(), 10)

	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestFindJobMatches_ProfileStoreFailure(t *testing.T) {
	profiles := &fakeProfileStore{err: errors.New("connection refused")}
	trigger := newTestTrigger(profiles, &fakeJobStore{}, &fakeMatchStore{}, &fakeNotifier{})

	_, err := trigger.FindJobMatches(context.Background(), uuid.New(), 10)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCandidateNotFound)
}

func TestFindJobMatches_FiltersRelevanceFloor(t *testing.T) {
	candidate := batchCandidate()
	jobs := &fakeJobStore{jobs: []types.JobPosting{strongJob("Go Developer", "Acme"), weakJob()}}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, &fakeMatchStore{}, &fakeNotifier{})

	matches, err := trigger.FindJobMatches(context.Background(), candidate.ID, 10)

	assert.NoError(t, err)
	assert.Len(t, matches, 1, "The weak posting must be filtered out")
	assert.Equal(t, jobs.jobs[0].ID, matches[0].JobID)
}

func TestFindJobMatches_SortedByScoreDescending(t *testing.T) {
	candidate := batchCandidate()
	strong := strongJob("Go Developer", "Acme")
	weaker := strongJob("Go Developer", "Initech")
	weaker.Salary = &types.SalaryRange{Min: 150000, Max: 170000} // loses the salary bonus
	jobs := &fakeJobStore{jobs: []types.JobPosting{weaker, strong}}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, &fakeMatchStore{}, &fakeNotifier{})

	matches, err := trigger.FindJobMatches(context.Background(), candidate.ID, 10)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, strong.ID, matches[0].JobID, "Higher score comes first regardless of input order")
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
}

func TestFindJobMatches_LimitApplied(t *testing.T) {
	candidate := batchCandidate()
	jobs := &fakeJobStore{jobs: []types.JobPosting{
		strongJob("Go Developer", "Acme"),
		strongJob("Backend Engineer", "Initech"),
		strongJob("Platform Engineer", "Globex"),
	}}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, &fakeMatchStore{}, &fakeNotifier{})

	matches, err := trigger.FindJobMatches(context.Background(), candidate.ID, 2)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindJobMatches_ZeroLimitReturnsAll(t *testing.T) {
	candidate := batchCandidate()
	jobs := &fakeJobStore{jobs: []types.JobPosting{
		strongJob("Go Developer", "Acme"),
		strongJob("Backend Engineer", "Initech"),
	}}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, &fakeMatchStore{}, &fakeNotifier{})

	matches, err := trigger.FindJobMatches(context.Background(), candidate.ID, 0)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRun_PersistsMatches(t *testing.T) {
	candidate := batchCandidate()
	jobs := &fakeJobStore{jobs: []types.JobPosting{strongJob("Go Developer", "Acme")}}
	store := &fakeMatchStore{}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, store, &fakeNotifier{})

	err := trigger.Run(context.Background(), candidate.ID)

	assert.NoError(t, err)
	assert.Len(t, store.upserted, 1)
}

func TestRun_NoNotificationBelowThreshold(t *testing.T) {
	candidate := batchCandidate()
	jobs := &fakeJobStore{jobs: []types.JobPosting{strongJob("Go Developer", "Acme")}}
	notifier := &fakeNotifier{}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, &fakeMatchStore{}, notifier)

	err := trigger.Run(context.Background(), candidate.ID)

	assert.NoError(t, err)
	assert.Empty(t, notifier.notifications, "A 60-point match stays below the notification bar")
}

func TestRun_PersistFailureSkipsNotification(t *testing.T) {
	candidate := batchCandidate()
	job := strongJob("Go Developer", "Acme")
	jobs := &fakeJobStore{jobs: []types.JobPosting{job}}
	store := &fakeMatchStore{failFor: map[string]error{
		types.MatchID(candidate.ID, job.ID): errors.New("constraint violation"),
	}}
	notifier := &fakeNotifier{}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, store, notifier)

	err := trigger.Run(context.Background(), candidate.ID)

	assert.NoError(t, err, "A single failed upsert must not fail the run")
	assert.Empty(t, store.upserted)
	assert.Empty(t, notifier.notifications, "Only persisted matches may notify")
}

func TestNotify_PayloadShape(t *testing.T) {
	candidate := batchCandidate()
	job := strongJob("Go Developer", "Acme")
	notifier := &fakeNotifier{}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, &fakeJobStore{}, &fakeMatchStore{}, notifier)
	m := &types.JobMatch{
		ID:          types.MatchID(candidate.ID, job.ID),
		JobID:       job.ID,
		CandidateID: candidate.ID,
		Score:       85,
		Job:         &job,
	}

	trigger.notify(context.Background(), m)

	assert.Len(t, notifier.notifications, 1)
	n := notifier.notifications[0]
	assert.Equal(t, candidate.ID, n.userID)
	assert.Equal(t, "job_match", n.kind)
	assert.Equal(t, "New High-Quality Job Match!", n.title)
	assert.Equal(t, "Go Developer at Acme is a 85% match for your profile", n.content)
	assert.Equal(t, map[string]any{
		"jobId":      job.ID.String(),
		"matchId":    m.ID,
		"matchScore": 85,
	}, n.data)
}

func TestRun_NotificationFailureIsSwallowed(t *testing.T) {
	candidate := batchCandidate()
	jobs := &fakeJobStore{jobs: []types.JobPosting{strongJob("Go Developer", "Acme")}}
	notifier := &fakeNotifier{err: errors.New("queue full")}
	trigger := newTestTrigger(&fakeProfileStore{profile: candidate}, jobs, &fakeMatchStore{}, notifier)

	err := trigger.Run(context.Background(), candidate.ID)

	assert.NoError(t, err)
}
