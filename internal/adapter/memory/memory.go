// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fitstats/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	weights   []domain.WeightSample
	workouts  []domain.WorkoutSession
	water     []domain.WaterIntake
	nutrition []domain.NutritionEntry
	steps     []domain.StepCount
	profiles  map[int64]domain.Profile
	users     []*domain.User
	sessions  map[string]*domain.Session

	nextID int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		profiles: make(map[int64]domain.Profile),
	}
}

// Ensure interfaces are met.
var (
	_ domain.WeightRepository    = (*DB)(nil)
	_ domain.WorkoutRepository   = (*DB)(nil)
	_ domain.WaterRepository     = (*DB)(nil)
	_ domain.NutritionRepository = (*DB)(nil)
	_ domain.StepRepository      = (*DB)(nil)
	_ domain.ProfileRepository   = (*DB)(nil)
	_ domain.UserRepository      = (*DB)(nil)
	_ domain.SessionRepository   = (*SessionRepo)(nil)
)

// id hands out identifiers shared by all tables; callers hold mu.
func (db *DB) id() int64 {
	db.nextID++
	return db.nextID
}

// between copies the items of userID dated in [start, end).
func between[T any](items []T, owner func(T) int64, date func(T) time.Time, userID int64, start, end time.Time) []T {
	var out []T
	for _, it := range items {
		d := date(it)
		if owner(it) == userID && !d.Before(start) && d.Before(end) {
			out = append(out, it)
		}
	}
	return out
}

// recent returns up to limit items of userID, newest first.
func recent[T any](items []T, owner func(T) int64, date func(T) time.Time, userID int64, limit int) []T {
	var out []T
	for _, it := range items {
		if owner(it) == userID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return date(out[i]).After(date(out[j]))
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// --- WeightRepository ---

func weightOwner(w domain.WeightSample) int64    { return w.UserID }
func weightDate(w domain.WeightSample) time.Time { return w.Date }

// AddWeightSample stores a weight sample.
func (db *DB) AddWeightSample(ctx context.Context, s domain.WeightSample) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s.ID = db.id()
	s.Date = s.Date.UTC()
	db.weights = append(db.weights, s)
	return s.ID, nil
}

// DeleteLatestWeightSample deletes the user's most recent weight sample.
// Samples sharing a timestamp are ordered by ID.
func (db *DB) DeleteLatestWeightSample(ctx context.Context, userID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, w := range db.weights {
		if w.UserID != userID {
			continue
		}
		if lastIdx == -1 {
			lastIdx = i
			continue
		}
		last := db.weights[lastIdx]
		if w.Date.After(last.Date) || (w.Date.Equal(last.Date) && w.ID > last.ID) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return false, nil
	}
	db.weights = append(db.weights[:lastIdx], db.weights[lastIdx+1:]...)
	return true, nil
}

// GetWeightSample returns one of the user's weight samples by ID.
func (db *DB) GetWeightSample(ctx context.Context, userID, id int64) (*domain.WeightSample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, w := range db.weights {
		if w.ID == id && w.UserID == userID {
			return &w, nil
		}
	}
	return nil, nil
}

// UpdateWeightSample replaces the stored sample with the same ID and owner.
func (db *DB) UpdateWeightSample(ctx context.Context, s domain.WeightSample) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, w := range db.weights {
		if w.ID == s.ID && w.UserID == s.UserID {
			s.Date = s.Date.UTC()
			db.weights[i] = s
			return true, nil
		}
	}
	return false, nil
}

// DeleteWeightSample deletes one of the user's weight samples by ID.
func (db *DB) DeleteWeightSample(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, w := range db.weights {
		if w.ID == id && w.UserID == userID {
			db.weights = append(db.weights[:i], db.weights[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListRecentWeightSamples lists the most recent weight samples.
func (db *DB) ListRecentWeightSamples(ctx context.Context, userID int64, limit int) ([]domain.WeightSample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return recent(db.weights, weightOwner, weightDate, userID, limit), nil
}

// WeightSamplesBetween returns the user's weight samples in [start, end).
func (db *DB) WeightSamplesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WeightSample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.weights, weightOwner, weightDate, userID, start, end), nil
}

// --- WorkoutRepository ---

func workoutOwner(w domain.WorkoutSession) int64    { return w.UserID }
func workoutDate(w domain.WorkoutSession) time.Time { return w.Date }

// AddWorkoutSession stores a workout session.
func (db *DB) AddWorkoutSession(ctx context.Context, w domain.WorkoutSession) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	w.ID = db.id()
	w.Date = w.Date.UTC()
	db.workouts = append(db.workouts, w)
	return w.ID, nil
}

// ListRecentWorkoutSessions lists the most recent workout sessions.
func (db *DB) ListRecentWorkoutSessions(ctx context.Context, userID int64, limit int) ([]domain.WorkoutSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return recent(db.workouts, workoutOwner, workoutDate, userID, limit), nil
}

// WorkoutSessionsBetween returns the user's workout sessions in [start, end).
func (db *DB) WorkoutSessionsBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WorkoutSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.workouts, workoutOwner, workoutDate, userID, start, end), nil
}

// --- WaterRepository ---

func waterOwner(w domain.WaterIntake) int64    { return w.UserID }
func waterDate(w domain.WaterIntake) time.Time { return w.Date }

// AddWaterIntake stores a water intake.
func (db *DB) AddWaterIntake(ctx context.Context, w domain.WaterIntake) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	w.ID = db.id()
	w.Date = w.Date.UTC()
	db.water = append(db.water, w)
	return w.ID, nil
}

// DeleteWaterIntake deletes one of the user's water intakes by ID.
func (db *DB) DeleteWaterIntake(ctx context.Context, userID int64, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, w := range db.water {
		if w.ID == id && w.UserID == userID {
			db.water = append(db.water[:i], db.water[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListRecentWaterIntakes lists the most recent water intakes.
func (db *DB) ListRecentWaterIntakes(ctx context.Context, userID int64, limit int) ([]domain.WaterIntake, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return recent(db.water, waterOwner, waterDate, userID, limit), nil
}

// WaterIntakesBetween returns the user's water intakes in [start, end).
func (db *DB) WaterIntakesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WaterIntake, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.water, waterOwner, waterDate, userID, start, end), nil
}

// --- NutritionRepository ---

func nutritionOwner(n domain.NutritionEntry) int64    { return n.UserID }
func nutritionDate(n domain.NutritionEntry) time.Time { return n.Date }

// AddNutritionEntry stores a nutrition entry.
func (db *DB) AddNutritionEntry(ctx context.Context, n domain.NutritionEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n.ID = db.id()
	n.Date = n.Date.UTC()
	db.nutrition = append(db.nutrition, n)
	return n.ID, nil
}

// ListRecentNutritionEntries lists the most recent nutrition entries.
func (db *DB) ListRecentNutritionEntries(ctx context.Context, userID int64, limit int) ([]domain.NutritionEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return recent(db.nutrition, nutritionOwner, nutritionDate, userID, limit), nil
}

// DeleteNutritionEntry deletes one of the user's nutrition entries by ID.
func (db *DB) DeleteNutritionEntry(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, n := range db.nutrition {
		if n.ID == id && n.UserID == userID {
			db.nutrition = append(db.nutrition[:i], db.nutrition[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// NutritionEntriesBetween returns the user's nutrition entries in [start, end).
func (db *DB) NutritionEntriesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.NutritionEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.nutrition, nutritionOwner, nutritionDate, userID, start, end), nil
}

// --- StepRepository ---

func stepOwner(s domain.StepCount) int64    { return s.UserID }
func stepDate(s domain.StepCount) time.Time { return s.Date }

// UpsertStepCount replaces the user's first step count in [dayStart, dayEnd)
// or inserts a new one.
func (db *DB) UpsertStepCount(ctx context.Context, s domain.StepCount, dayStart, dayEnd time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s.Date = s.Date.UTC()
	for i, existing := range db.steps {
		if existing.UserID == s.UserID && !existing.Date.Before(dayStart) && existing.Date.Before(dayEnd) {
			s.ID = existing.ID
			db.steps[i] = s
			return s.ID, nil
		}
	}
	s.ID = db.id()
	db.steps = append(db.steps, s)
	return s.ID, nil
}

// ListRecentStepCounts lists the most recent step counts.
func (db *DB) ListRecentStepCounts(ctx context.Context, userID int64, limit int) ([]domain.StepCount, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return recent(db.steps, stepOwner, stepDate, userID, limit), nil
}

// StepCountsBetween returns the user's step counts in [start, end).
func (db *DB) StepCountsBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.StepCount, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.steps, stepOwner, stepDate, userID, start, end), nil
}

// --- ProfileRepository ---

// GetProfile returns the user's profile, or nil when none was saved.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile creates or replaces the user's profile.
func (db *DB) SaveProfile(ctx context.Context, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p.UpdatedAt = p.UpdatedAt.UTC()
	db.profiles[p.UserID] = p
	return nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	u := &domain.User{
		ID:           db.id(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
