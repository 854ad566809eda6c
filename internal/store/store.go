// Package store keeps candidate profiles and their scoring results in memory and
// serves filtered search, comparison, export and analytics over them.
//
// A single RWMutex serializes writers. A profile write and its index update happen
// under the same lock, so readers never observe a partially indexed profile.
// Profiles and results are copied on the way in and on the way out.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	resourceProfile = "profile"
	resourceScore   = "scoring result"

	defaultSearchLimit    = 50
	defaultMaxSuggestions = 8
	defaultFacetLimit     = 10
)

// Config tunes search output
type Config struct {
	DefaultLimit   int // page size when a query sets none
	MaxSuggestions int
	FacetLimit     int // entries kept per term facet
}

// DefaultConfig returns the default search configuration
func DefaultConfig() Config {
	return Config{
		DefaultLimit:   defaultSearchLimit,
		MaxSuggestions: defaultMaxSuggestions,
		FacetLimit:     defaultFacetLimit,
	}
}

// Store is the in-memory profile store and search index
type Store struct {
	mu       sync.RWMutex
	cfg      Config
	engine   *scoring.Engine
	logger   *zap.Logger
	profiles map[string]*types.CandidateProfile
	scores   map[string]*types.ScoringResult
	index    *index
	now      func() time.Time
}

// New creates an empty store. Zero config values take their defaults, a nil
// engine gets a default scoring engine and a nil logger discards logs.
func New(cfg Config, engine *scoring.Engine, logger *zap.Logger) *Store {
	defaults := DefaultConfig()
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = defaults.DefaultLimit
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = defaults.MaxSuggestions
	}
	if cfg.FacetLimit <= 0 {
		cfg.FacetLimit = defaults.FacetLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = scoring.NewEngine(scoring.Options{}, nil, logger)
	}

	return &Store{
		cfg:      cfg,
		engine:   engine,
		logger:   logger,
		profiles: make(map[string]*types.CandidateProfile),
		scores:   make(map[string]*types.ScoringResult),
		index:    newIndex(),
		now:      func() time.Time { return time.Now().UTC().Round(0) },
	}
}

// StoreProfile inserts or replaces a profile. An empty ID is assigned a new UUID;
// zero timestamps are set to the current time. The stored copy is returned.
func (s *Store) StoreProfile(profile *types.CandidateProfile) (*types.CandidateProfile, error) {
	if profile == nil {
		return nil, &InvalidArgumentError{Message: "profile is nil"}
	}

	p := profile.Clone()
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.LastUpdated.IsZero() {
		p.LastUpdated = now
	}

	s.put(p)
	s.logger.Debug("profile stored", zap.String("profile_id", p.ID), zap.Int("skills", len(p.Skills)))
	return p.Clone(), nil
}

// UpdateProfile replaces an existing profile, keeping its creation time and
// stamping the update time.
func (s *Store) UpdateProfile(profile *types.CandidateProfile) (*types.CandidateProfile, error) {
	if profile == nil {
		return nil, &InvalidArgumentError{Message: "profile is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.profiles[profile.ID]
	if !ok {
		return nil, &NotFoundError{Resource: resourceProfile, ID: profile.ID}
	}

	p := profile.Clone()
	p.CreatedAt = existing.CreatedAt
	p.LastUpdated = s.now()

	s.put(p)
	s.logger.Debug("profile updated", zap.String("profile_id", p.ID))
	return p.Clone(), nil
}

// put stores and indexes p; the caller holds the write lock
func (s *Store) put(p *types.CandidateProfile) {
	s.profiles[p.ID] = p
	s.index.add(p)
}

// GetProfile returns a copy of the stored profile
func (s *Store) GetProfile(id string) (*types.CandidateProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, &NotFoundError{Resource: resourceProfile, ID: id}
	}
	return p.Clone(), nil
}

// DeleteProfile removes a profile, its scoring result and its index entries
func (s *Store) DeleteProfile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return &NotFoundError{Resource: resourceProfile, ID: id}
	}
	delete(s.profiles, id)
	delete(s.scores, id)
	s.index.remove(id)

	s.logger.Debug("profile deleted", zap.String("profile_id", id))
	return nil
}

// StoreScoringResult keeps result as the latest score for a stored profile
func (s *Store) StoreScoringResult(id string, result *types.ScoringResult) error {
	if result == nil {
		return &InvalidArgumentError{Message: "scoring result is nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return &NotFoundError{Resource: resourceProfile, ID: id}
	}
	r := result.Clone()
	r.ProfileID = id
	s.scores[id] = r
	return nil
}

// GetScoringResult returns a copy of the latest stored score for a profile
func (s *Store) GetScoringResult(id string) (*types.ScoringResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.scores[id]
	if !ok {
		return nil, &NotFoundError{Resource: resourceScore, ID: id}
	}
	return r.Clone(), nil
}

// ScoreProfile scores a stored profile against req and keeps the result
func (s *Store) ScoreProfile(id string, req *types.JobRequirement, weights *types.CategoryWeights) (*types.ScoringResult, error) {
	p, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Score(p, req, weights)
	if err != nil {
		var inputErr *scoring.InputError
		if errors.As(err, &inputErr) {
			return nil, &InvalidArgumentError{Message: "cannot score profile", Cause: err}
		}
		return nil, err
	}

	if err := s.StoreScoringResult(id, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CompareProfiles compares the stored profiles named by ids. Unknown and repeated
// ids are skipped; fewer than two resolved profiles is an invalid argument.
func (s *Store) CompareProfiles(ids []string) (*types.ProfileComparisonResult, error) {
	s.mu.RLock()
	candidates := make([]ranking.Candidate, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		p, ok := s.profiles[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		c := ranking.Candidate{Profile: p.Clone()}
		if r, scored := s.scores[id]; scored {
			c.Result = r.Clone()
		}
		candidates = append(candidates, c)
	}
	s.mu.RUnlock()

	result, err := ranking.Compare(candidates)
	if err != nil {
		return nil, &InvalidArgumentError{Message: "cannot compare profiles", Cause: err}
	}
	return result, nil
}

// List returns copies of every stored profile ordered by ID
func (s *Store) List() []*types.CandidateProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.CandidateProfile, 0, len(s.profiles))
	for _, id := range s.sortedIDs() {
		out = append(out, s.profiles[id].Clone())
	}
	return out
}

// Count returns the number of stored profiles
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Reindex rebuilds every term index from the stored profiles
func (s *Store) Reindex() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = newIndex()
	for _, id := range s.sortedIDs() {
		s.index.add(s.profiles[id])
	}
	s.logger.Debug("index rebuilt", zap.Int("profiles", len(s.profiles)))
}

// sortedIDs returns every profile id in ascending order; the caller holds a lock
func (s *Store) sortedIDs() []string {
	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
