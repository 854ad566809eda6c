package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

const upsertProfileSQL = `INSERT INTO candidate_profiles (id, name, current_company, completeness, content, created_at, last_updated)
	 VALUES ($1, $2, $3, $4, $5, $6, $7)
	 ON CONFLICT (id) DO UPDATE SET name = $2, current_company = $3, completeness = $4, content = $5, last_updated = $7`

const upsertScoringResultSQL = `INSERT INTO scoring_results (profile_id, overall_score, confidence, content)
	 VALUES ($1, $2, $3, $4)
	 ON CONFLICT (profile_id) DO UPDATE SET overall_score = $2, confidence = $3, content = $4, scored_at = NOW()`

// SaveProfile inserts or replaces a profile
func (db *DB) SaveProfile(ctx context.Context, p *types.CandidateProfile) error {
	args, err := profileArgs(p)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, upsertProfileSQL, args...); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", p.ID, err)
	}
	return nil
}

// GetProfile retrieves a profile by ID. Returns nil, nil if not found.
func (db *DB) GetProfile(ctx context.Context, id string) (*types.CandidateProfile, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return decodeProfile(content)
}

// LoadProfiles returns every persisted profile ordered by ID
func (db *DB) LoadProfiles(ctx context.Context) ([]*types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx, `SELECT content FROM candidate_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*types.CandidateProfile
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		p, err := decodeProfile(content)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

// ListProfileRecords returns the listing view of every persisted profile,
// most recently updated first
func (db *DB) ListProfileRecords(ctx context.Context) ([]ProfileRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, p.name, p.current_company, p.completeness, s.overall_score, p.created_at, p.last_updated
		 FROM candidate_profiles p
		 LEFT JOIN scoring_results s ON s.profile_id = p.id
		 ORDER BY p.last_updated DESC, p.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var records []ProfileRecord
	for rows.Next() {
		var r ProfileRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.CurrentCompany, &r.Completeness, &r.OverallScore, &r.CreatedAt, &r.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan profile record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile records: %w", err)
	}
	return records, nil
}

// DeleteProfile removes a profile and its scoring result. It reports whether a row was deleted.
func (db *DB) DeleteProfile(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidate_profiles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// SaveScoringResult inserts or replaces the scoring result of a persisted profile
func (db *DB) SaveScoringResult(ctx context.Context, r *types.ScoringResult) error {
	args, err := scoringResultArgs(r)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, upsertScoringResultSQL, args...); err != nil {
		return fmt.Errorf("failed to save scoring result for %s: %w", r.ProfileID, err)
	}
	return nil
}

// LoadScoringResults returns every persisted scoring result keyed by profile ID
func (db *DB) LoadScoringResults(ctx context.Context) (map[string]*types.ScoringResult, error) {
	rows, err := db.pool.Query(ctx, `SELECT content FROM scoring_results`)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring results: %w", err)
	}
	defer rows.Close()

	results := make(map[string]*types.ScoringResult)
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan scoring result: %w", err)
		}
		var r types.ScoringResult
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scoring result: %w", err)
		}
		results[r.ProfileID] = &r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scoring results: %w", err)
	}
	return results, nil
}

// SyncPool writes profiles and scoring results in one transaction. Either
// everything is written or nothing is.
func (db *DB) SyncPool(ctx context.Context, profiles []*types.CandidateProfile, results []*types.ScoringResult) (*SyncStats, error) {
	batch := &pgx.Batch{}
	for _, p := range profiles {
		args, err := profileArgs(p)
		if err != nil {
			return nil, err
		}
		batch.Queue(upsertProfileSQL, args...)
	}
	for _, r := range results {
		args, err := scoringResultArgs(r)
		if err != nil {
			return nil, err
		}
		batch.Queue(upsertScoringResultSQL, args...)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("failed to sync pool: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit pool sync: %w", err)
	}

	return &SyncStats{Profiles: len(profiles), ScoringResults: len(results)}, nil
}

func profileArgs(p *types.CandidateProfile) ([]any, error) {
	if p == nil || p.ID == "" {
		return nil, fmt.Errorf("profile must have an ID")
	}
	content, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile %s: %w", p.ID, err)
	}
	return []any{
		p.ID,
		p.PersonalInfo.Name,
		p.PersonalInfo.CurrentCompany,
		p.Completeness,
		content,
		p.CreatedAt,
		p.LastUpdated,
	}, nil
}

func scoringResultArgs(r *types.ScoringResult) ([]any, error) {
	if r == nil || r.ProfileID == "" {
		return nil, fmt.Errorf("scoring result must have a profile ID")
	}
	content, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring result for %s: %w", r.ProfileID, err)
	}
	return []any{r.ProfileID, r.OverallScore, r.Confidence, content}, nil
}

func decodeProfile(content []byte) (*types.CandidateProfile, error) {
	var p types.CandidateProfile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &p, nil
}
