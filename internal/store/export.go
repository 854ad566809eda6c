package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
	rootschemas "github.com/jonathan/talent-matcher/schemas"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var csvHeader = []string{
	"id", "name", "title", "company", "location", "years_of_experience",
	"skills", "completeness", "confidence", "overall_score", "last_updated",
}

// ExportDocument is the JSON export format, also accepted by ImportProfiles
type ExportDocument struct {
	ExportedAt     time.Time                 `json:"exported_at"`
	Count          int                       `json:"count"`
	Profiles       []*types.CandidateProfile `json:"profiles"`
	ScoringResults []*types.ScoringResult    `json:"scoring_results,omitempty"`
}

// ExportProfiles serializes every stored profile, ordered by ID, as "json" or "csv"
func (s *Store) ExportProfiles(format string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch strings.ToLower(format) {
	case FormatJSON:
		return s.exportJSON()
	case FormatCSV:
		return s.exportCSV()
	default:
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("unsupported export format %q", format)}
	}
}

func (s *Store) exportJSON() ([]byte, error) {
	doc := ExportDocument{
		ExportedAt: s.now(),
		Count:      len(s.profiles),
		Profiles:   make([]*types.CandidateProfile, 0, len(s.profiles)),
	}
	for _, id := range s.sortedIDs() {
		doc.Profiles = append(doc.Profiles, s.profiles[id])
		if r, ok := s.scores[id]; ok {
			doc.ScoringResults = append(doc.ScoringResults, r)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile export: %w", err)
	}
	return data, nil
}

func (s *Store) exportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, id := range s.sortedIDs() {
		p := s.profiles[id]

		names := make([]string, 0, len(p.Skills))
		for _, sk := range p.Skills {
			names = append(names, sk.Name)
		}
		overall := ""
		if r, ok := s.scores[id]; ok {
			overall = formatFloat(r.OverallScore)
		}

		record := []string{
			p.ID,
			p.PersonalInfo.Name,
			p.PersonalInfo.Title,
			p.PersonalInfo.CurrentCompany,
			p.PersonalInfo.Location,
			formatFloat(p.TotalYears()),
			strings.Join(names, "; "),
			formatFloat(p.Completeness),
			formatFloat(p.Confidence),
			overall,
			p.LastUpdated.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record for %s: %w", id, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportProfiles loads a JSON export into the store, replacing profiles with the
// same IDs. The document is checked against the export schema before anything is
// stored. It returns the number of profiles imported.
func (s *Store) ImportProfiles(data []byte) (int, error) {
	if err := schemas.ValidateDocument(rootschemas.ProfileExport, data); err != nil {
		return 0, &InvalidArgumentError{Message: "profile export failed validation", Cause: err}
	}

	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, &InvalidArgumentError{Message: "failed to parse profile export", Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, profile := range doc.Profiles {
		p := profile.Clone()
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.LastUpdated.IsZero() {
			p.LastUpdated = now
		}
		s.put(p)
	}

	skipped := 0
	for _, r := range doc.ScoringResults {
		if _, ok := s.profiles[r.ProfileID]; !ok {
			skipped++
			continue
		}
		s.scores[r.ProfileID] = r.Clone()
	}

	s.logger.Debug("profiles imported",
		zap.Int("profiles", len(doc.Profiles)),
		zap.Int("scoring_results", len(doc.ScoringResults)-skipped),
		zap.Int("orphaned_results", skipped))
	return len(doc.Profiles), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
