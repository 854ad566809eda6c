package skills

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	defaultContextWindow  = 50
	defaultMaxSuggestions = 5

	// overall extraction confidence blend
	confidenceSkillShare    = 0.6
	confidenceLengthShare   = 0.2
	confidenceCategoryShare = 0.2
	fullLengthChars         = 100.0
	fullCategoryCount       = 5.0
)

// Speaker roles a transcript message can carry
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// Options tunes the extraction engine
type Options struct {
	ContextWindow  int // characters kept on each side of a mention
	MaxSuggestions int
}

// Extractor maps free text onto typed skill records using a taxonomy and an
// optional augmentation source.
type Extractor struct {
	taxonomy  *Taxonomy
	terms     []taxonomyTerm
	tenure    map[string]tenureMatcher
	augmenter Augmenter
	opts      Options
	logger    *zap.Logger
}

// NewExtractor creates an extractor. A nil taxonomy uses DefaultTaxonomy, a nil
// augmenter disables augmentation and a nil logger discards logs.
func NewExtractor(taxonomy *Taxonomy, augmenter Augmenter, opts Options, logger *zap.Logger) *Extractor {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ContextWindow <= 0 {
		opts.ContextWindow = defaultContextWindow
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = defaultMaxSuggestions
	}

	terms := taxonomy.terms()
	tenure := make(map[string]tenureMatcher, len(terms))
	for _, t := range terms {
		tenure[t.term] = newTenureMatcher(t.term)
	}

	return &Extractor{
		taxonomy:  taxonomy,
		terms:     terms,
		tenure:    tenure,
		augmenter: augmenter,
		opts:      opts,
		logger:    logger,
	}
}

// ExtractFromMessage extracts skills from one transcript message. Only candidate
// messages carry evidence about the candidate; other roles yield an empty result.
func (e *Extractor) ExtractFromMessage(ctx context.Context, text, role string) *types.ExtractionResult {
	if !strings.EqualFold(strings.TrimSpace(role), RoleCandidate) {
		return emptyResult()
	}
	return e.Extract(ctx, text)
}

// Extract runs taxonomy matching, contextual inference and, when configured,
// augmentation over text. It never fails: augmentation errors are logged and
// contribute nothing.
func (e *Extractor) Extract(ctx context.Context, text string) *types.ExtractionResult {
	if strings.TrimSpace(text) == "" {
		return emptyResult()
	}

	lower := strings.ToLower(text)

	found := e.directMatches(text, lower)
	found = append(found, inferCompositeSkills(lower, found)...)
	found = append(found, e.augment(ctx, text)...)

	extracted := Deduplicate(found)
	sort.SliceStable(extracted, func(i, j int) bool {
		return extracted[i].Confidence > extracted[j].Confidence
	})

	return &types.ExtractionResult{
		Skills:            extracted,
		Confidence:        overallConfidence(extracted, len(text)),
		Suggestions:       e.suggest(extracted),
		MissingCategories: missingCategories(extracted),
	}
}

// directMatches scans the text for every taxonomy term. A hit only counts when it
// is not embedded inside a longer word.
func (e *Extractor) directMatches(text, lower string) []types.Skill {
	var found []types.Skill
	// Spans already claimed by a longer term ("react native" before "react")
	var claimed []claim
	tenureByDef := make(map[int]*float64)

	source := text
	if len(text) != len(lower) {
		source = lower
	}

	for _, t := range e.terms {
		def := e.taxonomy.definitions[t.index]
		canonical := t.term == strings.ToLower(def.Name)
		for offset := 0; offset < len(lower); {
			idx := strings.Index(lower[offset:], t.term)
			if idx < 0 {
				break
			}
			start := offset + idx
			end := start + len(t.term)
			offset = end

			if !isBoundary(lower, start, end) || blocked(claimed, start, end, t.index, canonical) {
				continue
			}
			claimed = append(claimed, claim{start: start, end: end, def: t.index})

			snippet := window(source, start, end, e.opts.ContextWindow)
			skill := types.Skill{
				Name:        def.Name,
				Category:    def.Category,
				Proficiency: inferProficiency(def, snippet),
				Confidence:  matchConfidence(snippet),
				Contexts:    []string{snippet},
				Source:      types.SkillSourceTaxonomy,
			}
			years, cached := tenureByDef[t.index]
			if !cached {
				years = e.findTenure(def, lower)
				tenureByDef[t.index] = years
			}
			if years != nil {
				y := *years
				skill.YearsOfExperience = &y
			}
			found = append(found, skill)
		}
	}
	return found
}

// findTenure tries the canonical name first, then each alias
func (e *Extractor) findTenure(def types.SkillDefinition, lower string) *float64 {
	for _, term := range append([]string{def.Name}, def.Aliases...) {
		m, ok := e.tenure[strings.ToLower(term)]
		if !ok {
			continue
		}
		if years := m.find(lower); years != nil {
			return years
		}
	}
	return nil
}

// augment calls the optional augmentation source, isolating every failure
func (e *Extractor) augment(ctx context.Context, text string) (skills []types.Skill) {
	if e.augmenter == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("skill augmentation panicked", zap.Any("panic", r))
			skills = nil
		}
	}()

	augmented, err := e.augmenter.Augment(ctx, text)
	if err != nil {
		e.logger.Warn("skill augmentation failed", zap.Error(&AugmentationError{Message: "augmenter returned an error", Cause: err}))
		return nil
	}

	out := make([]types.Skill, 0, len(augmented))
	for _, s := range augmented {
		mapped, ok := e.mapAugmented(s)
		if ok {
			out = append(out, mapped)
		}
	}
	e.logger.Debug("skill augmentation complete", zap.Int("returned", len(augmented)), zap.Int("kept", len(out)))
	return out
}

// mapAugmented canonicalizes an augmented skill through the taxonomy. Skills the
// taxonomy does not know are kept only when they carry a known category.
func (e *Extractor) mapAugmented(s types.Skill) (types.Skill, bool) {
	if strings.TrimSpace(s.Name) == "" {
		return types.Skill{}, false
	}

	out := s.Clone()
	out.Source = types.SkillSourceAugmentation
	if out.Confidence <= 0 || out.Confidence > augmentedConfidence {
		out.Confidence = augmentedConfidence
	}
	if !out.Proficiency.Valid() {
		out.Proficiency = types.ProficiencyIntermediate
	}

	if def, ok := e.taxonomy.Lookup(s.Name); ok {
		out.Name = def.Name
		out.Category = def.Category
		return out, true
	}
	for _, c := range types.SkillCategories {
		if c == out.Category {
			out.Name = e.taxonomy.NormalizeSkillName(out.Name)
			return out, true
		}
	}
	return types.Skill{}, false
}

func overallConfidence(skills []types.Skill, textLength int) float64 {
	if len(skills) == 0 {
		return 0
	}

	sum := 0.0
	categories := make(map[types.SkillCategory]bool)
	for _, s := range skills {
		sum += s.Confidence
		categories[s.Category] = true
	}
	mean := sum / float64(len(skills))

	lengthFactor := float64(textLength) / fullLengthChars
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	categoryFactor := float64(len(categories)) / fullCategoryCount
	if categoryFactor > 1 {
		categoryFactor = 1
	}

	return confidenceSkillShare*mean + confidenceLengthShare*lengthFactor + confidenceCategoryShare*categoryFactor
}

func missingCategories(skills []types.Skill) []types.SkillCategory {
	present := make(map[types.SkillCategory]bool)
	for _, s := range skills {
		present[s.Category] = true
	}
	missing := make([]types.SkillCategory, 0, len(types.SkillCategories))
	for _, c := range types.SkillCategories {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func emptyResult() *types.ExtractionResult {
	return &types.ExtractionResult{
		Skills:            []types.Skill{},
		Suggestions:       []types.SkillSuggestion{},
		MissingCategories: missingCategories(nil),
	}
}

// isBoundary reports whether lower[start:end] stands alone rather than inside a word
func isBoundary(lower string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(lower[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(lower) {
		r, _ := utf8.DecodeRuneInString(lower[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r >= utf8.RuneSelf
}

// claim is a matched span and the definition that matched it
type claim struct {
	start, end int
	def        int
}

// blocked reports whether [start,end) overlaps a claimed span. A canonical name
// is only blocked by a claim of its own definition, so "React" still counts
// inside "React Native" while the "github" alias of Git does not count inside
// "github actions".
func blocked(claims []claim, start, end, def int, canonical bool) bool {
	for _, c := range claims {
		if start >= c.end || end <= c.start {
			continue
		}
		if !canonical || c.def == def {
			return true
		}
	}
	return false
}

// window returns up to size characters on each side of [start,end), snapped to rune boundaries
func window(text string, start, end, size int) string {
	from := start - size
	if from < 0 {
		from = 0
	}
	to := end + size
	if to > len(text) {
		to = len(text)
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return strings.TrimSpace(text[from:to])
}
