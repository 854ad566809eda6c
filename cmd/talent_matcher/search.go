package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the profile pool",
	Long:  "Filters, sorts and pages the profile pool. Filters come from flags or from a SearchQuery JSON file (--query); flags override the file.",
	RunE:  runSearch,
}

var (
	searchQueryFile   string
	searchSkills      []string
	searchCategories  []string
	searchProficiency []string
	searchCompanies   []string
	searchLocations   []string
	searchMinYears    float64
	searchMaxYears    float64
	searchMinScore    float64
	searchMaxScore    float64
	searchText        string
	searchSortBy      string
	searchSortOrder   string
	searchLimit       int
	searchOffset      int
	searchOutput      string
)

func init() {
	addSearchFlags(searchCmd.Flags())

	rootCmd.AddCommand(searchCmd)
}

func addSearchFlags(f *pflag.FlagSet) {
	f.StringVarP(&searchQueryFile, "query", "q", "", "Path to a SearchQuery JSON file")
	f.StringSliceVar(&searchSkills, "skill", nil, "Required skill (repeatable; all must match)")
	f.StringSliceVar(&searchCategories, "category", nil, "Skill category (repeatable; any may match)")
	f.StringSliceVar(&searchProficiency, "proficiency", nil, "Proficiency level (repeatable; any may match)")
	f.StringSliceVar(&searchCompanies, "company", nil, "Company (repeatable; partial match)")
	f.StringSliceVar(&searchLocations, "location", nil, "Location (repeatable; partial match)")
	f.Float64Var(&searchMinYears, "min-years", 0, "Minimum years of experience")
	f.Float64Var(&searchMaxYears, "max-years", 0, "Maximum years of experience")
	f.Float64Var(&searchMinScore, "min-score", 0, "Minimum overall score")
	f.Float64Var(&searchMaxScore, "max-score", 0, "Maximum overall score")
	f.StringVar(&searchText, "text", "", "Free text every term of which must appear in the profile")
	f.StringVar(&searchSortBy, "sort", "", "Sort field: score, experience, name or date")
	f.StringVar(&searchSortOrder, "order", "", "Sort order: asc or desc")
	f.IntVar(&searchLimit, "limit", 0, "Page size (default from config)")
	f.IntVar(&searchOffset, "offset", 0, "Number of results to skip")
	f.StringVarP(&searchOutput, "out", "o", "", "Path to output ProfileSearchResult JSON (default stdout)")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	query, err := buildSearchQuery(cmd.Flags())
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	s, err := a.openPool(true)
	if err != nil {
		return err
	}

	result, err := s.SearchProfiles(query)
	if err != nil {
		return err
	}
	a.logger.Info("search complete", zap.Int("total", result.Total), zap.Int("returned", len(result.Profiles)))
	if a.printer != nil {
		a.printer.PrintSearchResult(result)
	}
	return emitJSON(result, searchOutput)
}

// buildSearchQuery reads the query file, if any, and applies every flag the user set
func buildSearchQuery(flags *pflag.FlagSet) (types.SearchQuery, error) {
	var q types.SearchQuery
	if searchQueryFile != "" {
		if err := readJSONFile(searchQueryFile, &q); err != nil {
			return q, err
		}
	}

	if flags.Changed("skill") {
		q.Skills = searchSkills
	}
	if flags.Changed("category") {
		q.SkillCategories = make([]types.SkillCategory, 0, len(searchCategories))
		for _, c := range searchCategories {
			q.SkillCategories = append(q.SkillCategories, types.SkillCategory(c))
		}
	}
	if flags.Changed("proficiency") {
		q.ProficiencyLevels = make([]types.ProficiencyLevel, 0, len(searchProficiency))
		for _, p := range searchProficiency {
			q.ProficiencyLevels = append(q.ProficiencyLevels, types.ProficiencyLevel(p))
		}
	}
	if flags.Changed("company") {
		q.Companies = searchCompanies
	}
	if flags.Changed("location") {
		q.Locations = searchLocations
	}
	if r := rangeFlags(flags, "min-years", searchMinYears, "max-years", searchMaxYears); r != nil {
		q.ExperienceRange = r
	}
	if r := rangeFlags(flags, "min-score", searchMinScore, "max-score", searchMaxScore); r != nil {
		if q.Scores == nil {
			q.Scores = &types.ScoreFilters{}
		}
		q.Scores.Overall = r
	}
	if flags.Changed("text") {
		q.SearchText = searchText
	}
	if flags.Changed("sort") {
		q.SortBy = types.SortField(searchSortBy)
	}
	if flags.Changed("order") {
		q.SortOrder = types.SortOrder(searchSortOrder)
	}
	if flags.Changed("limit") {
		q.Limit = searchLimit
	}
	if flags.Changed("offset") {
		q.Offset = searchOffset
	}
	return q, nil
}

// rangeFlags builds a range from a pair of bound flags, nil when neither is set
func rangeFlags(flags *pflag.FlagSet, minName string, minValue float64, maxName string, maxValue float64) *types.Range {
	minSet, maxSet := flags.Changed(minName), flags.Changed(maxName)
	if !minSet && !maxSet {
		return nil
	}
	r := &types.Range{}
	if minSet {
		v := minValue
		r.Min = &v
	}
	if maxSet {
		v := maxValue
		r.Max = &v
	}
	return r
}
