package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Role templates
const (
	RoleFrontend  = "frontend"
	RoleBackend   = "backend"
	RoleFullstack = "fullstack"
	RoleDevOps    = "devops"
	RoleData      = "data"
)

// Seniority levels
const (
	LevelJunior    = "junior"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelLead      = "lead"
	LevelPrincipal = "principal"
)

type roleTemplate struct {
	title  string
	skills []types.RequiredSkill
}

type levelTemplate struct {
	title                string
	minimumYears         float64
	proficiency          types.ProficiencyLevel
	communicationTarget  float64
	leadershipRequired   bool
	leadershipImportance float64
}

func requiredSkill(name string, category types.SkillCategory, importance types.Importance, weight float64) types.RequiredSkill {
	return types.RequiredSkill{Name: name, Category: category, Importance: importance, Weight: weight}
}

var roleTemplates = map[string]roleTemplate{
	RoleFrontend: {"Frontend Engineer", []types.RequiredSkill{
		requiredSkill("JavaScript", types.CategoryProgramming, types.ImportanceCritical, 1.0),
		requiredSkill("React", types.CategoryFrontend, types.ImportanceCritical, 1.0),
		requiredSkill("TypeScript", types.CategoryProgramming, types.ImportanceImportant, 0.8),
		requiredSkill("HTML", types.CategoryFrontend, types.ImportanceImportant, 0.6),
		requiredSkill("CSS", types.CategoryFrontend, types.ImportanceImportant, 0.6),
		requiredSkill("Redux", types.CategoryFrontend, types.ImportanceNiceToHave, 0.4),
	}},
	RoleBackend: {"Backend Engineer", []types.RequiredSkill{
		requiredSkill("SQL", types.CategoryProgramming, types.ImportanceCritical, 1.0),
		requiredSkill("REST APIs", types.CategoryBackend, types.ImportanceCritical, 0.9),
		requiredSkill("PostgreSQL", types.CategoryDatabase, types.ImportanceImportant, 0.7),
		requiredSkill("Docker", types.CategoryDevOps, types.ImportanceImportant, 0.7),
		requiredSkill("Microservices", types.CategoryBackend, types.ImportanceNiceToHave, 0.5),
		requiredSkill("Kubernetes", types.CategoryDevOps, types.ImportanceNiceToHave, 0.4),
	}},
	RoleFullstack: {"Full Stack Engineer", []types.RequiredSkill{
		requiredSkill("JavaScript", types.CategoryProgramming, types.ImportanceCritical, 1.0),
		requiredSkill("Node.js", types.CategoryBackend, types.ImportanceCritical, 0.9),
		requiredSkill("React", types.CategoryFrontend, types.ImportanceImportant, 0.8),
		requiredSkill("SQL", types.CategoryProgramming, types.ImportanceImportant, 0.7),
		requiredSkill("REST APIs", types.CategoryBackend, types.ImportanceImportant, 0.7),
		requiredSkill("Docker", types.CategoryDevOps, types.ImportanceNiceToHave, 0.4),
	}},
	RoleDevOps: {"DevOps Engineer", []types.RequiredSkill{
		requiredSkill("Linux", types.CategoryDevOps, types.ImportanceCritical, 1.0),
		requiredSkill("Docker", types.CategoryDevOps, types.ImportanceCritical, 1.0),
		requiredSkill("Kubernetes", types.CategoryDevOps, types.ImportanceCritical, 0.9),
		requiredSkill("Terraform", types.CategoryDevOps, types.ImportanceImportant, 0.8),
		requiredSkill("CI/CD", types.CategoryDevOps, types.ImportanceImportant, 0.8),
		requiredSkill("AWS", types.CategoryCloud, types.ImportanceImportant, 0.7),
	}},
	RoleData: {"Data Engineer", []types.RequiredSkill{
		requiredSkill("Python", types.CategoryProgramming, types.ImportanceCritical, 1.0),
		requiredSkill("SQL", types.CategoryProgramming, types.ImportanceCritical, 1.0),
		requiredSkill("Pandas", types.CategoryData, types.ImportanceImportant, 0.7),
		requiredSkill("Data Analysis", types.CategoryData, types.ImportanceImportant, 0.7),
		requiredSkill("Machine Learning", types.CategoryData, types.ImportanceImportant, 0.6),
		requiredSkill("Spark", types.CategoryData, types.ImportanceNiceToHave, 0.5),
	}},
}

var levelTemplates = map[string]levelTemplate{
	LevelJunior:    {"Junior", 0, types.ProficiencyBeginner, 0.5, false, 0},
	LevelMid:       {"", 2, types.ProficiencyIntermediate, 0.6, false, 0},
	LevelSenior:    {"Senior", 5, types.ProficiencyAdvanced, 0.7, true, 0.5},
	LevelLead:      {"Lead", 7, types.ProficiencyAdvanced, 0.8, true, 0.8},
	LevelPrincipal: {"Principal", 10, types.ProficiencyExpert, 0.8, true, 1.0},
}

var roleAliases = map[string]string{
	"front-end":  RoleFrontend,
	"front end":  RoleFrontend,
	"back-end":   RoleBackend,
	"back end":   RoleBackend,
	"full-stack": RoleFullstack,
	"full stack": RoleFullstack,
	"ops":        RoleDevOps,
	"sre":        RoleDevOps,
}

var levelAliases = map[string]string{
	"entry":     LevelJunior,
	"mid-level": LevelMid,
	"middle":    LevelMid,
	"staff":     LevelPrincipal,
}

// defaultCulturalValues are the values every generated requirement looks for
var defaultCulturalValues = []string{"collaboration", "ownership", "learning"}

// GenerateJobRequirement builds a requirement from a role template and a seniority
// level. Nice-to-have skills are expected one level below the target proficiency.
func GenerateJobRequirement(role, level string) (*types.JobRequirement, error) {
	roleKey := canonical(role, roleAliases)
	rt, ok := roleTemplates[roleKey]
	if !ok {
		return nil, &InputError{Message: fmt.Sprintf("unknown role %q (known: %s)", role, strings.Join(Roles(), ", "))}
	}
	levelKey := canonical(level, levelAliases)
	lt, ok := levelTemplates[levelKey]
	if !ok {
		return nil, &InputError{Message: fmt.Sprintf("unknown level %q (known: %s)", level, strings.Join(Levels(), ", "))}
	}

	required := make([]types.RequiredSkill, len(rt.skills))
	for i, rs := range rt.skills {
		rs.Proficiency = lt.proficiency
		if rs.Importance == types.ImportanceNiceToHave {
			rs.Proficiency = levelBelow(lt.proficiency)
		}
		required[i] = rs
	}

	title := rt.title
	if lt.title != "" {
		title = lt.title + " " + title
	}

	return &types.JobRequirement{
		Title:                title,
		Role:                 roleKey,
		Level:                levelKey,
		RequiredSkills:       required,
		MinimumYears:         lt.minimumYears,
		TargetProficiency:    lt.proficiency,
		CommunicationTarget:  lt.communicationTarget,
		LeadershipRequired:   lt.leadershipRequired,
		LeadershipImportance: lt.leadershipImportance,
		TeamworkImportance:   defaultTeamworkImportance,
		CulturalValues:       append([]string(nil), defaultCulturalValues...),
	}, nil
}

// Roles lists the known role templates, sorted
func Roles() []string {
	return sortedKeys(roleTemplates)
}

// Levels lists the known seniority levels in ascending order
func Levels() []string {
	return []string{LevelJunior, LevelMid, LevelSenior, LevelLead, LevelPrincipal}
}

func canonical(value string, aliases map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}

func levelBelow(level types.ProficiencyLevel) types.ProficiencyLevel {
	r := level.Rank()
	if r <= 1 {
		return types.ProficiencyBeginner
	}
	return types.ProficiencyLevels[r-2]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
