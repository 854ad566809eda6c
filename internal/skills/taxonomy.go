// Package skills provides the skill taxonomy and the extraction engine that maps free text to typed skill records.
package skills

import (
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Taxonomy is an immutable, indexed set of skill definitions
type Taxonomy struct {
	definitions []types.SkillDefinition
	byTerm      map[string]int // lowercased canonical name or alias -> definition index
	pairings    map[string][]string
}

// NewTaxonomy indexes the given definitions. Later definitions never override
// an earlier definition's canonical name or alias.
func NewTaxonomy(definitions []types.SkillDefinition, pairings map[string][]string) *Taxonomy {
	t := &Taxonomy{
		definitions: make([]types.SkillDefinition, len(definitions)),
		byTerm:      make(map[string]int),
		pairings:    make(map[string][]string, len(pairings)),
	}
	copy(t.definitions, definitions)

	for i, def := range t.definitions {
		for _, term := range append([]string{def.Name}, def.Aliases...) {
			key := strings.ToLower(strings.TrimSpace(term))
			if key == "" {
				continue
			}
			if _, exists := t.byTerm[key]; !exists {
				t.byTerm[key] = i
			}
		}
	}
	for k, v := range pairings {
		t.pairings[strings.ToLower(k)] = append([]string(nil), v...)
	}
	return t
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	return NewTaxonomy(defaultDefinitions, defaultPairings)
})

// DefaultTaxonomy returns the built-in taxonomy, built once on first use
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy()
}

// Lookup finds a definition by canonical name or alias (case-insensitive)
func (t *Taxonomy) Lookup(name string) (types.SkillDefinition, bool) {
	idx, ok := t.byTerm[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return types.SkillDefinition{}, false
	}
	return t.definitions[idx], true
}

// Definitions returns a copy of every definition
func (t *Taxonomy) Definitions() []types.SkillDefinition {
	out := make([]types.SkillDefinition, len(t.definitions))
	copy(out, t.definitions)
	return out
}

// Pairings returns the hand-authored companion skills for a canonical skill name
func (t *Taxonomy) Pairings(name string) []string {
	return t.pairings[strings.ToLower(name)]
}

// terms returns every (term, definition index) pair, longest term first so that
// "react native" is tried before "react".
func (t *Taxonomy) terms() []taxonomyTerm {
	out := make([]taxonomyTerm, 0, len(t.byTerm))
	for term, idx := range t.byTerm {
		out = append(out, taxonomyTerm{term: term, index: idx})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].term) != len(out[j].term) {
			return len(out[i].term) > len(out[j].term)
		}
		return out[i].term < out[j].term
	})
	return out
}

type taxonomyTerm struct {
	term  string
	index int
}

func levels(expert, advanced, intermediate, beginner []string) map[types.ProficiencyLevel][]string {
	m := make(map[types.ProficiencyLevel][]string, 4)
	if len(expert) > 0 {
		m[types.ProficiencyExpert] = expert
	}
	if len(advanced) > 0 {
		m[types.ProficiencyAdvanced] = advanced
	}
	if len(intermediate) > 0 {
		m[types.ProficiencyIntermediate] = intermediate
	}
	if len(beginner) > 0 {
		m[types.ProficiencyBeginner] = beginner
	}
	return m
}

// defaultPairings are companion skills that commonly appear together but are
// not declared as related in the taxonomy itself.
var defaultPairings = map[string][]string{
	"React":      {"Redux", "TypeScript"},
	"Node.js":    {"Express"},
	"Docker":     {"Kubernetes"},
	"Python":     {"Pandas"},
	"Kubernetes": {"Terraform"},
	"Go":         {"gRPC"},
	"AWS":        {"Terraform"},
}

var defaultDefinitions = []types.SkillDefinition{
	// Programming languages
	{
		Name:          "Go",
		Aliases:       []string{"golang"},
		Category:      types.CategoryProgramming,
		RelatedSkills: []string{"Docker", "Kubernetes", "gRPC", "Microservices"},
		Indicators: levels(
			[]string{"runtime internals", "garbage collector", "scheduler", "compiler"},
			[]string{"goroutines", "channels", "concurrency", "profiling", "pprof"},
			[]string{"interfaces", "modules", "http server", "unit tests"},
			[]string{"tour of go", "hello world", "syntax"},
		),
	},
	{
		Name:          "Python",
		Aliases:       []string{"python3"},
		Category:      types.CategoryProgramming,
		RelatedSkills: []string{"Django", "Flask", "Pandas", "Machine Learning"},
		Indicators: levels(
			[]string{"cpython", "metaclasses", "c extensions", "interpreter"},
			[]string{"asyncio", "decorators", "generators", "packaging"},
			[]string{"scripts", "virtualenv", "pip", "list comprehensions"},
			[]string{"tutorial", "syntax", "first program"},
		),
	},
	{
		Name:          "JavaScript",
		Aliases:       []string{"js", "ecmascript", "es6"},
		Category:      types.CategoryProgramming,
		RelatedSkills: []string{"TypeScript", "React", "Node.js"},
		Indicators: levels(
			[]string{"v8", "engine internals", "spec", "transpiler"},
			[]string{"closures", "event loop", "prototypes", "async/await"},
			[]string{"dom", "promises", "fetch", "modules"},
			[]string{"tutorial", "syntax", "variables"},
		),
	},
	{
		Name:          "TypeScript",
		Aliases:       []string{"ts"},
		Category:      types.CategoryProgramming,
		RelatedSkills: []string{"JavaScript", "React", "Angular"},
		Indicators: levels(
			[]string{"compiler api", "type-level programming"},
			[]string{"generics", "conditional types", "mapped types"},
			[]string{"interfaces", "type annotations", "strict mode"},
			nil,
		),
	},
	{Name: "Java", Category: types.CategoryProgramming, RelatedSkills: []string{"Spring Boot", "Kotlin", "Microservices"},
		Indicators: levels([]string{"jvm internals", "bytecode", "gc tuning"}, []string{"concurrency", "streams", "jvm"}, nil, nil)},
	{Name: "C++", Aliases: []string{"cpp"}, Category: types.CategoryProgramming, RelatedSkills: []string{"Linux"},
		Indicators: levels([]string{"template metaprogramming", "allocators"}, []string{"move semantics", "smart pointers", "stl"}, nil, nil)},
	{Name: "C#", Aliases: []string{"csharp", ".net"}, Category: types.CategoryProgramming, RelatedSkills: []string{"Azure", "SQL"}},
	{Name: "Rust", Category: types.CategoryProgramming, RelatedSkills: []string{"Go", "Linux"},
		Indicators: levels([]string{"unsafe", "proc macros"}, []string{"lifetimes", "borrow checker", "traits"}, nil, nil)},
	{Name: "Ruby", Aliases: []string{"ruby on rails", "rails"}, Category: types.CategoryProgramming, RelatedSkills: []string{"PostgreSQL"}},
	{Name: "PHP", Aliases: []string{"laravel"}, Category: types.CategoryProgramming, RelatedSkills: []string{"MySQL"}},
	{Name: "Kotlin", Category: types.CategoryProgramming, RelatedSkills: []string{"Java", "Android"}},
	{Name: "Swift", Category: types.CategoryProgramming, RelatedSkills: []string{"iOS"}},
	{
		Name:          "SQL",
		Category:      types.CategoryProgramming,
		RelatedSkills: []string{"PostgreSQL", "MySQL"},
		Indicators: levels(
			[]string{"query planner", "execution plans"},
			[]string{"window functions", "indexes", "query optimization", "ctes"},
			[]string{"joins", "group by", "subqueries"},
			[]string{"select statements", "basic queries"},
		),
	},

	// Frontend
	{
		Name:          "React",
		Aliases:       []string{"react.js", "reactjs"},
		Category:      types.CategoryFrontend,
		RelatedSkills: []string{"JavaScript", "TypeScript", "Redux", "Next.js"},
		Indicators: levels(
			[]string{"reconciler", "fiber", "concurrent rendering", "library author"},
			[]string{"custom hooks", "performance optimization", "memoization", "server components"},
			[]string{"hooks", "state management", "components", "props"},
			[]string{"jsx", "create react app", "tutorial"},
		),
	},
	{Name: "Redux", Aliases: []string{"redux toolkit"}, Category: types.CategoryFrontend, RelatedSkills: []string{"React"}},
	{Name: "Vue", Aliases: []string{"vue.js", "vuejs"}, Category: types.CategoryFrontend, RelatedSkills: []string{"JavaScript", "TypeScript"}},
	{Name: "Angular", Aliases: []string{"angularjs"}, Category: types.CategoryFrontend, RelatedSkills: []string{"TypeScript"},
		Indicators: levels(nil, []string{"rxjs", "change detection", "ngrx"}, []string{"components", "services", "modules"}, nil)},
	{Name: "Next.js", Aliases: []string{"nextjs"}, Category: types.CategoryFrontend, RelatedSkills: []string{"React"}},
	{Name: "HTML", Aliases: []string{"html5"}, Category: types.CategoryFrontend, RelatedSkills: []string{"CSS", "JavaScript"}},
	{Name: "CSS", Aliases: []string{"css3", "sass", "tailwind"}, Category: types.CategoryFrontend, RelatedSkills: []string{"HTML"}},

	// Backend
	{
		Name:          "Node.js",
		Aliases:       []string{"nodejs", "node"},
		Category:      types.CategoryBackend,
		RelatedSkills: []string{"JavaScript", "Express", "MongoDB"},
		Indicators: levels(
			[]string{"libuv", "native addons", "core contributor"},
			[]string{"streams", "cluster", "worker threads", "event loop"},
			[]string{"npm", "rest endpoints", "middleware"},
			nil,
		),
	},
	{Name: "Express", Aliases: []string{"express.js", "expressjs"}, Category: types.CategoryBackend, RelatedSkills: []string{"Node.js"}},
	{Name: "Django", Category: types.CategoryBackend, RelatedSkills: []string{"Python", "PostgreSQL"}},
	{Name: "Flask", Category: types.CategoryBackend, RelatedSkills: []string{"Python"}},
	{Name: "Spring Boot", Aliases: []string{"spring framework"}, Category: types.CategoryBackend, RelatedSkills: []string{"Java"}},
	{Name: "GraphQL", Category: types.CategoryBackend, RelatedSkills: []string{"REST APIs", "Node.js"}},
	{Name: "REST APIs", Aliases: []string{"rest api", "restful", "rest apis"}, Category: types.CategoryBackend, RelatedSkills: []string{"GraphQL"}},
	{Name: "gRPC", Aliases: []string{"protobuf", "protocol buffers"}, Category: types.CategoryBackend, RelatedSkills: []string{"Go", "Microservices"}},
	{
		Name:          "Microservices",
		Aliases:       []string{"microservice", "service-oriented architecture"},
		Category:      types.CategoryBackend,
		RelatedSkills: []string{"Docker", "Kubernetes", "gRPC"},
		Indicators: levels(
			[]string{"designed the architecture", "platform architecture"},
			[]string{"service mesh", "distributed tracing", "event-driven"},
			nil,
			nil,
		),
	},

	// Databases
	{
		Name:          "PostgreSQL",
		Aliases:       []string{"postgres", "psql"},
		Category:      types.CategoryDatabase,
		RelatedSkills: []string{"SQL", "Redis"},
		Indicators: levels(
			[]string{"replication", "partitioning", "vacuum tuning", "extensions"},
			[]string{"query optimization", "indexes", "explain analyze"},
			[]string{"migrations", "schemas", "joins"},
			nil,
		),
	},
	{Name: "MySQL", Aliases: []string{"mariadb"}, Category: types.CategoryDatabase, RelatedSkills: []string{"SQL"}},
	{Name: "MongoDB", Aliases: []string{"mongo"}, Category: types.CategoryDatabase, RelatedSkills: []string{"Node.js", "Express"}},
	{Name: "Redis", Category: types.CategoryDatabase, RelatedSkills: []string{"PostgreSQL"}},
	{Name: "Elasticsearch", Aliases: []string{"elastic search", "opensearch"}, Category: types.CategoryDatabase},
	{Name: "DynamoDB", Category: types.CategoryDatabase, RelatedSkills: []string{"AWS"}},

	// Cloud
	{
		Name:          "AWS",
		Aliases:       []string{"amazon web services", "ec2", "s3", "lambda"},
		Category:      types.CategoryCloud,
		RelatedSkills: []string{"Terraform", "Docker", "DynamoDB"},
		Indicators: levels(
			[]string{"solutions architect professional", "multi-region", "well-architected"},
			[]string{"vpc", "iam policies", "cloudformation", "auto scaling"},
			[]string{"console", "deployments"},
			nil,
		),
	},
	{Name: "GCP", Aliases: []string{"google cloud", "bigquery"}, Category: types.CategoryCloud, RelatedSkills: []string{"Kubernetes"}},
	{Name: "Azure", Category: types.CategoryCloud, RelatedSkills: []string{"C#"}},

	// DevOps
	{
		Name:          "Docker",
		Aliases:       []string{"containers", "containerization"},
		Category:      types.CategoryDevOps,
		RelatedSkills: []string{"Kubernetes", "CI/CD"},
		Indicators: levels(
			nil,
			[]string{"multi-stage builds", "image optimization", "container security"},
			[]string{"dockerfile", "docker compose", "images"},
			nil,
		),
	},
	{
		Name:          "Kubernetes",
		Aliases:       []string{"k8s"},
		Category:      types.CategoryDevOps,
		RelatedSkills: []string{"Docker", "Helm", "Terraform"},
		Indicators: levels(
			[]string{"operators", "controllers", "custom resources", "cluster federation"},
			[]string{"helm charts", "autoscaling", "networking policies", "production clusters"},
			[]string{"deployments", "pods", "kubectl"},
			[]string{"minikube", "tutorial"},
		),
	},
	{Name: "Helm", Category: types.CategoryDevOps, RelatedSkills: []string{"Kubernetes"}},
	{Name: "Terraform", Aliases: []string{"infrastructure as code", "iac"}, Category: types.CategoryDevOps, RelatedSkills: []string{"AWS", "GCP"}},
	{Name: "CI/CD", Aliases: []string{"continuous integration", "continuous delivery", "github actions", "jenkins"}, Category: types.CategoryDevOps, RelatedSkills: []string{"Docker", "Git"}},
	{Name: "Linux", Aliases: []string{"unix", "bash"}, Category: types.CategoryDevOps},
	{Name: "Git", Aliases: []string{"github", "gitlab"}, Category: types.CategoryDevOps},

	// Data
	{
		Name:          "Machine Learning",
		Aliases:       []string{"ml", "deep learning"},
		Category:      types.CategoryData,
		RelatedSkills: []string{"Python", "TensorFlow", "PyTorch"},
		Indicators: levels(
			[]string{"published", "novel architectures", "research"},
			[]string{"model deployment", "feature engineering", "hyperparameter tuning"},
			[]string{"scikit-learn", "training models", "classification"},
			[]string{"online course", "coursera"},
		),
	},
	{Name: "TensorFlow", Aliases: []string{"keras"}, Category: types.CategoryData, RelatedSkills: []string{"Machine Learning", "Python"}},
	{Name: "PyTorch", Category: types.CategoryData, RelatedSkills: []string{"Machine Learning", "Python"}},
	{Name: "Pandas", Aliases: []string{"numpy"}, Category: types.CategoryData, RelatedSkills: []string{"Python", "Data Analysis"}},
	{Name: "Spark", Aliases: []string{"apache spark", "pyspark"}, Category: types.CategoryData, RelatedSkills: []string{"Python", "SQL"}},
	{Name: "Data Analysis", Aliases: []string{"data analytics", "analytics"}, Category: types.CategoryData, RelatedSkills: []string{"SQL", "Pandas"}},

	// Mobile
	{Name: "React Native", Category: types.CategoryMobile, RelatedSkills: []string{"React", "JavaScript"}},
	{Name: "iOS", Category: types.CategoryMobile, RelatedSkills: []string{"Swift"}},
	{Name: "Android", Category: types.CategoryMobile, RelatedSkills: []string{"Kotlin", "Java"}},
	{Name: "Flutter", Aliases: []string{"dart"}, Category: types.CategoryMobile},

	// Methodology
	{Name: "Agile", Aliases: []string{"kanban"}, Category: types.CategoryMethodology, RelatedSkills: []string{"Scrum"}},
	{Name: "Scrum", Aliases: []string{"sprint planning"}, Category: types.CategoryMethodology, RelatedSkills: []string{"Agile"}},
	{Name: "TDD", Aliases: []string{"test-driven development", "test driven development"}, Category: types.CategoryMethodology},
	{
		Name:          "System Design",
		Aliases:       []string{"software architecture", "distributed systems"},
		Category:      types.CategoryMethodology,
		RelatedSkills: []string{"Microservices"},
		Indicators: levels(
			[]string{"designed the platform", "principal", "architected"},
			[]string{"scalability", "trade-offs", "high availability"},
			nil,
			nil,
		),
	},

	// Soft skills
	{
		Name:          "Leadership",
		Aliases:       []string{"team lead", "led a team", "led the team"},
		Category:      types.CategorySoftSkill,
		RelatedSkills: []string{"Mentoring", "Communication"},
		Indicators: levels(
			[]string{"director", "head of", "organization-wide"},
			[]string{"managed", "hiring", "led"},
			nil,
			nil,
		),
	},
	{Name: "Mentoring", Aliases: []string{"mentored", "mentorship", "coaching"}, Category: types.CategorySoftSkill, RelatedSkills: []string{"Leadership"}},
	{Name: "Communication", Aliases: []string{"stakeholder management", "presentations"}, Category: types.CategorySoftSkill},
	{Name: "Problem Solving", Aliases: []string{"problem-solving", "troubleshooting", "debugging"}, Category: types.CategorySoftSkill},
}
