// Package taxonomy provides the curated catalogue of canonical skill and
// technology terms, grouped into categories. The catalogue is a process-wide,
// load-once constant: it is never mutated after initialization, so concurrent
// reads need no coordination. Accessors return copies to keep it that way.
package taxonomy

// Category identifies a group of related skill terms.
type Category string

// Taxonomy categories, in iteration order.
const (
	ProgrammingLanguages  Category = "programming_languages"
	FrameworksLibraries   Category = "frameworks_libraries"
	Databases             Category = "databases"
	CloudPlatforms        Category = "cloud_platforms"
	DevOpsTools           Category = "devops_tools"
	VersionControl        Category = "version_control"
	Testing               Category = "testing"
	Methodologies         Category = "methodologies"
	ArchitecturalPatterns Category = "architectural_patterns"
	DataEngineering       Category = "data_engineering"
	Observability         Category = "monitoring_observability"
	ProjectManagement     Category = "project_management"
	Security              Category = "security"
)

// catalogueEntry pairs a category with its canonical lowercase terms.
type catalogueEntry struct {
	category Category
	terms    []string
}

// catalogue is ordered so that matching and reporting are reproducible.
// Terms are canonical lowercase; multi-word terms match as contiguous phrases.
var catalogue = []catalogueEntry{
	{ProgrammingLanguages, []string{
		"python", "java", "javascript", "typescript", "c++", "csharp", "c#",
		"ruby", "php", "swift", "kotlin", "go", "golang", "rust", "scala",
		"r", "matlab", "julia", "dart", "lua", "perl", "haskell", "elixir",
		"clojure", "f#", "groovy", "objective-c", "sql", "html", "css",
	}},
	{FrameworksLibraries, []string{
		"react", "angular", "vue", "next.js", "nuxt", "svelte", "solidjs",
		"django", "flask", "fastapi", "spring boot", "spring", "express.js",
		"nest.js", "koa", "laravel", "rails", "ruby on rails", "symfony",
		".net", "asp.net", "entity framework", "tensorflow", "pytorch", "keras",
		"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "plotly",
		"jquery", "bootstrap", "tailwind", "material-ui", "ant design",
	}},
	{Databases, []string{
		"postgresql", "mysql", "sqlite", "mongodb", "redis", "elasticsearch",
		"dynamodb", "cassandra", "couchdb", "neo4j", "influxdb", "timescaledb",
		"mariadb", "oracle", "sql server", "firestore", "supabase",
	}},
	{CloudPlatforms, []string{
		"aws", "amazon web services", "azure", "gcp", "google cloud platform",
		"heroku", "digitalocean", "linode", "vultr", "alibaba cloud", "ibm cloud",
	}},
	{DevOpsTools, []string{
		"docker", "kubernetes", "k8s", "terraform", "ansible", "chef", "puppet",
		"jenkins", "gitlab ci", "github actions", "circleci", "travis ci",
		"bamboo", "teamcity", "vagrant", "packer", "helm", "argocd",
	}},
	{VersionControl, []string{
		"git", "github", "gitlab", "bitbucket", "svn", "mercurial", "cvs",
	}},
	{Testing, []string{
		"junit", "pytest", "jest", "mocha", "jasmine", "karma", "selenium",
		"cypress", "playwright", "testng", "rspec", "unittest", "jmeter",
	}},
	{Methodologies, []string{
		"agile", "scrum", "kanban", "waterfall", "lean", "tdd", "bdd",
		"devops", "ci/cd", "continuous integration", "continuous deployment",
		"pair programming", "code review", "extreme programming",
	}},
	{ArchitecturalPatterns, []string{
		"microservices", "monolith", "serverless", "event-driven", "cqrs",
		"event sourcing", "domain driven design", "ddd", "soa", "mvc", "mvvm",
		"clean architecture", "hexagonal architecture", "rest api", "graphql",
		"grpc", "websocket", "saga pattern", "circuit breaker",
	}},
	{DataEngineering, []string{
		"apache spark", "hadoop", "kafka", "airflow", "dbt", "prefect",
		"talend", "informatica", "snowflake", "databricks", "bigquery",
		"redshift", "synapse", "etl", "elt", "data warehouse", "data lake",
	}},
	{Observability, []string{
		"prometheus", "grafana", "elk", "elasticsearch", "logstash", "kibana",
		"splunk", "datadog", "new relic", "appdynamics", "sentry", "cloudwatch",
		"jaeger", "zipkin", "opentracing", "opentelemetry",
	}},
	{ProjectManagement, []string{
		"jira", "confluence", "trello", "asana", "monday.com", "notion",
		"slack", "microsoft teams", "zoom", "basecamp", "clickup",
	}},
	{Security, []string{
		"oauth", "jwt", "ssl/tls", "https", "authentication", "authorization",
		"penetration testing", "owasp", "security audit", "hipaa", "gdpr",
		"pci dss", "encryption", "firewall", "vpn", "zero trust",
	}},
}

// Categories returns the taxonomy categories in their fixed iteration order.
func Categories() []Category {
	cats := make([]Category, 0, len(catalogue))
	for _, entry := range catalogue {
		cats = append(cats, entry.category)
	}
	return cats
}

// Terms returns a copy of the canonical terms for a category. The returned
// slice may be modified freely by the caller.
func Terms(category Category) []string {
	for _, entry := range catalogue {
		if entry.category == category {
			terms := make([]string, len(entry.terms))
			copy(terms, entry.terms)
			return terms
		}
	}
	return nil
}

// Walk calls fn for every (category, term) pair in fixed catalogue order.
func Walk(fn func(category Category, term string)) {
	for _, entry := range catalogue {
		for _, term := range entry.terms {
			fn(entry.category, term)
		}
	}
}

// TermCount returns the total number of terms across all categories.
func TermCount() int {
	total := 0
	for _, entry := range catalogue {
		total += len(entry.terms)
	}
	return total
}
