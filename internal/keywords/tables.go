package keywords

// Tables is the static matching policy used by the Classifier.
//
// Category sets decide relevance by exact (case-insensitive) membership.
// Priority rules decide the tier by substring containment, checked in
// High, Medium, Low order.
type Tables struct {
	Technical     []string
	Interpersonal []string
	Tooling       []string

	HighRules   []string
	MediumRules []string
	LowRules    []string

	Tips Tips
}

// Tips holds the advice text attached to each priority tier.
type Tips struct {
	High    string
	Medium  string
	Low     string
	Default string
}

// DefaultTables returns the product's skill tables.
func DefaultTables() Tables {
	return Tables{
		Technical: []string{
			"python", "java", "c++", "c#", "javascript", "typescript", "react", "angular",
			"vue", "node", "express", "fastapi", "django", "flask", "spring", "aws",
			"azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "sql", "mysql",
			"postgresql", "mongodb", "pandas", "numpy", "tensorflow", "pytorch", "rest", "graphql",
		},
		Interpersonal: []string{
			"leadership", "communication", "teamwork", "management", "problem-solving",
			"critical thinking", "adaptability", "creativity", "collaboration", "ownership",
			"stakeholder management", "presentation", "mentoring", "decision making",
			"time management", "organization", "conflict resolution", "empathy", "negotiation",
			"active listening", "initiative", "attention to detail", "multitasking", "work ethic",
			"flexibility", "strategic planning", "customer service", "interpersonal skills",
		},
		Tooling: []string{
			"git", "jira", "figma", "excel", "confluence", "slack", "trello", "notion",
			"microsoft office", "google workspace", "zoom", "teams", "asana", "monday.com",
			"tableau", "powerbi", "outlook", "visio", "draw.io", "github", "gitlab", "bitbucket",
			"postman", "swagger", "docker", "jenkins", "vscode", "pycharm", "intellij", "eclipse",
			"android studio", "xcode",
		},
		HighRules: []string{
			"python", "react", "sql", "java", "node", "docker", "kubernetes", "aws",
			"tensorflow", "pytorch", "rest", "graphql", "django",
		},
		MediumRules: []string{
			"management", "leadership", "strategy", "project management", "stakeholder management",
			"decision making", "mentoring", "strategic planning", "cicd", "agile", "scrum",
		},
		LowRules: []string{
			"communication", "teamwork", "collaboration", "creativity", "adaptability",
			"critical thinking", "problem-solving", "empathy", "negotiation", "presentation",
			"organization", "time management", "ownership", "active listening", "flexibility",
		},
		Tips: Tips{
			High:    "Highlight this skill prominently in Skills or Projects.",
			Medium:  "Demonstrate this skill through experience or achievements.",
			Low:     "Mention in Summary, Cover Letter, or soft skills section.",
			Default: "Include this skill naturally in your resume if relevant.",
		},
	}
}
