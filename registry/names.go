package registry

// GroupNames defines the conventional group names used across projects.
// Projects embed this struct in their own name sets.
type GroupNames struct {
	Default     string
	Production  string
	Development string
	Staging     string
	Testing     string
}

// Groups contains the conventional group names.
var Groups = GroupNames{
	Default:     "default",
	Production:  "production",
	Development: "development",
	Staging:     "staging",
	Testing:     "testing",
}

// RefNames defines conventional reference names for common bindings.
type RefNames struct {
	Config   string
	Logger   string
	Database string
	Cache    string
	Clock    string
	APIKey   string
	BaseURL  string
}

// Refs contains the conventional reference names.
var Refs = RefNames{
	Config:   "config",
	Logger:   "logger",
	Database: "database",
	Cache:    "cache",
	Clock:    "clock",
	APIKey:   "api_key",
	BaseURL:  "base_url",
}
