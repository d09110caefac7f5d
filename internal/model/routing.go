package model

// Route describes the department destination for a category.
type Route struct {
	Department  string
	Folder      string
	Description string
}

// RoutingDecision is the outcome of routing a document to a department
// folder. Failed routing is reported through Success and Err, never as a
// raised error.
type RoutingDecision struct {
	Category     Category
	Department   string
	Folder       string
	Path         string
	Description  string
	OriginalPath string
	Err          string
	Success      bool
}
