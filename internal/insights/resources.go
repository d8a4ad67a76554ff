package insights

// CrisisResource is a static support resource surfaced alongside insights
// when scores run high.
type CrisisResource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Type        string `json:"type"`
}

// CrisisResources lists the curated support options in display order.
var CrisisResources = []CrisisResource{
	{Name: "988 Suicide & Crisis Lifeline", Description: "Free, confidential, 24/7 support", Contact: "Call or text 988", Type: "hotline"},
	{Name: "Crisis Text Line", Description: "Text-based crisis support", Contact: "Text HOME to 741741", Type: "hotline"},
	{Name: "Campus Counseling Center", Description: "Your university counseling services", Contact: "Check your campus directory", Type: "campus"},
	{Name: "Breathing Guide", Description: "A simple guided breathing exercise", Contact: "Available in-app", Type: "breathing"},
	{Name: "Contact Support", Description: "A support contact option", Contact: "Available in-app", Type: "grounding"},
}
