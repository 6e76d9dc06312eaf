package locale

// Bundle holds every language dependent string the service produces.
type Bundle struct {
	SystemPrompt    string
	Openings        []string // first entry is the default opening
	Closing         string
	Acknowledgment  string
	Welcome         string
	CreatorResponse string
}
