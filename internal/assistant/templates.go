package assistant

// Template describes one entry in the static email template catalog.
type Template struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

var templateCatalog = map[string]Template{
	"thank_you": {
		Name:        "Thank You Email",
		Description: "Express gratitude and appreciation",
		Example:     "Thank someone for their time, help, or support",
	},
	"follow_up": {
		Name:        "Follow-up Email",
		Description: "Follow up on previous conversations or meetings",
		Example:     "Check on project status or continue a discussion",
	},
	"meeting_request": {
		Name:        "Meeting Request",
		Description: "Request a meeting or schedule discussion",
		Example:     "Schedule a call, meeting, or presentation",
	},
	"project_update": {
		Name:        "Project Update",
		Description: "Provide status updates on ongoing work",
		Example:     "Share progress, milestones, or changes",
	},
	"apology": {
		Name:        "Apology Email",
		Description: "Apologize professionally for mistakes or delays",
		Example:     "Address errors, missed deadlines, or misunderstandings",
	},
	"introduction": {
		Name:        "Introduction Email",
		Description: "Introduce yourself or connect people",
		Example:     "Network, introduce services, or make connections",
	},
	"proposal": {
		Name:        "Proposal Email",
		Description: "Present ideas, suggestions, or business proposals",
		Example:     "Pitch services, suggest solutions, or present offers",
	},
	"reminder": {
		Name:        "Reminder Email",
		Description: "Gentle reminders for deadlines or commitments",
		Example:     "Remind about meetings, payments, or deliverables",
	},
}

// Templates returns the static template catalog keyed by template identifier.
func Templates() map[string]Template {
	return templateCatalog
}
