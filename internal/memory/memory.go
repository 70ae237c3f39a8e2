package memory

import "encoding/json"

// ProjectMemory is the live status record for one construction project.
// Every field is always populated; sessions start from DefaultProject and
// only ever overwrite individual fields.
type ProjectMemory struct {
	ProjectName     string    `json:"project_name"`
	OverallProgress string    `json:"overall_progress"`
	Milestones      []string  `json:"milestones"`
	Materials       Materials `json:"materials"`
	Delays          []string  `json:"delays"`
	Safety          []string  `json:"safety"`
	Team            Team      `json:"team"`
	NextSteps       []string  `json:"next_steps"`
	SiteHours       string    `json:"site_hours"`
	Contact         string    `json:"contact"`
	WeatherNote     string    `json:"weather_note"`
}

type Materials struct {
	Cement string `json:"cement"`
	Steel  string `json:"steel"`
	Bricks string `json:"bricks"`
	Tiles  string `json:"tiles"`
}

type Team struct {
	SiteEngineer string `json:"site_engineer"`
	Contractor   string `json:"contractor"`
	Electricians int    `json:"electricians"`
	Masons       int    `json:"masons"`
	Carpenters   int    `json:"carpenters"`
}

// DefaultProject returns a fresh copy of the Riverwood Tower A record.
func DefaultProject() *ProjectMemory {
	return &ProjectMemory{
		ProjectName:     "Riverwood Residences – Tower A",
		OverallProgress: "48%",
		Milestones: []string{
			"Foundation and raft completed",
			"Ground + 3 slabs poured",
			"Blockwork up to Level 2 finished",
			"MEP rough-ins started at Level 1",
		},
		Materials: Materials{
			Cement: "Sufficient for next 10 days",
			Steel:  "Next lot arriving tomorrow 11 AM",
			Bricks: "Stock for 7 days; fresh order placed",
			Tiles:  "Shortlisted; vendor confirmation pending",
		},
		Delays: []string{
			"One-day slip due to heavy rain last week",
			"Tile vendor sample re-approval pending",
		},
		Safety: []string{
			"Daily toolbox talk at 9 AM",
			"PPE compliance at 97%",
			"Scaffold tag checks completed",
		},
		Team: Team{
			SiteEngineer: "Asha Kulkarni",
			Contractor:   "Rao Constructions",
			Electricians: 8,
			Masons:       24,
			Carpenters:   14,
		},
		NextSteps: []string{
			"Slab shuttering for Level 4",
			"Brickwork Level 3",
			"Electrical conduits Level 2",
			"Lift shaft shuttering",
		},
		SiteHours:   "Mon–Sat · 8:00–18:00",
		Contact:     "site@riverwoodhomes.in · +91-98765-43210",
		WeatherNote: "Light showers possible later today; concreting planned before 4 PM.",
	}
}

// Snapshot serializes the record for prompt embedding.
func (m *ProjectMemory) Snapshot() string {
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// SetField overwrites one editable scalar field by its wire name.
// Returns false for unknown or non-scalar fields.
func (m *ProjectMemory) SetField(field, value string) bool {
	switch field {
	case "project_name":
		m.ProjectName = value
	case "overall_progress":
		m.OverallProgress = value
	case "weather_note":
		m.WeatherNote = value
	case "site_hours":
		m.SiteHours = value
	case "contact":
		m.Contact = value
	default:
		return false
	}
	return true
}
