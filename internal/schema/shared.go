package schema

// BloomsLevel is one of the six fixed cognitive levels every document's
// overview must cover.
type BloomsLevel string

// Bloom's taxonomy levels in their conventional pedagogical order.
const (
	BloomsRemember   BloomsLevel = "Remember"
	BloomsUnderstand BloomsLevel = "Understand"
	BloomsApply      BloomsLevel = "Apply"
	BloomsAnalyze    BloomsLevel = "Analyze"
	BloomsEvaluate   BloomsLevel = "Evaluate"
	BloomsCreate     BloomsLevel = "Create"
)

var bloomsLevels = []BloomsLevel{
	BloomsRemember,
	BloomsUnderstand,
	BloomsApply,
	BloomsAnalyze,
	BloomsEvaluate,
	BloomsCreate,
}

// BloomsLevels returns the six taxonomy levels in fixed order.
func BloomsLevels() []BloomsLevel {
	return bloomsLevels
}

// BloomsObjectiveCount is the required number of objective entries.
const BloomsObjectiveCount = 6

// BloomsObjective pairs a taxonomy level with a concrete learning objective
// and the evidence a leader should look for.
type BloomsObjective struct {
	Level     BloomsLevel `json:"level"`
	Objective string      `json:"objective"`
	Evidence  string      `json:"evidence"`
}

// Validate records contract violations under the given path prefix.
func (b *BloomsObjective) Validate(path string, is *Issues) {
	Enum(is, joinPath(path, "level"), b.Level, bloomsLevels)
	Required(is, joinPath(path, "objective"), b.Objective)
	Required(is, joinPath(path, "evidence"), b.Evidence)
}

// ValidateBloomsObjectives checks the overview objective list: exactly six
// entries, each with a valid level. Order and uniqueness of levels are a
// prompt-level convention and deliberately not enforced here.
func ValidateBloomsObjectives(path string, objectives []BloomsObjective, is *Issues) {
	ExactLen(is, path, objectives, BloomsObjectiveCount)
	for i := range objectives {
		objectives[i].Validate(indexPath(path, i), is)
	}
}

// Resource bounds for the recommended reading list.
const (
	ResourcesMin = 3
	ResourcesMax = 6
)

// Resource is one recommended book or study aid.
type Resource struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Publisher    string `json:"publisher"`
	AmazonURL    string `json:"amazonUrl"`
	PublisherURL string `json:"publisherUrl"`
	WhyThisHelps string `json:"whyThisHelps"`
}

// Validate records contract violations under the given path prefix.
func (r *Resource) Validate(path string, is *Issues) {
	Required(is, joinPath(path, "title"), r.Title)
	Required(is, joinPath(path, "author"), r.Author)
	Required(is, joinPath(path, "publisher"), r.Publisher)
	ValidURL(is, joinPath(path, "amazonUrl"), r.AmazonURL)
	ValidURL(is, joinPath(path, "publisherUrl"), r.PublisherURL)
	Required(is, joinPath(path, "whyThisHelps"), r.WhyThisHelps)
}

// ValidateResources checks the bounded recommended resource list.
func ValidateResources(path string, resources []Resource, is *Issues) {
	LenBetween(is, path, resources, ResourcesMin, ResourcesMax)
	for i := range resources {
		resources[i].Validate(indexPath(path, i), is)
	}
}

// SessionFlow is a single timed segment within a session. Segment minutes
// should sum to the session duration, but that remains a prompt-level
// convention rather than a structural check.
type SessionFlow struct {
	Segment string `json:"segment"`
	Minutes int    `json:"minutes"`
	Purpose string `json:"purpose"`
}

// Validate records contract violations under the given path prefix.
func (f *SessionFlow) Validate(path string, is *Issues) {
	Required(is, joinPath(path, "segment"), f.Segment)
	IntBetween(is, joinPath(path, "minutes"), f.Minutes, 3, 180)
	Required(is, joinPath(path, "purpose"), f.Purpose)
}

// Session is an ordered sequence of timed segments with a total duration.
type Session struct {
	Title           string        `json:"title"`
	DurationMinutes int           `json:"durationMinutes"`
	Flow            []SessionFlow `json:"flow"`
}

// Validate records contract violations under the given path prefix.
func (s *Session) Validate(path string, is *Issues) {
	Required(is, joinPath(path, "title"), s.Title)
	IntBetween(is, joinPath(path, "durationMinutes"), s.DurationMinutes, 10, 240)
	MinLen(is, joinPath(path, "flow"), s.Flow, 4)
	for i := range s.Flow {
		s.Flow[i].Validate(indexPath(joinPath(path, "flow"), i), is)
	}
}

// PlanType describes the cadence a lesson or series plan covers.
type PlanType string

// Valid plan types.
const (
	PlanSingleSession   PlanType = "Single Session"
	PlanMultiSession    PlanType = "Multi-Session"
	PlanQuarterSemester PlanType = "Quarter/Semester"
)

// Each role module covers a different planning horizon, so each accepts
// its own slice of the plan types.
var (
	teacherPlanTypes = []PlanType{
		PlanSingleSession,
		PlanMultiSession,
	}

	pastorPlanTypes = []PlanType{
		PlanMultiSession,
		PlanQuarterSemester,
	}
)
