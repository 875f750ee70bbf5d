// Package playbooks implements the playbook document domain. A playbook is
// the track-oriented counterpart to a blueprint: it names the formation
// problem a group faces and lays out the sessions and practices that address
// it. Generation, storage, and HTTP surface mirror the blueprint domain.
package playbooks

import (
	"time"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
)

// Playbook is a validated ministry formation playbook. The root carries
// exactly four sections; anything else the model produces is rejected.
type Playbook struct {
	Header               Header            `json:"header"`
	Overview             Overview          `json:"overview"`
	Modules              schema.Modules    `json:"modules"`
	RecommendedResources []schema.Resource `json:"recommendedResources"`
}

// Header identifies the playbook, its track, and its audience.
type Header struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Track       schema.Role `json:"track"`
	PreparedFor PreparedFor `json:"preparedFor"`
	Audience    Audience    `json:"audience"`
	Context     Context     `json:"context"`
}

// PreparedFor names the leader and group the document serves.
type PreparedFor struct {
	LeaderName string `json:"leaderName"`
	GroupName  string `json:"groupName"`
}

// Audience describes who the playbook forms.
type Audience struct {
	GroupType string `json:"groupType"`
	AgeGroup  string `json:"ageGroup"`
}

// Context carries the generation parameters echoed into the document.
type Context struct {
	Setting     string             `json:"setting"`
	TimeHorizon intake.TimeHorizon `json:"timeHorizon"`
	TopicOrText string             `json:"topicOrText,omitempty"`
	Constraints []string           `json:"constraints,omitempty"`
}

// Overview carries the formation problem, goals, and learning objectives.
type Overview struct {
	ExecutiveSummary string                   `json:"executiveSummary"`
	FormationProblem FormationProblem         `json:"formationProblem"`
	Outcomes         Outcomes                 `json:"outcomes"`
	BloomsObjectives []schema.BloomsObjective `json:"bloomsObjectives"`
}

// FormationProblem states what is not yet formed in the group and why.
type FormationProblem struct {
	Statement    string   `json:"statement"`
	LikelyCauses []string `json:"likelyCauses"`
}

// Outcomes states the formation goal and how progress toward it is observed.
type Outcomes struct {
	FormationGoal        string   `json:"formationGoal"`
	MeasurableIndicators []string `json:"measurableIndicators"`
}

// Record is a persisted playbook row. Document is re-validated on every
// read; rows that no longer satisfy the contract are treated as absent.
type Record struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Track     schema.Role   `json:"track"`
	GroupName string        `json:"group_name"`
	Intake    intake.Intake `json:"intake"`
	Document  Playbook      `json:"document"`
	CreatedAt time.Time     `json:"created_at"`
}

// Summary is the list/search projection of a persisted playbook.
type Summary struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Track     schema.Role `json:"track"`
	GroupName string      `json:"group_name"`
	CreatedAt time.Time   `json:"created_at"`
}

// Generated is the response for a successful generation.
type Generated struct {
	ID       uuid.UUID `json:"id"`
	Document Playbook  `json:"document"`
	Repaired bool      `json:"repaired"`
}
