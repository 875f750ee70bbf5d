// Package blueprints implements the blueprint document domain: the typed
// contract the model must satisfy, generation through the workflow, durable
// storage with re-validation on read, and the HTTP surface.
package blueprints

import (
	"time"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
)

// Blueprint is a validated ministry education blueprint. The root carries
// exactly four sections; anything else the model produces is rejected.
type Blueprint struct {
	Header               Header            `json:"header"`
	Overview             Overview          `json:"overview"`
	Modules              schema.Modules    `json:"modules"`
	RecommendedResources []schema.Resource `json:"recommendedResources"`
}

// Header identifies the blueprint and echoes the intake context it was
// generated from.
type Header struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Role        schema.Role `json:"role"`
	PreparedFor PreparedFor `json:"preparedFor"`
	Context     Context     `json:"context"`
}

// PreparedFor names the leader and group the document serves.
type PreparedFor struct {
	LeaderName string `json:"leaderName"`
	GroupName  string `json:"groupName"`
}

// Context carries the generation parameters echoed into the document.
type Context struct {
	Setting         string             `json:"setting"`
	AgeGroup        string             `json:"ageGroup"`
	DesignType      intake.DesignType  `json:"designType"`
	TimeHorizon     intake.TimeHorizon `json:"timeHorizon"`
	DurationMinutes int                `json:"durationMinutes"`
	TopicOrText     string             `json:"topicOrText,omitempty"`
	Constraints     []string           `json:"constraints,omitempty"`
}

// Overview carries the formation summary and learning objectives.
type Overview struct {
	ExecutiveSummary string                   `json:"executiveSummary"`
	Outcomes         Outcomes                 `json:"outcomes"`
	BloomsObjectives []schema.BloomsObjective `json:"bloomsObjectives"`
}

// Outcomes states the formation goal and how progress toward it is observed.
type Outcomes struct {
	FormationGoal        string   `json:"formationGoal"`
	MeasurableIndicators []string `json:"measurableIndicators"`
}

// Record is a persisted blueprint row. Document is re-validated on every
// read; rows that no longer satisfy the contract are treated as absent.
type Record struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Role      schema.Role   `json:"role"`
	GroupName string        `json:"group_name"`
	Intake    intake.Intake `json:"intake"`
	Document  Blueprint     `json:"document"`
	CreatedAt time.Time     `json:"created_at"`
}

// Summary is the list/search projection of a persisted blueprint.
type Summary struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Role      schema.Role `json:"role"`
	GroupName string      `json:"group_name"`
	CreatedAt time.Time   `json:"created_at"`
}

// Generated is the response for a successful generation: the persisted
// identifier, the validated document, and whether a repair pass was needed.
type Generated struct {
	ID       uuid.UUID `json:"id"`
	Document Blueprint `json:"document"`
	Repaired bool      `json:"repaired"`
}

// BatchResult reports the outcome of a single intake within a batch
// generation. On failure, Error describes the problem and Generated is nil.
type BatchResult struct {
	Index     int        `json:"index"`
	Generated *Generated `json:"generated,omitempty"`
	Error     string     `json:"error,omitempty"`
}
