// Package intake implements the submission contract for document generation.
// It defines the form record, its closed option sets, and the validation
// that gates every generation request.
package intake

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/formatio/formatio/internal/schema"
)

// Intake is a user-submitted generation request. It is immutable once handed
// to the generation workflow; the persisted document carries a copy.
type Intake struct {
	Role                  schema.Role    `json:"role"`
	DesignType            DesignType     `json:"designType"`
	TimeHorizon           TimeHorizon    `json:"timeHorizon"`
	AgeGroup              AgeGroup       `json:"ageGroup"`
	Setting               Setting        `json:"setting"`
	SettingDetail         string         `json:"settingDetail,omitempty"`
	Duration              Duration       `json:"duration"`
	DurationCustomMinutes int            `json:"durationCustomMinutes,omitempty"`
	TopicOrText           string         `json:"topicOrText,omitempty"`
	DesiredOutcome        string         `json:"desiredOutcome"`
	LeaderName            string         `json:"leaderName,omitempty"`
	GroupName             string         `json:"groupName"`
	Constraints           ConstraintList `json:"constraints,omitempty"`
}

// Validate checks the intake contract and returns field-level issues.
// An empty result means the intake may be sent to generation.
func (in *Intake) Validate() schema.Issues {
	var is schema.Issues

	schema.Enum(&is, "role", in.Role, schema.Roles())
	schema.Enum(&is, "designType", in.DesignType, designTypes)
	schema.Enum(&is, "timeHorizon", in.TimeHorizon, timeHorizons)
	schema.Enum(&is, "ageGroup", in.AgeGroup, ageGroups)
	schema.Enum(&is, "setting", in.Setting, settings)
	schema.Enum(&is, "duration", in.Duration, durations)

	if in.Duration == DurationCustom {
		schema.IntBetween(&is, "durationCustomMinutes", in.DurationCustomMinutes, 10, 240)
	}

	if len(strings.TrimSpace(in.DesiredOutcome)) < 3 {
		is.Add("desiredOutcome", "required")
	}
	if len(strings.TrimSpace(in.GroupName)) < 2 {
		is.Add("groupName", "required")
	}

	return is
}

// DurationLabel renders the session duration for prompt text.
// Custom durations include their minute count.
func (in *Intake) DurationLabel() string {
	if in.Duration == DurationCustom {
		if in.DurationCustomMinutes > 0 {
			return fmt.Sprintf("%d min", in.DurationCustomMinutes)
		}
		return string(DurationCustom)
	}
	return string(in.Duration)
}

// SettingLabel renders the setting for prompt text, appending free-text
// detail when the setting is "Other".
func (in *Intake) SettingLabel() string {
	detail := strings.TrimSpace(in.SettingDetail)
	if in.Setting == SettingOther && detail != "" {
		return string(in.Setting) + " — " + detail
	}
	return string(in.Setting)
}

// Leader returns the leader name or a generic fallback for prompt text.
func (in *Intake) Leader() string {
	if name := strings.TrimSpace(in.LeaderName); name != "" {
		return name
	}
	return "Teacher/Leader"
}

// ConstraintList normalizes constraint input. Form clients send either a
// string array or a single newline/comma-separated text blob; both decode
// to a trimmed list with empty entries dropped.
type ConstraintList []string

// UnmarshalJSON accepts an array of strings or a separated string value.
func (c *ConstraintList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = normalizeConstraints(list)
		return nil
	}

	var blob string
	if err := json.Unmarshal(data, &blob); err != nil {
		return err
	}

	*c = normalizeConstraints(strings.FieldsFunc(blob, func(r rune) bool {
		return r == '\n' || r == ','
	}))
	return nil
}

func normalizeConstraints(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
