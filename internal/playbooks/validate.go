package playbooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
)

var rootKeys = []string{"header", "overview", "modules", "recommendedResources"}

// decode unmarshals a candidate JSON object into a Playbook, enforcing the
// strict root-key contract before field validation.
func decode(raw json.RawMessage) (*Playbook, schema.Issues, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, nil, fmt.Errorf("decode root object: %w", err)
	}

	var is schema.Issues
	checkRootKeys(root, &is)

	var pb Playbook
	if err := json.Unmarshal(raw, &pb); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, nil, fmt.Errorf("decode playbook: %w", err)
		}
		is.Addf(typeErr.Field, "expected %s", typeErr.Type)
		return nil, is, nil
	}

	is = append(is, pb.Validate()...)
	if len(is) > 0 {
		return nil, is, nil
	}

	return &pb, nil, nil
}

func checkRootKeys(root map[string]json.RawMessage, is *schema.Issues) {
	for _, key := range rootKeys {
		if _, ok := root[key]; !ok {
			is.Add(key, "required")
		}
	}

	for key := range root {
		if !slices.Contains(rootKeys, key) {
			is.Addf("", "unexpected root key %q", key)
		}
	}
}

// Validate checks the playbook contract and returns every violation found.
func (pb *Playbook) Validate() schema.Issues {
	var is schema.Issues

	schema.Required(&is, "header.title", pb.Header.Title)
	schema.Enum(&is, "header.track", pb.Header.Track, schema.Roles())
	schema.Required(&is, "header.preparedFor.groupName", pb.Header.PreparedFor.GroupName)
	schema.Required(&is, "header.audience.groupType", pb.Header.Audience.GroupType)
	schema.Required(&is, "header.audience.ageGroup", pb.Header.Audience.AgeGroup)
	schema.Enum(&is, "header.context.timeHorizon", pb.Header.Context.TimeHorizon, intake.TimeHorizons())

	schema.Required(&is, "overview.executiveSummary", pb.Overview.ExecutiveSummary)
	schema.Required(&is, "overview.formationProblem.statement", pb.Overview.FormationProblem.Statement)
	schema.MinLen(&is, "overview.formationProblem.likelyCauses", pb.Overview.FormationProblem.LikelyCauses, 1)
	schema.Required(&is, "overview.outcomes.formationGoal", pb.Overview.Outcomes.FormationGoal)
	schema.MinLen(&is, "overview.outcomes.measurableIndicators", pb.Overview.Outcomes.MeasurableIndicators, 3)
	schema.ValidateBloomsObjectives("overview.bloomsObjectives", pb.Overview.BloomsObjectives, &is)

	pb.Modules.ValidateForRole("modules", pb.Header.Track, &is)

	schema.ValidateResources("recommendedResources", pb.RecommendedResources, &is)

	return is
}
