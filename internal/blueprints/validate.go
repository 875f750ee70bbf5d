package blueprints

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
)

var rootKeys = []string{"header", "overview", "modules", "recommendedResources"}

// decode unmarshals a candidate JSON object into a Blueprint, enforcing the
// strict root-key contract before field validation. Type mismatches surface
// as issues at their document path rather than decode crashes.
func decode(raw json.RawMessage) (*Blueprint, schema.Issues, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, nil, fmt.Errorf("decode root object: %w", err)
	}

	var is schema.Issues
	checkRootKeys(root, &is)

	var bp Blueprint
	if err := json.Unmarshal(raw, &bp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, nil, fmt.Errorf("decode blueprint: %w", err)
		}
		is.Addf(typeErr.Field, "expected %s", typeErr.Type)
		return nil, is, nil
	}

	is = append(is, bp.Validate()...)
	if len(is) > 0 {
		return nil, is, nil
	}

	return &bp, nil, nil
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

// Validate checks the blueprint contract and returns every violation found.
// An empty result is the sole gate for persistence and client delivery.
func (bp *Blueprint) Validate() schema.Issues {
	var is schema.Issues

	schema.Required(&is, "header.title", bp.Header.Title)
	schema.Enum(&is, "header.role", bp.Header.Role, schema.Roles())
	schema.Required(&is, "header.preparedFor.groupName", bp.Header.PreparedFor.GroupName)
	schema.Enum(&is, "header.context.designType", bp.Header.Context.DesignType, intake.DesignTypes())
	schema.Enum(&is, "header.context.timeHorizon", bp.Header.Context.TimeHorizon, intake.TimeHorizons())
	schema.IntBetween(&is, "header.context.durationMinutes", bp.Header.Context.DurationMinutes, 10, 240)

	schema.Required(&is, "overview.executiveSummary", bp.Overview.ExecutiveSummary)
	schema.Required(&is, "overview.outcomes.formationGoal", bp.Overview.Outcomes.FormationGoal)
	schema.MinLen(&is, "overview.outcomes.measurableIndicators", bp.Overview.Outcomes.MeasurableIndicators, 3)
	schema.ValidateBloomsObjectives("overview.bloomsObjectives", bp.Overview.BloomsObjectives, &is)

	bp.Modules.ValidateForRole("modules", bp.Header.Role, &is)

	schema.ValidateResources("recommendedResources", bp.RecommendedResources, &is)

	return is
}
