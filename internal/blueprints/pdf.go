package blueprints

import (
	"fmt"

	"github.com/formatio/formatio/internal/render"
)

// buildPDF lays out a validated blueprint as a paginated document.
func buildPDF(bp *Blueprint) *render.Builder {
	b := render.NewBuilder()

	b.Title(bp.Header.Title)
	if bp.Header.Subtitle != "" {
		b.Paragraph(bp.Header.Subtitle)
	}

	b.KeyValue("Role", string(bp.Header.Role))
	b.KeyValue("Prepared for", fmt.Sprintf("%s, %s", bp.Header.PreparedFor.LeaderName, bp.Header.PreparedFor.GroupName))
	b.KeyValue("Setting", bp.Header.Context.Setting)
	b.KeyValue("Age group", bp.Header.Context.AgeGroup)
	b.KeyValue("Design type", string(bp.Header.Context.DesignType))
	b.KeyValue("Time horizon", string(bp.Header.Context.TimeHorizon))
	b.KeyValue("Session duration", fmt.Sprintf("%d min", bp.Header.Context.DurationMinutes))
	if bp.Header.Context.TopicOrText != "" {
		b.KeyValue("Topic or text", bp.Header.Context.TopicOrText)
	}

	b.Heading("Overview")
	b.Paragraph(bp.Overview.ExecutiveSummary)

	b.Subheading("Formation Goal")
	b.Paragraph(bp.Overview.Outcomes.FormationGoal)

	b.Subheading("Measurable Indicators")
	b.Bullets(bp.Overview.Outcomes.MeasurableIndicators)

	b.Subheading("Learning Objectives")
	render.WriteBloomsObjectives(b, bp.Overview.BloomsObjectives)

	render.WriteModules(b, &bp.Modules)
	render.WriteResources(b, bp.RecommendedResources)

	return b
}
