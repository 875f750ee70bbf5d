package playbooks

import (
	"fmt"

	"github.com/formatio/formatio/internal/render"
)

// buildPDF lays out a validated playbook as a paginated document.
func buildPDF(pb *Playbook) *render.Builder {
	b := render.NewBuilder()

	b.Title(pb.Header.Title)
	if pb.Header.Subtitle != "" {
		b.Paragraph(pb.Header.Subtitle)
	}

	b.KeyValue("Track", string(pb.Header.Track))
	b.KeyValue("Prepared for", fmt.Sprintf("%s, %s", pb.Header.PreparedFor.LeaderName, pb.Header.PreparedFor.GroupName))
	b.KeyValue("Group type", pb.Header.Audience.GroupType)
	b.KeyValue("Age group", pb.Header.Audience.AgeGroup)
	b.KeyValue("Setting", pb.Header.Context.Setting)
	b.KeyValue("Time horizon", string(pb.Header.Context.TimeHorizon))
	if pb.Header.Context.TopicOrText != "" {
		b.KeyValue("Topic or text", pb.Header.Context.TopicOrText)
	}

	b.Heading("Overview")
	b.Paragraph(pb.Overview.ExecutiveSummary)

	b.Subheading("Formation Problem")
	b.Paragraph(pb.Overview.FormationProblem.Statement)
	b.Paragraph("Likely causes:")
	b.Bullets(pb.Overview.FormationProblem.LikelyCauses)

	b.Subheading("Formation Goal")
	b.Paragraph(pb.Overview.Outcomes.FormationGoal)

	b.Subheading("Measurable Indicators")
	b.Bullets(pb.Overview.Outcomes.MeasurableIndicators)

	b.Subheading("Learning Objectives")
	render.WriteBloomsObjectives(b, pb.Overview.BloomsObjectives)

	render.WriteModules(b, &pb.Modules)
	render.WriteResources(b, pb.RecommendedResources)

	return b
}
