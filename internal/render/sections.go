package render

import (
	"fmt"

	"github.com/formatio/formatio/internal/schema"
)

// WriteBloomsObjectives lays out the six learning objectives as bullets.
func WriteBloomsObjectives(b *Builder, objectives []schema.BloomsObjective) {
	lines := make([]string, len(objectives))
	for i, o := range objectives {
		lines[i] = fmt.Sprintf("%s: %s (Evidence: %s)", o.Level, o.Objective, o.Evidence)
	}
	b.Bullets(lines)
}

// WriteModules lays out whichever role module the document carries.
func WriteModules(b *Builder, m *schema.Modules) {
	switch {
	case m.Teacher != nil:
		writeTeacherModule(b, m.Teacher)
	case m.PastorLeader != nil:
		writePastorLeaderModule(b, m.PastorLeader)
	case m.YouthLeader != nil:
		writeYouthLeaderModule(b, m.YouthLeader)
	}
}

func writeTeacherModule(b *Builder, m *schema.TeacherModule) {
	b.Heading("Teaching Plan")

	b.Subheading("Prep: Before the Week")
	b.Bullets(m.PrepChecklist.BeforeTheWeek)

	b.Subheading("Prep: Day Of")
	b.Bullets(m.PrepChecklist.DayOf)

	b.Subheading(fmt.Sprintf("Lesson Plan (%s)", m.LessonPlan.PlanType))
	for _, s := range m.LessonPlan.Sessions {
		writeSession(b, &s)
	}

	b.Subheading("Opening Questions")
	b.Bullets(m.FacilitationPrompts.OpeningQuestions)

	b.Subheading("Discussion Questions")
	b.Bullets(m.FacilitationPrompts.DiscussionQuestions)

	b.Subheading("Application Prompts")
	b.Bullets(m.FacilitationPrompts.ApplicationPrompts)

	b.Subheading("Same-Week Practice")
	b.Bullets(m.FollowUpPlan.SameWeekPractice)

	b.Subheading("Next Touchpoint")
	b.Bullets(m.FollowUpPlan.NextTouchpoint)
}

func writePastorLeaderModule(b *Builder, m *schema.PastorLeaderModule) {
	b.Heading("Leadership Plan")

	b.KeyValue("Plan type", string(m.PlanOverview.PlanType))
	b.KeyValue("Cadence", m.PlanOverview.Cadence)

	b.Subheading("Alignment Notes")
	b.Bullets(m.PlanOverview.AlignmentNotes)

	for _, s := range m.Sessions {
		b.Subheading(s.Title)
		b.Paragraph(s.Objective)

		b.Paragraph("Leader prep:")
		b.Bullets(s.LeaderPrep)

		writeSession(b, &s.SessionPlan)

		b.Paragraph("Take-home practice:")
		b.Bullets(s.TakeHomePractice)
	}

	b.Subheading("Leader Training")
	for _, t := range m.LeaderTrainingPlan.TrainingSessions {
		b.KeyValue(t.Title, fmt.Sprintf("%d min", t.DurationMinutes))
		b.Bullets(t.Agenda)
	}
	b.Paragraph("Coaching notes:")
	b.Bullets(m.LeaderTrainingPlan.CoachingNotes)

	b.Subheading("Measurement Framework")
	b.Paragraph("Inputs to track:")
	b.Bullets(m.MeasurementFramework.InputsToTrack)
	b.Paragraph("Outcomes to measure:")
	b.Bullets(m.MeasurementFramework.OutcomesToMeasure)
	b.Paragraph("Simple rubric:")
	b.Bullets(m.MeasurementFramework.SimpleRubric)
}

func writeYouthLeaderModule(b *Builder, m *schema.YouthLeaderModule) {
	b.Heading("Youth Plan")

	for _, s := range m.ActivityIntegratedPlan.Sessions {
		writeSession(b, &s)
	}

	b.Subheading("Activity Bank")
	for _, a := range m.ActivityBank {
		b.KeyValue(a.Name, fmt.Sprintf("%d min", a.TimeMinutes))
		b.Paragraph(a.ObjectiveTie)
		b.Paragraph("Setup: " + a.Setup)
		b.Paragraph("Debrief:")
		b.Bullets(a.DebriefQuestions)
	}

	b.Subheading("Transitions")
	b.Bullets(m.LeaderNotes.Transitions)

	b.Subheading("Engagement Moves")
	b.Bullets(m.LeaderNotes.EngagementMoves)

	b.Subheading("Guardrails")
	b.Bullets(m.LeaderNotes.Guardrails)
}

func writeSession(b *Builder, s *schema.Session) {
	b.KeyValue(s.Title, fmt.Sprintf("%d min", s.DurationMinutes))

	lines := make([]string, len(s.Flow))
	for i, f := range s.Flow {
		lines[i] = fmt.Sprintf("%s (%d min): %s", f.Segment, f.Minutes, f.Purpose)
	}
	b.Bullets(lines)
}

// WriteResources lays out the recommended resource list.
func WriteResources(b *Builder, resources []schema.Resource) {
	b.Heading("Recommended Resources")

	for _, r := range resources {
		b.Subheading(fmt.Sprintf("%s by %s", r.Title, r.Author))
		b.KeyValue("Publisher", r.Publisher)
		b.KeyValue("Amazon", r.AmazonURL)
		b.KeyValue("Publisher link", r.PublisherURL)
		b.Paragraph(r.WhyThisHelps)
	}
}
