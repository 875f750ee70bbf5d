package playbooks_test

import (
	"encoding/json"
	"testing"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/playbooks"
	"github.com/formatio/formatio/internal/schema"
)

func validYouthModule() *schema.YouthLeaderModule {
	session := schema.Session{
		Title:           "Belonging Night",
		DurationMinutes: 90,
		Flow: []schema.SessionFlow{
			{Segment: "Game", Minutes: 20, Purpose: "Burn energy, build trust"},
			{Segment: "Teaching", Minutes: 25, Purpose: "Present the theme"},
			{Segment: "Small groups", Minutes: 30, Purpose: "Process together"},
			{Segment: "Commission", Minutes: 15, Purpose: "Send with one practice"},
		},
	}

	three := []string{"first", "second", "third"}
	activity := schema.Activity{
		Name:             "Trust walk",
		ObjectiveTie:     "Dependence on guidance",
		Setup:            "Pair students, one blindfolded",
		TimeMinutes:      15,
		DebriefQuestions: three,
	}

	return &schema.YouthLeaderModule{
		ActivityIntegratedPlan: schema.ActivityIntegratedPlan{
			Sessions: []schema.Session{session},
		},
		ActivityBank: []schema.Activity{activity, activity, activity},
		LeaderNotes: schema.LeaderNotes{
			Transitions:     three,
			EngagementMoves: three,
			Guardrails:      three,
		},
	}
}

func validPlaybook() playbooks.Playbook {
	levels := schema.BloomsLevels()
	objectives := make([]schema.BloomsObjective, len(levels))
	for i, level := range levels {
		objectives[i] = schema.BloomsObjective{
			Level:     level,
			Objective: "State the objective",
			Evidence:  "Observable behavior",
		}
	}

	resource := schema.Resource{
		Title:        "Sticky Faith",
		Author:       "Kara Powell",
		Publisher:    "Zondervan",
		AmazonURL:    "https://www.amazon.com/s?k=sticky+faith",
		PublisherURL: "https://www.google.com/search?q=sticky+faith+zondervan",
		WhyThisHelps: "Research-backed practices for lasting youth formation.",
	}

	return playbooks.Playbook{
		Header: playbooks.Header{
			Title: "Rooted Youth",
			Track: schema.RoleYouthLeader,
			PreparedFor: playbooks.PreparedFor{
				LeaderName: "Sam Rivers",
				GroupName:  "Wednesday Youth",
			},
			Audience: playbooks.Audience{
				GroupType: "Youth group",
				AgeGroup:  "Teens",
			},
			Context: playbooks.Context{
				Setting:     "Small Group",
				TimeHorizon: intake.HorizonWeeks4To6,
				TopicOrText: "Identity in Christ",
			},
		},
		Overview: playbooks.Overview{
			ExecutiveSummary: "A five week identity series for teens.",
			FormationProblem: playbooks.FormationProblem{
				Statement:    "Students anchor identity in performance, not Christ.",
				LikelyCauses: []string{"social media comparison"},
			},
			Outcomes: playbooks.Outcomes{
				FormationGoal:        "Students articulate identity in Christ",
				MeasurableIndicators: []string{"first", "second", "third"},
			},
			BloomsObjectives: objectives,
		},
		Modules:              schema.Modules{YouthLeader: validYouthModule()},
		RecommendedResources: []schema.Resource{resource, resource, resource},
	}
}

func decodePlaybook(t *testing.T, raw []byte) (any, schema.Issues, error) {
	t.Helper()
	c := playbooks.NewContract(&intake.Intake{})
	return c.Decode(raw)
}

func TestDecodeValidDocument(t *testing.T) {
	raw, err := json.Marshal(validPlaybook())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	doc, issues, err := decodePlaybook(t, raw)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("valid document recorded issues: %v", issues)
	}
	if pb := doc.(*playbooks.Playbook); pb.Header.Track != schema.RoleYouthLeader {
		t.Errorf("track = %q", pb.Header.Track)
	}
}

func TestValidateFormationProblem(t *testing.T) {
	pb := validPlaybook()
	pb.Overview.FormationProblem.Statement = ""
	pb.Overview.FormationProblem.LikelyCauses = nil

	issues := pb.Validate()
	wantPaths := []string{
		"overview.formationProblem.statement",
		"overview.formationProblem.likelyCauses",
	}
	for _, want := range wantPaths {
		found := false
		for _, issue := range issues {
			if issue.Path == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no issue at %q, got %v", want, issues)
		}
	}
}

func TestValidateAudienceRequired(t *testing.T) {
	pb := validPlaybook()
	pb.Header.Audience = playbooks.Audience{}

	issues := pb.Validate()
	if len(issues) < 2 {
		t.Errorf("empty audience should record groupType and ageGroup issues, got %v", issues)
	}
}

func TestValidateTrackModuleMismatch(t *testing.T) {
	pb := validPlaybook()
	pb.Header.Track = schema.RoleTeacher

	issues := pb.Validate()
	found := false
	for _, issue := range issues {
		if issue.Path == "modules.teacher" {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue for track/module mismatch, got %v", issues)
	}
}
