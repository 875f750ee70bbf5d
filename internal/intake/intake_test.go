package intake_test

import (
	"encoding/json"
	"testing"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
)

func validIntake() intake.Intake {
	return intake.Intake{
		Role:           schema.RoleTeacher,
		DesignType:     intake.DesignMultiWeekSeries,
		TimeHorizon:    intake.HorizonWeeks4To6,
		AgeGroup:       intake.AgeAdults,
		Setting:        intake.SettingSundaySchool,
		Duration:       intake.Duration45To60,
		TopicOrText:    "Romans 12",
		DesiredOutcome: "Members practice daily scripture engagement",
		LeaderName:     "Jordan Avery",
		GroupName:      "Adult Bible Fellowship",
	}
}

func TestIntakeValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := validIntake()
		if is := in.Validate(); len(is) != 0 {
			t.Errorf("valid intake recorded issues: %v", is)
		}
	})

	tests := []struct {
		name     string
		mutate   func(*intake.Intake)
		wantPath string
	}{
		{
			"bad role",
			func(in *intake.Intake) { in.Role = "Elder" },
			"role",
		},
		{
			"bad design type",
			func(in *intake.Intake) { in.DesignType = "Retreat" },
			"designType",
		},
		{
			"bad setting",
			func(in *intake.Intake) { in.Setting = "Camp" },
			"setting",
		},
		{
			"custom duration below range",
			func(in *intake.Intake) {
				in.Duration = intake.DurationCustom
				in.DurationCustomMinutes = 5
			},
			"durationCustomMinutes",
		},
		{
			"custom duration above range",
			func(in *intake.Intake) {
				in.Duration = intake.DurationCustom
				in.DurationCustomMinutes = 300
			},
			"durationCustomMinutes",
		},
		{
			"short desired outcome",
			func(in *intake.Intake) { in.DesiredOutcome = "  ok  " },
			"desiredOutcome",
		},
		{
			"short group name",
			func(in *intake.Intake) { in.GroupName = "A" },
			"groupName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validIntake()
			tt.mutate(&in)

			is := in.Validate()
			if len(is) == 0 {
				t.Fatal("expected issues, got none")
			}

			found := false
			for _, issue := range is {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q, got %v", tt.wantPath, is)
			}
		})
	}

	t.Run("custom duration in range", func(t *testing.T) {
		in := validIntake()
		in.Duration = intake.DurationCustom
		in.DurationCustomMinutes = 75
		if is := in.Validate(); len(is) != 0 {
			t.Errorf("75 minute custom duration recorded issues: %v", is)
		}
	})
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		name   string
		intake intake.Intake
		want   string
	}{
		{
			"preset",
			intake.Intake{Duration: intake.Duration45To60},
			"45–60 min",
		},
		{
			"custom with minutes",
			intake.Intake{Duration: intake.DurationCustom, DurationCustomMinutes: 75},
			"75 min",
		},
		{
			"custom without minutes",
			intake.Intake{Duration: intake.DurationCustom},
			"Custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.intake.DurationLabel(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettingLabel(t *testing.T) {
	t.Run("standard setting", func(t *testing.T) {
		in := intake.Intake{Setting: intake.SettingSmallGroup, SettingDetail: "ignored"}
		if got := in.SettingLabel(); got != "Small Group" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("other with detail", func(t *testing.T) {
		in := intake.Intake{Setting: intake.SettingOther, SettingDetail: "Men's breakfast"}
		if got := in.SettingLabel(); got != "Other — Men's breakfast" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("other without detail", func(t *testing.T) {
		in := intake.Intake{Setting: intake.SettingOther}
		if got := in.SettingLabel(); got != "Other" {
			t.Errorf("got %q", got)
		}
	})
}

func TestLeader(t *testing.T) {
	in := intake.Intake{LeaderName: "  "}
	if got := in.Leader(); got != "Teacher/Leader" {
		t.Errorf("got %q, want fallback", got)
	}

	in.LeaderName = "Sam Rivers"
	if got := in.Leader(); got != "Sam Rivers" {
		t.Errorf("got %q", got)
	}
}

func TestConstraintListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"string array",
			`["no homework", " keep groups small "]`,
			[]string{"no homework", "keep groups small"},
		},
		{
			"newline blob",
			`"no homework\nkeep groups small\n"`,
			[]string{"no homework", "keep groups small"},
		},
		{
			"comma blob",
			`"no homework, keep groups small"`,
			[]string{"no homework", "keep groups small"},
		},
		{
			"empty entries dropped",
			`["", "  ", "one"]`,
			[]string{"one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got intake.ConstraintList
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}

	t.Run("invalid type", func(t *testing.T) {
		var got intake.ConstraintList
		if err := json.Unmarshal([]byte(`42`), &got); err == nil {
			t.Error("numeric constraint input should fail")
		}
	})
}
