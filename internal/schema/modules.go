package schema

// TeacherModule is the role module for classroom teachers: preparation,
// lesson plan, facilitation prompts, and follow-up.
type TeacherModule struct {
	PrepChecklist       PrepChecklist       `json:"prepChecklist"`
	LessonPlan          LessonPlan          `json:"lessonPlan"`
	FacilitationPrompts FacilitationPrompts `json:"facilitationPrompts"`
	FollowUpPlan        FollowUpPlan        `json:"followUpPlan"`
}

// PrepChecklist splits preparation steps into week-ahead and day-of work.
type PrepChecklist struct {
	BeforeTheWeek []string `json:"beforeTheWeek"`
	DayOf         []string `json:"dayOf"`
}

// LessonPlan holds one or more fully segmented sessions.
type LessonPlan struct {
	PlanType PlanType  `json:"planType"`
	Sessions []Session `json:"sessions"`
}

// FacilitationPrompts groups prepared questions by their place in a session.
type FacilitationPrompts struct {
	OpeningQuestions    []string `json:"openingQuestions"`
	DiscussionQuestions []string `json:"discussionQuestions"`
	ApplicationPrompts  []string `json:"applicationPrompts"`
}

// FollowUpPlan covers same-week practice and the next touchpoint.
type FollowUpPlan struct {
	SameWeekPractice []string `json:"sameWeekPractice"`
	NextTouchpoint   []string `json:"nextTouchpoint"`
}

// Validate records contract violations under the given path prefix.
func (m *TeacherModule) Validate(path string, is *Issues) {
	MinLen(is, joinPath(path, "prepChecklist.beforeTheWeek"), m.PrepChecklist.BeforeTheWeek, 3)
	MinLen(is, joinPath(path, "prepChecklist.dayOf"), m.PrepChecklist.DayOf, 3)

	Enum(is, joinPath(path, "lessonPlan.planType"), m.LessonPlan.PlanType, teacherPlanTypes)
	MinLen(is, joinPath(path, "lessonPlan.sessions"), m.LessonPlan.Sessions, 1)
	for i := range m.LessonPlan.Sessions {
		m.LessonPlan.Sessions[i].Validate(indexPath(joinPath(path, "lessonPlan.sessions"), i), is)
	}

	MinLen(is, joinPath(path, "facilitationPrompts.openingQuestions"), m.FacilitationPrompts.OpeningQuestions, 3)
	MinLen(is, joinPath(path, "facilitationPrompts.discussionQuestions"), m.FacilitationPrompts.DiscussionQuestions, 4)
	MinLen(is, joinPath(path, "facilitationPrompts.applicationPrompts"), m.FacilitationPrompts.ApplicationPrompts, 3)

	MinLen(is, joinPath(path, "followUpPlan.sameWeekPractice"), m.FollowUpPlan.SameWeekPractice, 2)
	MinLen(is, joinPath(path, "followUpPlan.nextTouchpoint"), m.FollowUpPlan.NextTouchpoint, 2)
}

// PastorLeaderModule is the role module for pastors and ministry leaders:
// a multi-session plan with leader training and a measurement framework.
type PastorLeaderModule struct {
	PlanOverview         PlanOverview         `json:"planOverview"`
	Sessions             []LeaderSession      `json:"sessions"`
	LeaderTrainingPlan   LeaderTrainingPlan   `json:"leaderTrainingPlan"`
	MeasurementFramework MeasurementFramework `json:"measurementFramework"`
}

// PlanOverview frames the plan's cadence and alignment with church rhythms.
type PlanOverview struct {
	PlanType       PlanType `json:"planType"`
	Cadence        string   `json:"cadence"`
	AlignmentNotes []string `json:"alignmentNotes"`
}

// LeaderSession wraps a session plan with leader preparation and take-home practice.
type LeaderSession struct {
	Title            string   `json:"title"`
	Objective        string   `json:"objective"`
	LeaderPrep       []string `json:"leaderPrep"`
	SessionPlan      Session  `json:"sessionPlan"`
	TakeHomePractice []string `json:"takeHomePractice"`
}

// LeaderTrainingPlan equips volunteer leaders to carry the plan.
type LeaderTrainingPlan struct {
	TrainingSessions []TrainingSession `json:"trainingSessions"`
	CoachingNotes    []string          `json:"coachingNotes"`
}

// TrainingSession is a single leader training meeting with a timed agenda.
type TrainingSession struct {
	Title           string   `json:"title"`
	DurationMinutes int      `json:"durationMinutes"`
	Agenda          []string `json:"agenda"`
}

// MeasurementFramework names what the leader tracks and how outcomes are judged.
type MeasurementFramework struct {
	InputsToTrack     []string `json:"inputsToTrack"`
	OutcomesToMeasure []string `json:"outcomesToMeasure"`
	SimpleRubric      []string `json:"simpleRubric"`
}

// Validate records contract violations under the given path prefix.
func (m *PastorLeaderModule) Validate(path string, is *Issues) {
	Enum(is, joinPath(path, "planOverview.planType"), m.PlanOverview.PlanType, pastorPlanTypes)
	Required(is, joinPath(path, "planOverview.cadence"), m.PlanOverview.Cadence)
	MinLen(is, joinPath(path, "planOverview.alignmentNotes"), m.PlanOverview.AlignmentNotes, 3)

	MinLen(is, joinPath(path, "sessions"), m.Sessions, 4)
	for i := range m.Sessions {
		s := &m.Sessions[i]
		p := indexPath(joinPath(path, "sessions"), i)
		Required(is, joinPath(p, "title"), s.Title)
		Required(is, joinPath(p, "objective"), s.Objective)
		MinLen(is, joinPath(p, "leaderPrep"), s.LeaderPrep, 2)
		s.SessionPlan.Validate(joinPath(p, "sessionPlan"), is)
		MinLen(is, joinPath(p, "takeHomePractice"), s.TakeHomePractice, 2)
	}

	MinLen(is, joinPath(path, "leaderTrainingPlan.trainingSessions"), m.LeaderTrainingPlan.TrainingSessions, 1)
	for i := range m.LeaderTrainingPlan.TrainingSessions {
		t := &m.LeaderTrainingPlan.TrainingSessions[i]
		p := indexPath(joinPath(path, "leaderTrainingPlan.trainingSessions"), i)
		Required(is, joinPath(p, "title"), t.Title)
		IntBetween(is, joinPath(p, "durationMinutes"), t.DurationMinutes, 20, 180)
		MinLen(is, joinPath(p, "agenda"), t.Agenda, 4)
	}
	MinLen(is, joinPath(path, "leaderTrainingPlan.coachingNotes"), m.LeaderTrainingPlan.CoachingNotes, 4)

	MinLen(is, joinPath(path, "measurementFramework.inputsToTrack"), m.MeasurementFramework.InputsToTrack, 3)
	MinLen(is, joinPath(path, "measurementFramework.outcomesToMeasure"), m.MeasurementFramework.OutcomesToMeasure, 3)
	MinLen(is, joinPath(path, "measurementFramework.simpleRubric"), m.MeasurementFramework.SimpleRubric, 3)
}

// YouthLeaderModule is the role module for youth leaders: activity-integrated
// sessions, an activity bank, and facilitation guardrails.
type YouthLeaderModule struct {
	ActivityIntegratedPlan ActivityIntegratedPlan `json:"activityIntegratedPlan"`
	ActivityBank           []Activity             `json:"activityBank"`
	LeaderNotes            LeaderNotes            `json:"leaderNotes"`
}

// ActivityIntegratedPlan holds sessions built around activities.
type ActivityIntegratedPlan struct {
	Sessions []Session `json:"sessions"`
}

// Activity is one reusable activity tied to a learning objective.
type Activity struct {
	Name             string   `json:"name"`
	ObjectiveTie     string   `json:"objectiveTie"`
	Setup            string   `json:"setup"`
	TimeMinutes      int      `json:"timeMinutes"`
	DebriefQuestions []string `json:"debriefQuestions"`
}

// LeaderNotes captures facilitation moves for high-energy groups.
type LeaderNotes struct {
	Transitions     []string `json:"transitions"`
	EngagementMoves []string `json:"engagementMoves"`
	Guardrails      []string `json:"guardrails"`
}

// Validate records contract violations under the given path prefix.
func (m *YouthLeaderModule) Validate(path string, is *Issues) {
	MinLen(is, joinPath(path, "activityIntegratedPlan.sessions"), m.ActivityIntegratedPlan.Sessions, 1)
	for i := range m.ActivityIntegratedPlan.Sessions {
		m.ActivityIntegratedPlan.Sessions[i].Validate(indexPath(joinPath(path, "activityIntegratedPlan.sessions"), i), is)
	}

	MinLen(is, joinPath(path, "activityBank"), m.ActivityBank, 3)
	for i := range m.ActivityBank {
		a := &m.ActivityBank[i]
		p := indexPath(joinPath(path, "activityBank"), i)
		Required(is, joinPath(p, "name"), a.Name)
		Required(is, joinPath(p, "objectiveTie"), a.ObjectiveTie)
		Required(is, joinPath(p, "setup"), a.Setup)
		IntBetween(is, joinPath(p, "timeMinutes"), a.TimeMinutes, 5, 60)
		MinLen(is, joinPath(p, "debriefQuestions"), a.DebriefQuestions, 3)
	}

	MinLen(is, joinPath(path, "leaderNotes.transitions"), m.LeaderNotes.Transitions, 3)
	MinLen(is, joinPath(path, "leaderNotes.engagementMoves"), m.LeaderNotes.EngagementMoves, 3)
	MinLen(is, joinPath(path, "leaderNotes.guardrails"), m.LeaderNotes.Guardrails, 3)
}

// Modules is the role-conditional container. Exactly one variant must be
// present, and it must correspond to the role declared in the document
// header; ValidateForRole enforces both halves of that invariant.
type Modules struct {
	Teacher      *TeacherModule      `json:"teacher,omitempty"`
	PastorLeader *PastorLeaderModule `json:"pastorLeader,omitempty"`
	YouthLeader  *YouthLeaderModule  `json:"youthLeader,omitempty"`
}

// PresentCount returns how many role module variants are populated.
func (m *Modules) PresentCount() int {
	count := 0
	if m.Teacher != nil {
		count++
	}
	if m.PastorLeader != nil {
		count++
	}
	if m.YouthLeader != nil {
		count++
	}
	return count
}

// ValidateForRole checks the relational invariant between the declared role
// and the module container, then validates whichever variant is present.
func (m *Modules) ValidateForRole(path string, role Role, is *Issues) {
	if m.PresentCount() != 1 {
		is.Add(path, "must include exactly one of: teacher | pastorLeader | youthLeader")
		return
	}

	switch role {
	case RoleTeacher:
		if m.Teacher == nil {
			is.Addf(joinPath(path, "teacher"), "role is %q but module is missing", RoleTeacher)
		}
	case RolePastorLeader:
		if m.PastorLeader == nil {
			is.Addf(joinPath(path, "pastorLeader"), "role is %q but module is missing", RolePastorLeader)
		}
	case RoleYouthLeader:
		if m.YouthLeader == nil {
			is.Addf(joinPath(path, "youthLeader"), "role is %q but module is missing", RoleYouthLeader)
		}
	}

	if m.Teacher != nil {
		m.Teacher.Validate(joinPath(path, "teacher"), is)
	}
	if m.PastorLeader != nil {
		m.PastorLeader.Validate(joinPath(path, "pastorLeader"), is)
	}
	if m.YouthLeader != nil {
		m.YouthLeader.Validate(joinPath(path, "youthLeader"), is)
	}
}
