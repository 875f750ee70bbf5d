package intake

// DesignType identifies the artifact shape the submitter is asking for.
type DesignType string

// Valid design types.
const (
	DesignSingleLesson      DesignType = "Single Lesson"
	DesignMultiWeekSeries   DesignType = "Multi-Week Series"
	DesignQuarterCurriculum DesignType = "Quarter Curriculum"
)

var designTypes = []DesignType{
	DesignSingleLesson,
	DesignMultiWeekSeries,
	DesignQuarterCurriculum,
}

// DesignTypes returns the closed set of valid design types.
func DesignTypes() []DesignType {
	return designTypes
}

// TimeHorizon identifies how long the plan should span.
type TimeHorizon string

// Valid time horizons.
const (
	HorizonSingleSession   TimeHorizon = "Single Session"
	HorizonWeeks4To6       TimeHorizon = "4–6 Weeks"
	HorizonQuarterSemester TimeHorizon = "Quarter/Semester"
)

var timeHorizons = []TimeHorizon{
	HorizonSingleSession,
	HorizonWeeks4To6,
	HorizonQuarterSemester,
}

// TimeHorizons returns the closed set of valid time horizons.
func TimeHorizons() []TimeHorizon {
	return timeHorizons
}

// AgeGroup identifies the audience age band.
type AgeGroup string

// Valid age groups.
const (
	AgeChildren          AgeGroup = "Children"
	AgeTeens             AgeGroup = "Teens"
	AgeYoungAdults       AgeGroup = "Young Adults"
	AgeAdults            AgeGroup = "Adults"
	AgeMultiGenerational AgeGroup = "Multi-Generational"
)

var ageGroups = []AgeGroup{
	AgeChildren,
	AgeTeens,
	AgeYoungAdults,
	AgeAdults,
	AgeMultiGenerational,
}

// Setting identifies the gathering context the plan is taught in.
// SettingOther carries an optional free-text detail on the intake.
type Setting string

// Valid settings.
const (
	SettingSundaySchool       Setting = "Sunday School"
	SettingBibleStudy         Setting = "Bible Study"
	SettingMorningWorship     Setting = "Morning Worship"
	SettingSmallGroup         Setting = "Small Group"
	SettingLeadershipTraining Setting = "Leadership Training"
	SettingOther              Setting = "Other"
)

var settings = []Setting{
	SettingSundaySchool,
	SettingBibleStudy,
	SettingMorningWorship,
	SettingSmallGroup,
	SettingLeadershipTraining,
	SettingOther,
}

// Duration identifies the session length band. DurationCustom requires a
// positive minute count on the intake.
type Duration string

// Valid session durations.
const (
	DurationUnder30 Duration = "Under 30 min"
	Duration30To45  Duration = "30–45 min"
	Duration45To60  Duration = "45–60 min"
	Duration60To90  Duration = "60–90 min"
	DurationCustom  Duration = "Custom"
)

var durations = []Duration{
	DurationUnder30,
	Duration30To45,
	Duration45To60,
	Duration60To90,
	DurationCustom,
}
