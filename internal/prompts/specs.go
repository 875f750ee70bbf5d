package prompts

// moduleShapes is shared between both document specs; the two kinds differ
// only in header and overview shape.
const moduleShapes = `  "modules": {
    "teacher": {
      "prepChecklist": { "beforeTheWeek": string[], "dayOf": string[] },
      "lessonPlan": {
        "planType": "Single Session"|"Multi-Session",
        "sessions": [
          { "title": string, "durationMinutes": number, "flow": [ { "segment": string, "minutes": number, "purpose": string } ] }
        ]
      },
      "facilitationPrompts": {
        "openingQuestions": string[],
        "discussionQuestions": string[],
        "applicationPrompts": string[]
      },
      "followUpPlan": { "sameWeekPractice": string[], "nextTouchpoint": string[] }
    },
    "pastorLeader": {
      "planOverview": { "planType": "Multi-Session"|"Quarter/Semester", "cadence": string, "alignmentNotes": string[] },
      "sessions": [
        {
          "title": string,
          "objective": string,
          "leaderPrep": string[],
          "takeHomePractice": string[],
          "sessionPlan": { "title": string, "durationMinutes": number, "flow": [ { "segment": string, "minutes": number, "purpose": string } ] }
        }
      ],
      "leaderTrainingPlan": {
        "trainingSessions": [ { "title": string, "durationMinutes": number, "agenda": string[] } ],
        "coachingNotes": string[]
      },
      "measurementFramework": {
        "inputsToTrack": string[],
        "outcomesToMeasure": string[],
        "simpleRubric": string[]
      }
    },
    "youthLeader": {
      "activityIntegratedPlan": {
        "sessions": [
          { "title": string, "durationMinutes": number, "flow": [ { "segment": string, "minutes": number, "purpose": string } ] }
        ]
      },
      "activityBank": [
        { "name": string, "timeMinutes": number, "objectiveTie": string, "setup": string, "debriefQuestions": string[] }
      ],
      "leaderNotes": { "transitions": string[], "engagementMoves": string[], "guardrails": string[] }
    }
  },
  "recommendedResources": [
    { "title": string, "author": string, "publisher": string, "amazonUrl": string, "publisherUrl": string, "whyThisHelps": string }
  ]
}`

const blueprintSpec = `YOU MUST PRODUCE JSON MATCHING THIS STRUCTURE EXACTLY
(include ONLY the "modules" entry matching the declared role):

{
  "header": {
    "title": string,
    "subtitle": string,
    "role": "Teacher"|"Pastor/Leader"|"Youth Leader",
    "preparedFor": { "leaderName": string, "groupName": string },
    "context": {
      "setting": string,
      "ageGroup": string,
      "designType": "Single Lesson"|"Multi-Week Series"|"Quarter Curriculum",
      "timeHorizon": "Single Session"|"4–6 Weeks"|"Quarter/Semester",
      "durationMinutes": number,
      "topicOrText": string,
      "constraints": string[]
    }
  },
  "overview": {
    "executiveSummary": string,
    "outcomes": {
      "formationGoal": string,
      "measurableIndicators": string[]
    },
    "bloomsObjectives": [
      { "level": "Remember"|"Understand"|"Apply"|"Analyze"|"Evaluate"|"Create", "objective": string, "evidence": string }
    ]
  },
` + moduleShapes

const playbookSpec = `YOU MUST PRODUCE JSON MATCHING THIS STRUCTURE EXACTLY
(include ONLY the "modules" entry matching the declared track):

{
  "header": {
    "title": string,
    "subtitle": string,
    "track": "Teacher"|"Pastor/Leader"|"Youth Leader",
    "preparedFor": { "leaderName": string, "groupName": string },
    "audience": { "groupType": string, "ageGroup": string },
    "context": {
      "setting": string,
      "timeHorizon": "Single Session"|"4–6 Weeks"|"Quarter/Semester",
      "topicOrText": string,
      "constraints": string[]
    }
  },
  "overview": {
    "executiveSummary": string,
    "formationProblem": {
      "statement": string,
      "likelyCauses": string[]
    },
    "outcomes": {
      "formationGoal": string,
      "measurableIndicators": string[]
    },
    "bloomsObjectives": [
      { "level": "Remember"|"Understand"|"Apply"|"Analyze"|"Evaluate"|"Create", "objective": string, "evidence": string }
    ]
  },
` + moduleShapes
