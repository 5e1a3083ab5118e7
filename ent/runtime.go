// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/abhisek/learntrace/ent/achievement"
	"github.com/abhisek/learntrace/ent/activity"
	"github.com/abhisek/learntrace/ent/contentinteraction"
	"github.com/abhisek/learntrace/ent/helprequest"
	"github.com/abhisek/learntrace/ent/learner"
	"github.com/abhisek/learntrace/ent/progressrecord"
	"github.com/abhisek/learntrace/ent/resourceusage"
	"github.com/abhisek/learntrace/ent/schema"
	"github.com/abhisek/learntrace/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementMixin := schema.Achievement{}.Mixin()
	achievementMixinFields0 := achievementMixin[0].Fields()
	_ = achievementMixinFields0
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescLearnerID is the schema descriptor for learner_id field.
	achievementDescLearnerID := achievementMixinFields0[1].Descriptor()
	// achievement.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	achievement.LearnerIDValidator = achievementDescLearnerID.Validators[0].(func(string) error)
	// achievementDescType is the schema descriptor for type field.
	achievementDescType := achievementFields[0].Descriptor()
	// achievement.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	achievement.TypeValidator = achievementDescType.Validators[0].(func(string) error)
	// achievementDescTitle is the schema descriptor for title field.
	achievementDescTitle := achievementFields[1].Descriptor()
	// achievement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievement.TitleValidator = achievementDescTitle.Validators[0].(func(string) error)
	// achievementDescDescription is the schema descriptor for description field.
	achievementDescDescription := achievementFields[2].Descriptor()
	// achievement.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	achievement.DescriptionValidator = achievementDescDescription.Validators[0].(func(string) error)
	// achievementDescPoints is the schema descriptor for points field.
	achievementDescPoints := achievementFields[3].Descriptor()
	// achievement.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	achievement.PointsValidator = achievementDescPoints.Validators[0].(func(int) error)
	activityMixin := schema.Activity{}.Mixin()
	activityMixinFields0 := activityMixin[0].Fields()
	_ = activityMixinFields0
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescLearnerID is the schema descriptor for learner_id field.
	activityDescLearnerID := activityMixinFields0[1].Descriptor()
	// activity.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	activity.LearnerIDValidator = activityDescLearnerID.Validators[0].(func(string) error)
	// activityDescPlanID is the schema descriptor for plan_id field.
	activityDescPlanID := activityFields[0].Descriptor()
	// activity.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	activity.PlanIDValidator = activityDescPlanID.Validators[0].(func(string) error)
	// activityDescTopicID is the schema descriptor for topic_id field.
	activityDescTopicID := activityFields[1].Descriptor()
	// activity.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	activity.TopicIDValidator = activityDescTopicID.Validators[0].(func(string) error)
	// activityDescTitle is the schema descriptor for title field.
	activityDescTitle := activityFields[2].Descriptor()
	// activity.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	activity.TitleValidator = activityDescTitle.Validators[0].(func(string) error)
	// activityDescKind is the schema descriptor for kind field.
	activityDescKind := activityFields[3].Descriptor()
	// activity.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activity.KindValidator = activityDescKind.Validators[0].(func(string) error)
	// activityDescDifficulty is the schema descriptor for difficulty field.
	activityDescDifficulty := activityFields[4].Descriptor()
	// activity.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	activity.DifficultyValidator = activityDescDifficulty.Validators[0].(func(string) error)
	// activityDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	activityDescEstimatedMinutes := activityFields[5].Descriptor()
	// activity.EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	activity.EstimatedMinutesValidator = activityDescEstimatedMinutes.Validators[0].(func(int) error)
	// activityDescOrdinal is the schema descriptor for ordinal field.
	activityDescOrdinal := activityFields[6].Descriptor()
	// activity.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	activity.OrdinalValidator = activityDescOrdinal.Validators[0].(func(int) error)
	// activityDescRequired is the schema descriptor for required field.
	activityDescRequired := activityFields[7].Descriptor()
	// activity.DefaultRequired holds the default value on creation for the required field.
	activity.DefaultRequired = activityDescRequired.Default.(bool)
	contentinteractionMixin := schema.ContentInteraction{}.Mixin()
	contentinteractionMixinFields0 := contentinteractionMixin[0].Fields()
	_ = contentinteractionMixinFields0
	contentinteractionFields := schema.ContentInteraction{}.Fields()
	_ = contentinteractionFields
	// contentinteractionDescLearnerID is the schema descriptor for learner_id field.
	contentinteractionDescLearnerID := contentinteractionMixinFields0[1].Descriptor()
	// contentinteraction.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	contentinteraction.LearnerIDValidator = contentinteractionDescLearnerID.Validators[0].(func(string) error)
	// contentinteractionDescContentID is the schema descriptor for content_id field.
	contentinteractionDescContentID := contentinteractionFields[0].Descriptor()
	// contentinteraction.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	contentinteraction.ContentIDValidator = contentinteractionDescContentID.Validators[0].(func(string) error)
	// contentinteractionDescKind is the schema descriptor for kind field.
	contentinteractionDescKind := contentinteractionFields[1].Descriptor()
	// contentinteraction.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	contentinteraction.KindValidator = contentinteractionDescKind.Validators[0].(func(string) error)
	// contentinteractionDescDurationSeconds is the schema descriptor for duration_seconds field.
	contentinteractionDescDurationSeconds := contentinteractionFields[2].Descriptor()
	// contentinteraction.DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	contentinteraction.DurationSecondsValidator = contentinteractionDescDurationSeconds.Validators[0].(func(int) error)
	// contentinteractionDescCompleted is the schema descriptor for completed field.
	contentinteractionDescCompleted := contentinteractionFields[3].Descriptor()
	// contentinteraction.DefaultCompleted holds the default value on creation for the completed field.
	contentinteraction.DefaultCompleted = contentinteractionDescCompleted.Default.(bool)
	helprequestMixin := schema.HelpRequest{}.Mixin()
	helprequestMixinFields0 := helprequestMixin[0].Fields()
	_ = helprequestMixinFields0
	helprequestFields := schema.HelpRequest{}.Fields()
	_ = helprequestFields
	// helprequestDescLearnerID is the schema descriptor for learner_id field.
	helprequestDescLearnerID := helprequestMixinFields0[1].Descriptor()
	// helprequest.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	helprequest.LearnerIDValidator = helprequestDescLearnerID.Validators[0].(func(string) error)
	// helprequestDescRecordID is the schema descriptor for record_id field.
	helprequestDescRecordID := helprequestFields[0].Descriptor()
	// helprequest.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	helprequest.RecordIDValidator = helprequestDescRecordID.Validators[0].(func(string) error)
	// helprequestDescQuestion is the schema descriptor for question field.
	helprequestDescQuestion := helprequestFields[1].Descriptor()
	// helprequest.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	helprequest.QuestionValidator = helprequestDescQuestion.Validators[0].(func(string) error)
	// helprequestDescCategory is the schema descriptor for category field.
	helprequestDescCategory := helprequestFields[2].Descriptor()
	// helprequest.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	helprequest.CategoryValidator = helprequestDescCategory.Validators[0].(func(string) error)
	// helprequestDescPriority is the schema descriptor for priority field.
	helprequestDescPriority := helprequestFields[3].Descriptor()
	// helprequest.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	helprequest.PriorityValidator = helprequestDescPriority.Validators[0].(func(string) error)
	// helprequestDescResolved is the schema descriptor for resolved field.
	helprequestDescResolved := helprequestFields[4].Descriptor()
	// helprequest.DefaultResolved holds the default value on creation for the resolved field.
	helprequest.DefaultResolved = helprequestDescResolved.Default.(bool)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescDisplayName is the schema descriptor for display_name field.
	learnerDescDisplayName := learnerFields[1].Descriptor()
	// learner.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	learner.DisplayNameValidator = learnerDescDisplayName.Validators[0].(func(string) error)
	// learnerDescGrade is the schema descriptor for grade field.
	learnerDescGrade := learnerFields[2].Descriptor()
	// learner.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	learner.GradeValidator = learnerDescGrade.Validators[0].(func(int) error)
	progressrecordMixin := schema.ProgressRecord{}.Mixin()
	progressrecordMixinFields0 := progressrecordMixin[0].Fields()
	_ = progressrecordMixinFields0
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescLearnerID is the schema descriptor for learner_id field.
	progressrecordDescLearnerID := progressrecordMixinFields0[1].Descriptor()
	// progressrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	progressrecord.LearnerIDValidator = progressrecordDescLearnerID.Validators[0].(func(string) error)
	// progressrecordDescActivityID is the schema descriptor for activity_id field.
	progressrecordDescActivityID := progressrecordFields[0].Descriptor()
	// progressrecord.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	progressrecord.ActivityIDValidator = progressrecordDescActivityID.Validators[0].(func(string) error)
	// progressrecordDescTopicID is the schema descriptor for topic_id field.
	progressrecordDescTopicID := progressrecordFields[1].Descriptor()
	// progressrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	progressrecord.TopicIDValidator = progressrecordDescTopicID.Validators[0].(func(string) error)
	// progressrecordDescSubjectID is the schema descriptor for subject_id field.
	progressrecordDescSubjectID := progressrecordFields[2].Descriptor()
	// progressrecord.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	progressrecord.SubjectIDValidator = progressrecordDescSubjectID.Validators[0].(func(string) error)
	// progressrecordDescStatus is the schema descriptor for status field.
	progressrecordDescStatus := progressrecordFields[3].Descriptor()
	// progressrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	progressrecord.StatusValidator = progressrecordDescStatus.Validators[0].(func(string) error)
	// progressrecordDescScore is the schema descriptor for score field.
	progressrecordDescScore := progressrecordFields[4].Descriptor()
	// progressrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	progressrecord.ScoreValidator = func() func(float64) error {
		validators := progressrecordDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// progressrecordDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	progressrecordDescTimeSpentMinutes := progressrecordFields[5].Descriptor()
	// progressrecord.TimeSpentMinutesValidator is a validator for the "time_spent_minutes" field. It is called by the builders before save.
	progressrecord.TimeSpentMinutesValidator = progressrecordDescTimeSpentMinutes.Validators[0].(func(int) error)
	// progressrecordDescAttempt is the schema descriptor for attempt field.
	progressrecordDescAttempt := progressrecordFields[6].Descriptor()
	// progressrecord.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	progressrecord.AttemptValidator = progressrecordDescAttempt.Validators[0].(func(int) error)
	resourceusageMixin := schema.ResourceUsage{}.Mixin()
	resourceusageMixinFields0 := resourceusageMixin[0].Fields()
	_ = resourceusageMixinFields0
	resourceusageFields := schema.ResourceUsage{}.Fields()
	_ = resourceusageFields
	// resourceusageDescLearnerID is the schema descriptor for learner_id field.
	resourceusageDescLearnerID := resourceusageMixinFields0[1].Descriptor()
	// resourceusage.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	resourceusage.LearnerIDValidator = resourceusageDescLearnerID.Validators[0].(func(string) error)
	// resourceusageDescResourceID is the schema descriptor for resource_id field.
	resourceusageDescResourceID := resourceusageFields[0].Descriptor()
	// resourceusage.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	resourceusage.ResourceIDValidator = resourceusageDescResourceID.Validators[0].(func(string) error)
	// resourceusageDescResourceType is the schema descriptor for resource_type field.
	resourceusageDescResourceType := resourceusageFields[1].Descriptor()
	// resourceusage.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	resourceusage.ResourceTypeValidator = resourceusageDescResourceType.Validators[0].(func(string) error)
	// resourceusageDescDurationSeconds is the schema descriptor for duration_seconds field.
	resourceusageDescDurationSeconds := resourceusageFields[2].Descriptor()
	// resourceusage.DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	resourceusage.DurationSecondsValidator = resourceusageDescDurationSeconds.Validators[0].(func(int) error)
	// resourceusageDescCompleted is the schema descriptor for completed field.
	resourceusageDescCompleted := resourceusageFields[3].Descriptor()
	// resourceusage.DefaultCompleted holds the default value on creation for the completed field.
	resourceusage.DefaultCompleted = resourceusageDescCompleted.Default.(bool)
	// resourceusageDescRating is the schema descriptor for rating field.
	resourceusageDescRating := resourceusageFields[4].Descriptor()
	// resourceusage.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	resourceusage.RatingValidator = func() func(int) error {
		validators := resourceusageDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	studyplanMixin := schema.StudyPlan{}.Mixin()
	studyplanMixinFields0 := studyplanMixin[0].Fields()
	_ = studyplanMixinFields0
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescLearnerID is the schema descriptor for learner_id field.
	studyplanDescLearnerID := studyplanMixinFields0[1].Descriptor()
	// studyplan.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	studyplan.LearnerIDValidator = studyplanDescLearnerID.Validators[0].(func(string) error)
	// studyplanDescSubjectID is the schema descriptor for subject_id field.
	studyplanDescSubjectID := studyplanFields[0].Descriptor()
	// studyplan.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	studyplan.SubjectIDValidator = studyplanDescSubjectID.Validators[0].(func(string) error)
	// studyplanDescTitle is the schema descriptor for title field.
	studyplanDescTitle := studyplanFields[1].Descriptor()
	// studyplan.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	studyplan.TitleValidator = studyplanDescTitle.Validators[0].(func(string) error)
	// studyplanDescDifficulty is the schema descriptor for difficulty field.
	studyplanDescDifficulty := studyplanFields[2].Descriptor()
	// studyplan.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	studyplan.DifficultyValidator = studyplanDescDifficulty.Validators[0].(func(string) error)
	// studyplanDescEstimatedHours is the schema descriptor for estimated_hours field.
	studyplanDescEstimatedHours := studyplanFields[3].Descriptor()
	// studyplan.DefaultEstimatedHours holds the default value on creation for the estimated_hours field.
	studyplan.DefaultEstimatedHours = studyplanDescEstimatedHours.Default.(int)
	// studyplanDescStatus is the schema descriptor for status field.
	studyplanDescStatus := studyplanFields[4].Descriptor()
	// studyplan.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	studyplan.StatusValidator = studyplanDescStatus.Validators[0].(func(string) error)
	// studyplanDescActive is the schema descriptor for active field.
	studyplanDescActive := studyplanFields[5].Descriptor()
	// studyplan.DefaultActive holds the default value on creation for the active field.
	studyplan.DefaultActive = studyplanDescActive.Default.(bool)
}
