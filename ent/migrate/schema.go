// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "earned_at", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[1]},
			},
			{
				Name:    "achievement_type",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[2]},
			},
		},
	}
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "estimated_minutes", Type: field.TypeInt},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "required", Type: field.TypeBool, Default: true},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activity_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[1]},
			},
			{
				Name:    "activity_plan_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[2]},
			},
			{
				Name:    "activity_plan_id_ordinal",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[2], ActivitiesColumns[8]},
			},
		},
	}
	// ContentInteractionsColumns holds the columns for the "content_interactions" table.
	ContentInteractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "duration_seconds", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// ContentInteractionsTable holds the schema information for the "content_interactions" table.
	ContentInteractionsTable = &schema.Table{
		Name:       "content_interactions",
		Columns:    ContentInteractionsColumns,
		PrimaryKey: []*schema.Column{ContentInteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentinteraction_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ContentInteractionsColumns[1]},
			},
			{
				Name:    "contentinteraction_content_id",
				Unique:  false,
				Columns: []*schema.Column{ContentInteractionsColumns[2]},
			},
		},
	}
	// HelpRequestsColumns holds the columns for the "help_requests" table.
	HelpRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "record_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "priority", Type: field.TypeString},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// HelpRequestsTable holds the schema information for the "help_requests" table.
	HelpRequestsTable = &schema.Table{
		Name:       "help_requests",
		Columns:    HelpRequestsColumns,
		PrimaryKey: []*schema.Column{HelpRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "helprequest_learner_id",
				Unique:  false,
				Columns: []*schema.Column{HelpRequestsColumns[1]},
			},
			{
				Name:    "helprequest_record_id",
				Unique:  false,
				Columns: []*schema.Column{HelpRequestsColumns[2]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "time_spent_minutes", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1]},
			},
			{
				Name:    "progressrecord_activity_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[4]},
			},
			{
				Name:    "progressrecord_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[9]},
			},
		},
	}
	// ResourceUsagesColumns holds the columns for the "resource_usages" table.
	ResourceUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "duration_seconds", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "rating", Type: field.TypeInt, Nullable: true},
		{Name: "used_at", Type: field.TypeTime},
	}
	// ResourceUsagesTable holds the schema information for the "resource_usages" table.
	ResourceUsagesTable = &schema.Table{
		Name:       "resource_usages",
		Columns:    ResourceUsagesColumns,
		PrimaryKey: []*schema.Column{ResourceUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resourceusage_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceUsagesColumns[1]},
			},
			{
				Name:    "resourceusage_resource_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceUsagesColumns[2]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "estimated_hours", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_learner_id",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[1]},
			},
			{
				Name:    "studyplan_subject_id",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[2]},
			},
			{
				Name:    "studyplan_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		ActivitiesTable,
		ContentInteractionsTable,
		HelpRequestsTable,
		LearnersTable,
		ProgressRecordsTable,
		ResourceUsagesTable,
		StudyPlansTable,
	}
)

func init() {
}
