// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// ContentInteraction is the predicate function for contentinteraction builders.
type ContentInteraction func(*sql.Selector)

// HelpRequest is the predicate function for helprequest builders.
type HelpRequest func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// ResourceUsage is the predicate function for resourceusage builders.
type ResourceUsage func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)
