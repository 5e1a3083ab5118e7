package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learntrace/ent"
	"github.com/abhisek/learntrace/ent/achievement"
	"github.com/abhisek/learntrace/ent/activity"
	"github.com/abhisek/learntrace/ent/contentinteraction"
	"github.com/abhisek/learntrace/ent/helprequest"
	"github.com/abhisek/learntrace/ent/progressrecord"
	"github.com/abhisek/learntrace/ent/resourceusage"
	"github.com/abhisek/learntrace/ent/studyplan"
)

// LearnerStats summarizes one learner's persisted data.
type LearnerStats struct {
	LearnerID    string
	DisplayName  string
	Plans        int
	Activities   int
	Records      int
	Interactions int
	Resources    int
	HelpRequests int
	Achievements int
	MeanScore    float64
}

// Stats returns per-learner summaries for every registered learner.
func (s *Store) Stats(ctx context.Context) ([]LearnerStats, error) {
	learners, err := s.client.Learner.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}

	out := make([]LearnerStats, 0, len(learners))
	for _, l := range learners {
		st := LearnerStats{LearnerID: l.ID, DisplayName: l.DisplayName}

		if st.Plans, err = s.client.StudyPlan.Query().
			Where(studyplan.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count plans: %w", err)
		}
		if st.Activities, err = s.client.Activity.Query().
			Where(activity.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count activities: %w", err)
		}
		if st.Records, err = s.client.ProgressRecord.Query().
			Where(progressrecord.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count progress records: %w", err)
		}
		if st.Interactions, err = s.client.ContentInteraction.Query().
			Where(contentinteraction.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count interactions: %w", err)
		}
		if st.Resources, err = s.client.ResourceUsage.Query().
			Where(resourceusage.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count resource usages: %w", err)
		}
		if st.HelpRequests, err = s.client.HelpRequest.Query().
			Where(helprequest.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count help requests: %w", err)
		}
		if st.Achievements, err = s.client.Achievement.Query().
			Where(achievement.LearnerID(l.ID)).Count(ctx); err != nil {
			return nil, fmt.Errorf("count achievements: %w", err)
		}

		if st.Records > 0 {
			mean, err := s.client.ProgressRecord.Query().
				Where(progressrecord.LearnerID(l.ID)).
				Aggregate(ent.Mean(progressrecord.FieldScore)).
				Float64(ctx)
			if err != nil {
				return nil, fmt.Errorf("mean score: %w", err)
			}
			st.MeanScore = mean
		}

		out = append(out, st)
	}
	return out, nil
}

// Reset deletes all persisted generated data, including learners.
func (s *Store) Reset(ctx context.Context) error {
	deletes := []func(context.Context) error{
		func(ctx context.Context) error { _, err := s.client.Achievement.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.HelpRequest.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.ResourceUsage.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.ContentInteraction.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.ProgressRecord.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.Activity.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.StudyPlan.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := s.client.Learner.Delete().Exec(ctx); return err },
	}
	for _, del := range deletes {
		if err := del(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}
