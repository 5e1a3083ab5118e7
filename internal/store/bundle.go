package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learntrace/ent"
	"github.com/abhisek/learntrace/ent/learner"

	"github.com/abhisek/learntrace/internal/generate"
)

// SaveBundle persists an entire generated bundle in one transaction.
// The bundle's learner is created if it is not already registered.
func (s *Store) SaveBundle(ctx context.Context, b *generate.Bundle) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := saveBundle(ctx, tx, b); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bundle: %w", err)
	}
	return nil
}

func saveBundle(ctx context.Context, tx *ent.Tx, b *generate.Bundle) error {
	exists, err := tx.Learner.Query().Where(learner.ID(b.Learner.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check learner: %w", err)
	}
	if !exists {
		if _, err := tx.Learner.Create().
			SetID(b.Learner.ID).
			SetDisplayName(b.Learner.DisplayName).
			SetGrade(b.Learner.Grade).
			Save(ctx); err != nil {
			return fmt.Errorf("save learner: %w", err)
		}
	}

	planBuilders := make([]*ent.StudyPlanCreate, 0, len(b.Plans))
	for _, p := range b.Plans {
		planBuilders = append(planBuilders, tx.StudyPlan.Create().
			SetID(p.ID).
			SetLearnerID(p.LearnerID).
			SetSubjectID(p.SubjectID).
			SetTitle(p.Title).
			SetDifficulty(string(p.Difficulty)).
			SetEstimatedHours(p.EstimatedHours).
			SetStatus(string(p.Status)).
			SetActive(p.Active).
			SetCreatedAt(p.CreatedAt))
	}
	if _, err := tx.StudyPlan.CreateBulk(planBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save plans: %w", err)
	}

	actBuilders := make([]*ent.ActivityCreate, 0, len(b.Activities))
	for _, a := range b.Activities {
		actBuilders = append(actBuilders, tx.Activity.Create().
			SetID(a.ID).
			SetLearnerID(b.Learner.ID).
			SetPlanID(a.PlanID).
			SetTopicID(a.TopicID).
			SetTitle(a.Title).
			SetKind(string(a.Kind)).
			SetDifficulty(string(a.Difficulty)).
			SetEstimatedMinutes(a.EstimatedMinutes).
			SetOrdinal(a.Ordinal).
			SetRequired(a.Required))
	}
	if _, err := tx.Activity.CreateBulk(actBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save activities: %w", err)
	}

	recBuilders := make([]*ent.ProgressRecordCreate, 0, len(b.Records))
	for _, r := range b.Records {
		recBuilders = append(recBuilders, tx.ProgressRecord.Create().
			SetID(r.ID).
			SetLearnerID(r.LearnerID).
			SetActivityID(r.ActivityID).
			SetTopicID(r.TopicID).
			SetSubjectID(r.SubjectID).
			SetStatus(string(r.Status)).
			SetScore(r.Score).
			SetTimeSpentMinutes(r.TimeSpent).
			SetAttempt(r.Attempt).
			SetStartedAt(r.StartedAt).
			SetNillableCompletedAt(r.CompletedAt))
	}
	if _, err := tx.ProgressRecord.CreateBulk(recBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save progress records: %w", err)
	}

	ciBuilders := make([]*ent.ContentInteractionCreate, 0, len(b.Interactions))
	for _, ci := range b.Interactions {
		ciBuilders = append(ciBuilders, tx.ContentInteraction.Create().
			SetID(ci.ID).
			SetLearnerID(ci.LearnerID).
			SetContentID(ci.ContentID).
			SetKind(string(ci.Kind)).
			SetDurationSeconds(ci.DurationSeconds).
			SetCompleted(ci.Completed).
			SetOccurredAt(ci.OccurredAt))
	}
	if _, err := tx.ContentInteraction.CreateBulk(ciBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save content interactions: %w", err)
	}

	ruBuilders := make([]*ent.ResourceUsageCreate, 0, len(b.Resources))
	for _, ru := range b.Resources {
		ruBuilders = append(ruBuilders, tx.ResourceUsage.Create().
			SetID(ru.ID).
			SetLearnerID(ru.LearnerID).
			SetResourceID(ru.ResourceID).
			SetResourceType(string(ru.ResourceType)).
			SetDurationSeconds(ru.DurationSeconds).
			SetCompleted(ru.Completed).
			SetNillableRating(ru.Rating).
			SetUsedAt(ru.UsedAt))
	}
	if _, err := tx.ResourceUsage.CreateBulk(ruBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save resource usages: %w", err)
	}

	hrBuilders := make([]*ent.HelpRequestCreate, 0, len(b.HelpRequests))
	for _, hr := range b.HelpRequests {
		hrBuilders = append(hrBuilders, tx.HelpRequest.Create().
			SetID(hr.ID).
			SetLearnerID(hr.LearnerID).
			SetRecordID(hr.RecordID).
			SetQuestion(hr.Question).
			SetCategory(string(hr.Category)).
			SetPriority(string(hr.Priority)).
			SetResolved(hr.Resolved).
			SetRequestedAt(hr.RequestedAt).
			SetNillableResolvedAt(hr.ResolvedAt))
	}
	if _, err := tx.HelpRequest.CreateBulk(hrBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save help requests: %w", err)
	}

	achBuilders := make([]*ent.AchievementCreate, 0, len(b.Achievements))
	for _, a := range b.Achievements {
		achBuilders = append(achBuilders, tx.Achievement.Create().
			SetID(a.ID).
			SetLearnerID(a.LearnerID).
			SetType(string(a.Type)).
			SetTitle(a.Title).
			SetDescription(a.Description).
			SetPoints(a.Points).
			SetEarnedAt(a.EarnedAt).
			SetMetadata(a.Metadata))
	}
	if _, err := tx.Achievement.CreateBulk(achBuilders...).Save(ctx); err != nil {
		return fmt.Errorf("save achievements: %w", err)
	}

	return nil
}
