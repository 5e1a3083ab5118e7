package catalog

import (
	"context"
)

// memory is an in-memory Catalog with precomputed indices.
type memory struct {
	learners map[string]Learner
	byGrade  map[int][]Subject
	topics   map[int]map[string][]Topic
}

var _ Catalog = (*memory)(nil)

// NewSeeded returns a Catalog backed by the built-in demo curriculum
// and demo learners.
func NewSeeded() Catalog {
	return New(seedSubjects, seedTopics, seedLearners)
}

// New builds an in-memory Catalog from explicit reference data.
// Subject and topic slice order is preserved, so two catalogs built from
// the same inputs resolve identically.
func New(subjects []Subject, topics map[int]map[string][]Topic, learners []Learner) Catalog {
	m := &memory{
		learners: make(map[string]Learner, len(learners)),
		byGrade:  make(map[int][]Subject),
		topics:   topics,
	}
	for _, l := range learners {
		m.learners[l.ID] = l
	}
	for _, s := range subjects {
		m.byGrade[s.Grade] = append(m.byGrade[s.Grade], s)
	}
	return m
}

func (m *memory) Learner(ctx context.Context, id string) (Learner, error) {
	l, ok := m.learners[id]
	if !ok {
		return Learner{}, &NotFoundError{Kind: "learner", ID: id}
	}
	return l, nil
}

func (m *memory) SubjectsForGrade(ctx context.Context, grade int) ([]Subject, error) {
	subjects := m.byGrade[grade]
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out, nil
}

func (m *memory) TopicsForSubject(ctx context.Context, grade int, subjectID string) ([]Topic, error) {
	byGrade, ok := m.topics[grade]
	if !ok {
		return nil, nil
	}
	topics := byGrade[subjectID]
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out, nil
}
