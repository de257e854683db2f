package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/client/repositories/votes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubject_TrimsAndReloads(t *testing.T) {
	fc := newFakeClient()
	browse := NewBrowseService(fc, votes.NewMemoryRepository(), nil)
	svc := NewSubjectService(fc, browse, nil)

	name, err := svc.AddSubject(context.Background(), "  Physics ")
	require.NoError(t, err)
	assert.Equal(t, "Physics", name)
	assert.Equal(t, "Physics", fc.lastAdded)
	assert.Equal(t, []models.Subject{{ID: "new", Name: "Physics"}}, browse.Snapshot().Subjects)
}

func TestAddSubject_Empty(t *testing.T) {
	fc := newFakeClient()
	svc := NewSubjectService(fc, NewBrowseService(fc, votes.NewMemoryRepository(), nil), nil)

	_, err := svc.AddSubject(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptySubject)
	assert.Equal(t, 0, fc.count("AddSubject"))
}

func TestAddSubject_Failure(t *testing.T) {
	fc := newFakeClient()
	fc.addErr = client.ErrUnavailable
	svc := NewSubjectService(fc, NewBrowseService(fc, votes.NewMemoryRepository(), nil), nil)

	_, err := svc.AddSubject(context.Background(), "Physics")
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, 0, fc.count("Subjects"))
}
