package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminPapers() []models.Paper {
	return []models.Paper{{ID: "A"}, {ID: "B"}, {ID: "C"}}
}

func loggedInAdmin(t *testing.T) (AdminService, *fakeClient) {
	t.Helper()
	fc := newFakeClient()
	fc.adminPapers = adminPapers()
	svc := NewAdminService(fc, nil)
	_, err := svc.Login(context.Background(), "root", []byte("pw"))
	require.NoError(t, err)
	return svc, fc
}

func TestAdminLogin_Success(t *testing.T) {
	svc, fc := loggedInAdmin(t)

	assert.True(t, svc.LoggedIn())
	assert.Equal(t, "root", fc.adminUser)
	assert.Equal(t, []byte("pw"), fc.adminPass)
	assert.Len(t, svc.Papers(), 3)
}

func TestAdminLogin_FailureClearsCredentials(t *testing.T) {
	fc := newFakeClient()
	fc.adminErr = client.ErrUnauthorized
	svc := NewAdminService(fc, nil)

	_, err := svc.Login(context.Background(), "root", []byte("bad"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, svc.LoggedIn())
	assert.Empty(t, fc.adminUser)
	assert.Nil(t, fc.adminPass)

	_, err = svc.Login(context.Background(), " ", []byte("pw"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestAdmin_RequiresLogin(t *testing.T) {
	fc := newFakeClient()
	svc := NewAdminService(fc, nil)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
	require.ErrorIs(t, svc.Delete(context.Background(), "A", yes), ErrNotLoggedIn)
	assert.Equal(t, 0, fc.count("AdminPapers"))
	assert.Equal(t, 0, fc.count("AdminDeletePaper"))
}

func TestAdminDelete(t *testing.T) {
	svc, fc := loggedInAdmin(t)

	var asked string
	require.ErrorIs(t, svc.Delete(context.Background(), "B", func(p string) bool {
		asked = p
		return false
	}), ErrDeleteCanceled)
	assert.Equal(t, DeletePrompt, asked)
	assert.Equal(t, 0, fc.count("AdminDeletePaper"))

	require.NoError(t, svc.Delete(context.Background(), "B", yes))
	assert.Equal(t, "B", fc.lastDeleteID)
	assert.Equal(t, []models.Paper{{ID: "A"}, {ID: "C"}}, svc.Papers())

	fc.deleteErr = client.ErrNotFound
	require.ErrorIs(t, svc.Delete(context.Background(), "A", yes), client.ErrNotFound)
	assert.Len(t, svc.Papers(), 2)
}

func TestAdminList_UnauthorizedLogsOut(t *testing.T) {
	svc, fc := loggedInAdmin(t)
	fc.adminPapers = adminPapers()[:1]

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	fc.adminErr = client.ErrUnauthorized
	_, err = svc.List(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, svc.LoggedIn())
}

func TestAdminLogout(t *testing.T) {
	svc, fc := loggedInAdmin(t)

	svc.Logout()
	assert.False(t, svc.LoggedIn())
	assert.Empty(t, svc.Papers())
	assert.Empty(t, fc.adminUser)
	assert.Equal(t, 1, fc.count("ClearAdminCredentials"))
}
