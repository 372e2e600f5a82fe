package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIllnessLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewIllnessLogService(db, nil, false)

	user := createTestUser(t, db, "alice@example.com")
	member := createTestMember(t, db, user.ID, "Mira")

	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	entry, err := svc.Create(context.Background(), user.ID, member.ID, "flu", start, nil, "high fever at night")
	require.NoError(t, err)

	assert.NotZero(t, entry.ID)
	assert.Equal(t, member.ID, entry.FamilyMemberID)
	assert.Equal(t, "Mira", entry.FamilyMemberName)
	assert.Equal(t, "flu", entry.IllnessName)
	assert.Nil(t, entry.EndDate)
	assert.Equal(t, "high fever at night", entry.Notes)
	assert.Nil(t, entry.AISuggestion, "suggestion must stay nil with AI disabled")
}

func TestCreateIllnessLogValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewIllnessLogService(db, nil, false)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	mira := createTestMember(t, db, alice.ID, "Mira")

	var validation *ValidationError
	_, err := svc.Create(context.Background(), alice.ID, mira.ID, "", time.Now(), nil, "")
	require.ErrorAs(t, err, &validation)

	_, err = svc.Create(context.Background(), bob.ID, mira.ID, "flu", time.Now(), nil, "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "family member not found or does not belong to user")
}

func TestListIllnessLogsFiltersByMember(t *testing.T) {
	db := newTestDB(t)
	svc := NewIllnessLogService(db, nil, false)

	user := createTestUser(t, db, "alice@example.com")
	mira := createTestMember(t, db, user.ID, "Mira")
	tariq := createTestMember(t, db, user.ID, "Tariq")

	ctx := context.Background()
	_, err := svc.Create(ctx, user.ID, mira.ID, "flu", time.Now(), nil, "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, user.ID, tariq.ID, "migraine", time.Now(), nil, "")
	require.NoError(t, err)

	all, err := svc.List(user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyMira, err := svc.List(user.ID, &mira.ID)
	require.NoError(t, err)
	require.Len(t, onlyMira, 1)
	assert.Equal(t, "flu", onlyMira[0].IllnessName)
	assert.Equal(t, "Mira", onlyMira[0].FamilyMemberName)
}

func TestListIllnessLogsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewIllnessLogService(db, nil, false)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	mira := createTestMember(t, db, alice.ID, "Mira")

	entry, err := svc.Create(context.Background(), alice.ID, mira.ID, "flu", time.Now(), nil, "")
	require.NoError(t, err)

	logs, err := svc.List(bob.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = svc.Get(bob.ID, entry.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateIllnessLogPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewIllnessLogService(db, nil, false)

	user := createTestUser(t, db, "alice@example.com")
	member := createTestMember(t, db, user.ID, "Mira")

	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	entry, err := svc.Create(context.Background(), user.ID, member.ID, "flu", start, nil, "high fever")
	require.NoError(t, err)

	end := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(user.ID, entry.ID, IllnessLogPatch{EndDate: &end})
	require.NoError(t, err)

	require.NotNil(t, updated.EndDate)
	assert.Equal(t, end.Format("2006-01-02"), updated.EndDate.Format("2006-01-02"))
	assert.Equal(t, "flu", updated.IllnessName)
	assert.Equal(t, "high fever", updated.Notes)

	same, err := svc.Update(user.ID, entry.ID, IllnessLogPatch{})
	require.NoError(t, err)
	assert.Equal(t, updated.IllnessName, same.IllnessName)
}

func TestDeleteIllnessLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewIllnessLogService(db, nil, false)

	user := createTestUser(t, db, "alice@example.com")
	member := createTestMember(t, db, user.ID, "Mira")

	entry, err := svc.Create(context.Background(), user.ID, member.ID, "flu", time.Now(), nil, "")
	require.NoError(t, err)

	deleted, err := svc.Delete(user.ID, entry.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(user.ID, entry.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Get(user.ID, entry.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
