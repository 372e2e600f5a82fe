package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajruuudin/life-line/models"
)

func TestCreateOrRestockCreatesNewMedication(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	expiration := datePtr(2027, time.March, 1)
	med, err := svc.CreateOrRestock(user.ID, "Aspirin", 100, expiration)
	require.NoError(t, err)

	assert.Equal(t, "Aspirin", med.Name)
	assert.Equal(t, 100, med.Quantity)
	assert.Equal(t, user.ID, med.UserID)
	require.NotNil(t, med.ExpirationDate)
	assert.True(t, med.ExpirationDate.Equal(*expiration))
}

func TestCreateOrRestockIncrementsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	expiration := datePtr(2027, time.March, 1)
	first, err := svc.CreateOrRestock(user.ID, "Aspirin", 100, expiration)
	require.NoError(t, err)

	// Different casing and a different expiration: the stored row keeps its
	// original name and expiration, only the quantity grows.
	second, err := svc.CreateOrRestock(user.ID, "aspirin", 50, datePtr(2030, time.January, 1))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Aspirin", second.Name)
	assert.Equal(t, 150, second.Quantity)
	require.NotNil(t, second.ExpirationDate)
	assert.True(t, second.ExpirationDate.Equal(*expiration))

	var count int64
	require.NoError(t, db.Model(&models.Medication{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateOrRestockIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	_, err := svc.CreateOrRestock(alice.ID, "Aspirin", 100, nil)
	require.NoError(t, err)

	med, err := svc.CreateOrRestock(bob.ID, "Aspirin", 30, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, med.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.Medication{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateOrRestockRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	var validation *ValidationError

	_, err := svc.CreateOrRestock(user.ID, "", 10, nil)
	require.ErrorAs(t, err, &validation)

	_, err = svc.CreateOrRestock(user.ID, "Aspirin", 0, nil)
	require.ErrorAs(t, err, &validation)

	_, err = svc.CreateOrRestock(user.ID, "Aspirin", -5, nil)
	require.ErrorAs(t, err, &validation)
}

// N concurrent restocks for the same name, under varying casing, must end as
// one row holding the summed quantity: every caller lands as either the
// insert or an increment, never as an error.
func TestCreateOrRestockConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	const n, q = 20, 5

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		name := "Aspirin"
		if i%2 == 1 {
			name = "aspirin"
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := svc.CreateOrRestock(user.ID, name, q, nil)
			errs <- err
		}(name)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Medication{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var med models.Medication
	require.NoError(t, db.Where("user_id = ? AND name_key = ?", user.ID, "aspirin").First(&med).Error)
	assert.Equal(t, n*q, med.Quantity)
}

func TestGetMedicationHidesForeignRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	med, err := svc.CreateOrRestock(alice.ID, "Ibuprofen", 20, nil)
	require.NoError(t, err)

	// A foreign row and an absent row look exactly the same.
	_, err = svc.Get(bob.ID, med.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(bob.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := svc.Get(alice.ID, med.ID)
	require.NoError(t, err)
	assert.Equal(t, med.ID, found.ID)
}

func TestUpdateMedicationPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	expiration := datePtr(2027, time.March, 1)
	med, err := svc.CreateOrRestock(user.ID, "Aspirin", 100, expiration)
	require.NoError(t, err)

	quantity := 40
	updated, err := svc.Update(user.ID, med.ID, MedicationPatch{Quantity: &quantity})
	require.NoError(t, err)

	assert.Equal(t, 40, updated.Quantity)
	assert.Equal(t, "Aspirin", updated.Name)
	require.NotNil(t, updated.ExpirationDate)
	assert.True(t, updated.ExpirationDate.Equal(*expiration))
}

func TestUpdateMedicationEmptyPatchIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	med, err := svc.CreateOrRestock(user.ID, "Aspirin", 100, nil)
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, med.ID, MedicationPatch{})
	require.NoError(t, err)
	assert.Equal(t, med.Quantity, updated.Quantity)
	assert.True(t, updated.UpdatedAt.Equal(med.UpdatedAt))
}

func TestUpdateMedicationRenameChangesUpsertKey(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	med, err := svc.CreateOrRestock(user.ID, "Aspirin", 100, nil)
	require.NoError(t, err)

	name := "Paracetamol"
	_, err = svc.Update(user.ID, med.ID, MedicationPatch{Name: &name})
	require.NoError(t, err)

	// Restocking under the new name must hit the renamed row.
	restocked, err := svc.CreateOrRestock(user.ID, "paracetamol", 10, nil)
	require.NoError(t, err)
	assert.Equal(t, med.ID, restocked.ID)
	assert.Equal(t, 110, restocked.Quantity)
}

func TestUpdateMedicationRenameCollisionIsValidationError(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	user := createTestUser(t, db, "alice@example.com")

	_, err := svc.CreateOrRestock(user.ID, "Aspirin", 100, nil)
	require.NoError(t, err)
	med, err := svc.CreateOrRestock(user.ID, "Paracetamol", 50, nil)
	require.NoError(t, err)

	// Renaming onto another medication's key collides case-insensitively.
	name := "ASPIRIN"
	var validation *ValidationError
	_, err = svc.Update(user.ID, med.ID, MedicationPatch{Name: &name})
	require.ErrorAs(t, err, &validation)

	// Nothing moved.
	current, err := svc.Get(user.ID, med.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", current.Name)
}

func TestDeleteMedication(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	med, err := svc.CreateOrRestock(alice.ID, "Aspirin", 100, nil)
	require.NoError(t, err)

	// Deleting someone else's medication reports false, not an error.
	deleted, err := svc.Delete(bob.ID, med.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.Delete(alice.ID, med.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(alice.ID, med.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
