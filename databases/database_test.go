package databases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

func newTestClient(t *testing.T) *databases.Client {
	t.Helper()
	client, err := databases.NewClient(&config.Config{
		DatabaseDriver: databases.DriverSQLite,
		DatabaseURL:    "file::memory:?_foreign_keys=1",
	})
	require.NoError(t, err)
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedUser(t *testing.T, db databases.DatabaseHelper, name string, roles ...string) int64 {
	t.Helper()
	u := &models.User{DiscordID: "discord:" + name, Username: name, CreatedAt: time.Now().UTC()}
	for _, r := range roles {
		u.Roles = append(u.Roles, models.Role{ID: r})
	}
	id, err := databases.NewUserDatabase(db).InsertOne(context.Background(), u)
	require.NoError(t, err)
	return id
}

func seedCharacter(t *testing.T, db databases.DatabaseHelper, userID int64, name, address string, createdAt time.Time) int64 {
	t.Helper()
	id, err := databases.NewCharacterDatabase(db).InsertOne(context.Background(), &models.Character{
		UserID:                userID,
		Name:                  name,
		DateOfBirth:           "1990-01-01",
		Address:               address,
		Profession:            "Baker",
		Gender:                "Female",
		Race:                  "Human",
		DriversLicenseStatus:  models.DriversLicenseValid,
		FirearmsLicenseStatus: models.FirearmsLicenseNone,
		CreatedAt:             createdAt,
		UpdatedAt:             createdAt,
	})
	require.NoError(t, err)
	return id
}

func TestNewClientRejectsUnknownDriver(t *testing.T) {
	_, err := databases.NewClient(&config.Config{DatabaseDriver: "mongodb"})
	assert.Error(t, err)
}

func TestNewClientDefaultsToPostgres(t *testing.T) {
	client, err := databases.NewClient(&config.Config{DatabaseURL: "postgres://localhost/dmv?sslmode=disable"})
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, databases.DriverPostgres, client.Driver())
	assert.Equal(t, "SELECT * FROM users WHERE id = $1", client.Rebind("SELECT * FROM users WHERE id = ?"))
}

func TestClient_MigrateIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	assert.NoError(t, client.Migrate(context.Background()))
}

func TestUserDatabase_FindOne(t *testing.T) {
	client := newTestClient(t)
	id := seedUser(t, client, "officer", "leo-role", "other")

	userDB := databases.NewUserDatabase(client)
	user, err := userDB.FindOne(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "officer", user.Username)
	assert.False(t, user.IsAdmin)
	assert.Contains(t, user.Roles.IDs(), "leo-role")

	_, err = userDB.FindOne(context.Background(), id+100)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestCharacterDatabase_InsertFindUpdate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	characterDB := databases.NewCharacterDatabase(client)
	now := time.Now().UTC().Truncate(time.Second)

	id := seedCharacter(t, client, 7, "Jane Doe", "1 Main St", now)
	assert.NotZero(t, id)

	c, err := characterDB.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, int64(7), c.UserID)
	assert.True(t, c.CreatedAt.Equal(now))

	c.Profession = "Pilot"
	c.DriversLicenseStatus = models.DriversLicenseSuspended
	c.UpdatedAt = now.Add(time.Hour)
	require.NoError(t, characterDB.UpdateOne(ctx, c))

	updated, err := characterDB.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pilot", updated.Profession)
	assert.Equal(t, models.DriversLicenseSuspended, updated.DriversLicenseStatus)
	assert.True(t, updated.UpdatedAt.Equal(now.Add(time.Hour)))

	_, err = characterDB.FindOne(ctx, id+1)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	c.ID = id + 1
	assert.ErrorIs(t, characterDB.UpdateOne(ctx, c), databases.ErrNotFound)
}

func TestCharacterDatabase_FindByUserIDNewestFirst(t *testing.T) {
	client := newTestClient(t)
	now := time.Now().UTC()
	older := seedCharacter(t, client, 1, "Old", "A", now.Add(-time.Hour))
	newer := seedCharacter(t, client, 1, "New", "B", now)
	seedCharacter(t, client, 2, "Other", "C", now)

	characters, err := databases.NewCharacterDatabase(client).FindByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, characters, 2)
	assert.Equal(t, newer, characters[0].ID)
	assert.Equal(t, older, characters[1].ID)
}

func TestCharacterDatabase_Search(t *testing.T) {
	client := newTestClient(t)
	now := time.Now().UTC()
	seedCharacter(t, client, 1, "Jane Doe", "1 Main St", now)
	seedCharacter(t, client, 1, "Alan Smith", "22 Doe Avenue", now)
	seedCharacter(t, client, 1, "Zed", "100% Road", now)
	characterDB := databases.NewCharacterDatabase(client)

	results, err := characterDB.Search(context.Background(), "DOE", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Alan Smith", results[0].Name)
	assert.Equal(t, "Jane Doe", results[1].Name)

	results, err = characterDB.Search(context.Background(), "%", 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Zed", results[0].Name)

	results, err = characterDB.Search(context.Background(), "nobody", 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCharacterDatabase_SearchLimit(t *testing.T) {
	client := newTestClient(t)
	for i := 0; i < 25; i++ {
		seedCharacter(t, client, 1, fmt.Sprintf("Person %02d", i), "Main St", time.Now().UTC())
	}
	results, err := databases.NewCharacterDatabase(client).Search(context.Background(), "main", 20)
	require.NoError(t, err)
	assert.Len(t, results, 20)
	assert.Equal(t, "Person 00", results[0].Name)
}

func TestCharacterDatabase_SearchFoldsUnicode(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	characterDB := databases.NewCharacterDatabase(client)
	id := seedCharacter(t, client, 1, "Émile Zola", "3 Rue de l'Église", time.Now().UTC())

	for _, query := range []string{"émile", "ÉMILE", "Émile", "ÉGLISE"} {
		results, err := characterDB.Search(ctx, query, 20)
		require.NoError(t, err)
		require.Len(t, results, 1, query)
		assert.Equal(t, id, results[0].ID, query)
	}

	c, err := characterDB.FindOne(ctx, id)
	require.NoError(t, err)
	c.Name = "Ödön Horváth"
	require.NoError(t, characterDB.UpdateOne(ctx, c))

	results, err := characterDB.Search(ctx, "ÖDÖN", 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ödön Horváth", results[0].Name)

	results, err = characterDB.Search(ctx, "émile", 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestVehicleDatabase_PlateIsUnique(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC()
	first := seedCharacter(t, client, 1, "Jane Doe", "1 Main St", now)
	second := seedCharacter(t, client, 2, "John Roe", "2 Main St", now)
	vehicleDB := databases.NewVehicleDatabase(client)

	v := &models.Vehicle{CharacterID: first, Make: "Toyota", Model: "Corolla", Color: "Blue", Plate: "ABC123",
		RegistrationStatus: "Valid", InsuranceStatus: "Valid", CreatedAt: now, UpdatedAt: now}
	id, err := vehicleDB.InsertOne(ctx, v)
	require.NoError(t, err)

	dup := *v
	dup.CharacterID = second
	_, err = vehicleDB.InsertOne(ctx, &dup)
	assert.True(t, errors.Is(err, databases.ErrDuplicate), "got %v", err)

	vehicles, err := vehicleDB.FindByCharacterID(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	found, err := vehicleDB.FindByPlate(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	_, err = vehicleDB.FindByPlate(ctx, "NOPE")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestVehicleDatabase_UpdateAndDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC()
	owner := seedCharacter(t, client, 1, "Jane Doe", "1 Main St", now)
	vehicleDB := databases.NewVehicleDatabase(client)

	mk := func(plate string) int64 {
		id, err := vehicleDB.InsertOne(ctx, &models.Vehicle{CharacterID: owner, Make: "Ford", Model: "F150",
			Color: "Red", Plate: plate, RegistrationStatus: "Valid", InsuranceStatus: "Valid", CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)
		return id
	}
	a := mk("AAA111")
	mk("BBB222")

	v, err := vehicleDB.FindOne(ctx, a)
	require.NoError(t, err)
	v.Plate = "BBB222"
	assert.ErrorIs(t, vehicleDB.UpdateOne(ctx, v), databases.ErrDuplicate)

	v.Plate = "CCC333"
	v.Color = "Green"
	require.NoError(t, vehicleDB.UpdateOne(ctx, v))
	v, err = vehicleDB.FindOne(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Green", v.Color)
	assert.Equal(t, "CCC333", v.Plate)

	require.NoError(t, vehicleDB.DeleteOne(ctx, a))
	assert.ErrorIs(t, vehicleDB.DeleteOne(ctx, a), databases.ErrNotFound)
	_, err = vehicleDB.FindOne(ctx, a)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestVehicleDatabase_RequiresExistingCharacter(t *testing.T) {
	client := newTestClient(t)
	now := time.Now().UTC()
	_, err := databases.NewVehicleDatabase(client).InsertOne(context.Background(), &models.Vehicle{
		CharacterID: 999, Make: "Ford", Model: "F150", Color: "Red", Plate: "ZZZ999",
		RegistrationStatus: "Valid", InsuranceStatus: "Valid", CreatedAt: now, UpdatedAt: now,
	})
	assert.Error(t, err)
}

func TestCitationAndArrestDatabase_JoinIssuerName(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC()
	officer := seedUser(t, client, "officer", "leo-role")
	characterID := seedCharacter(t, client, 1, "Jane Doe", "1 Main St", now)

	citationDB := databases.NewCitationDatabase(client)
	_, err := citationDB.InsertOne(ctx, &models.Citation{CharacterID: characterID, Violation: "Speeding",
		FineAmount: "49.99", IssuedBy: officer, CreatedAt: now.Add(-time.Minute)})
	require.NoError(t, err)
	_, err = citationDB.InsertOne(ctx, &models.Citation{CharacterID: characterID, Violation: "Parking",
		FineAmount: "10", Notes: "blue zone", IssuedBy: officer + 50, CreatedAt: now})
	require.NoError(t, err)

	citations, err := citationDB.FindByCharacterID(ctx, characterID)
	require.NoError(t, err)
	require.Len(t, citations, 2)
	assert.Equal(t, "Parking", citations[0].Violation)
	assert.Equal(t, "", citations[0].IssuedByName)
	assert.Equal(t, "Speeding", citations[1].Violation)
	assert.Equal(t, "49.99", citations[1].FineAmount)
	assert.Equal(t, "officer", citations[1].IssuedByName)

	arrestDB := databases.NewArrestDatabase(client)
	_, err = arrestDB.InsertOne(ctx, &models.Arrest{CharacterID: characterID, Charges: "Theft",
		Location: "Bank", ArrestedBy: officer, CreatedAt: now})
	require.NoError(t, err)
	arrests, err := arrestDB.FindByCharacterID(ctx, characterID)
	require.NoError(t, err)
	require.Len(t, arrests, 1)
	assert.Equal(t, "officer", arrests[0].ArrestedByName)
	assert.Equal(t, "Bank", arrests[0].Location)
}

func TestWarrantDatabase_Lifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	judge := seedUser(t, client, "judge", "judge-role")
	officer := seedUser(t, client, "officer", "leo-role")
	characterID := seedCharacter(t, client, 1, "Jane Doe", "1 Main St", now)
	warrantDB := databases.NewWarrantDatabase(client)

	active, err := warrantDB.InsertOne(ctx, &models.Warrant{CharacterID: characterID, Charges: "Fraud",
		Reason: "Evidence", Status: models.WarrantStatusActive, IssuedBy: judge, CreatedAt: now})
	require.NoError(t, err)
	done, err := warrantDB.InsertOne(ctx, &models.Warrant{CharacterID: characterID, Charges: "Theft",
		Reason: "Witness", Status: models.WarrantStatusActive, IssuedBy: judge, CreatedAt: now.Add(time.Second)})
	require.NoError(t, err)

	changed, err := warrantDB.Complete(ctx, done, officer, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = warrantDB.Complete(ctx, done, judge, now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)

	w, err := warrantDB.FindOne(ctx, done)
	require.NoError(t, err)
	assert.Equal(t, models.WarrantStatusCompleted, w.Status)
	require.NotNil(t, w.CompletedBy)
	assert.Equal(t, officer, *w.CompletedBy)
	assert.Equal(t, "officer", w.CompletedByName)
	require.NotNil(t, w.CompletedAt)
	assert.True(t, w.CompletedAt.Equal(now.Add(time.Minute)))
	assert.Equal(t, "judge", w.IssuedByName)

	all, err := warrantDB.FindByCharacterID(ctx, characterID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, done, all[0].ID)
	assert.Equal(t, active, all[1].ID)
	assert.Nil(t, all[1].CompletedBy)
	assert.Nil(t, all[1].CompletedAt)

	completed, err := warrantDB.FindByCharacterID(ctx, characterID, models.WarrantStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done, completed[0].ID)

	_, err = warrantDB.FindOne(ctx, done+100)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}
