package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaapp/kasa/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testProfile() *model.UserProfile {
	return &model.UserProfile{
		SalaryInfo: model.SalaryInfo{
			Amount:              22000,
			Currency:            "TRY",
			PaymentStartDay:     1,
			PaymentEndDay:       5,
			PossibleDelayDays:   3,
			WorkingDaysPerMonth: 22,
			Absences: []model.Attendance{
				{Date: "2024-01-02", IsAbsent: true, Reason: "sick"},
			},
		},
		ExpenseCurrencies: []string{"TRY", "USD"},
		IncomeCurrencies:  []string{"TRY"},
		SetupCompleted:    true,
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStore(t)
	// Second run must be a no-op, not an error.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := testProfile()
	require.NoError(t, store.SaveProfile(ctx, original))

	loaded, err := store.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original, loaded)
}

func TestGetProfile_MissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	profile, err := store.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetProfile_MalformedValueDegradesToNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.setValue(ctx, keyUserProfile, []byte("{not json")))

	profile, err := store.GetProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestSaveProfile_NilRejected(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveProfile(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilParameter)
}

func TestTransactionsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := []model.Transaction{
		{
			ID:          "1700000000001",
			Amount:      125.50,
			Currency:    "TRY",
			CategoryID:  "1",
			Description: "groceries",
			Kind:        model.KindExpense,
			Date:        time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local),
		},
		{
			ID:          "1700000000002",
			Amount:      22000,
			Currency:    "TRY",
			CategoryID:  "11",
			Description: "Monthly Salary",
			Kind:        model.KindIncome,
			Date:        time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local),
		},
	}
	require.NoError(t, store.SaveTransactions(ctx, original))

	loaded, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i := range original {
		assert.Equal(t, original[i].ID, loaded[i].ID)
		assert.Equal(t, original[i].Amount, loaded[i].Amount)
		assert.Equal(t, original[i].Currency, loaded[i].Currency)
		assert.Equal(t, original[i].CategoryID, loaded[i].CategoryID)
		assert.Equal(t, original[i].Kind, loaded[i].Kind)
		// JSON serialization normalizes the zone representation; the
		// instant must survive exactly.
		assert.True(t, original[i].Date.Equal(loaded[i].Date))
	}
}

func TestGetTransactions_MissingReturnsEmpty(t *testing.T) {
	store := newTestStore(t)

	txns, err := store.GetTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestGetTransactions_MalformedValueDegradesToEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.setValue(ctx, keyTransactions, []byte("[[[")))

	txns, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestSetupCompletedRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	completed, err := store.GetSetupCompleted(ctx)
	require.NoError(t, err)
	assert.False(t, completed)

	require.NoError(t, store.SetSetupCompleted(ctx, true))

	completed, err = store.GetSetupCompleted(ctx)
	require.NoError(t, err)
	assert.True(t, completed)
}

func TestSetupCompleted_MalformedDegradesToFalse(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.setValue(ctx, keySetupCompleted, []byte("maybe")))

	completed, err := store.GetSetupCompleted(ctx)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestLastSalaryDateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	date, err := store.GetLastSalaryDate(ctx)
	require.NoError(t, err)
	assert.Nil(t, date)

	when := time.Date(2024, 1, 3, 9, 15, 0, 0, time.Local)
	require.NoError(t, store.SetLastSalaryDate(ctx, when))

	date, err = store.GetLastSalaryDate(ctx)
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.True(t, when.Equal(*date))
}

func TestLastSalaryDate_MalformedDegradesToNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.setValue(ctx, keyLastSalaryDate, []byte(`"not-a-date"`)))

	date, err := store.GetLastSalaryDate(ctx)
	require.NoError(t, err)
	assert.Nil(t, date)
}

func TestCategoriesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Unset lists come back nil so the caller can seed defaults.
	cats, err := store.GetCategories(ctx, model.CategoryKindExpense)
	require.NoError(t, err)
	assert.Nil(t, cats)

	expense := []model.Category{
		{ID: "1", Name: "Food & Drink", Icon: "utensils", Color: "#FF6B6B", Kind: model.CategoryKindExpense},
	}
	income := []model.Category{
		{ID: "11", Name: "Salary", Icon: "banknote", Color: "#52C41A", Kind: model.CategoryKindIncome},
	}
	require.NoError(t, store.SaveCategories(ctx, model.CategoryKindExpense, expense))
	require.NoError(t, store.SaveCategories(ctx, model.CategoryKindIncome, income))

	// The two collections are stored under independent keys.
	gotExpense, err := store.GetCategories(ctx, model.CategoryKindExpense)
	require.NoError(t, err)
	assert.Equal(t, expense, gotExpense)

	gotIncome, err := store.GetCategories(ctx, model.CategoryKindIncome)
	require.NoError(t, err)
	assert.Equal(t, income, gotIncome)
}

func TestCategories_UnknownKindRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCategories(context.Background(), model.CategoryKind("misc"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfile(ctx, testProfile()))
	require.NoError(t, store.SetSetupCompleted(ctx, true))

	require.NoError(t, store.Reset(ctx))

	profile, err := store.GetProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	completed, err := store.GetSetupCompleted(ctx)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestValidation(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.ErrorIs(t, err, ErrEmptyString)

	store := newTestStore(t)
	_, err = store.getValue(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyString)

	//nolint:staticcheck // passing a nil context on purpose
	err = store.setValue(nil, "key", []byte("{}"))
	assert.ErrorIs(t, err, ErrNilContext)
}
