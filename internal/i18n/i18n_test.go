package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyasar/staffdir/internal/model"
	"github.com/oyasar/staffdir/internal/testutil"
	"github.com/oyasar/staffdir/internal/validate"
)

func newTestTranslator(t *testing.T, def Lang) (*Translator, *testutil.MemoryKV) {
	t.Helper()
	kv := testutil.NewMemoryKV()
	tr, err := NewTranslator(context.Background(), kv, def)
	require.NoError(t, err)
	return tr, kv
}

func TestNewTranslator_Default(t *testing.T) {
	tr, _ := newTestTranslator(t, LangEN)
	assert.Equal(t, LangEN, tr.Language())
}

func TestNewTranslator_UnknownDefaultFallsBackToEnglish(t *testing.T) {
	tr, _ := newTestTranslator(t, Lang("de"))
	assert.Equal(t, LangEN, tr.Language())
}

func TestNewTranslator_LoadsPersistedLanguage(t *testing.T) {
	kv := testutil.NewMemoryKV()
	kv.Data[model.KeyPreferredLanguage] = "tr"

	tr, err := NewTranslator(context.Background(), kv, LangEN)
	require.NoError(t, err)

	assert.Equal(t, LangTR, tr.Language())
}

func TestSetLanguage_Persists(t *testing.T) {
	ctx := context.Background()
	tr, kv := newTestTranslator(t, LangEN)

	require.NoError(t, tr.SetLanguage(ctx, LangTR))

	assert.Equal(t, LangTR, tr.Language())
	assert.Equal(t, "tr", kv.Data[model.KeyPreferredLanguage])
}

func TestSetLanguage_UnknownIgnored(t *testing.T) {
	ctx := context.Background()
	tr, kv := newTestTranslator(t, LangEN)

	require.NoError(t, tr.SetLanguage(ctx, Lang("de")))

	assert.Equal(t, LangEN, tr.Language())
	assert.NotContains(t, kv.Data, model.KeyPreferredLanguage)
}

func TestT(t *testing.T) {
	tr, _ := newTestTranslator(t, LangEN)

	assert.Equal(t, "Employee List", tr.T(KeyListTitle, nil))
	assert.Equal(t,
		"Selected Employee record of Ahmet Yılmaz will be deleted",
		tr.T(KeyListDeleteMessage, map[string]string{"name": "Ahmet Yılmaz"}))

	// Unknown keys resolve to the key text.
	assert.Equal(t, "no.such.key", tr.T(Key("no.such.key"), nil))
}

func TestT_Turkish(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTranslator(t, LangEN)
	require.NoError(t, tr.SetLanguage(ctx, LangTR))

	assert.Equal(t, "Çalışan Listesi", tr.T(KeyListTitle, nil))
}

func TestErrorMessage(t *testing.T) {
	tr, _ := newTestTranslator(t, LangEN)

	tests := []struct {
		name  string
		field validate.FieldName
		kind  validate.ErrorKind
		want  string
	}{
		{"required interpolates field label", validate.FieldFirstName, validate.ErrRequired, "First Name is required"},
		{"invalid email", validate.FieldEmail, validate.ErrInvalidFormat, "Please enter a valid email address"},
		{"invalid phone", validate.FieldPhoneNumber, validate.ErrInvalidFormat, "Please enter a valid phone number (e.g., +(90) 532 123 45 67)"},
		{"invalid other", validate.FieldDepartment, validate.ErrInvalidFormat, "Please enter a valid value"},
		{"invalid name", validate.FieldFirstName, validate.ErrInvalidName, "Please enter only letters, hyphens and apostrophes"},
		{"underage", validate.FieldDateOfBirth, validate.ErrUnderage, "Employee must be at least 18 years old"},
		{"future date", validate.FieldDateOfEmployment, validate.ErrFutureDate, "Date cannot be in the future"},
		{"email exists", validate.FieldEmail, validate.ErrAlreadyExists, "This email address is already in use"},
		{"phone exists", validate.FieldPhoneNumber, validate.ErrAlreadyExists, "An employee with this phone number already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.ErrorMessage(tt.field, tt.kind))
		})
	}
}
