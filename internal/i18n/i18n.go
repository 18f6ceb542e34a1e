package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oyasar/staffdir/internal/model"
	"github.com/oyasar/staffdir/internal/validate"
)

// Lang is a supported UI language code.
type Lang string

const (
	LangEN Lang = "en"
	LangTR Lang = "tr"
)

var en = map[Key]string{
	KeyListTitle:           "Employee List",
	KeyListSearch:          "Search by name, email, or phone...",
	KeyListAllDepartments:  "All Departments",
	KeyListAllPositions:    "All Positions",
	KeyListDeleteConfirm:   "Are you sure?",
	KeyListDeleteMessage:   "Selected Employee record of {name} will be deleted",
	KeyFormAddEmployee:     "Add Employee",
	KeyFormEditEmployee:    "Edit Employee",
	KeyFormCancel:          "Cancel",
	KeyFormCreate:          "Create Employee",
	KeyFormUpdate:          "Update Employee",
	KeyFormConfirmCreate:   "Are you sure you want to create this employee?",
	KeyFormConfirmUpdate:   "Are you sure you want to update this employee?",
	KeyFieldFirstName:      "First Name",
	KeyFieldLastName:       "Last Name",
	KeyFieldDateEmployment: "Date of Employment",
	KeyFieldDateBirth:      "Date of Birth",
	KeyFieldPhoneNumber:    "Phone Number",
	KeyFieldEmail:          "Email Address",
	KeyFieldDepartment:     "Department",
	KeyFieldPosition:       "Position",
	KeyValidationRequired:  "{field} is required",
	KeyValidationEmail:     "Please enter a valid email address",
	KeyValidationPhone:     "Please enter a valid phone number (e.g., +(90) 532 123 45 67)",
	KeyValidationInvalid:   "Please enter a valid value",
	KeyValidationName:      "Please enter only letters, hyphens and apostrophes",
	KeyValidationUnderage:  "Employee must be at least 18 years old",
	KeyValidationFuture:    "Date cannot be in the future",
	KeyValidationEmailDup:  "This email address is already in use",
	KeyValidationPhoneDup:  "An employee with this phone number already exists",
	KeyValidationExists:    "This value is already in use",
}

var tr = map[Key]string{
	KeyListTitle:           "Çalışan Listesi",
	KeyListSearch:          "İsim, e-posta veya telefon ile arayın...",
	KeyListAllDepartments:  "Tüm Departmanlar",
	KeyListAllPositions:    "Tüm Pozisyonlar",
	KeyListDeleteConfirm:   "Emin misiniz?",
	KeyListDeleteMessage:   "{name} isimli çalışanın kaydı silinecek",
	KeyFormAddEmployee:     "Çalışan Ekle",
	KeyFormEditEmployee:    "Çalışanı Düzenle",
	KeyFormCancel:          "Vazgeç",
	KeyFormCreate:          "Çalışan Oluştur",
	KeyFormUpdate:          "Çalışanı Güncelle",
	KeyFormConfirmCreate:   "Bu çalışanı oluşturmak istediğinizden emin misiniz?",
	KeyFormConfirmUpdate:   "Bu çalışanı güncellemek istediğinizden emin misiniz?",
	KeyFieldFirstName:      "Ad",
	KeyFieldLastName:       "Soyad",
	KeyFieldDateEmployment: "İşe Başlama Tarihi",
	KeyFieldDateBirth:      "Doğum Tarihi",
	KeyFieldPhoneNumber:    "Telefon Numarası",
	KeyFieldEmail:          "E-posta Adresi",
	KeyFieldDepartment:     "Departman",
	KeyFieldPosition:       "Pozisyon",
	KeyValidationRequired:  "{field} alanı zorunludur",
	KeyValidationEmail:     "Lütfen geçerli bir e-posta adresi girin",
	KeyValidationPhone:     "Lütfen geçerli bir telefon numarası girin (örn. +(90) 532 123 45 67)",
	KeyValidationInvalid:   "Lütfen geçerli bir değer girin",
	KeyValidationName:      "Lütfen yalnızca harf, tire ve kesme işareti girin",
	KeyValidationUnderage:  "Çalışan en az 18 yaşında olmalıdır",
	KeyValidationFuture:    "Tarih gelecekte olamaz",
	KeyValidationEmailDup:  "Bu e-posta adresi zaten kullanılıyor",
	KeyValidationPhoneDup:  "Bu telefon numarasına sahip bir çalışan zaten var",
	KeyValidationExists:    "Bu değer zaten kullanılıyor",
}

var catalogs = map[Lang]map[Key]string{
	LangEN: en,
	LangTR: tr,
}

// Translator resolves typed message keys for the active language and
// persists the language choice in device-local storage.
type Translator struct {
	kv   model.KeyValueStore
	lang Lang
}

// NewTranslator loads the persisted language, falling back to def when
// nothing is stored or the stored code is unknown.
func NewTranslator(ctx context.Context, kv model.KeyValueStore, def Lang) (*Translator, error) {
	t := &Translator{kv: kv, lang: def}
	if _, ok := catalogs[t.lang]; !ok {
		t.lang = LangEN
	}

	stored, err := kv.Get(ctx, model.KeyPreferredLanguage)
	if errors.Is(err, model.ErrNotFound) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load language preference: %w", err)
	}
	if _, ok := catalogs[Lang(stored)]; ok {
		t.lang = Lang(stored)
	}

	return t, nil
}

// Language returns the active language.
func (t *Translator) Language() Lang {
	return t.lang
}

// SetLanguage switches the active language and persists it. Unknown
// codes are ignored.
func (t *Translator) SetLanguage(ctx context.Context, lang Lang) error {
	if _, ok := catalogs[lang]; !ok {
		return nil
	}
	t.lang = lang
	if err := t.kv.Set(ctx, model.KeyPreferredLanguage, string(lang)); err != nil {
		return fmt.Errorf("failed to persist language preference: %w", err)
	}
	return nil
}

// T resolves key in the active language and substitutes {param}
// placeholders. An unknown key resolves to the key text itself.
func (t *Translator) T(key Key, params map[string]string) string {
	value, ok := catalogs[t.lang][key]
	if !ok {
		return string(key)
	}
	for param, val := range params {
		value = strings.ReplaceAll(value, "{"+param+"}", val)
	}
	return value
}

// fieldKeys maps validated fields to their label keys.
var fieldKeys = map[validate.FieldName]Key{
	validate.FieldFirstName:        KeyFieldFirstName,
	validate.FieldLastName:         KeyFieldLastName,
	validate.FieldDateOfEmployment: KeyFieldDateEmployment,
	validate.FieldDateOfBirth:      KeyFieldDateBirth,
	validate.FieldPhoneNumber:      KeyFieldPhoneNumber,
	validate.FieldEmail:            KeyFieldEmail,
	validate.FieldDepartment:       KeyFieldDepartment,
	validate.FieldPosition:         KeyFieldPosition,
}

// ErrorMessage renders the inline message for a field-level validation
// failure. Format and duplicate failures resolve to field-specific
// messages for email and phone.
func (t *Translator) ErrorMessage(field validate.FieldName, kind validate.ErrorKind) string {
	switch kind {
	case validate.ErrRequired:
		return t.T(KeyValidationRequired, map[string]string{"field": t.T(fieldKeys[field], nil)})
	case validate.ErrInvalidFormat:
		switch field {
		case validate.FieldEmail:
			return t.T(KeyValidationEmail, nil)
		case validate.FieldPhoneNumber:
			return t.T(KeyValidationPhone, nil)
		default:
			return t.T(KeyValidationInvalid, nil)
		}
	case validate.ErrInvalidName:
		return t.T(KeyValidationName, nil)
	case validate.ErrUnderage:
		return t.T(KeyValidationUnderage, nil)
	case validate.ErrFutureDate:
		return t.T(KeyValidationFuture, nil)
	case validate.ErrAlreadyExists:
		switch field {
		case validate.FieldEmail:
			return t.T(KeyValidationEmailDup, nil)
		case validate.FieldPhoneNumber:
			return t.T(KeyValidationPhoneDup, nil)
		default:
			return t.T(KeyValidationExists, nil)
		}
	default:
		return ""
	}
}
