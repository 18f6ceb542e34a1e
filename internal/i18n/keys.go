package i18n

// Key identifies one translatable message. Keys are a closed typed set
// rather than dotted strings traversed at runtime.
type Key string

const (
	KeyListTitle           Key = "employeeList.title"
	KeyListSearch          Key = "employeeList.search"
	KeyListAllDepartments  Key = "employeeList.allDepartments"
	KeyListAllPositions    Key = "employeeList.allPositions"
	KeyListDeleteConfirm   Key = "employeeList.deleteConfirmation"
	KeyListDeleteMessage   Key = "employeeList.deleteConfirmationMessage"
	KeyFormAddEmployee     Key = "employeeForm.addEmployee"
	KeyFormEditEmployee    Key = "employeeForm.editEmployee"
	KeyFormCancel          Key = "employeeForm.cancel"
	KeyFormCreate          Key = "employeeForm.create"
	KeyFormUpdate          Key = "employeeForm.update"
	KeyFormConfirmCreate   Key = "employeeForm.confirmCreate"
	KeyFormConfirmUpdate   Key = "employeeForm.confirmUpdate"
	KeyFieldFirstName      Key = "employeeForm.firstName"
	KeyFieldLastName       Key = "employeeForm.lastName"
	KeyFieldDateEmployment Key = "employeeForm.dateOfEmployment"
	KeyFieldDateBirth      Key = "employeeForm.dateOfBirth"
	KeyFieldPhoneNumber    Key = "employeeForm.phoneNumber"
	KeyFieldEmail          Key = "employeeForm.email"
	KeyFieldDepartment     Key = "employeeForm.department"
	KeyFieldPosition       Key = "employeeForm.position"
	KeyValidationRequired  Key = "validation.required"
	KeyValidationEmail     Key = "validation.invalidEmail"
	KeyValidationPhone     Key = "validation.invalidPhone"
	KeyValidationInvalid   Key = "validation.invalid"
	KeyValidationName      Key = "validation.invalidName"
	KeyValidationUnderage  Key = "validation.underage"
	KeyValidationFuture    Key = "validation.futureDate"
	KeyValidationEmailDup  Key = "validation.emailExists"
	KeyValidationPhoneDup  Key = "validation.phoneExists"
	KeyValidationExists    Key = "validation.exists"
)
