package service

import "errors"

// Виды ошибок сервиса. Проверяются через errors.Is.
var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrAuth        = errors.New("authentication failed")
	ErrPersistence = errors.New("persistence error")
)

// Сообщения, возвращаемые клиентам.
const (
	MsgFillAllFields       = "Please fill all the fields"
	MsgInvalidEmail        = "Please provide a valid email address"
	MsgPasswordTooLong     = "Password must not exceed 72 bytes"
	MsgEmailExists         = "Email already exists"
	MsgCreateUserFailed    = "Error creating user account"
	MsgLoginFieldsRequired = "Email and password are required"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgLoginFailed         = "Error logging in"
	MsgFetchUsersFailed    = "Error fetching users"
	MsgUserFieldsRequired  = "All fields are required"
	MsgUserNotFound        = "User not found"
	MsgUpdateUserFailed    = "Error updating user"
	MsgDeleteUserFailed    = "Error deleting user"
	MsgOrderFieldsRequired = "All fields are required."
	MsgOrderOutOfRange     = "Price must have at most 2 decimal places and be below 10000000000, quantity must not exceed 2147483647."
	MsgPlaceOrderFailed    = "Error placing order."
)

// Error описывает ошибку операции: вид, сообщение для клиента и исходную причину.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap позволяет сопоставлять ошибку как с видом, так и с причиной.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// errInvalidCredentials возвращается и для неизвестной почты, и для неверного пароля.
var errInvalidCredentials = newError(ErrAuth, MsgInvalidCredentials, nil)
