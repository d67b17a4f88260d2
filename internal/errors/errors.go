package errors

import (
	"errors"
	"fmt"
)

// TitleMissing is the user-facing title of validation failures
const TitleMissing = "Mangler"

// TitleFailure is the user-facing title of backend failures
const TitleFailure = "Fejl"

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError is a user input problem detected before any write.
// Title is shown to the user as the heading, Message as the body.
type ValidationError struct {
	Title   string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StepStatus is the outcome of one step of a multi-write operation
type StepStatus string

const (
	StepSucceeded   StepStatus = "succeeded"
	StepFailed      StepStatus = "failed"
	StepSkipped     StepStatus = "skipped"
	StepCompensated StepStatus = "compensated"
)

// StepOutcome records what happened to one named step
type StepOutcome struct {
	Step   string     `json:"step"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// RemoteError wraps a storage failure. Message is the raw backend message shown to the user.
type RemoteError struct {
	Op      string
	Message string
	Steps   []StepOutcome
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// FailedStep returns the name of the step that failed, if any
func (e *RemoteError) FailedStep() string {
	for _, s := range e.Steps {
		if s.Status == StepFailed {
			return s.Step
		}
	}
	return ""
}

// Entity Not Found Errors
var (
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrMatchNotFound        = &NotFoundError{Entity: "match"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "team membership"}
)

// Already Exists Errors
var (
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrSignupClosed       = errors.New("match is not open for availability responses")
	ErrInvalidSignupMode  = errors.New("invalid signup mode")
	ErrInvalidMatchStatus = errors.New("invalid match status")
	ErrInvalidResponse    = errors.New("invalid response status")
	ErrEmptyMessage       = errors.New("message must not be empty")
)

// Authentication/Authorization Errors
var (
	ErrUserEmailNotFound = &AuthenticationError{Message: "user email not found in context"}
	ErrNotAdmin          = &AuthorizationError{Message: "admin access required"}
	ErrNotTeamMember     = &AuthorizationError{Message: "user is not a member of this team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsRemote checks if an error is a RemoteError
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}

// NewValidationError creates a new ValidationError titled "Mangler"
func NewValidationError(field, message string) error {
	return &ValidationError{Title: TitleMissing, Field: field, Message: message}
}

// NewRemoteError wraps err as a RemoteError carrying its raw message
func NewRemoteError(op string, err error, steps []StepOutcome) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &RemoteError{Op: op, Message: msg, Steps: steps, Err: err}
}
