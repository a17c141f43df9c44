package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUnknownRole is returned when a role label is not in the enumeration.
	ErrUnknownRole = errors.New("unknown role")
	// ErrCategoryInUse is returned when deleting a category that still has articles.
	ErrCategoryInUse = errors.New("category still has articles")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrArticleNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ARTICLE_NOT_FOUND")
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrTagNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TAG_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrUnknownRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_ROLE")
	case ErrCategoryInUse:
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_IN_USE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
