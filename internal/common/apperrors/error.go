// Package apperrors provides chained errors for the command line tool. An
// Error acts as a template: New and Msg derive errors that still match the
// template with errors.Is, and Err/MsgErr attach causes that also match.
package apperrors

// Error defines the interface for application errors. All methods return
// Error to support method chaining.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // creates a new error using current as template
	Msg(msg string) Error                  // creates a new error with message and wraps original
	MsgErr(msg string, err ...error) Error // creates error with message and wraps extra errors
	Err(err ...error) Error                // attaches additional errors to current error
	SetStatusCode(int) Error               // records the HTTP status behind the error
	StatusCode() int                       // returns the recorded status, 0 if none
	ErrorAll() string                      // returns full message including wrapped errors
	UnwrapAll() []error                    // returns all wrapped errors
}
