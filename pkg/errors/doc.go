// Package errors provides structured error types shared by the ML service
// packages and mapped to HTTP responses by pkg/server.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    `"age" must be numeric`,
//	    parseErr,
//	    map[string]any{
//	        "field": "age",
//	    },
//	)
package errors
