// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeRateLimitExceeded,
//	    "provider quota exhausted",
//	    apiErr,
//	    map[string]interface{}{
//	        "model":  "gemini-1.5-flash",
//	        "status": 429,
//	    },
//	)
package errors
