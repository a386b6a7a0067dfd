// Package errors provides structured error handling with error codes,
// message formatting, and metadata support. Every error carries a Code
// that maps onto an HTTP status, so handlers never inspect error text.
package errors
