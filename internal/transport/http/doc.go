// Package http contains the chi HTTP handlers: statement upload and
// analysis, PDF report download, exchange company listing, and health.
// Handlers validate and translate; all computation lives in the service
// and engine layers.
package http
