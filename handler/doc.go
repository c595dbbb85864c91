// Package handler turns request handlers that return a Response into
// http.HandlerFuncs and renders every response in one JSON envelope:
//
//	{"data": ..., "error": {"code": ..., "message": ..., "details": {...}}}
//
// Errors are mapped to statuses in one place. Validation failures become
// 422 responses with per-field details. Binding failures become 400. Other
// failures go through apperror.Classify and apperror.HTTPStatus.
package handler
