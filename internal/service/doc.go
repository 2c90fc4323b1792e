// Package service contains the application use cases for customers,
// categories and books. It orchestrates the stores defined in internal/store
// and enforces the rules that span more than one of them.
//
// Services translate store failures into *domain.Error values so that the
// API layer can map them to status codes without knowing about the database.
// Multi-step check-then-write operations run inside store.RunInTransaction;
// the schema's unique and foreign key constraints back those checks, and
// their violations are classified the same way as the checks themselves.
//
// The service layer depends on domain types and store interfaces only, never
// on a concrete database implementation.
package service
