// Package domain contains the core business entities of the library
// (customers, categories and books), their partial-update shapes, and the
// error taxonomy shared by every layer of the application. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
