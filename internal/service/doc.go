// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// defined in internal/store to fulfill the registration, login, profile and
// book catalog features.
//
// Services receive their dependencies through constructor injection and never
// depend on a specific store implementation. Expected failures surface as
// sentinel errors (ErrUserExists, ErrInvalidCredentials, store not-found
// errors, domain validation errors) that the API layer maps to HTTP statuses.
package service
