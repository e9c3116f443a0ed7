// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (regions, districts, attractions, navigation frames)
// and contracts (interfaces) only.
package domain
