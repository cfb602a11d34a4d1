// Package timezone provides calendar-day helpers for booking dates.
//
// Usage Examples:
//
//  1. Parsing a CLI date in the app timezone:
//     d, err := timezone.ParseDate("2023-12-25")
//
//  2. Building a date in code:
//     d := timezone.Date(2023, time.December, 25)
//
//  3. Comparing bookings by calendar day:
//     timezone.DayKey(a) == timezone.DayKey(b)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
