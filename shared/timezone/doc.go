// Package timezone pins the clock the service reasons in. Check-in dates,
// hold expiry and audit timestamps all come from Now, and the date a stay is
// compared against ("is this check-in in the past") comes from Today.
//
// The zone is read from APP_TIMEZONE once, when the package is imported.
package timezone
