package sqlstore

import "time"

// nowUTC is the timestamp source for rows written by the stores. Microsecond
// precision keeps PostgreSQL and SQLite round trips identical.
var nowUTC = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
