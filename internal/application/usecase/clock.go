package usecase

import "time"

// now marca de tiempo con la precisión que guarda PostgreSQL (microsegundos).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
