package helpers

import "database/sql"

// GetNullFloat64 converts a float64 pointer to sql.NullFloat64.
// If the pointer is nil, returns an empty NullFloat64.
// Otherwise, returns a valid NullFloat64 with the pointer's value.
func GetNullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
