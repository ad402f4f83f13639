package adapters

import "database/sql"

// stdResult wraps standard library sql.Result to implement the DBResult
// interface; shared by the sql.DB and sqlx.DB adapters.
type stdResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
