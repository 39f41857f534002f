package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation en PostgreSQL.
const uniqueViolationCode = "23505"

// isUniqueViolation indica si el error viene de un constraint único (los folios
// de ventas y devoluciones dependen de esta detección para el reintento).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
