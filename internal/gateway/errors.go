package gateway

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"neuralpulse/internal/domain"
)

// PostgreSQL error codes the gateway maps to domain kinds. Repositories never
// see driver-specific codes.
const (
	pgUniqueViolation  = "23505"
	pgCheckViolation   = "23514"
	pgCannotConnectNow = "57P03"
	pgTooManyConns     = "53300"
)

// classifyErr translates driver errors into the domain taxonomy. Errors
// outside the taxonomy pass through unchanged.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return fmt.Errorf("%w (constraint %s)", domain.ErrConflict, pgErr.ConstraintName)
		case strings.HasPrefix(pgErr.Code, "08"), // connection exception class
			pgErr.Code == pgCannotConnectNow,
			pgErr.Code == pgTooManyConns:
			return fmt.Errorf("%w: %s", domain.ErrTransient, pgErr.Message)
		}
		return err
	}

	if pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}

	return err
}
