package sqlerr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/deppfellow/item-service/internal/errs"
)

// closedHandleMessages are returned as plain errors by database/sql and
// pgxpool once the handle has been closed.
var closedHandleMessages = []string{
	"sql: database is closed",
	"closed pool",
}

// ErrCode reports the mapped Code for an error that was already converted
// into *Error, and Other otherwise.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertSQLiteError converts a modernc SQLite error into *Error.
//
// SQLite reports the failing column only inside the message
// ("NOT NULL constraint failed: items.name"), so table and column are
// parsed from it when present.
func ConvertSQLiteError(src *msqlite.Error) *Error {
	code := mapSQLiteCode(src.Code())
	sqlErr := &Error{
		Code:         code,
		Severity:     SeverityError,
		DatabaseCode: fmt.Sprintf("SQLITE_%d", src.Code()),
		Message:      src.Error(),
		driverErr:    src,
	}

	if code.Kind() == KindIntegrity {
		if m := sqliteConstraintTarget.FindStringSubmatch(src.Error()); len(m) == 3 {
			sqlErr.TableName = m[1]
			sqlErr.ColumnName = m[2]
		}
	}

	return sqlErr
}

var sqliteConstraintTarget = regexp.MustCompile(`constraint failed: (\w+)\.(\w+)`)

func mapSQLiteCode(code int) Code {
	switch code {
	case sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
		return NotNullViolation
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
		return CheckViolation
	}

	// Extended result codes keep the primary code in the low byte.
	switch code & 0xff {
	case sqlite3lib.SQLITE_CONSTRAINT:
		return IntegrityViolation
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return DatabaseLocked
	case sqlite3lib.SQLITE_IOERR, sqlite3lib.SQLITE_CORRUPT, sqlite3lib.SQLITE_FULL,
		sqlite3lib.SQLITE_CANTOPEN, sqlite3lib.SQLITE_NOTADB, sqlite3lib.SQLITE_READONLY,
		sqlite3lib.SQLITE_PROTOCOL:
		return SystemError
	case sqlite3lib.SQLITE_ERROR:
		// "no such table" and other statement level failures
		return OperationalError
	}

	return Other
}

// Classify reports whether err is an integrity violation, an operational
// failure of the storage backend, or something else.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}

	if code := ErrCode(err); code != Other {
		return code.Kind()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code).Kind()
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return mapSQLiteCode(sqliteErr.Code()).Kind()
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		pgconn.Timeout(err),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded):
		return KindOperational
	}

	message := err.Error()
	for _, fragment := range closedHandleMessages {
		if strings.Contains(message, fragment) {
			return KindOperational
		}
	}

	return KindOther
}

// getEntityName infers an entity name from table/column data.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case.
//
//	"first_name" -> "First Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column name from a unique
// constraint name. Supported conventions are "unique_<table>_<column>" and
// "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyConstraint.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

var uniqueKeyConstraint = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// describeIntegrityError produces a readable description of an integrity
// violation.
func describeIntegrityError(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("the referenced %s does not exist", entityName)

	case UniqueViolation:
		column := sqlErr.ColumnName
		if column == "" {
			column = extractColumnForUniqueViolation(sqlErr.ConstraintName)
		}
		if column != "" {
			return fmt.Sprintf("a %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("a %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("the %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("the %s value does not meet required conditions", fieldName)
		}
		return "one or more values do not meet required conditions"

	default:
		return sqlErr.Message
	}
}

func normalize(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return ConvertSQLiteError(sqliteErr)
	}

	return nil
}

// HandleError converts a low-level error into an application-level error.
//
//   - *errs.HTTPError is returned unchanged.
//   - ErrNoRows becomes a 404.
//   - Integrity violations become 500 "Unexpected error: Database integrity error: ...".
//   - Operational failures become 500 "Internal server error: ...".
//   - Anything else becomes 500 "Unexpected error: ...".
//
// When expose is false the 500 carries only the generic status text.
func HandleError(err error, expose bool) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	if !expose {
		return errs.NewInternalServerError()
	}

	switch Classify(err) {
	case KindIntegrity:
		description := err.Error()
		if sqlErr := normalize(err); sqlErr != nil {
			description = describeIntegrityError(sqlErr)
		}
		return errs.NewInternalServerErrorWithMessage("Unexpected error: Database integrity error: " + description)

	case KindOperational:
		return errs.NewInternalServerErrorWithMessage("Internal server error: " + err.Error())

	default:
		return errs.NewInternalServerErrorWithMessage("Unexpected error: " + err.Error())
	}
}

// StatusOf returns the HTTP status HandleError would produce.
func StatusOf(err error) int {
	var httpErr *errs.HTTPError
	if errors.As(HandleError(err, false), &httpErr) {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}
