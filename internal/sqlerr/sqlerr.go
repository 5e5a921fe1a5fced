// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the PostgreSQL and SQLite drivers,
// sorts them into integrity violations, operational failures and
// everything else, and converts them into HTTP errors for the client.
package sqlerr

import "fmt"

// Code is a driver independent name for a database error condition.
type Code string

const (
	Other Code = "other"

	// Integrity violations.
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	IntegrityViolation  Code = "integrity_violation"

	// Operational failures: the backend is unreachable, overloaded or
	// rejected the statement for reasons unrelated to the data.
	ConnectionException   Code = "connection_exception"
	InsufficientResources Code = "insufficient_resources"
	OperatorIntervention  Code = "operator_intervention"
	SystemError           Code = "system_error"
	TransactionRollback   Code = "transaction_rollback"
	DatabaseLocked        Code = "database_locked"
	OperationalError      Code = "operational_error"
)

// Kind groups codes by how the HTTP layer reports them.
type Kind int

const (
	KindOther Kind = iota
	KindIntegrity
	KindOperational
)

func (k Kind) String() string {
	switch k {
	case KindIntegrity:
		return "integrity"
	case KindOperational:
		return "operational"
	default:
		return "other"
	}
}

// Kind returns the group a code belongs to.
func (c Code) Kind() Kind {
	switch c {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation,
		CheckViolation, ExclusionViolation, IntegrityViolation:
		return KindIntegrity
	case ConnectionException, InsufficientResources, OperatorIntervention,
		SystemError, TransactionRollback, DatabaseLocked, OperationalError:
		return KindOperational
	default:
		return KindOther
	}
}

// Severity mirrors the PostgreSQL message severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is the normalized form of a driver error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (pe *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", pe.Severity, pe.DatabaseCode, pe.Message)
}

func (pe *Error) Unwrap() error {
	return pe.driverErr
}

// MapCode maps a PostgreSQL SQLSTATE to a Code. Exact conditions are
// checked first, then the two character class.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	}

	if len(sqlState) < 2 {
		return Other
	}

	switch sqlState[:2] {
	case "23":
		return IntegrityViolation
	case "08":
		return ConnectionException
	case "53":
		return InsufficientResources
	case "57":
		return OperatorIntervention
	case "58":
		return SystemError
	case "40":
		return TransactionRollback
	case "42":
		// undefined table, syntax errors and friends
		return OperationalError
	}

	return Other
}

// MapSeverity maps a PostgreSQL severity string.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}
