package dataset

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// SourceConfig holds connection details for database-backed sources.
type SourceConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string // "disable", "require"
	Path     string // SQLite file path, or ":memory:"
}

// Source loads the dataset relation from somewhere other than a CSV
// file. Implementations connect once and load once; the returned
// Dataset is as immutable as one read from disk.
type Source interface {
	Connect(config SourceConfig) error
	Close() error
	Load(table string) (*Dataset, error)
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PostgresSource loads records from a PostgreSQL table.
type PostgresSource struct {
	db *sql.DB
}

func (p *PostgresSource) Connect(config SourceConfig) error {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	p.db = db
	return nil
}

func (p *PostgresSource) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *PostgresSource) Load(table string) (*Dataset, error) {
	return loadTable(p.db, table)
}

// SQLiteSource loads records from a SQLite database file. Useful for
// local snapshots and for tests, which can run against ":memory:".
type SQLiteSource struct {
	db *sql.DB
}

func (s *SQLiteSource) Connect(config SourceConfig) error {
	if strings.TrimSpace(config.Path) == "" {
		return fmt.Errorf("sqlite path is required")
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteSource) Load(table string) (*Dataset, error) {
	return loadTable(s.db, table)
}

// loadTable selects the thirteen required columns from a table. The
// table name is validated against an identifier whitelist before being
// interpolated.
func loadTable(db *sql.DB, table string) (*Dataset, error) {
	if db == nil {
		return nil, fmt.Errorf("source is not connected")
	}
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(RequiredColumns, ", "), table)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.Year,
			&rec.JobTitle,
			&rec.Industry,
			&rec.SalaryUSD,
			&rec.GrowthRate,
			&rec.JobOpenings,
			&rec.GenderDiversityIndex,
			&rec.ExperienceLevel,
			&rec.AIAdoptionLevel,
			&rec.SkillComplexity,
			&rec.Location,
			&rec.RemoteWork,
			&rec.CompanySize,
		); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return New(records), nil
}
