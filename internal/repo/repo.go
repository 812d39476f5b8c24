package repo

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Repository resolves a county directly to its ASHRAE zone code.
type Repository interface {
	ZoneByCounty(ctx context.Context, state, county string) (string, bool, error)
}

type PostgresCountyRepository struct {
	db *sqlx.DB
}

func NewPostgresCountyDB(db *sqlx.DB) *PostgresCountyRepository {
	return &PostgresCountyRepository{db: db}
}

func (r *PostgresCountyRepository) ZoneByCounty(ctx context.Context, state, county string) (string, bool, error) {
	var zone string
	query := "SELECT climate_zone FROM county_climate_zones WHERE upper(state) = upper($1) AND lower(county) = lower($2) LIMIT 1"
	err := r.db.GetContext(ctx, &zone, query, strings.TrimSpace(state), strings.TrimSpace(county))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return zone, true, nil
}

type countyKey struct{ state, county string }

// CSVCountyRepository is the file-backed variant, read from a
// state,county,climate_zone CSV.
type CSVCountyRepository struct {
	zones map[countyKey]string
}

func LoadCSVCountyDB(path string) (*CSVCountyRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := ReadCSVCountyDB(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return r, nil
}

func ReadCSVCountyDB(r io.Reader) (*CSVCountyRepository, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty county table")
	}
	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range []string{"state", "county", "climate_zone"} {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}
	repo := &CSVCountyRepository{zones: make(map[countyKey]string, len(rows)-1)}
	for _, row := range rows[1:] {
		k := key(row[index["state"]], row[index["county"]])
		if _, dup := repo.zones[k]; !dup {
			repo.zones[k] = strings.TrimSpace(row[index["climate_zone"]])
		}
	}
	return repo, nil
}

func (r *CSVCountyRepository) ZoneByCounty(_ context.Context, state, county string) (string, bool, error) {
	zone, ok := r.zones[key(state, county)]
	return zone, ok, nil
}

// Zones lists every zone code in the table.
func (r *CSVCountyRepository) Zones() []string {
	out := make([]string, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	return out
}

func key(state, county string) countyKey {
	return countyKey{strings.ToUpper(strings.TrimSpace(state)), strings.ToLower(strings.TrimSpace(county))}
}

func InitDB(connStr string) (*sqlx.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("db config: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}
