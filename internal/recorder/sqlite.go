package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/phinics77/back-tracking/internal/model"
)

// SQLiteRecorder persists evaluation runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block watch-mode writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			current_price REAL,
			investment    REAL,
			result_count  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS period_results (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            INTEGER NOT NULL REFERENCES runs(id),
			label             TEXT,
			baseline_price    REAL,
			implied_shares    REAL,
			current_value     REAL,
			profit            REAL,
			profit_rate       REAL,
			is_profit         INTEGER,
			used_year_average INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_period_run ON period_results(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run header and one row per period result in a
// single transaction.
func (r *SQLiteRecorder) RecordRun(rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO runs
		(timestamp, symbol, current_price, investment, result_count)
		VALUES (?,?,?,?,?)`,
		rep.GeneratedAt.Unix(), rep.Symbol, rep.CurrentPrice, rep.Investment, len(rep.Results),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("run id: %w", err)
	}

	for _, pr := range rep.Results {
		if _, err := tx.Exec(`INSERT INTO period_results
			(run_id, label, baseline_price, implied_shares, current_value,
			 profit, profit_rate, is_profit, used_year_average)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			runID, pr.Label, pr.BaselinePrice, pr.ImpliedShares, pr.CurrentValue,
			pr.Profit, pr.ProfitRatePercent, pr.IsProfit, pr.UsedYearAverage,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert period result: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
