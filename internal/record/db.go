// Package record provides SQLite-based turn history recording: trade
// digests, region snapshots, decisions, and events, appended after every
// completed turn for later inspection.
package record

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/realm-sim/internal/engine"
)

// Recorder wraps a SQLite connection for turn history storage. It implements
// engine.Observer: subscribe it to a simulation and every turn is persisted.
type Recorder struct {
	conn *sqlx.DB
}

// Open opens or creates the history database at the given path.
func Open(path string) (*Recorder, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	rec := &Recorder{conn: conn}
	if err := rec.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return rec, nil
}

// Close closes the database connection.
func (rec *Recorder) Close() error {
	return rec.conn.Close()
}

func (rec *Recorder) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		turn INTEGER PRIMARY KEY,
		total_wealth INTEGER NOT NULL,
		total_production INTEGER NOT NULL,
		total_labor INTEGER NOT NULL,
		trades_executed INTEGER NOT NULL,
		avg_satisfaction REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		turn INTEGER NOT NULL,
		exporter TEXT NOT NULL,
		importer TEXT NOT NULL,
		resource TEXT NOT NULL,
		amount REAL NOT NULL,
		delivered REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS region_snapshots (
		turn INTEGER NOT NULL,
		name TEXT NOT NULL,
		nation TEXT NOT NULL,
		wealth INTEGER NOT NULL,
		production INTEGER NOT NULL,
		satisfaction REAL NOT NULL,
		labor INTEGER NOT NULL,
		capital_investment REAL NOT NULL,
		terrain TEXT NOT NULL,
		resources_json TEXT NOT NULL,
		PRIMARY KEY (turn, name)
	);

	CREATE TABLE IF NOT EXISTS decisions (
		id TEXT PRIMARY KEY,
		turn INTEGER NOT NULL,
		name TEXT NOT NULL,
		detail TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		turn INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_trades_turn ON trades(turn);
	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(turn);
	`
	_, err := rec.conn.Exec(schema)
	return err
}

// TurnCompleted implements engine.Observer. Persistence failures are logged,
// never propagated into the turn pipeline.
func (rec *Recorder) TurnCompleted(snap *engine.TurnSnapshot) {
	if err := rec.RecordTurn(snap); err != nil {
		slog.Error("turn recording failed", "turn", snap.Turn, "error", err)
	}
}

// RecordTurn appends one turn's digest, snapshots, and events atomically.
func (rec *Recorder) RecordTurn(snap *engine.TurnSnapshot) error {
	tx, err := rec.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO turns
		(turn, total_wealth, total_production, total_labor, trades_executed, avg_satisfaction)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Turn, snap.Stats.TotalWealth, snap.Stats.TotalProduction,
		snap.Stats.TotalLabor, snap.Stats.TradesExecuted, snap.Stats.AvgSatisfaction,
	)
	if err != nil {
		return fmt.Errorf("insert turn %d: %w", snap.Turn, err)
	}

	for _, trade := range snap.Trades {
		_, err := tx.Exec(`INSERT OR REPLACE INTO trades
			(id, turn, exporter, importer, resource, amount, delivered)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			trade.ID, snap.Turn, trade.Exporter, trade.Importer,
			trade.Resource, trade.Amount, trade.Delivered,
		)
		if err != nil {
			return fmt.Errorf("insert trade %s: %w", trade.ID, err)
		}
	}

	for _, r := range snap.Regions {
		resourcesJSON, _ := json.Marshal(r.Resources)
		_, err := tx.Exec(`INSERT OR REPLACE INTO region_snapshots
			(turn, name, nation, wealth, production, satisfaction, labor,
			 capital_investment, terrain, resources_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.Turn, r.Name, r.Nation, r.Wealth, r.Production,
			r.Satisfaction, r.Labor, r.CapitalInvestment, r.Terrain,
			string(resourcesJSON),
		)
		if err != nil {
			return fmt.Errorf("insert region snapshot %s: %w", r.Name, err)
		}
	}

	for _, d := range snap.Decisions {
		_, err := tx.Exec(`INSERT OR REPLACE INTO decisions (id, turn, name, detail)
			VALUES (?, ?, ?, ?)`,
			d.ID, d.Turn, d.Name, d.Detail,
		)
		if err != nil {
			return fmt.Errorf("insert decision %s: %w", d.ID, err)
		}
	}

	for _, e := range snap.Events {
		_, err := tx.Exec(
			"INSERT INTO events (turn, description, category) VALUES (?, ?, ?)",
			e.Turn, e.Description, e.Category,
		)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	return tx.Commit()
}

// RecentTrades returns the most recent trade transactions, newest turn first.
func (rec *Recorder) RecentTrades(limit int) ([]engine.TradeTransaction, error) {
	var trades []engine.TradeTransaction
	err := rec.conn.Select(&trades,
		"SELECT id, exporter, importer, resource, amount, delivered FROM trades ORDER BY turn DESC LIMIT ?",
		limit,
	)
	return trades, err
}

// RecentDecisions returns the most recent recorded decisions, newest first.
func (rec *Recorder) RecentDecisions(limit int) ([]engine.Decision, error) {
	var decisions []engine.Decision
	err := rec.conn.Select(&decisions,
		"SELECT id, turn, name, detail FROM decisions ORDER BY turn DESC LIMIT ?",
		limit,
	)
	return decisions, err
}

// RecentEvents returns the most recent events, newest first.
func (rec *Recorder) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := rec.conn.Select(&events,
		"SELECT turn, description, category FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}
