package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/realm-sim/internal/api"
	"github.com/talgya/realm-sim/internal/engine"
	"github.com/talgya/realm-sim/internal/record"
)

var (
	runInterval time.Duration
	runPort     int
	runDBPath   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation continuously with the observer API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sim, err := buildSimulation(cfg)
		if err != nil {
			return err
		}

		// Turn history recorder.
		if runDBPath != "" {
			rec, err := openRecorder(runDBPath)
			if err != nil {
				return fmt.Errorf("open recorder: %w", err)
			}
			defer rec.Close()
			sim.Subscribe(rec)
			slog.Info("turn recorder enabled", "path", runDBPath)
		}

		// Observer API with websocket push.
		hub := api.NewHub()
		go hub.Run()
		server := &api.Server{Hub: hub, Port: runPort}
		sim.Subscribe(server)
		server.Start()

		sim.Subscribe(turnLogger{})

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		slog.Info("simulation running", "interval", runInterval.String(), "port", runPort)
		ticker := time.NewTicker(runInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := sim.AdvanceTurn(); err != nil {
					// The next tick is the retry point; no partial-turn rollback.
					slog.Error("turn failed", "turn", sim.Turn, "error", err)
				}
			case sig := <-sigCh:
				slog.Info("received signal, shutting down", "signal", sig, "turn", sim.Turn)
				return nil
			}
		}
	},
}

// openRecorder creates the history database directory and opens the recorder.
func openRecorder(path string) (*record.Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	return record.Open(path)
}

func init() {
	runCmd.Flags().DurationVar(&runInterval, "interval", 2*time.Second, "time between turns")
	runCmd.Flags().IntVar(&runPort, "port", 8080, "observer API port")
	runCmd.Flags().StringVar(&runDBPath, "db", "data/history.db", "turn history database path (empty disables)")
}

// turnLogger logs a per-turn report in daily-report style.
type turnLogger struct{}

func (turnLogger) TurnCompleted(snap *engine.TurnSnapshot) {
	slog.Info("turn report",
		"turn", snap.Turn,
		"total_wealth", humanize.Comma(snap.Stats.TotalWealth),
		"total_production", humanize.Comma(snap.Stats.TotalProduction),
		"total_labor", humanize.Comma(int64(snap.Stats.TotalLabor)),
		"trades", snap.Stats.TradesExecuted,
		"avg_satisfaction", fmt.Sprintf("%.3f", snap.Stats.AvgSatisfaction),
	)
}
