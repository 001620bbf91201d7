package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brkuhgk/Nestara/internal/notifier"
	"github.com/brkuhgk/Nestara/internal/setup"
	"github.com/brkuhgk/Nestara/internal/worker/core"
	"github.com/brkuhgk/Nestara/internal/worker/rating"
	"github.com/urfave/cli/v3"
)

// WorkerLogDir specifies where worker log files are stored.
const WorkerLogDir = "logs/worker_logs"

// LifecycleWorker ages out topics and applies rating deltas.
const LifecycleWorker = "lifecycle"

func main() {
	cmd := &cli.Command{
		Name:  "worker",
		Usage: "Start the Nestara background workers",
		Commands: []*cli.Command{
			{
				Name:  LifecycleWorker,
				Usage: "Start the topic lifecycle worker",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return runLifecycleWorker(ctx)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runLifecycleWorker(ctx context.Context) error {
	app, err := setup.InitializeApp(ctx, WorkerLogDir)
	if err != nil {
		return err
	}
	defer app.Cleanup(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reporter := core.NewStatusReporter(app.StatusClient, LifecycleWorker, app.Logger)
	reporter.Start(ctx)
	defer reporter.Stop()

	notify := notifier.New(app.DB.Model().Notification(), app.Logger)

	workerCfg := app.Config.Worker
	worker := rating.New(
		app.DB.Model().Topic(),
		app.DB.Service().Rating(),
		notify,
		rating.Config{
			TopicMaxAgeDays: workerCfg.Rating.TopicMaxAgeDays,
			BatchSize:       workerCfg.Rating.BatchSize,
			ConflictPenalty: workerCfg.Rating.ConflictPenalty,
			MentionReward:   workerCfg.Rating.MentionReward,
		},
		app.Logger,
	)

	scheduler := core.NewScheduler(
		worker,
		time.Duration(workerCfg.Scheduler.IntervalMinutes)*time.Minute,
		time.Duration(workerCfg.Scheduler.FailureBackoffMinutes)*time.Minute,
		reporter,
		app.Logger,
	)
	scheduler.Start(ctx)

	log.Printf("Started %s worker", LifecycleWorker)

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Logger.Info("Shutting down worker...")
	cancel()
	scheduler.Stop()
	app.Logger.Info("Worker gracefully stopped")

	return nil
}
