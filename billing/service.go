package billing

import (
	"context"
	"fmt"
	"time"

	"encore.dev"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/facebookgo/clock"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/dugiahuy/session-billing/billing/business/session"
	"github.com/dugiahuy/session-billing/billing/business/wallet"
	"github.com/dugiahuy/session-billing/billing/domain"
	"github.com/dugiahuy/session-billing/billing/pricing"
	"github.com/dugiahuy/session-billing/billing/repository"
	"github.com/dugiahuy/session-billing/billing/safety"
	"github.com/dugiahuy/session-billing/billing/workflow"
)

var sessionBillingDB = sqldb.NewDatabase("session_billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	// TemporalHost is the host:port of the Temporal frontend. Empty means the local default.
	TemporalHost string
	// WatchdogGrace is how long a session may go without a tick, e.g. "3m".
	WatchdogGrace string
}

var (
	validate  = validator.New()
	envName   = encore.Meta().Environment.Name
	taskQueue = envName + "-session-watchdog"
)

//encore:service
type Service struct {
	business      session.Business
	wallet        wallet.Business
	catalog       *pricing.Catalog
	denylist      *safety.Denylist
	temporal      client.Client
	worker        worker.Worker
	watchdogGrace time.Duration
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](sessionBillingDB)
	repo := repository.NewRepository(pgxdb)

	snapshot, err := pricing.Default()
	if err != nil {
		return nil, fmt.Errorf("load rate snapshot: %w", err)
	}
	rlog.Info("Loaded rate snapshot", "version", snapshot.Version(), "platform_account_id", snapshot.PlatformAccountID())

	catalog := pricing.NewCatalog(snapshot)
	denylist := safety.NewDenylist()

	stateMachine := domain.NewSessionStateMachine(pgxdb, repo.Sessions, repo.Charges)
	walletBusiness := wallet.NewWalletBusiness(repo.Accounts)
	sessionBusiness := session.NewSessionBusiness(
		stateMachine,
		repo.Sessions,
		repo.Charges,
		walletBusiness,
		catalog,
		denylist,
		clock.New(),
	)

	grace, err := watchdogGrace(secrets.WatchdogGrace)
	if err != nil {
		return nil, err
	}

	hostPort := secrets.TemporalHost
	if hostPort == "" {
		hostPort = client.DefaultHostPort
	}
	c, err := client.Dial(client.Options{HostPort: hostPort})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.SessionWatchdog)
	w.RegisterActivity(workflow.EndSessionActivity)
	workflow.SetActivityDependencies(sessionBusiness)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}
	rlog.Info("Temporal worker started", "task_queue", taskQueue, "watchdog_grace", grace)

	return &Service{
		business:      sessionBusiness,
		wallet:        walletBusiness,
		catalog:       catalog,
		denylist:      denylist,
		temporal:      c,
		worker:        w,
		watchdogGrace: grace,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}

func watchdogGrace(raw string) (time.Duration, error) {
	if raw == "" {
		return workflow.DefaultGrace, nil
	}
	grace, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse watchdog grace %q: %w", raw, err)
	}
	if grace < time.Minute {
		return 0, fmt.Errorf("watchdog grace %s is shorter than one billing minute", grace)
	}
	return grace, nil
}
