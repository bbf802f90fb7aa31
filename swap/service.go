package swap

import (
	"context"
	"fmt"
	"net/http"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/dugiahuy/pave-swap/swap/business/settlement"
	"github.com/dugiahuy/pave-swap/swap/domain"
	"github.com/dugiahuy/pave-swap/swap/feed"
	"github.com/dugiahuy/pave-swap/swap/store"
	"github.com/dugiahuy/pave-swap/swap/workflow"
)

const taskQueue = "swap-settlement"

var validate = validator.New()

var swapDB = sqldb.NewDatabase("swap", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	business settlement.Business
	temporal client.Client
	worker   worker.Worker
	sessions *sessionRegistry
	prices   *priceBoard
}

func initService() (*Service, error) {
	s, err := loadSettings(cfg)
	if err != nil {
		return nil, err
	}

	pgxdb := sqldb.Driver(swapDB)
	repo := store.NewStore(pgxdb)
	business := settlement.NewSettlementBusiness(repo.Settlements)
	rlog.Info("Initializing Store", "max_sessions", s.MaxSessions)

	temporalClient, err := client.Dial(client.Options{
		HostPort:  s.TemporalHostPort,
		Namespace: s.TemporalNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(business)
	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.SettleSwap)
	w.RegisterActivity(workflow.RecordSettlementActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	fetcher := instrumentedFetcher{Fetcher: feed.NewClient(s.FeedURL, &http.Client{Timeout: s.FetchTimeout})}
	settler := &workflowSettler{temporal: temporalClient, delay: s.SettlementDelay}

	sharedPrices = newPriceBoard(fetcher, s.FetchTimeout)

	sessions := newSessionRegistry(s.MaxSessions, func(id string) *domain.ConversionStateMachine {
		return domain.NewConversionStateMachine(id, fetcher, settler, domain.Options{
			DefaultFrom:       s.DefaultFrom,
			DefaultTo:         s.DefaultTo,
			FetchTimeout:      s.FetchTimeout,
			SettlementTimeout: s.SettlementTimeout,
		})
	})

	return &Service{
		business: business,
		temporal: temporalClient,
		worker:   w,
		sessions: sessions,
		prices:   sharedPrices,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
