package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/craftlink/marketplace/internal/adapter/mailer"
	"github.com/craftlink/marketplace/internal/app"
	"github.com/craftlink/marketplace/internal/config"
	"github.com/craftlink/marketplace/internal/domain/repository"
	"github.com/craftlink/marketplace/internal/storage/postgres"
	"github.com/craftlink/marketplace/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		UploadDir:         t.TempDir(),
		MaxUploadBytes:    1 << 20,
		NotifyQueueSize:   1,
		NotifyWorkers:     1,
		NotifySendTimeout: time.Millisecond,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orders, rfqs := test.NewLedgerStubs()
	catalog := test.NewCatalogStub()

	var facade *app.MarketplaceFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(fx.Annotate(orders, fx.As(new(repository.BulkOrderRepository)))),
			fx.Replace(fx.Annotate(rfqs, fx.As(new(repository.RFQRepository)))),
			fx.Replace(fx.Annotate(catalog, fx.As(new(repository.CatalogRepository)))),
			fx.Replace(fx.Annotate(mailer.NewLogSender(logger), fx.As(new(mailer.Sender)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected marketplace facade instance")
	}
}
