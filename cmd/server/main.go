package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/queries"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/catalog_feed"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/combination_filter"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/price_list"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/related_products"
	"github.com/murkotick/catalog-engine/internal/app/catalog/repo"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/generate_variants"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/relate_products"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/set_product_sale"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/update_product"
	"github.com/murkotick/catalog-engine/internal/app/catalog/usecases/update_variant_price"
	"github.com/murkotick/catalog-engine/internal/config"
	"github.com/murkotick/catalog-engine/internal/logging"
	"github.com/murkotick/catalog-engine/internal/pkg/clock"
	"github.com/murkotick/catalog-engine/internal/pkg/combination"
	committer "github.com/murkotick/catalog-engine/internal/pkg/committer"
	"github.com/murkotick/catalog-engine/internal/pkg/exchange"
	grpccatalog "github.com/murkotick/catalog-engine/internal/transport/grpc/catalog"
	"github.com/murkotick/catalog-engine/internal/transport/http/ops"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(cfg.Logging)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		logging.Fatal().Err(err).Str("database", cfg.Spanner.Database).Msg("spanner.NewClient")
	}
	defer client.Close()

	clk := clock.RealClock{}
	productRepo := repo.NewProductRepo()
	variantRepo := repo.NewVariantRepo()
	relationRepo := repo.NewRelationRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)

	converter := exchange.NewConverter(exchange.NewSpannerRateSource(client), "exchange_rates", cfg.Exchange)
	currencies := price_list.NewExchangeCurrencies(converter, cfg.Catalog.MainCurrency)

	// CQRS wiring
	gen := generate_variants.NewInteractor(variantRepo, outboxRepo, cm, readModel, combination.NewCartesian(), clk, cfg.Catalog.MaxCombinations)
	cmds := grpccatalog.Commands{
		SetSale:          set_product_sale.NewInteractor(productRepo, outboxRepo, cm, readModel, clk),
		Update:           update_product.NewInteractor(productRepo, cm, readModel, clk),
		UpdateVariant:    update_variant_price.NewInteractor(variantRepo, outboxRepo, cm, readModel, clk),
		Relate:           relate_products.NewInteractor(relationRepo, outboxRepo, cm, readModel, readModel, clk),
		GenerateVariants: gen,
	}
	qrys := grpccatalog.Queries{
		Get:               get_product.NewHandler(readModel),
		Feed:              catalog_feed.NewHandler(readModel, readModel, cfg.Catalog.MaxFeedLimit),
		CombinationFilter: combination_filter.NewHandler(readModel),
		Prices:            price_list.NewHandler(readModel, readModel, currencies),
		Related:           related_products.NewHandler(readModel, readModel, cfg.Catalog.RelatedLimit, cfg.Catalog.MaxRelatedLimit),
	}
	h := grpccatalog.NewHandler(cmds, qrys, cfg.Catalog.DefaultFeedLimit)

	srv, healthSrv := grpccatalog.NewServer(h, cfg.GRPC.Reflection)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		logging.Fatal().Err(err).Str("addr", cfg.GRPC.Addr).Msg("listen")
	}

	go func() {
		logging.Info().Str("addr", cfg.GRPC.Addr).Msg("gRPC server listening")
		if err := srv.Serve(lis); err != nil {
			logging.Error().Err(err).Msg("grpc serve")
			cancel()
		}
	}()

	var opsSrv *http.Server
	if cfg.Ops.Addr != "" {
		opsSrv = &http.Server{
			Addr: cfg.Ops.Addr,
			Handler: ops.NewRouter(map[string]ops.Check{
				"spanner": spannerCheck(client),
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logging.Info().Str("addr", cfg.Ops.Addr).Msg("ops server listening")
			if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error().Err(err).Msg("ops serve")
				cancel()
			}
		}()
	}

	<-ctx.Done()
	logging.Info().Msg("shutdown signal received")
	healthSrv.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
	defer shutdownCancel()

	if opsSrv != nil {
		if err := opsSrv.Shutdown(shutdownCtx); err != nil {
			logging.Warn().Err(err).Msg("ops shutdown")
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		srv.Stop()
	}

	logging.Info().Msg("server stopped")
}

func spannerCheck(client *spanner.Client) ops.Check {
	return func(ctx context.Context) error {
		iter := client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
		defer iter.Stop()
		_, err := iter.Next()
		return err
	}
}
