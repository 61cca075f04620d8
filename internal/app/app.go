package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mkhalid/poshak/config"
	"github.com/mkhalid/poshak/internal/adapter/auth"
	"github.com/mkhalid/poshak/internal/adapter/genai"
	"github.com/mkhalid/poshak/internal/adapter/httphandler"
	"github.com/mkhalid/poshak/internal/adapter/kafka"
	"github.com/mkhalid/poshak/internal/adapter/kvstore"
	"github.com/mkhalid/poshak/internal/adapter/storage"
	"github.com/mkhalid/poshak/internal/core/port"
	"github.com/mkhalid/poshak/internal/core/service"
	"github.com/mkhalid/poshak/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type outbound struct {
	sqlDB      storage.SQLDB
	products   storage.ProductsRepository
	orders     storage.OrdersRepository
	users      storage.UsersRepository
	sessions   kvstore.Sessions
	ordersProd kafka.OrdersProducer
	composer   genai.Client
	tokens     auth.TokenManager
	hasher     auth.BcryptHasher
}

type coreService struct {
	catalog    port.CatalogViewer
	carts      port.CartOperator
	wishlists  port.WishlistOperator
	currencies port.CurrencySelector
	checkout   port.CheckoutProcessor
	sellers    port.SellerCatalog
	auth       port.Authenticator
	stylist    port.Stylist
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	orderSerde schema.Serde
	outbound   outbound
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	orderSS := app.cfg.Broker.OrderEventsTopic + "-value"
	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		app.ctx,
		schema.SubjectOpt(orderSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.orderSerde = orderSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	sqlDB, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.sqlDB = sqlDB
	app.outbound.products = storage.NewProductsRepository(sqlDB)
	app.outbound.orders = storage.NewOrdersRepository(sqlDB)
	app.outbound.users = storage.NewUsersRepository(sqlDB)

	sessions, err := kvstore.Open(app.cfg.SessionsDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.sessions = sessions

	ordersProducer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.OrderEventsTopic,
		),
		kafka.ProducerEncoderOpt(app.orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.ordersProd = ordersProducer

	app.outbound.composer = genai.New(
		app.cfg.GenAI.Endpoint, app.cfg.GenAI.APIKey,
	)
	app.outbound.tokens = auth.NewTokenManager(
		app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL,
	)
	app.outbound.hasher = auth.NewBcryptHasher()
}

func (app *App) initCoreService() {
	ob := app.outbound

	app.service.catalog = service.NewCatalog(ob.products)
	app.service.carts = service.NewCarts(ob.products, ob.sessions)
	app.service.wishlists = service.NewWishlists(ob.products, ob.sessions)
	app.service.currencies = service.NewCurrencies(ob.sessions)
	app.service.checkout = service.NewCheckout(
		ob.sessions, ob.orders, ob.sessions, ob.ordersProd,
	)
	app.service.sellers = service.NewSellers(ob.products, ob.products)
	app.service.auth = service.NewAuth(ob.users, ob.hasher, ob.tokens)
	app.service.stylist = service.NewStylist(
		ob.composer, ob.products, ob.sessions,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()

	mw := httphandler.NewAuthMiddleware(app.outbound.tokens)

	httphandler.RegisterCatalog(
		mux, mw.Optional, app.service.catalog, app.service.currencies,
	)
	httphandler.RegisterCart(
		mux, mw.Require, app.service.carts, app.service.currencies,
	)
	httphandler.RegisterWishlist(
		mux, mw.Require, app.service.wishlists, app.service.currencies,
	)
	httphandler.RegisterCurrency(mux, mw.Require, app.service.currencies)
	httphandler.RegisterCheckout(
		mux, mw.Require, app.service.checkout, app.service.currencies,
	)
	httphandler.RegisterSeller(mux, mw.RequireSeller, app.service.sellers)
	httphandler.RegisterAuth(mux, app.service.auth)
	httphandler.RegisterStylist(
		mux, mw.Require, mw.RequireSeller, app.service.stylist,
	)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.ordersProd.Close()
	app.outbound.sessions.Close()
	app.outbound.sqlDB.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
