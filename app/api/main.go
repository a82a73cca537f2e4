package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/bazaar-xyz/goapi/base/ctx"
	baseeth "github.com/bazaar-xyz/goapi/base/ethereum"
	"github.com/bazaar-xyz/goapi/base/log"
	bValidator "github.com/bazaar-xyz/goapi/base/validator"
	"github.com/bazaar-xyz/goapi/domain"
	mmiddleware "github.com/bazaar-xyz/goapi/middleware"
	"github.com/bazaar-xyz/goapi/service/chain"
	"github.com/bazaar-xyz/goapi/service/chain/contract"
	"github.com/bazaar-xyz/goapi/service/cryptocompare"
	coin_delivery "github.com/bazaar-xyz/goapi/stores/coin/delivery/http"
	hc_delivery "github.com/bazaar-xyz/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bazaar-xyz/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bazaar-xyz/goapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/bazaar-xyz/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/bazaar-xyz/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/bazaar-xyz/goapi/stores/marketplace/usecase"
	web_resource_repository "github.com/bazaar-xyz/goapi/stores/web_resource/repository"
	web_resource_usecase "github.com/bazaar-xyz/goapi/stores/web_resource/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	context.Info("init chain service")
	chainId := viper.GetInt32("network.chainId")
	rpcUrl := viper.GetString("network.rpcUrl")
	archiveRpcUrl := viper.GetString("network.archiveRpcUrl")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        map[int32]string{chainId: rpcUrl},
		ArchiveRpcUrls: map[int32]string{chainId: archiveRpcUrl},
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	logClient, err := ethclient.DialContext(context, rpcUrl)
	if err != nil {
		context.WithField("err", err).Panic("failed to dial log rpc")
	}
	throttledClient := baseeth.NewThrottledClient(logClient, viper.GetInt("network.rpcConcurrency"))

	marketplaceAddress := domain.Address(viper.GetString("marketplace.address")).ToLower()
	marketplaceContract := contract.NewMarketplace(chainService, chainId, string(marketplaceAddress))

	// init ipfs readers and writer
	ipfsGateway := viper.GetString("ipfs.gateway")
	ipfsTimeout := viper.GetDuration("ipfs.timeout")
	ipfsRetries := viper.GetInt("ipfs.retries")
	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.nodeApi"))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService, domain.ChainId(chainId))
	hc := hc_usecase.New(hcRepo)

	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		IpfsReader: web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, ipfsGateway, ipfsTimeout, ipfsRetries),
		IpfsWriter: web_resource_repository.NewIpfsNodeApiWriterRepo(ipfsShell, ipfsTimeout),
	})

	snapshotRepo := marketplace_repository.NewSnapshotRepo(&marketplace_repository.SnapshotRepoCfg{
		Contract:  marketplaceContract,
		ExistsTtl: viper.GetDuration("marketplace.existsTtl"),
	})
	eventFeedRepo := marketplace_repository.NewEventFeedRepo(&marketplace_repository.EventFeedRepoCfg{
		Client:     throttledClient,
		Address:    string(marketplaceAddress),
		EpochBlock: viper.GetUint64("marketplace.epochBlock"),
	})
	eventsource := marketplace_usecase.NewEventsourceUseCase(&marketplace_usecase.EventsourceCfg{
		Snapshot:           snapshotRepo,
		EventFeed:          eventFeedRepo,
		WebResource:        webResource,
		MarketplaceAddress: marketplaceAddress,
		IpfsGateway:        ipfsGateway,
		OfferWorkers:       viper.GetInt("marketplace.offerWorkers"),
	})

	cryptocompareClient := cryptocompare.NewClient(&cryptocompare.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("http.timeout"),
	})

	hc_delivery.New(e, hc)
	marketplace_delivery.New(e, eventsource)
	coin_delivery.New(e, cryptocompareClient)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
