package handlers

import (
	"log/slog"

	"github.com/jmoiron/sqlx"

	"luxemarket/internal/config"
	"luxemarket/internal/metrics"
	"luxemarket/internal/repos"
	"luxemarket/internal/search"
	"luxemarket/internal/services"
)

type Deps struct {
	HomeHandler        *HomeHandler
	MarketplaceHandler *MarketplaceHandler
	ProductHandler     *ProductHandler
	FavoritesHandler   *FavoritesHandler
	InventoryHandler   *InventoryHandler
	APIHandler         *APIHandler

	Notices *services.Notices
	Runner  *search.Runner
}

func NewDeps(db *sqlx.DB, cfg config.Config, cat *repos.CatalogRepo, m *metrics.Metrics, logger *slog.Logger) *Deps {
	favRepo := repos.NewFavoritesRepo(db)

	runner := search.NewRunner(cfg.SearchDelay,
		search.WithLogger(logger),
		search.WithMetrics(m),
		search.WithJobTTL(cfg.JobTTL),
	)
	notices := services.NewNotices(cfg.SessionTTL, m)

	catalogSvc := services.NewCatalogService(cat)
	marketSvc := services.NewMarketplaceService(catalogSvc, runner, notices, cfg.SessionTTL, logger)
	favSvc := services.NewFavoritesService(favRepo, cat)
	invSvc := services.NewInventoryService(cat)
	purchaseSvc := services.NewPurchaseService(cat)

	return &Deps{
		HomeHandler:        &HomeHandler{Catalog: catalogSvc},
		MarketplaceHandler: &MarketplaceHandler{Market: marketSvc},
		ProductHandler:     &ProductHandler{Catalog: catalogSvc, Purchases: purchaseSvc, Notices: notices},
		FavoritesHandler:   &FavoritesHandler{Favs: favSvc, Notices: notices, Metrics: m},
		InventoryHandler:   &InventoryHandler{Inv: invSvc},
		APIHandler:         &APIHandler{Catalog: catalogSvc, Runner: runner},
		Notices:            notices,
		Runner:             runner,
	}
}
