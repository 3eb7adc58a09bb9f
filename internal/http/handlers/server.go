package handlers

import (
	"go.uber.org/zap"

	"github.com/ball-buddies/storefront/internal/client"
	"github.com/ball-buddies/storefront/internal/fetch"
	"github.com/ball-buddies/storefront/internal/models"
	"github.com/ball-buddies/storefront/internal/session"
)

var (
	catalog     *client.Catalog
	guard       *session.Guard
	shopFetcher *fetch.Fetcher[models.Buddy]
	logger      = zap.NewNop()
)

func SetCatalog(c *client.Catalog) {
	catalog = c
}

func SetGuard(g *session.Guard) {
	guard = g
}

func SetShopFetcher(f *fetch.Fetcher[models.Buddy]) {
	shopFetcher = f
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
