package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luxemarket/internal/domain"
	"luxemarket/internal/repos"
	"luxemarket/internal/services"
)

func loadCatalog(t *testing.T) *repos.CatalogRepo {
	t.Helper()
	c, err := repos.LoadCatalog()
	require.NoError(t, err)
	return c
}

func TestInventoryService_CheckAvailability(t *testing.T) {
	rq := require.New(t)
	svc := services.NewInventoryService(loadCatalog(t))

	a, err := svc.CheckAvailability(1, "Bob's Watches")
	rq.NoError(err)
	rq.Equal("IN_STOCK", a.Status)
	rq.Equal(6, a.Qty)

	a, err = svc.CheckAvailability(1, "Crown & Caliber")
	rq.NoError(err)
	rq.Equal("LOW_STOCK", a.Status)

	a, err = svc.CheckAvailability(2, "Vestiaire Collective")
	rq.NoError(err)
	rq.Equal("OUT_OF_STOCK", a.Status)
	rq.Zero(a.Qty)

	a, err = svc.CheckAvailability(5, "Kicks Crew")
	rq.NoError(err)
	rq.Equal("7-10 days", a.ETA)
}

func TestInventoryService_Unknown(t *testing.T) {
	rq := require.New(t)
	svc := services.NewInventoryService(loadCatalog(t))

	_, err := svc.CheckAvailability(1, "Nobody")
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(domain.SellerNotFound, code)

	_, err = svc.CheckAvailability(404, "GOAT")
	code, _ = domain.GetCode(err)
	rq.Equal(domain.ProductNotFound, code)
}

func TestPurchaseService_Initiate(t *testing.T) {
	rq := require.New(t)
	svc := services.NewPurchaseService(loadCatalog(t))

	p, o, err := svc.Initiate(5, "GOAT")
	rq.NoError(err)
	rq.Equal(5, p.ID)
	rq.Equal(425.0, o.Price)

	_, _, err = svc.Initiate(2, "Vestiaire Collective")
	code, _ := domain.GetCode(err)
	rq.Equal(domain.ValidationError, code)

	_, _, err = svc.Initiate(5, "Nobody")
	code, _ = domain.GetCode(err)
	rq.Equal(domain.SellerNotFound, code)
}

func TestFavoritesService(t *testing.T) {
	rq := require.New(t)
	db, err := repos.OpenDB(":memory:")
	rq.NoError(err)
	t.Cleanup(func() { db.Close() })

	svc := services.NewFavoritesService(repos.NewFavoritesRepo(db), loadCatalog(t))

	p, added, err := svc.Save("sid-1", 4)
	rq.NoError(err)
	rq.True(added)
	rq.Equal("Nautilus 5711/1A", p.Name)

	_, added, err = svc.Save("sid-1", 4)
	rq.NoError(err)
	rq.False(added)

	_, _, err = svc.Save("sid-1", 2)
	rq.NoError(err)

	_, _, err = svc.Save("sid-1", 999)
	code, _ := domain.GetCode(err)
	rq.Equal(domain.ProductNotFound, code)

	favs, err := svc.List("sid-1")
	rq.NoError(err)
	rq.Len(favs, 2)
	rq.Equal(4, favs[0].Product.ID)
	rq.Equal(2, favs[1].Product.ID)

	other, err := svc.List("sid-2")
	rq.NoError(err)
	rq.Empty(other)

	rq.NoError(svc.Unsave("sid-1", 4))
	favs, err = svc.List("sid-1")
	rq.NoError(err)
	rq.Len(favs, 1)
	rq.Equal(2, favs[0].Product.ID)
}
