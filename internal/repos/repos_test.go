package repos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luxemarket/internal/domain"
	"luxemarket/internal/repos"
)

func TestLoadCatalog(t *testing.T) {
	rq := require.New(t)

	r, err := repos.LoadCatalog()
	rq.NoError(err)
	rq.Equal(5, r.Len())

	p, err := r.Get(3)
	rq.NoError(err)
	rq.Equal("Phantom VIII", p.Name)
	rq.Equal(domain.RarityUltraRare, p.Rarity)
	rq.NotNil(p.Year)
	rq.Equal(2023, *p.Year)
	rq.Len(p.Offers, 2)
	rq.NotNil(p.Offers[1].OriginalPrice)
	rq.Equal(520000.0, *p.Offers[1].OriginalPrice)

	shoes, err := r.Get(5)
	rq.NoError(err)
	rq.True(shoes.HasSize("US 9"))
	rq.Len(shoes.Offers, 6)
}

func TestCatalogGetUnknown(t *testing.T) {
	rq := require.New(t)
	r, err := repos.LoadCatalog()
	rq.NoError(err)

	_, err = r.Get(999)
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(domain.ProductNotFound, code)
}

func TestCatalogReadsAreCopies(t *testing.T) {
	rq := require.New(t)
	r, err := repos.LoadCatalog()
	rq.NoError(err)

	list := r.List()
	list[0].Offers[0].Price = 1
	list[0].Name = "changed"

	again, err := r.Get(list[0].ID)
	rq.NoError(err)
	rq.NotEqual("changed", again.Name)
	rq.NotEqual(1.0, again.Offers[0].Price)
}

func TestParseCatalogRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"non-numeric rating": `
products:
  - {id: 1, name: A, brand: B, category: art, rarity: rare, authenticity: verified,
     prices: [{seller: {name: S, rating: high}, price: 10}]}`,
		"missing price": `
products:
  - {id: 1, name: A, brand: B, category: art, rarity: rare, authenticity: verified,
     prices: [{seller: {name: S, rating: 4}}]}`,
		"bad rarity": `
products:
  - {id: 1, name: A, brand: B, category: art, rarity: legendary, authenticity: verified}`,
		"duplicate id": `
products:
  - {id: 1, name: A, brand: B, category: art, rarity: rare, authenticity: verified}
  - {id: 1, name: C, brand: D, category: art, rarity: rare, authenticity: verified}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := repos.ParseCatalog([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestFavoritesRepo(t *testing.T) {
	rq := require.New(t)
	db, err := repos.OpenDB(":memory:")
	rq.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	r := repos.NewFavoritesRepo(db)

	id, err := r.Ensure("sid-1")
	rq.NoError(err)
	again, err := r.Ensure("sid-1")
	rq.NoError(err)
	rq.Equal(id, again)

	added, err := r.Add(id, 4)
	rq.NoError(err)
	rq.True(added)
	added, err = r.Add(id, 4)
	rq.NoError(err)
	rq.False(added)
	_, err = r.Add(id, 1)
	rq.NoError(err)

	rows, err := r.List(id)
	rq.NoError(err)
	rq.Len(rows, 2)
	rq.Equal(4, rows[0].ProductID)

	rq.NoError(r.Remove(id, 4))
	rows, err = r.List(id)
	rq.NoError(err)
	rq.Len(rows, 1)
	rq.Equal(1, rows[0].ProductID)

	other, err := r.Ensure("sid-2")
	rq.NoError(err)
	rows, err = r.List(other)
	rq.NoError(err)
	rq.Empty(rows)
}

func TestFavoritesRepoEnsureSurfacesReadErrors(t *testing.T) {
	rq := require.New(t)
	db, err := repos.OpenDB(":memory:")
	rq.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	r := repos.NewFavoritesRepo(db)

	// A NULL id cannot be scanned; that is a broken row, not a missing list.
	_, err = db.Exec(`INSERT INTO favorite_lists(id, session_id) VALUES(NULL, 'sid-broken')`)
	rq.NoError(err)

	id, err := r.Ensure("sid-broken")
	rq.Error(err)
	rq.Empty(id)

	rq.NoError(db.Close())
	_, err = r.Ensure("sid-1")
	rq.Error(err)
}
