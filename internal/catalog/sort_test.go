package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luxemarket/internal/catalog"
	"luxemarket/internal/domain"
)

func TestSortPriceLow(t *testing.T) {
	rq := require.New(t)

	got, err := catalog.Sort(fixture(), catalog.SortPriceLow)
	rq.NoError(err)
	rq.Equal([]int{2, 1, 4, 3}, ids(got))

	prev := 0.0
	for _, p := range got {
		m, ok := catalog.MinPrice(p)
		rq.True(ok)
		rq.GreaterOrEqual(m, prev)
		prev = m
	}
}

func TestSortPriceHighUsesMinimumOffer(t *testing.T) {
	rq := require.New(t)
	products := []domain.Product{
		{ID: 1, Offers: []domain.Offer{offer("a", 100), offer("b", 900)}},
		{ID: 2, Offers: []domain.Offer{offer("c", 200), offer("d", 300)}},
	}

	// By maximum offer ID 1 would lead; by minimum offer ID 2 does.
	got, err := catalog.Sort(products, catalog.SortPriceHigh)
	rq.NoError(err)
	rq.Equal([]int{2, 1}, ids(got))
}

func TestSortRarity(t *testing.T) {
	rq := require.New(t)

	got, err := catalog.Sort(fixture(), catalog.SortRarity)
	rq.NoError(err)
	rq.Len(got, 4)
	rq.ElementsMatch([]int{3, 4}, ids(got[:2]))
	rq.Equal(1, got[2].ID)
	rq.Equal(2, got[3].ID)

	prev := 4
	for _, p := range got {
		r, err := p.Rarity.Rank()
		rq.NoError(err)
		rq.LessOrEqual(r, prev)
		prev = r
	}
}

func TestSortRarityRejectsUnknownValue(t *testing.T) {
	rq := require.New(t)
	products := fixture()
	products[2].Rarity = "mythic"

	_, err := catalog.Sort(products, catalog.SortRarity)
	var de *domain.DataError
	rq.ErrorAs(err, &de)
	rq.Equal(3, de.ProductID)
	rq.Equal("mythic", de.Value)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rq := require.New(t)
	products := fixture()

	for _, key := range []catalog.SortKey{catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRarity} {
		_, err := catalog.Sort(products, key)
		rq.NoError(err)
		rq.Equal([]int{1, 2, 3, 4}, ids(products))
	}
}

func TestSortEmptyInput(t *testing.T) {
	rq := require.New(t)

	for _, key := range []catalog.SortKey{catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRarity, "unknown"} {
		got, err := catalog.Sort(nil, key)
		rq.NoError(err)
		rq.Empty(got)
	}
}

func TestSortUnpricedProductsLast(t *testing.T) {
	rq := require.New(t)
	products := []domain.Product{
		{ID: 1},
		{ID: 2, Offers: []domain.Offer{offer("a", 50)}},
		{ID: 3, Offers: []domain.Offer{offer("b", 10)}},
	}

	low, err := catalog.Sort(products, catalog.SortPriceLow)
	rq.NoError(err)
	rq.Equal([]int{3, 2, 1}, ids(low))

	high, err := catalog.Sort(products, catalog.SortPriceHigh)
	rq.NoError(err)
	rq.Equal([]int{2, 3, 1}, ids(high))
}

func TestSortTiesKeepEveryElement(t *testing.T) {
	rq := require.New(t)
	products := []domain.Product{
		{ID: 1, Offers: []domain.Offer{offer("a", 10)}},
		{ID: 2, Offers: []domain.Offer{offer("b", 10)}},
		{ID: 3, Offers: []domain.Offer{offer("c", 10)}},
	}

	got, err := catalog.Sort(products, catalog.SortPriceHigh)
	rq.NoError(err)
	rq.ElementsMatch([]int{1, 2, 3}, ids(got))
}

func TestParseSortKey(t *testing.T) {
	rq := require.New(t)

	k, ok := catalog.ParseSortKey("rarity")
	rq.True(ok)
	rq.Equal(catalog.SortRarity, k)

	_, ok = catalog.ParseSortKey("Rarity")
	rq.False(ok)
}

// Filter by category then sort, as the marketplace does.
func TestWatchesByPriceLow(t *testing.T) {
	rq := require.New(t)

	got, err := catalog.Sort(catalog.Filter(fixture(), catalog.Criteria{Category: "watches"}), catalog.SortPriceLow)
	rq.NoError(err)
	rq.Equal([]int{1, 4}, ids(got))
	m0, _ := catalog.MinPrice(got[0])
	m1, _ := catalog.MinPrice(got[1])
	rq.Equal(13500.0, m0)
	rq.Equal(125000.0, m1)
}
