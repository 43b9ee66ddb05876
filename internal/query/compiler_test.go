package query

import (
	"net/url"
	"testing"

	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCompileComparisonTokens(t *testing.T) {
	params := url.Values{}
	params.Set("price[gte]", "100")
	params.Set("price[lte]", "500")

	pred, err := Compile(params)
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"price": bson.M{"$gte": float64(100), "$lte": float64(500)},
	}, pred.ToBSON())
}

func TestCompileExactMatch(t *testing.T) {
	params := url.Values{}
	params.Set("brand", "Vitaco")
	params.Set("stock", "5")

	pred, err := Compile(params)
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"brand": "Vitaco",
		"stock": float64(5),
	}, pred.ToBSON())
}

func TestCompileSkipsControlParams(t *testing.T) {
	params := url.Values{}
	params.Set("keyword", "serum")
	params.Set("page", "2")
	params.Set("limit", "5")

	pred, err := Compile(params)
	require.NoError(t, err)

	assert.Empty(t, pred.Conditions)
	assert.Equal(t, bson.M{}, pred.ToBSON())
}

func TestCompileEmptyInputMatchesAll(t *testing.T) {
	pred, err := Compile(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, bson.M{}, pred.ToBSON())
}

func TestCompileDropsUnknownTokens(t *testing.T) {
	params := url.Values{}
	params.Set("price[like]", "100")

	pred, err := Compile(params)
	require.NoError(t, err)

	assert.Empty(t, pred.Conditions)
}

func TestCompileDropsEmptyValues(t *testing.T) {
	params := url.Values{}
	params.Set("brand", "")

	pred, err := Compile(params)
	require.NoError(t, err)

	assert.Empty(t, pred.Conditions)
}

func TestCompileMalformedKeys(t *testing.T) {
	malformed := []string{"price[gte", "price]gte[", "[gte]", "price[]", "price[g[te]"}
	for _, key := range malformed {
		params := url.Values{}
		params.Set(key, "100")

		_, err := Compile(params)
		assert.ErrorIs(t, err, errs.ErrQueryCompile, key)
	}
}

func TestCompileMixedFilters(t *testing.T) {
	params := url.Values{}
	params.Set("category", "Serum")
	params.Set("price[gt]", "10")

	pred, err := Compile(params)
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"category": "Serum",
		"price":    bson.M{"$gt": float64(10)},
	}, pred.ToBSON())
}
