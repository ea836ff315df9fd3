package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/martpe-org/martpeApp-sub003/models"
)

func TestFingerprint_SameCountsDifferentContentsAreEqual(t *testing.T) {
	a := []models.Cart{
		{Store: models.StoreInfo{ID: "s1"}, Items: []models.CartItem{{ID: "x", Qty: 2}}},
	}
	b := []models.Cart{
		{Store: models.StoreInfo{ID: "s1"}, Items: []models.CartItem{{ID: "y", Qty: 9}}},
	}
	assert.Equal(t, FingerprintOf(a), FingerprintOf(b))
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := []models.Cart{
		{Store: models.StoreInfo{ID: "s1"}, Items: make([]models.CartItem, 1)},
		{Store: models.StoreInfo{ID: "s2"}, Items: make([]models.CartItem, 2)},
	}
	b := []models.Cart{a[1], a[0]}
	assert.Equal(t, FingerprintOf(a), FingerprintOf(b))
}

func TestFingerprint_LineCountChangesDigest(t *testing.T) {
	a := []models.Cart{{Store: models.StoreInfo{ID: "s1"}, Items: make([]models.CartItem, 1)}}
	b := []models.Cart{{Store: models.StoreInfo{ID: "s1"}, Items: make([]models.CartItem, 2)}}
	assert.NotEqual(t, FingerprintOf(a), FingerprintOf(b))
}
