package service

import (
	"encoding/json"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products(pairs ...string) entity.Products {
	p := entity.Products{}
	for i := 0; i+1 < len(pairs); i += 2 {
		p[pairs[i]] = json.RawMessage(pairs[i+1])
	}

	return p
}

func TestMergeProducts_PreferIncoming(t *testing.T) {
	stored := products("A", "1", "B", "2")
	incoming := products("A", "5", "C", "3")

	merged := MergeProducts(stored, incoming, PreferIncoming)

	assert.Equal(t, products("A", "5", "B", "2", "C", "3"), merged)
}

func TestMergeProducts_PreferStored(t *testing.T) {
	stored := products("A", "1", "B", "2")
	incoming := products("A", "5", "C", "3")

	merged := MergeProducts(stored, incoming, PreferStored)

	assert.Equal(t, products("A", "1", "B", "2", "C", "3"), merged)
}

func TestMergeProducts_DoesNotMutateInputs(t *testing.T) {
	stored := products("A", "1")
	incoming := products("A", "5", "B", "2")

	_ = MergeProducts(stored, incoming, PreferIncoming)

	assert.Equal(t, products("A", "1"), stored)
	assert.Equal(t, products("A", "5", "B", "2"), incoming)
}

func TestMergeProducts_Idempotent(t *testing.T) {
	stored := products("A", "1", "B", "2")
	incoming := products("B", "7", "C", "3")

	for _, precedence := range []MergePrecedence{PreferIncoming, PreferStored} {
		t.Run(precedence.String(), func(t *testing.T) {
			once := MergeProducts(stored, incoming, precedence)
			twice := MergeProducts(once, incoming, precedence)
			assert.Equal(t, once, twice)
		})
	}
}

func TestMergeProducts_NilSides(t *testing.T) {
	assert.Equal(t, products("A", "1"), MergeProducts(nil, products("A", "1"), PreferStored))
	assert.Equal(t, products("A", "1"), MergeProducts(products("A", "1"), nil, PreferIncoming))
	assert.Empty(t, MergeProducts(nil, nil, PreferIncoming))
}

func TestParseMergePrecedence(t *testing.T) {
	p, err := ParseMergePrecedence("incoming")
	require.NoError(t, err)
	assert.Equal(t, PreferIncoming, p)

	p, err = ParseMergePrecedence(" Stored ")
	require.NoError(t, err)
	assert.Equal(t, PreferStored, p)

	_, err = ParseMergePrecedence("sum")
	assert.Error(t, err)
}
