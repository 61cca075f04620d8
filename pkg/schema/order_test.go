package schema

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedV1(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		vMarshal := OrderPlacedV1{
			OrderID: "testOrderID",
			UserID:  "testUserID",
			Items: []OrderItemV1{
				{
					ProductID: "testProductID1",
					Name:      "testName1",
					UnitPrice: 49.99,
					Quantity:  2,
				},
				{
					ProductID: "testProductID2",
					Name:      "testName2",
					UnitPrice: 15.5,
					Quantity:  1,
				},
			},
			TotalPrice:    115.48,
			PaymentMethod: "card",
			CreatedAt:     "2025-06-01T12:00:00Z",
		}

		var orderSchema avro.Schema

		require.NotPanics(t, func() {
			orderSchema = avro.MustParse(OrderPlacedSchemaTextV1)
		})

		data, err := avro.Marshal(orderSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal OrderPlacedV1
		err = avro.Unmarshal(orderSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Equal(t, vMarshal.OrderID, vUnmarshal.OrderID)
		assert.Equal(t, vMarshal.UserID, vUnmarshal.UserID)
		assert.Equal(t, vMarshal.TotalPrice, vUnmarshal.TotalPrice)
		assert.Equal(t, vMarshal.PaymentMethod, vUnmarshal.PaymentMethod)
		assert.Equal(t, vMarshal.CreatedAt, vUnmarshal.CreatedAt)

		require.Len(t, vUnmarshal.Items, len(vMarshal.Items))
		for i, v := range vUnmarshal.Items {
			assert.Equal(t, vMarshal.Items[i], v)
		}
	})

	t.Run("NilItems", func(t *testing.T) {
		vMarshal := OrderPlacedV1{
			OrderID:       "testOrderID",
			UserID:        "testUserID",
			Items:         nil,
			TotalPrice:    0,
			PaymentMethod: "cod",
			CreatedAt:     "2025-06-01T12:00:00Z",
		}

		orderSchema := avro.MustParse(OrderPlacedSchemaTextV1)

		data, err := avro.Marshal(orderSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal OrderPlacedV1
		err = avro.Unmarshal(orderSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Equal(t, vMarshal.OrderID, vUnmarshal.OrderID)
		assert.Equal(t, vMarshal.UserID, vUnmarshal.UserID)
		assert.Empty(t, vUnmarshal.Items)
	})
}
