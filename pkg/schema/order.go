package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "orders",
	"name": "order_placed",
	"fields" : [
		{"name": "order_id", "type": "string"},
		{"name": "user_id", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "product_id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "unit_price", "type": "double"},
					{"name": "quantity", "type": "long"}
				]
			}
		}},
		{"name": "total_price", "type": "double"},
		{"name": "payment_method", "type": "string"},
		{"name": "created_at", "type": "string"}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID       string        `avro:"order_id"`
		UserID        string        `avro:"user_id"`
		Items         []OrderItemV1 `avro:"items"`
		TotalPrice    float64       `avro:"total_price"`
		PaymentMethod string        `avro:"payment_method"`
		CreatedAt     string        `avro:"created_at"`
	}

	OrderItemV1 struct {
		ProductID string  `avro:"product_id"`
		Name      string  `avro:"name"`
		UnitPrice float64 `avro:"unit_price"`
		Quantity  int     `avro:"quantity"`
	}
)
