package orders

// LineItem is a (product, quantity, unit price) tuple inside an order.
// Items have no identity of their own; duplicates are allowed.
type LineItem struct {
	ProductID string  `json:"productId" dynamodbav:"product_id"`
	Quantity  int     `json:"quantity" dynamodbav:"quantity"`
	UnitPrice float64 `json:"unitPrice" dynamodbav:"unit_price"`
}

// Order represents the item stored in the orders DynamoDB table.
type Order struct {
	OrderID      string     `json:"orderID" dynamodbav:"order_id"` // PK
	CustomerName string     `json:"customerName" dynamodbav:"customer_name"`
	Amount       float64    `json:"amount" dynamodbav:"amount"`
	InvoiceKey   string     `json:"invoiceUrl,omitempty" dynamodbav:"invoice_key,omitempty"` // S3 key, empty until attached
	OrderDate    string     `json:"orderDate" dynamodbav:"order_date"`                       // ISO-8601, set at creation
	Items        []LineItem `json:"items" dynamodbav:"items"`
}
