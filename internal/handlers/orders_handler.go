package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gokulnath/order-service/internal/invoices"
	"github.com/gokulnath/order-service/internal/metrics"
	"github.com/gokulnath/order-service/internal/notify"
	"github.com/gokulnath/order-service/internal/orders"
	"github.com/gokulnath/order-service/internal/validation"
	"github.com/google/uuid"
)

// RegisterOrdersRoutes registers routes for the order API.
func RegisterOrdersRoutes(rg *gin.RouterGroup, cfg HandlerConfig) {
	v := validation.New()
	ordersStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	invoiceStore := invoices.NewStore(cfg.S3Client, cfg.S3PresignClient, cfg.InvoiceBucket, cfg.InvoiceURLTTL)
	publisher := notify.NewPublisher(cfg.SNSClient, cfg.TopicARN, cfg.Log)
	emitter := metrics.NewEmitter(cfg.CloudWatchClient, cfg.Log)

	rg.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		// Any failure in parsing, upload or persistence surfaces as a
		// generic server error on this path.
		customerName := c.PostForm("customerName")
		amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid_amount"})
			return
		}
		items, err := validation.ParseItems(c.PostForm("items"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid_items", "msg": err.Error()})
			return
		}

		req := validation.CreateOrderRequest{
			CustomerName: customerName,
			Amount:       amount,
			Items:        items,
		}
		if err := v.Struct(req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "validation_failed", "msg": err.Error()})
			return
		}

		fileHeader, err := c.FormFile("invoice")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing_invoice_file"})
			return
		}
		body, contentType, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read_invoice_failed", "detail": err.Error()})
			return
		}

		orderID := uuid.NewString()
		order := orders.Order{
			OrderID:      orderID,
			CustomerName: customerName,
			Amount:       amount,
			OrderDate:    time.Now().UTC().Format(time.RFC3339),
			Items:        validation.LineItems(items),
		}

		key := invoices.ObjectKey(orderID, fileHeader.Filename)
		if err := invoiceStore.Upload(ctx, key, body, contentType); err != nil {
			cfg.Log.Errorw("invoice upload failed", "order_id", orderID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice_upload_failed"})
			return
		}
		order.InvoiceKey = key

		if err := ordersStore.Put(ctx, order); err != nil {
			cfg.Log.Errorw("order persist failed", "order_id", orderID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_persist_failed"})
			return
		}

		// Best-effort side channels; neither may block or fail the response.
		publisher.OrderCreatedAsync(orderID, customerName, amount)
		emitter.OrderCreatedAsync(orderID)

		c.String(http.StatusOK, orderID)
	})

	rg.PUT("/orders/:id/invoice", func(c *gin.Context) {
		ctx := c.Request.Context()
		orderID := c.Param("id")

		existing, err := ordersStore.Get(ctx, orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_lookup_failed"})
			return
		}
		if existing == nil {
			c.Status(http.StatusNotFound)
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_invoice_file"})
			return
		}
		body, contentType, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read_invoice_failed", "detail": err.Error()})
			return
		}

		key := invoices.ObjectKey(orderID, fileHeader.Filename)
		if err := invoiceStore.Upload(ctx, key, body, contentType); err != nil {
			cfg.Log.Errorw("invoice upload failed", "order_id", orderID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice_upload_failed"})
			return
		}

		existing.InvoiceKey = key
		if err := ordersStore.Put(ctx, *existing); err != nil {
			cfg.Log.Errorw("order update failed", "order_id", orderID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_persist_failed"})
			return
		}

		c.String(http.StatusOK, "Invoice uploaded")
	})

	rg.GET("/orders", func(c *gin.Context) {
		all, err := ordersStore.ScanAll(c.Request.Context())
		if err != nil {
			cfg.Log.Errorw("order scan failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_scan_failed"})
			return
		}
		if all == nil {
			all = []orders.Order{}
		}
		c.JSON(http.StatusOK, all)
	})

	rg.GET("/orders/:id", func(c *gin.Context) {
		order, err := ordersStore.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_lookup_failed"})
			return
		}
		if order == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, order)
	})

	rg.GET("/orders/:id/invoice-url", func(c *gin.Context) {
		ctx := c.Request.Context()

		order, err := ordersStore.Get(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_lookup_failed"})
			return
		}
		if order == nil || order.InvoiceKey == "" {
			c.Status(http.StatusNotFound)
			return
		}
		if !invoices.ValidKey(order.InvoiceKey) {
			c.String(http.StatusInternalServerError, "Invalid invoice key format")
			return
		}

		url, err := invoiceStore.DownloadURL(ctx, order.InvoiceKey)
		if err != nil {
			cfg.Log.Errorw("presign failed", "order_id", order.OrderID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "presign_failed"})
			return
		}
		c.String(http.StatusOK, url)
	})
}

func readUpload(fh *multipart.FileHeader) (body []byte, contentType string, err error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	body, err = io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return body, fh.Header.Get("Content-Type"), nil
}
