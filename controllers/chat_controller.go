package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amelia-reyes/boutique-api/models"
	"github.com/amelia-reyes/boutique-api/services"
)

// ChatRequest is the shared request body of both chat entry points
type ChatRequest struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// Chat handles POST /api/chat. Its response envelope is intent-specific:
// "find products" answers with a bare product array, the other intents with
// an object carrying a message plus structured fields. The sibling endpoint
// below keeps a uniform {reply, products} envelope; the two shapes are
// preserved for the two existing frontends.
func Chat(chat *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" || req.UserID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message and user_id are required"})
			return
		}

		result, err := chat.Dispatch(c.Request.Context(), req.UserID, req.Message)
		if err != nil {
			respondChatError(c, err)
			return
		}

		body, logged := chatEnvelope(result)
		if err := chat.LogMessage(req.UserID, req.Message, logged); err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// ChatMessages handles POST /api/chat/api/messages with the uniform
// {reply, products} envelope.
func ChatMessages(chat *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" || req.UserID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid message and user_id required"})
			return
		}

		result, err := chat.Dispatch(c.Request.Context(), req.UserID, req.Message)
		if err != nil {
			respondChatError(c, err)
			return
		}

		reply := replySentence(result)
		products := []models.Product{}
		if result.Intent == services.IntentFindProducts {
			products = result.Products
		}

		if err := chat.LogMessage(req.UserID, req.Message, reply); err != nil {
			respondChatError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply, "products": products})
	}
}

func respondChatError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	// Downstream detail is echoed to the caller, matching observed behavior.
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Chatbot failed", "details": err.Error()})
}

// chatEnvelope renders the intent-specific body for POST /api/chat together
// with the response text recorded in the messages audit log.
func chatEnvelope(r *services.ChatResult) (interface{}, string) {
	greet := func(format string, args ...interface{}) string {
		return fmt.Sprintf("Hello %s, %s", r.UserName, fmt.Sprintf(format, args...))
	}

	switch r.Intent {
	case services.IntentFindProducts:
		if len(r.Products) == 0 {
			msg := greet("no products found in the store.")
			return gin.H{"message": msg}, msg
		}
		// The array response has no message field; log the listing sentence.
		return r.Products, productListing(r)

	case services.IntentOrderStatus:
		if r.InvalidID {
			msg := greet("please provide a valid product ID (e.g., \"Check Order Status 123\").")
			return gin.H{"message": msg}, msg
		}
		if r.NotFound {
			msg := greet("no order status found for product ID %d.", r.ProductID)
			return gin.H{"message": msg}, msg
		}
		msg := greet("order status for product ID %d: %s", r.ProductID, r.Status)
		return gin.H{"product_id": r.ProductID, "status": r.Status, "message": msg}, msg

	case services.IntentProcessRefund:
		if r.InvalidID {
			msg := greet("please provide a valid product ID (e.g., \"Process Refund 123\").")
			return gin.H{"message": msg}, msg
		}
		if r.NotFound {
			msg := greet("no product found for ID %d.", r.ProductID)
			return gin.H{"message": msg}, msg
		}
		msg := greet("refund processed for %s (ID %d) worth $%s.", r.Product.Name, r.ProductID, price(r.Product.Price))
		return gin.H{
			"product_id":    r.ProductID,
			"product_name":  r.Product.Name,
			"refund_amount": r.Product.Price,
			"message":       msg,
		}, msg

	case services.IntentStorePolicies:
		msg := greet("store policies: %s", strings.Join(r.Policies, "; "))
		return gin.H{"policies": r.Policies, "message": msg}, msg

	case services.IntentOrderHistory:
		if len(r.Orders) == 0 {
			msg := greet("no order history found.")
			return gin.H{"message": msg}, msg
		}
		orders := make([]gin.H, 0, len(r.Orders))
		for _, o := range r.Orders {
			orders = append(orders, gin.H{
				"product_name": o.ProductName,
				"price":        o.Price,
				"order_date":   o.OrderDate,
			})
		}
		msg := greet("your order history: %s", historyListing(r.Orders))
		return gin.H{"orders": orders, "message": msg}, msg

	case services.IntentProductDetails:
		if r.InvalidID {
			msg := greet("please provide a valid product ID (e.g., \"Find Product Details 123\").")
			return gin.H{"message": msg}, msg
		}
		if r.NotFound {
			msg := greet("no product found for ID %d.", r.ProductID)
			return gin.H{"message": msg}, msg
		}
		msg := greet("details for %s (ID %d): %s, Price: $%s", r.Product.Name, r.ProductID, r.Product.Details, price(r.Product.Price))
		return gin.H{"product": r.Product, "message": msg}, msg

	case services.IntentOrderProduct:
		if r.InvalidID {
			msg := greet("please provide a product ID or name (e.g., \"Order Product 1\" or \"Order Product Floral Maxi Dress\").")
			return gin.H{"message": msg}, msg
		}
		if r.NotFound {
			msg := greet("sorry, product \"%s\" not found. Try \"Find Products\" to see available items.", r.Identifier)
			return gin.H{"message": msg}, msg
		}
		msg := greet("ordered %s (ID %d) for $%s.", r.Product.Name, r.Product.ID, price(r.Product.Price))
		return gin.H{"product": r.Product, "message": msg}, msg

	default:
		return gin.H{"message": r.Reply}, r.Reply
	}
}

// replySentence renders the single conversational reply used by the
// {reply, products} endpoint.
func replySentence(r *services.ChatResult) string {
	greet := func(format string, args ...interface{}) string {
		return fmt.Sprintf("Hello %s, %s", r.UserName, fmt.Sprintf(format, args...))
	}

	switch r.Intent {
	case services.IntentFindProducts:
		if len(r.Products) == 0 {
			return greet("no products found in the store.")
		}
		return greet("here are the available products:\n%s", productLines(r.Products))

	case services.IntentOrderStatus:
		if r.InvalidID {
			return greet("please provide a valid product ID (e.g., \"Check Order Status 123\").")
		}
		if r.NotFound {
			return greet("no order status found for product ID %d.", r.ProductID)
		}
		return greet("order status for product ID %d: %s", r.ProductID, r.Status)

	case services.IntentProcessRefund:
		if r.InvalidID {
			return greet("please provide a valid product ID (e.g., \"Process Refund 123\").")
		}
		if r.NotFound {
			return greet("no product found for ID %d.", r.ProductID)
		}
		return greet("refund processed for product ID %d worth $%s.", r.ProductID, price(r.Product.Price))

	case services.IntentStorePolicies:
		return greet("store policies: %s", strings.Join(r.Policies, "; "))

	case services.IntentOrderHistory:
		if len(r.Orders) == 0 {
			return greet("your order history: No order history found.")
		}
		return greet("your order history: %s", historyListing(r.Orders))

	case services.IntentProductDetails:
		if r.InvalidID {
			return greet("please provide a valid product ID (e.g., \"Find Product Details 123\").")
		}
		if r.NotFound {
			return greet("no product found for ID %d.", r.ProductID)
		}
		return greet("details for %s (ID %d): %s, Price: $%s", r.Product.Name, r.ProductID, r.Product.Details, price(r.Product.Price))

	case services.IntentOrderProduct:
		if r.InvalidID {
			return greet("please provide a product ID or name (e.g., \"Order Product 1\" or \"Order Product Floral Maxi Dress\").")
		}
		if r.NotFound {
			return greet("sorry, product \"%s\" not found. Try \"Find Products\" to see available items.", r.Identifier)
		}
		return greet("ordered %s (ID %d) for $%s.", r.Product.Name, r.Product.ID, price(r.Product.Price))

	default:
		// The fallback responder already includes the greeting.
		return r.Reply
	}
}

func productListing(r *services.ChatResult) string {
	return fmt.Sprintf("Hello %s, here are the available products:\n%s", r.UserName, productLines(r.Products))
}

func productLines(products []models.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%d - %s", p.ID, p.Name))
	}
	return strings.Join(lines, "\n")
}

func historyListing(orders []models.OrderHistory) string {
	items := make([]string, 0, len(orders))
	for _, o := range orders {
		items = append(items, fmt.Sprintf("%s ($%s) on %s", o.ProductName, price(o.Price), o.OrderDate.Format(time.RFC3339)))
	}
	return strings.Join(items, "; ")
}

// price formats a price the way it reads in chat: no trailing zeros, no
// fixed precision (59.99 stays 59.99, 50 stays 50).
func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
