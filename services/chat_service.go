package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amelia-reyes/boutique-api/models"
)

// Intent is a recognized category of chat command
type Intent string

const (
	IntentFindProducts   Intent = "find_products"
	IntentOrderStatus    Intent = "check_order_status"
	IntentProcessRefund  Intent = "process_refund"
	IntentStorePolicies  Intent = "store_policies"
	IntentOrderHistory   Intent = "order_history"
	IntentProductDetails Intent = "find_product_details"
	IntentOrderProduct   Intent = "order_product"
	IntentFallback       Intent = "fallback"
)

// ErrUserNotFound is returned when the chat user id does not resolve
var ErrUserNotFound = errors.New("user not found")

// RefundAccountNo is the placeholder account credited on chat refunds
const RefundAccountNo = "123456789"

// CancelledStatus is the order status written alongside a refund
const CancelledStatus = "order cancelled"

var (
	orderStatusPattern    = regexp.MustCompile(`(?i)check order status (\d+)`)
	refundPattern         = regexp.MustCompile(`(?i)process refund (\d+)`)
	productDetailsPattern = regexp.MustCompile(`(?i)find product details (\d+)`)
	orderProductPattern   = regexp.MustCompile(`(?i)order product (\d+|\w.*)`)
	numericPattern        = regexp.MustCompile(`^\d+$`)
)

// ChatResult is the structured outcome of dispatching one chat message.
// The HTTP layer renders it into the endpoint-specific envelope and reply
// sentence; only the fallback intent carries ready-made text.
type ChatResult struct {
	Intent   Intent
	UserName string

	Products   []models.Product      // find products
	Product    *models.Product       // refund / product details / order product
	Orders     []models.OrderHistory // order history
	Policies   []string              // store policies, never empty
	ProductID  uint                  // parsed id for status/refund/details
	Status     string                // order status text when found
	Identifier string                // raw order-product identifier
	InvalidID  bool                  // prefix matched but no usable id followed
	NotFound   bool                  // referenced entity does not exist
	Reply      string                // fallback responder output
}

// intentRule pairs a matcher against the normalized message with the handler
// that executes the command. Rules are evaluated in order and the first
// match wins; there is no scoring or ambiguity resolution.
type intentRule struct {
	intent Intent
	match  func(normalized string) bool
	handle func(ctx context.Context, user *models.User, raw string) (*ChatResult, error)
}

// ChatService classifies free-text chat commands and executes the matching
// store operation, delegating everything unrecognized to the fallback
// responder.
type ChatService struct {
	db        *gorm.DB
	responder CompletionService
	rules     []intentRule
}

// NewChatService creates a new chat dispatcher
func NewChatService(db *gorm.DB, responder CompletionService) *ChatService {
	s := &ChatService{db: db, responder: responder}
	s.rules = []intentRule{
		{IntentFindProducts, exact("find products"), s.findProducts},
		{IntentOrderStatus, prefix("check order status"), s.checkOrderStatus},
		{IntentProcessRefund, prefix("process refund"), s.processRefund},
		{IntentStorePolicies, exact("store policies"), s.storePolicies},
		{IntentOrderHistory, exact("order history"), s.orderHistory},
		{IntentProductDetails, prefix("find product details"), s.productDetails},
		{IntentOrderProduct, prefix("order product"), s.orderProduct},
	}
	return s
}

func exact(command string) func(string) bool {
	return func(normalized string) bool { return normalized == command }
}

func prefix(command string) func(string) bool {
	return func(normalized string) bool { return strings.HasPrefix(normalized, command) }
}

// Dispatch classifies the message and executes the matching command on
// behalf of the given user. Classification is case-insensitive and
// whitespace-trimmed. Returns ErrUserNotFound when the user id does not
// resolve; any persistence failure is wrapped and propagated.
func (s *ChatService) Dispatch(ctx context.Context, userID uint, message string) (*ChatResult, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range s.rules {
		if rule.match(normalized) {
			result, err := rule.handle(ctx, &user, message)
			if err != nil {
				return nil, err
			}
			result.Intent = rule.intent
			result.UserName = user.Name
			return result, nil
		}
	}

	return &ChatResult{
		Intent:   IntentFallback,
		UserName: user.Name,
		Reply:    s.responder.Reply(ctx, message, user.Name),
	}, nil
}

// LogMessage records one chat interaction in the messages audit table
func (s *ChatService) LogMessage(userID uint, message, response string) error {
	row := models.Message{
		UserID:    &userID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record chat message: %w", err)
	}
	return nil
}

func (s *ChatService) findProducts(_ context.Context, _ *models.User, _ string) (*ChatResult, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return &ChatResult{Products: products}, nil
}

func (s *ChatService) checkOrderStatus(_ context.Context, _ *models.User, raw string) (*ChatResult, error) {
	productID := extractID(orderStatusPattern, raw)
	if productID == 0 {
		return &ChatResult{InvalidID: true}, nil
	}

	// Multiple status rows may exist per product; the newest one wins.
	var status models.OrderStatus
	err := s.db.Where("product_id = ?", productID).Order("id DESC").First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ChatResult{ProductID: productID, NotFound: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order status: %w", err)
	}
	return &ChatResult{ProductID: productID, Status: status.Status}, nil
}

func (s *ChatService) processRefund(_ context.Context, _ *models.User, raw string) (*ChatResult, error) {
	productID := extractID(refundPattern, raw)
	if productID == 0 {
		return &ChatResult{InvalidID: true}, nil
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ChatResult{ProductID: productID, NotFound: true}, nil
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	// The refund row and the cancellation status must land together, so both
	// inserts share one transaction.
	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		refund := models.Refund{
			ProductID:   product.ID,
			ReturnMoney: product.Price,
			AccountNo:   RefundAccountNo,
			Cancelled:   true,
			OrderDate:   now,
			CancelDate:  now,
		}
		if err := tx.Create(&refund).Error; err != nil {
			return err
		}
		status := models.OrderStatus{ProductID: product.ID, Status: CancelledStatus}
		return tx.Create(&status).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process refund: %w", err)
	}

	return &ChatResult{ProductID: productID, Product: &product}, nil
}

func (s *ChatService) storePolicies(_ context.Context, _ *models.User, _ string) (*ChatResult, error) {
	var policies []models.StorePolicy
	if err := s.db.Find(&policies).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch store policies: %w", err)
	}

	rules := make([]string, 0, len(policies))
	for _, p := range policies {
		rules = append(rules, p.Rule)
	}
	if len(rules) == 0 {
		rules = []string{"No policies available."}
	}
	return &ChatResult{Policies: rules}, nil
}

func (s *ChatService) orderHistory(_ context.Context, user *models.User, _ string) (*ChatResult, error) {
	var history []models.OrderHistory
	if err := s.db.Where("user_id = ?", user.ID).Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order history: %w", err)
	}
	return &ChatResult{Orders: history}, nil
}

func (s *ChatService) productDetails(_ context.Context, _ *models.User, raw string) (*ChatResult, error) {
	productID := extractID(productDetailsPattern, raw)
	if productID == 0 {
		return &ChatResult{InvalidID: true}, nil
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ChatResult{ProductID: productID, NotFound: true}, nil
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &ChatResult{ProductID: productID, Product: &product}, nil
}

func (s *ChatService) orderProduct(_ context.Context, user *models.User, raw string) (*ChatResult, error) {
	match := orderProductPattern.FindStringSubmatch(raw)
	identifier := ""
	if match != nil {
		identifier = strings.TrimSpace(match[1])
	}
	if identifier == "" {
		return &ChatResult{InvalidID: true}, nil
	}

	// A purely numeric identifier is always an id lookup, even if a product
	// happens to be named with that exact digit string.
	var product models.Product
	var err error
	if numericPattern.MatchString(identifier) {
		id, _ := strconv.Atoi(identifier)
		err = s.db.First(&product, id).Error
	} else {
		err = s.db.Where("name = ?", identifier).First(&product).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ChatResult{Identifier: identifier, NotFound: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	entry := models.OrderHistory{
		UserID:      &user.ID,
		ProductName: product.Name,
		Price:       product.Price,
		OrderDate:   time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	return &ChatResult{Identifier: identifier, Product: &product}, nil
}

// extractID pulls the numeric capture out of a command pattern, returning 0
// when the pattern does not match or the number does not parse.
func extractID(pattern *regexp.Regexp, raw string) uint {
	match := pattern.FindStringSubmatch(raw)
	if match == nil {
		return 0
	}
	id, err := strconv.Atoi(match[1])
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}
