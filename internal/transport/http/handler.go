package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/cart"
	"github.com/Gunvolt24/coffee_delivery/internal/checkout"
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Service — то, что HTTP-слой использует из прикладной логики.
type Service interface {
	Products() []domain.Product
	Cart(ctx context.Context, sessionID string) (domain.CartSnapshot, error)
	AddItem(ctx context.Context, sessionID string, key domain.ProductKey, quantity int) (domain.CartItem, error)
	UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (domain.CartItem, error)
	RemoveItem(ctx context.Context, sessionID, lineID string) error
	SubscribeCart(ctx context.Context, sessionID string, l cart.Listener) (domain.CartSnapshot, func(), error)
	Checkout(ctx context.Context, sessionID string) (checkout.Summary, error)
	SetField(ctx context.Context, sessionID, field, value string) error
	Submit(ctx context.Context, sessionID string) (*domain.OrderConfirmation, error)
	TakeConfirmation(ctx context.Context, id string) (*domain.OrderConfirmation, error)
}

type Handler struct {
	service       Service
	log           ports.Logger
	timeout       time.Duration // таймаут обработчика (кроме websocket)
	sessionMaxAge int           // срок жизни cookie сессии, секунды
}

// NewHandler — timeout <= 0 отключает таймаут обработчиков.
func NewHandler(service Service, log ports.Logger, timeout time.Duration, sessionTTL time.Duration) *Handler {
	return &Handler{
		service:       service,
		log:           log,
		timeout:       timeout,
		sessionMaxAge: int(sessionTTL / time.Second),
	}
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) listProducts(c *gin.Context) {
	products := h.service.Products()
	limit, offset := httpx.ParseLimitOffset(c, len(products), 100)

	page := httpx.Page(products, limit, offset)
	out := make([]productView, 0, len(page))
	for _, p := range page {
		out = append(out, newProductView(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getCart(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	snap, err := h.service.Cart(ctx, httpx.SessionID(c))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, newCartView(snap))
}

func (h *Handler) getBadge(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	snap, err := h.service.Cart(ctx, httpx.SessionID(c))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, newBadgeView(snap))
}

type addItemRequest struct {
	Type     domain.ProductKey `json:"type"`
	Quantity int               `json:"quantity"`
}

func (h *Handler) addItem(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	line, err := h.service.AddItem(ctx, httpx.SessionID(c), req.Type, req.Quantity)
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	line, err := h.service.UpdateQuantity(ctx, httpx.SessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (h *Handler) removeItem(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.service.RemoveItem(ctx, httpx.SessionID(c), c.Param("id")); err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getCheckout(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	summary, err := h.service.Checkout(ctx, httpx.SessionID(c))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type setFieldRequest struct {
	Value domain.FieldText `json:"value"`
}

func (h *Handler) setField(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if err := h.service.SetField(ctx, httpx.SessionID(c), c.Param("field"), string(req.Value)); err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) submit(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	confirmation, err := h.service.Submit(ctx, httpx.SessionID(c))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.Header("Location", "/api/success/"+confirmation.ID)
	c.JSON(http.StatusCreated, gin.H{"id": confirmation.ID})
}

func (h *Handler) takeConfirmation(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	confirmation, err := h.service.TakeConfirmation(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, newConfirmationView(confirmation))
}
