// Package paypaltest provides an in-memory PayPal orders API for tests.
package paypaltest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

const (
	ClientID = "testId"
	Secret   = "testSecret"
)

// ReportingTimeLayout is how the reporting API renders transaction dates.
const ReportingTimeLayout = "2006-01-02T15:04:05-0700"

var amountPath = regexp.MustCompile(`^/purchase_units/@reference_id=='(.+)'/amount$`)

type failure struct {
	status int
	name   string
}

// Server fakes the token, orders, authorization void and reporting endpoints.
// State is kept in memory and every request is counted by "METHOD /route".
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	orders       map[string]*paypal.Order
	deleted      map[string]bool
	tokens       map[string]bool
	calls        map[string]int
	failures     map[string][]failure
	transactions []paypal.Transaction
	queries      []url.Values
	nextOrder    int
	nextToken    int
	nextAuth     int

	// ExpiresIn is returned as expires_in on new tokens.
	ExpiresIn int64
	// MaxPageSize caps the reporting page_size, like PayPal's own limit.
	MaxPageSize int
}

func NewServer() *Server {
	s := &Server{
		orders:      make(map[string]*paypal.Order),
		deleted:     make(map[string]bool),
		tokens:      make(map[string]bool),
		calls:       make(map[string]int),
		failures:    make(map[string][]failure),
		ExpiresIn:   32400,
		MaxPageSize: 500,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/oauth2/token", s.handleToken)
	mux.HandleFunc("POST /v2/checkout/orders", s.authorized("POST /v2/checkout/orders", s.handleCreate))
	mux.HandleFunc("GET /v2/checkout/orders/{id}", s.authorized("GET /v2/checkout/orders", s.handleGet))
	mux.HandleFunc("PATCH /v2/checkout/orders/{id}", s.authorized("PATCH /v2/checkout/orders", s.handlePatch))
	mux.HandleFunc("DELETE /v1/checkout/orders/{id}", s.authorized("DELETE /v1/checkout/orders", s.handleDelete))
	mux.HandleFunc("POST /v2/payments/authorizations/{id}/void", s.authorized("POST /v2/payments/authorizations/void", s.handleVoid))
	mux.HandleFunc("GET /v1/reporting/transactions", s.authorized("GET /v1/reporting/transactions", s.handleTransactions))

	s.Server = httptest.NewServer(mux)
	return s
}

// Calls returns how many requests hit route, e.g. "GET /v2/checkout/orders".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// FailNext makes the next request to route answer with status.
func (s *Server) FailNext(route string, status int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = append(s.failures[route], failure{status: status, name: name})
}

// RevokeTokens makes every issued token invalid.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]bool)
}

func (s *Server) SetStatus(id string, status paypal.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.orders[id]; ok {
		order.Status = status
	}
}

// PutOrder stores order as-is, replacing any order with the same id.
func (s *Server) PutOrder(order paypal.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := copyOrder(&order)
	s.orders[order.ID] = &stored
}

// Authorize completes an AUTHORIZE order the way payer approval does: the
// first unit gets a CREATED authorization for its amount, whose id is returned.
func (s *Server) Authorize(orderID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok || len(order.PurchaseUnits) == 0 {
		return "", false
	}
	s.nextAuth++
	id := fmt.Sprintf("0VF52814937998046%03d", s.nextAuth)
	amount := order.PurchaseUnits[0].Amount

	order.Intent = paypal.IntentAuthorize
	order.Status = paypal.OrderStatusCompleted
	order.PurchaseUnits[0].Payments = &paypal.PaymentCollection{
		Authorizations: []paypal.Authorization{{ID: id, Status: paypal.AuthorizationStatusCreated, Amount: &amount}},
	}
	return id, true
}

// Authorization looks an authorization up across every stored order.
func (s *Server) Authorization(id string) (paypal.Authorization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if auth := s.findAuthorization(id); auth != nil {
		return *auth, true
	}
	return paypal.Authorization{}, false
}

// AddTransaction makes tx visible to the reporting endpoint.
func (s *Server) AddTransaction(tx paypal.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
}

// ReportingQueries returns the query string of every reporting request.
func (s *Server) ReportingQueries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

// NewTransaction builds a reporting transaction initiated at at.
func NewTransaction(id, customField, status string, at time.Time, amount domain.Money) paypal.Transaction {
	return paypal.Transaction{Info: paypal.TransactionInfo{
		TransactionID:  id,
		EventCode:      "T0006",
		InitiationDate: at.UTC().Format(ReportingTimeLayout),
		Amount:         &amount,
		Status:         status,
		CustomField:    customField,
	}}
}

func (s *Server) Order(id string) (paypal.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return paypal.Order{}, false
	}
	return copyOrder(order), true
}

func (s *Server) Deleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleted[id]
}

func (s *Server) count(route string) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[route]++
	if queued := s.failures[route]; len(queued) > 0 {
		s.failures[route] = queued[1:]
		return queued[0], true
	}
	return failure{}, false
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if f, ok := s.count("POST /v1/oauth2/token"); ok {
		writeJSON(w, f.status, map[string]string{"error": f.name, "error_description": "forced failure"})
		return
	}

	clientID, secret, ok := r.BasicAuth()
	if !ok || clientID != ClientID || secret != Secret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "Client Authentication failed",
		})
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "unsupported_grant_type",
			"error_description": "Grant Type is NULL",
		})
		return
	}

	s.mu.Lock()
	s.nextToken++
	token := fmt.Sprintf("A21AA-fake-%d", s.nextToken)
	s.tokens[token] = true
	expiresIn := s.ExpiresIn
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, paypal.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}

func (s *Server) authorized(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f, ok := s.count(route); ok {
			writeError(w, f.status, f.name, "forced failure")
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		valid := ok && s.tokens[token]
		s.mu.Unlock()
		if !valid {
			writeError(w, http.StatusUnauthorized, "AUTHENTICATION_FAILURE", "Authentication failed due to invalid authentication credentials or a missing Authorization header.")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req paypal.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.PurchaseUnits) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "purchase_units is required")
		return
	}

	now := time.Now().UTC()
	s.mu.Lock()
	s.nextOrder++
	order := &paypal.Order{
		ID:            fmt.Sprintf("5O190127TN%07d", s.nextOrder),
		Intent:        req.Intent,
		Status:        paypal.OrderStatusCreated,
		PurchaseUnits: append([]paypal.PurchaseUnit(nil), req.PurchaseUnits...),
		CreateTime:    &now,
		UpdateTime:    &now,
	}
	order.Links = []paypal.Link{{Href: s.URL + "/v2/checkout/orders/" + order.ID, Rel: "self", Method: http.MethodGet}}
	s.orders[order.ID] = order
	resp := copyOrder(order)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	order, ok := s.orders[r.PathValue("id")]
	var resp paypal.Order
	if ok {
		resp = copyOrder(order)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "RESOURCE_NOT_FOUND", "The specified resource does not exist.")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	var ops []struct {
		Op    string       `json:"op"`
		Path  string       `json:"path"`
		Value domain.Money `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ops); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "RESOURCE_NOT_FOUND", "The specified resource does not exist.")
		return
	}
	if order.Status != paypal.OrderStatusCreated && order.Status != paypal.OrderStatusApproved {
		writeError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "ORDER_ALREADY_COMPLETED")
		return
	}

	for _, op := range ops {
		m := amountPath.FindStringSubmatch(op.Path)
		if op.Op != "replace" || m == nil {
			writeError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "INVALID_PATCH_OPERATION")
			return
		}
		found := false
		for i := range order.PurchaseUnits {
			if order.PurchaseUnits[i].ReferenceID == m[1] {
				order.PurchaseUnits[i].Amount = op.Value
				found = true
			}
		}
		if !found {
			writeError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "REFERENCE_ID_NOT_FOUND")
			return
		}
	}
	now := time.Now().UTC()
	order.UpdateTime = &now

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		writeError(w, http.StatusNotFound, "RESOURCE_NOT_FOUND", "The specified resource does not exist.")
		return
	}
	delete(s.orders, id)
	s.deleted[id] = true

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVoid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auth := s.findAuthorization(r.PathValue("id"))
	if auth == nil {
		writeError(w, http.StatusNotFound, "RESOURCE_NOT_FOUND", "The specified resource does not exist.")
		return
	}
	switch auth.Status {
	case paypal.AuthorizationStatusVoided:
		writeError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "PREVIOUSLY_VOIDED")
		return
	case paypal.AuthorizationStatusCaptured, paypal.AuthorizationStatusPartiallyCaptured:
		writeError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "CANNOT_BE_VOIDED")
		return
	}
	auth.Status = paypal.AuthorizationStatusVoided

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, startErr := time.Parse(time.RFC3339, query.Get("start_date"))
	end, endErr := time.Parse(time.RFC3339, query.Get("end_date"))
	if startErr != nil || endErr != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "start_date and end_date must be RFC3339")
		return
	}
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(query.Get("page_size"))
	if err != nil || size < 1 {
		size = 100
	}

	s.mu.Lock()
	s.queries = append(s.queries, query)
	size = min(size, s.MaxPageSize)
	var matched []paypal.Transaction
	for _, tx := range s.transactions {
		at, err := time.Parse(ReportingTimeLayout, tx.Info.InitiationDate)
		if err != nil || at.Before(start) || at.After(end) {
			continue
		}
		matched = append(matched, tx)
	}
	s.mu.Unlock()

	from := min((page-1)*size, len(matched))
	to := min(from+size, len(matched))
	writeJSON(w, http.StatusOK, paypal.TransactionsPage{
		TransactionDetails: matched[from:to],
		StartDate:          start.Format(ReportingTimeLayout),
		EndDate:            end.Format(ReportingTimeLayout),
		Page:               page,
		TotalItems:         len(matched),
		TotalPages:         (len(matched) + size - 1) / size,
	})
}

// findAuthorization must be called with s.mu held.
func (s *Server) findAuthorization(id string) *paypal.Authorization {
	for _, order := range s.orders {
		for i := range order.PurchaseUnits {
			payments := order.PurchaseUnits[i].Payments
			if payments == nil {
				continue
			}
			for j := range payments.Authorizations {
				if payments.Authorizations[j].ID == id {
					return &payments.Authorizations[j]
				}
			}
		}
	}
	return nil
}

// copyOrder deep copies order so callers never share state with the server.
func copyOrder(order *paypal.Order) paypal.Order {
	c := *order
	if order.PurchaseUnits != nil {
		c.PurchaseUnits = make([]paypal.PurchaseUnit, len(order.PurchaseUnits))
	}
	for i, unit := range order.PurchaseUnits {
		if unit.Payments != nil {
			payments := paypal.PaymentCollection{
				Authorizations: append([]paypal.Authorization(nil), unit.Payments.Authorizations...),
				Captures:       append([]paypal.Capture(nil), unit.Payments.Captures...),
			}
			unit.Payments = &payments
		}
		c.PurchaseUnits[i] = unit
	}
	c.Links = append([]paypal.Link(nil), order.Links...)
	return c
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, paypal.ErrorResponse{
		Name:    name,
		Message: message,
		DebugID: "f0a1b2c3d4e5",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
