/*
Copyright 2026 the Energy Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package apitest serves canned responses shaped like the energy order API
// so the client, scenarios and runner can be exercised without the network.
// It keeps just enough state to answer consistently; it does not model the
// real service.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	// Username and Password are the credentials the server accepts.
	Username = "test"
	Password = "testing"

	// Token is issued on a successful login.
	Token = "apitest-token"
)

type order struct {
	ID           int    `json:"id"`
	Quantity     int    `json:"quantity"`
	CreationDate string `json:"creationDate"`
}

type message struct {
	Message string `json:"message"`
}

// Server is a running test double.
type Server struct {
	*httptest.Server

	lock      sync.Mutex
	energyIDs []int
	orders    []order
	nextID    int
	now       func() time.Time
	requests  []*http.Request
}

// Option configures a Server.
type Option func(*Server)

// WithEnergyIDs sets the energy listing. An empty list is allowed.
func WithEnergyIDs(ids ...int) Option {
	return func(s *Server) {
		s.energyIDs = ids
	}
}

// WithClock sets the clock used to stamp creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer starts a server that is closed when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		energyIDs: []int{1, 2, 3},
		nextID:    1000,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	router := chi.NewRouter()
	router.Use(s.record)
	router.Post("/reset", s.reset)
	router.Post("/login", s.login)
	router.Get("/api/energy-ids", s.listEnergyIDs)
	router.Put("/buy/{id}/{quantity}", s.buy)
	router.Get("/orders", s.listOrders)
	router.Get("/orders/{orderID}", s.getOrder)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)

	return s
}

// Requests returns every request received so far.
func (s *Server) Requests() []*http.Request {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.requests)
}

// Orders returns the number of orders held.
func (s *Server) Orders() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.orders)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+Token {
		writeJSON(w, http.StatusUnauthorized, message{Message: "Unauthorized"})
		return
	}

	s.lock.Lock()
	s.orders = nil
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, message{Message: "Success"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeJSON(w, http.StatusBadRequest, message{Message: "Bad Request"})
		return
	}

	if credentials.Username != Username || credentials.Password != Password {
		writeJSON(w, http.StatusUnauthorized, message{Message: "Unauthorized"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": Token,
		"message":      "Success",
	})
}

func (s *Server) listEnergyIDs(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	body := make([]map[string]int, 0, len(s.energyIDs))

	for _, id := range s.energyIDs {
		body = append(body, map[string]int{"id": id})
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) buy(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, message{Message: "Bad Request"})
		return
	}

	quantity, err := strconv.Atoi(chi.URLParam(r, "quantity"))
	if err != nil || quantity <= 0 {
		writeJSON(w, http.StatusBadRequest, message{Message: "Bad Request"})
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if !slices.Contains(s.energyIDs, id) {
		writeJSON(w, http.StatusNotFound, message{Message: "Not Found"})
		return
	}

	s.nextID++

	s.orders = append(s.orders, order{
		ID:           s.nextID,
		Quantity:     quantity,
		CreationDate: s.now().Format("2006-01-02T15:04:05.999999999"),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"orderId": s.nextID,
		"message": "You have purchased " + strconv.Itoa(quantity) + " units",
	})
}

func (s *Server) listOrders(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	body := slices.Clone(s.orders)
	if body == nil {
		body = []order{}
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "orderID")))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, message{Message: "Bad Request"})
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}

	writeJSON(w, http.StatusNotFound, message{Message: "Not Found"})
}
