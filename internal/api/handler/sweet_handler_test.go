package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

type stubSweetService struct {
	createFn   func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error)
	listFn     func(ctx context.Context) ([]*domain.Sweet, error)
	searchFn   func(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, error)
	updateFn   func(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error)
	deleteFn   func(ctx context.Context, id string) error
	purchaseFn func(ctx context.Context, id string) (*domain.Sweet, error)
	restockFn  func(ctx context.Context, id string, amount int) (*domain.Sweet, error)
}

func (s *stubSweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	return s.createFn(ctx, input)
}
func (s *stubSweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.listFn(ctx)
}
func (s *stubSweetService) Search(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, error) {
	return s.searchFn(ctx, filter)
}
func (s *stubSweetService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	return s.updateFn(ctx, id, input)
}
func (s *stubSweetService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubSweetService) Purchase(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.purchaseFn(ctx, id)
}
func (s *stubSweetService) Restock(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
	return s.restockFn(ctx, id, amount)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSweetHandler_Create_Success(t *testing.T) {
	stub := &stubSweetService{
		createFn: func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
			if input.Name != "Lollipop" || input.Category != "Candy" || input.Price != 1.99 || input.Quantity != 100 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Sweet{ID: "s1", Name: input.Name, Category: input.Category, Price: input.Price, Quantity: input.Quantity}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sweets",
		`{"name":"Lollipop","category":"Candy","price":1.99,"quantity":100}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["name"] != "Lollipop" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
}

// A quantity left out of the payload defaults to zero instead of failing
// validation.
func TestSweetHandler_Create_QuantityDefaultsToZero(t *testing.T) {
	stub := &stubSweetService{
		createFn: func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
			if input.Quantity != 0 {
				t.Fatalf("expected default quantity 0, got %d", input.Quantity)
			}
			return &domain.Sweet{ID: "s1", Name: input.Name, Category: input.Category}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sweets",
		`{"name":"Fudge","category":"Candy","price":3}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSweetHandler_Create_MissingFields(t *testing.T) {
	stub := &stubSweetService{
		createFn: func(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewSweetHandler(stub)

	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"category":"Candy","price":1}`},
		{"no category", `{"name":"Fudge","price":1}`},
		{"no price", `{"name":"Fudge","category":"Candy"}`},
		{"negative price", `{"name":"Fudge","category":"Candy","price":-1}`},
		{"negative quantity", `{"name":"Fudge","category":"Candy","price":1,"quantity":-2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/api/sweets", tc.body)
			err := handler.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestSweetHandler_List(t *testing.T) {
	stub := &stubSweetService{
		listFn: func(ctx context.Context) ([]*domain.Sweet, error) {
			return []*domain.Sweet{
				{ID: "s1", Name: "Lollipop"},
				{ID: "s2", Name: "Toffee"},
			}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/sweets", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
}

func TestSweetHandler_Search_ParsesQueryParams(t *testing.T) {
	stub := &stubSweetService{
		searchFn: func(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, error) {
			if filter.Name != "lolli" || filter.Category != "candy" {
				t.Fatalf("unexpected string filters: %+v", filter)
			}
			if filter.MinPrice == nil || *filter.MinPrice != 1.5 {
				t.Fatalf("unexpected minPrice: %v", filter.MinPrice)
			}
			if filter.MaxPrice == nil || *filter.MaxPrice != 10 {
				t.Fatalf("unexpected maxPrice: %v", filter.MaxPrice)
			}
			return nil, nil
		},
	}
	handler := NewSweetHandler(stub)

	q := url.Values{}
	q.Set("name", "lolli")
	q.Set("category", "candy")
	q.Set("minPrice", "1.5")
	q.Set("maxPrice", "10")
	c, rec := newJSONContext(t, http.MethodGet, "/api/sweets/search?"+q.Encode(), "")

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSweetHandler_Search_BadPriceParam(t *testing.T) {
	handler := NewSweetHandler(&stubSweetService{
		searchFn: func(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	})

	c, _ := newJSONContext(t, http.MethodGet, "/api/sweets/search?minPrice=abc", "")

	err := handler.Search(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSweetHandler_Update_PassesPartialFields(t *testing.T) {
	stub := &stubSweetService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
			if id != "s1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Price == nil || *input.Price != 2.49 {
				t.Fatalf("unexpected price: %v", input.Price)
			}
			if input.Name != nil || input.Category != nil || input.Quantity != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.Sweet{ID: id, Name: "Lollipop", Price: 2.49}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/api/sweets/s1", `{"price":2.49}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSweetHandler_Update_NotFoundPropagates(t *testing.T) {
	stub := &stubSweetService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
			return nil, domain.ErrSweetNotFound
		},
	}
	handler := NewSweetHandler(stub)

	c, _ := newJSONContext(t, http.MethodPut, "/api/sweets/missing", `{"price":1}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Update(c); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound to propagate, got %v", err)
	}
}

func TestSweetHandler_Delete(t *testing.T) {
	stub := &stubSweetService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "s1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/sweets/s1", "")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Delete returns an empty object, not null.
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || len(data) != 0 {
		t.Fatalf("expected empty data object, got %+v", resp["data"])
	}
}

func TestSweetHandler_Purchase(t *testing.T) {
	stub := &stubSweetService{
		purchaseFn: func(ctx context.Context, id string) (*domain.Sweet, error) {
			return &domain.Sweet{ID: id, Name: "Lollipop", Category: "Candy", Quantity: 99}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sweets/s1/purchase", "")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Purchase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["quantity"] != float64(99) {
		t.Fatalf("expected quantity 99, got %v", data["quantity"])
	}
}

func TestSweetHandler_Purchase_OutOfStockPropagates(t *testing.T) {
	stub := &stubSweetService{
		purchaseFn: func(ctx context.Context, id string) (*domain.Sweet, error) {
			return nil, domain.ErrOutOfStock
		},
	}
	handler := NewSweetHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/sweets/s1/purchase", "")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Purchase(c); !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock to propagate, got %v", err)
	}
}

func TestSweetHandler_Restock(t *testing.T) {
	stub := &stubSweetService{
		restockFn: func(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
			if amount != 50 {
				t.Fatalf("unexpected amount: %d", amount)
			}
			return &domain.Sweet{ID: id, Category: "Candy", Quantity: 149}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sweets/s1/restock", `{"amount":50}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Restock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// A missing amount is forwarded as zero so the service rejects it.
func TestSweetHandler_Restock_MissingAmount(t *testing.T) {
	stub := &stubSweetService{
		restockFn: func(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
			if amount != 0 {
				t.Fatalf("expected amount 0, got %d", amount)
			}
			return nil, domain.ErrValidation
		},
	}
	handler := NewSweetHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/sweets/s1/restock", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Restock(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation to propagate, got %v", err)
	}
}
