package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"factory-backend/internal/db"
	"factory-backend/internal/models"
	"factory-backend/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.EnsureSchema(gdb); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return gdb
}

func TestClientCreateAndList(t *testing.T) {
	gdb := setupTestDB(t)
	h := NewClientHandler(services.NewClientService(gdb))

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Khaled"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Client
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Name != "Khaled" {
		t.Fatalf("unexpected client: %+v", created)
	}

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/clients", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var clients []models.Client
	if err := json.Unmarshal(rec.Body.Bytes(), &clients); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
}

func TestClientCreateValidationReturns400(t *testing.T) {
	gdb := setupTestDB(t)
	h := NewClientHandler(services.NewClientService(gdb))

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"  "}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "validation_failed" {
		t.Fatalf("unexpected error code: %q", body.Error)
	}
	if body.Details["name"] != "required" {
		t.Fatalf("unexpected details: %v", body.Details)
	}
}

func TestClientDeleteRequiresID(t *testing.T) {
	gdb := setupTestDB(t)
	h := NewClientHandler(services.NewClientService(gdb))

	rec := httptest.NewRecorder()
	h.Delete(rec, httptest.NewRequest(http.MethodPost, "/clients/delete", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without id, got %d", rec.Code)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	gdb := setupTestDB(t)
	client, err := services.NewClientService(gdb).Create("Khaled")
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	h := NewOrderHandler(services.NewOrderService(gdb))

	body := `{"client_id":` + jsonUint(client.ID) + `,"quantity":1,"details":"chairs","amount":100,"paid":150}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var count int64
	gdb.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no order written, got %d", count)
	}
}

func jsonUint(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
