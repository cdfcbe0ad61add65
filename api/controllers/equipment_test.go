package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rahulmenon/labtrack-backend/internal/equipment"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
	"github.com/rahulmenon/labtrack-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type testEquipmentService struct {
	listFn   func(ctx context.Context) ([]equipment.EquipmentDTO, error)
	getFn    func(ctx context.Context, equipmentID string) (equipment.EquipmentDTO, error)
	createFn func(ctx context.Context, input equipment.CreateInput) (equipment.EquipmentDTO, error)
	updateFn func(ctx context.Context, equipmentID string, input equipment.UpdateInput) (equipment.EquipmentDTO, error)
	deleteFn func(ctx context.Context, equipmentID string) error
}

func (s *testEquipmentService) List(ctx context.Context) ([]equipment.EquipmentDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *testEquipmentService) Get(ctx context.Context, equipmentID string) (equipment.EquipmentDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, equipmentID)
	}
	return equipment.EquipmentDTO{}, nil
}

func (s *testEquipmentService) Create(ctx context.Context, input equipment.CreateInput) (equipment.EquipmentDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return equipment.EquipmentDTO{}, nil
}

func (s *testEquipmentService) Update(ctx context.Context, equipmentID string, input equipment.UpdateInput) (equipment.EquipmentDTO, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, equipmentID, input)
	}
	return equipment.EquipmentDTO{}, nil
}

func (s *testEquipmentService) Delete(ctx context.Context, equipmentID string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, equipmentID)
	}
	return nil
}

func TestEquipmentListReturnsRawArray(t *testing.T) {
	svc := &testEquipmentService{
		listFn: func(ctx context.Context) ([]equipment.EquipmentDTO, error) {
			return []equipment.EquipmentDTO{
				{EquipmentID: "LAB-002", Name: "Spectrometer"},
				{EquipmentID: "LAB-001", Name: "Oscilloscope"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipment", nil)
	resp := httptest.NewRecorder()
	EquipmentList(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a bare JSON array, got %q: %v", resp.Body.String(), err)
	}
	if len(body) != 2 {
		t.Fatalf("unexpected length %d", len(body))
	}
	if body[0]["equipment_id"] != "LAB-002" {
		t.Fatalf("unexpected first element %v", body[0])
	}
}

func TestEquipmentListWithBusinessKeyFetchesOne(t *testing.T) {
	svc := &testEquipmentService{
		getFn: func(ctx context.Context, equipmentID string) (equipment.EquipmentDTO, error) {
			if equipmentID != "LAB-001" {
				t.Fatalf("unexpected equipment id %q", equipmentID)
			}
			return equipment.EquipmentDTO{EquipmentID: "LAB-001", Name: "Oscilloscope"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipment?equipment_id=LAB-001", nil)
	resp := httptest.NewRecorder()
	EquipmentList(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["name"] != "Oscilloscope" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestEquipmentListMissReturns404(t *testing.T) {
	svc := &testEquipmentService{
		getFn: func(ctx context.Context, equipmentID string) (equipment.EquipmentDTO, error) {
			return equipment.EquipmentDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "equipment not found")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipment?equipment_id=LAB-404", nil)
	resp := httptest.NewRecorder()
	EquipmentList(svc, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"] != "equipment not found" {
		t.Fatalf("unexpected error body %v", body)
	}
}

func TestEquipmentCreateReturns201(t *testing.T) {
	svc := &testEquipmentService{
		createFn: func(ctx context.Context, input equipment.CreateInput) (equipment.EquipmentDTO, error) {
			return equipment.EquipmentDTO{
				EquipmentID: input.EquipmentID,
				Name:        input.Name,
				QRURL:       "https://qr.test/LAB-001",
			}, nil
		},
	}

	payload := `{"equipment_id":"LAB-001","name":"Oscilloscope"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/equipment", strings.NewReader(payload))
	resp := httptest.NewRecorder()
	EquipmentCreate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["qr_url"] != "https://qr.test/LAB-001" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestEquipmentCreateRejectsMissingName(t *testing.T) {
	svc := &testEquipmentService{
		createFn: func(ctx context.Context, input equipment.CreateInput) (equipment.EquipmentDTO, error) {
			t.Fatal("service must not be called for an invalid body")
			return equipment.EquipmentDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/equipment", strings.NewReader(`{"equipment_id":"LAB-001"}`))
	resp := httptest.NewRecorder()
	EquipmentCreate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(body["error"], "name is required") {
		t.Fatalf("unexpected error body %v", body)
	}
}

func TestEquipmentCreateDuplicateReturns400(t *testing.T) {
	svc := &testEquipmentService{
		createFn: func(ctx context.Context, input equipment.CreateInput) (equipment.EquipmentDTO, error) {
			return equipment.EquipmentDTO{}, pkgerrors.New(pkgerrors.CodeConflict, "equipment_id already exists")
		},
	}

	payload := `{"equipment_id":"LAB-001","name":"Oscilloscope"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/equipment", strings.NewReader(payload))
	resp := httptest.NewRecorder()
	EquipmentCreate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}

func TestEquipmentUpdateRequiresBusinessKey(t *testing.T) {
	svc := &testEquipmentService{
		updateFn: func(ctx context.Context, equipmentID string, input equipment.UpdateInput) (equipment.EquipmentDTO, error) {
			t.Fatal("service must not be called without equipment_id")
			return equipment.EquipmentDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/equipment", strings.NewReader(`{"name":"New name"}`))
	resp := httptest.NewRecorder()
	EquipmentUpdate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"] != "equipment_id is required" {
		t.Fatalf("unexpected error body %v", body)
	}
}

func TestEquipmentUpdateSuccess(t *testing.T) {
	svc := &testEquipmentService{
		updateFn: func(ctx context.Context, equipmentID string, input equipment.UpdateInput) (equipment.EquipmentDTO, error) {
			if equipmentID != "LAB-001" {
				t.Fatalf("unexpected equipment id %q", equipmentID)
			}
			if input.Name == nil || *input.Name != "Digital oscilloscope" {
				t.Fatalf("unexpected patch %+v", input)
			}
			return equipment.EquipmentDTO{EquipmentID: equipmentID, Name: *input.Name}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/equipment?equipment_id=LAB-001",
		strings.NewReader(`{"name":"Digital oscilloscope"}`))
	resp := httptest.NewRecorder()
	EquipmentUpdate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
}

func TestEquipmentDeleteSuccessMessage(t *testing.T) {
	called := false
	svc := &testEquipmentService{
		deleteFn: func(ctx context.Context, equipmentID string) error {
			called = true
			if equipmentID != "LAB-001" {
				t.Fatalf("unexpected equipment id %q", equipmentID)
			}
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/equipment?equipment_id=LAB-001", nil)
	resp := httptest.NewRecorder()
	EquipmentDelete(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if !called {
		t.Fatal("expected service called")
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["message"] != "Equipment deleted successfully" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestEquipmentDeleteRequiresBusinessKey(t *testing.T) {
	svc := &testEquipmentService{
		deleteFn: func(ctx context.Context, equipmentID string) error {
			t.Fatal("service must not be called without equipment_id")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/equipment", nil)
	resp := httptest.NewRecorder()
	EquipmentDelete(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}
