package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/service"
	"github.com/nayamama/hr-project/internal/sysinfo"
)

type stubDepartments struct {
	createFn func(ctx context.Context, input service.CreateDepartmentInput, actor service.Actor) (service.DepartmentDTO, error)
	listFn   func(ctx context.Context, actor service.Actor) ([]service.DepartmentDTO, error)
}

func (s stubDepartments) List(ctx context.Context, actor service.Actor) ([]service.DepartmentDTO, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, actor)
}

func (s stubDepartments) Create(ctx context.Context, input service.CreateDepartmentInput, actor service.Actor) (service.DepartmentDTO, error) {
	if s.createFn == nil {
		return service.DepartmentDTO{}, nil
	}
	return s.createFn(ctx, input, actor)
}

func (s stubDepartments) Update(context.Context, uint, service.UpdateDepartmentInput, service.Actor) (service.DepartmentDTO, error) {
	return service.DepartmentDTO{}, nil
}

func (s stubDepartments) Delete(context.Context, uint, service.Actor) error {
	return nil
}

type stubRoles struct{}

func (stubRoles) List(context.Context, service.Actor) ([]service.RoleDTO, error) {
	return nil, nil
}

func (stubRoles) ListAssignable(context.Context, service.Actor) ([]service.RoleDTO, error) {
	return nil, nil
}

func (stubRoles) Create(context.Context, service.CreateRoleInput, service.Actor) (service.RoleDTO, error) {
	return service.RoleDTO{}, nil
}

func (stubRoles) Update(context.Context, uint, service.UpdateRoleInput, service.Actor) (service.RoleDTO, error) {
	return service.RoleDTO{}, nil
}

func (stubRoles) Delete(context.Context, uint, service.Actor) error {
	return nil
}

type stubEmployees struct {
	assignFn func(ctx context.Context, employeeID, departmentID, roleID uint, actor service.Actor) (service.EmployeeDTO, error)
}

func (s stubEmployees) List(context.Context, service.Actor) ([]service.EmployeeDTO, error) {
	return nil, nil
}

func (s stubEmployees) Assign(ctx context.Context, employeeID, departmentID, roleID uint, actor service.Actor) (service.EmployeeDTO, error) {
	if s.assignFn == nil {
		return service.EmployeeDTO{}, nil
	}
	return s.assignFn(ctx, employeeID, departmentID, roleID, actor)
}

type stubAnchors struct {
	requestDeleteFn func(ctx context.Context, anchorID uint, name string, actor service.Actor) (service.DeleteConfirmation, error)
	confirmDeleteFn func(ctx context.Context, anchorID uint, actor service.Actor) error
	searchFn        func(ctx context.Context, name string, actor service.Actor) (service.SearchResult, error)
}

func (s stubAnchors) List(context.Context, service.Actor) ([]service.AnchorDTO, error) {
	return nil, nil
}

func (s stubAnchors) CreateSalaried(context.Context, service.CreateSalariedAnchorInput, service.Actor) (service.AnchorDTO, error) {
	return service.AnchorDTO{}, nil
}

func (s stubAnchors) CreateCommission(context.Context, service.CreateCommissionAnchorInput, service.Actor) (service.AnchorDTO, error) {
	return service.AnchorDTO{}, nil
}

func (s stubAnchors) Edit(context.Context, uint, service.EditAnchorInput, service.Actor) (service.AnchorDTO, error) {
	return service.AnchorDTO{}, nil
}

func (s stubAnchors) RequestDelete(ctx context.Context, anchorID uint, name string, actor service.Actor) (service.DeleteConfirmation, error) {
	if s.requestDeleteFn == nil {
		return service.DeleteConfirmation{}, nil
	}
	return s.requestDeleteFn(ctx, anchorID, name, actor)
}

func (s stubAnchors) ConfirmDelete(ctx context.Context, anchorID uint, actor service.Actor) error {
	if s.confirmDeleteFn == nil {
		return nil
	}
	return s.confirmDeleteFn(ctx, anchorID, actor)
}

func (s stubAnchors) SearchByName(ctx context.Context, name string, actor service.Actor) (service.SearchResult, error) {
	if s.searchFn == nil {
		return service.SearchResult{}, nil
	}
	return s.searchFn(ctx, name, actor)
}

type stubCollector struct{}

func (stubCollector) Collect(context.Context) (sysinfo.Info, error) {
	return sysinfo.Info{UsedCPUPercent: 12.5}, nil
}

func newTestHandler(services Services) *Handler {
	if services.Roles == nil {
		services.Roles = stubRoles{}
	}
	if services.Departments == nil {
		services.Departments = stubDepartments{}
	}
	if services.Employees == nil {
		services.Employees = stubEmployees{}
	}
	if services.Anchors == nil {
		services.Anchors = stubAnchors{}
	}
	if services.System == nil {
		services.System = stubCollector{}
	}
	return NewHandler(services, log.New(io.Discard, "", 0))
}

func asAdmin(req *http.Request) *http.Request {
	return req.WithContext(WithActor(req.Context(), service.Actor{IsAdmin: true}))
}

func TestCreateDepartment(t *testing.T) {
	handler := newTestHandler(Services{
		Departments: stubDepartments{
			createFn: func(ctx context.Context, input service.CreateDepartmentInput, actor service.Actor) (service.DepartmentDTO, error) {
				if input.Name != "Streaming" {
					t.Fatalf("unexpected department name: %s", input.Name)
				}
				if !actor.IsAdmin {
					t.Fatal("expected admin actor")
				}
				return service.DepartmentDTO{ID: 1, Name: "Streaming", Description: "Live"}, nil
			},
		},
	})

	body := bytes.NewBufferString(`{"name":"Streaming","description":"Live"}`)
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/departments", body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, recorder.Code)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if payload["name"] != "Streaming" {
		t.Fatalf("expected department name Streaming, got %v", payload["name"])
	}
}

func TestPermissionErrorMapsToForbidden(t *testing.T) {
	handler := newTestHandler(Services{
		Departments: stubDepartments{
			listFn: func(ctx context.Context, actor service.Actor) ([]service.DepartmentDTO, error) {
				return nil, apperror.New(apperror.CodePermission, "administrator capability required")
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, recorder.Code)
	}
}

func TestDeleteAnchorRequestPhase(t *testing.T) {
	handler := newTestHandler(Services{
		Anchors: stubAnchors{
			requestDeleteFn: func(ctx context.Context, anchorID uint, name string, actor service.Actor) (service.DeleteConfirmation, error) {
				return service.DeleteConfirmation{ID: anchorID, Name: name}, nil
			},
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/anchors/7?action=request&name=Alice", nil))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var confirmation service.DeleteConfirmation
	if err := json.NewDecoder(recorder.Body).Decode(&confirmation); err != nil {
		t.Fatalf("decode confirmation: %v", err)
	}
	if confirmation.ID != 7 || confirmation.Name != "Alice" {
		t.Fatalf("unexpected confirmation: %+v", confirmation)
	}
}

func TestDeleteAnchorUnknownActionRejected(t *testing.T) {
	handler := newTestHandler(Services{})

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/anchors/7?action=obliterate", nil))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestSearchRequiresNameParameter(t *testing.T) {
	handler := newTestHandler(Services{})

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/search", nil))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestSearchReturnsEmptyResult(t *testing.T) {
	handler := newTestHandler(Services{
		Anchors: stubAnchors{
			searchFn: func(ctx context.Context, name string, actor service.Actor) (service.SearchResult, error) {
				return service.SearchResult{Found: false}, nil
			},
		},
	})

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/search?name=Bob", nil))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var result service.SearchResult
	if err := json.NewDecoder(recorder.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Found {
		t.Fatal("expected an empty result")
	}
}

func TestSystemInfoRequiresAdmin(t *testing.T) {
	handler := newTestHandler(Services{})

	req := httptest.NewRequest(http.MethodGet, "/system", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, recorder.Code)
	}
}

func TestAssignEmployeeRoute(t *testing.T) {
	handler := newTestHandler(Services{
		Employees: stubEmployees{
			assignFn: func(ctx context.Context, employeeID, departmentID, roleID uint, actor service.Actor) (service.EmployeeDTO, error) {
				if employeeID != 3 || departmentID != 1 || roleID != 2 {
					t.Fatalf("unexpected ids: %d %d %d", employeeID, departmentID, roleID)
				}
				return service.EmployeeDTO{ID: employeeID}, nil
			},
		},
	})

	body := bytes.NewBufferString(`{"department_id":1,"role_id":2}`)
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/employees/3/assign", body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestAuthMiddlewareResolvesActor(t *testing.T) {
	var seen service.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = actorFrom(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("X-Admin-Token", "secret")
	AuthMiddleware("secret", next).ServeHTTP(httptest.NewRecorder(), req)
	if !seen.IsAdmin {
		t.Fatal("matching token must grant the admin capability")
	}

	req = httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	AuthMiddleware("secret", next).ServeHTTP(httptest.NewRecorder(), req)
	if seen.IsAdmin {
		t.Fatal("mismatched token must not grant the admin capability")
	}
}
