package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/service"
	"github.com/nayamama/hr-project/internal/sysinfo"
)

const maxUploadBytes = 10 << 20

// Services bundles everything the handler dispatches to.
type Services struct {
	Departments service.DepartmentManager
	Roles       service.RoleManager
	Employees   service.EmployeeManager
	Anchors     service.AnchorManager
	System      sysinfo.Collector
}

type Handler struct {
	services Services
	logger   *log.Logger
}

func NewHandler(services Services, logger *log.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) == 0 {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}

	switch parts[0] {
	case "departments":
		h.serveDepartments(w, r, parts[1:])
	case "roles":
		h.serveRoles(w, r, parts[1:])
	case "employees":
		h.serveEmployees(w, r, parts[1:])
	case "anchors":
		h.serveAnchors(w, r, parts[1:])
	case "search":
		h.serveSearch(w, r, parts[1:])
	case "system":
		h.serveSystem(w, r, parts[1:])
	default:
		writeError(w, http.StatusNotFound, "route not found")
	}
}

type upsertDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) serveDepartments(w http.ResponseWriter, r *http.Request, rest []string) {
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			departments, err := h.services.Departments.List(r.Context(), actorFrom(r))
			if err != nil {
				h.respondWithError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, departments)
		case http.MethodPost:
			var req upsertDepartmentRequest
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			department, err := h.services.Departments.Create(r.Context(), service.CreateDepartmentInput{
				Name:        req.Name,
				Description: req.Description,
			}, actorFrom(r))
			if err != nil {
				h.respondWithError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, department)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	case len(rest) == 1:
		departmentID, err := parseUintID(rest[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid department id")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var req upsertDepartmentRequest
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			department, err := h.services.Departments.Update(r.Context(), departmentID, service.UpdateDepartmentInput{
				Name:        req.Name,
				Description: req.Description,
			}, actorFrom(r))
			if err != nil {
				h.respondWithError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, department)
		case http.MethodDelete:
			if err := h.services.Departments.Delete(r.Context(), departmentID, actorFrom(r)); err != nil {
				h.respondWithError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	default:
		writeError(w, http.StatusNotFound, "route not found")
	}
}

type upsertRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) serveRoles(w http.ResponseWriter, r *http.Request, rest []string) {
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			roles, err := h.services.Roles.List(r.Context(), actorFrom(r))
			if err != nil {
				h.respondWithError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, roles)
		case http.MethodPost:
			var req upsertRoleRequest
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			role, err := h.services.Roles.Create(r.Context(), service.CreateRoleInput{
				Name:        req.Name,
				Description: req.Description,
			}, actorFrom(r))
			if err != nil {
				h.respondWithError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, role)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	case len(rest) == 1 && rest[0] == "assignable":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		roles, err := h.services.Roles.ListAssignable(r.Context(), actorFrom(r))
		if err != nil {
			h.respondWithError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, roles)

	case len(rest) == 1:
		roleID, err := parseUintID(rest[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid role id")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var req upsertRoleRequest
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			role, err := h.services.Roles.Update(r.Context(), roleID, service.UpdateRoleInput{
				Name:        req.Name,
				Description: req.Description,
			}, actorFrom(r))
			if err != nil {
				h.respondWithError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, role)
		case http.MethodDelete:
			if err := h.services.Roles.Delete(r.Context(), roleID, actorFrom(r)); err != nil {
				h.respondWithError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	default:
		writeError(w, http.StatusNotFound, "route not found")
	}
}

type assignEmployeeRequest struct {
	DepartmentID uint `json:"department_id"`
	RoleID       uint `json:"role_id"`
}

func (h *Handler) serveEmployees(w http.ResponseWriter, r *http.Request, rest []string) {
	switch {
	case len(rest) == 0:
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		employees, err := h.services.Employees.List(r.Context(), actorFrom(r))
		if err != nil {
			h.respondWithError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, employees)

	case len(rest) == 2 && rest[1] == "assign":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		employeeID, err := parseUintID(rest[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid employee id")
			return
		}
		var req assignEmployeeRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		employee, err := h.services.Employees.Assign(r.Context(), employeeID, req.DepartmentID, req.RoleID, actorFrom(r))
		if err != nil {
			h.respondWithError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, employee)

	default:
		writeError(w, http.StatusNotFound, "route not found")
	}
}

func (h *Handler) serveAnchors(w http.ResponseWriter, r *http.Request, rest []string) {
	switch {
	case len(rest) == 0:
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		anchors, err := h.services.Anchors.List(r.Context(), actorFrom(r))
		if err != nil {
			h.respondWithError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, anchors)

	case len(rest) == 1 && rest[0] == "salaried":
		h.handleCreateSalariedAnchor(w, r)

	case len(rest) == 1 && rest[0] == "commission":
		h.handleCreateCommissionAnchor(w, r)

	case len(rest) == 1:
		anchorID, err := parseUintID(rest[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid anchor id")
			return
		}
		switch r.Method {
		case http.MethodPut:
			h.handleEditAnchor(w, r, anchorID)
		case http.MethodDelete:
			h.handleDeleteAnchor(w, r, anchorID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}

	default:
		writeError(w, http.StatusNotFound, "route not found")
	}
}

type createSalariedAnchorRequest struct {
	Name        string  `json:"name"`
	EntryTime   *string `json:"entry_time"`
	BasicSalary string  `json:"basic_salary"`
}

func (h *Handler) handleCreateSalariedAnchor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createSalariedAnchorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entryTime, err := parseDate(req.EntryTime, "entry_time")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	basicSalary, err := parseDecimal(req.BasicSalary, "basic_salary")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	anchor, err := h.services.Anchors.CreateSalaried(r.Context(), service.CreateSalariedAnchorInput{
		Name:        req.Name,
		EntryTime:   entryTime,
		BasicSalary: basicSalary,
	}, actorFrom(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, anchor)
}

type createCommissionAnchorRequest struct {
	Name       string  `json:"name"`
	EntryTime  *string `json:"entry_time"`
	Percentage string  `json:"percentage"`
}

func (h *Handler) handleCreateCommissionAnchor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createCommissionAnchorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entryTime, err := parseDate(req.EntryTime, "entry_time")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	percentage, err := parseDecimal(req.Percentage, "percentage")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	anchor, err := h.services.Anchors.CreateCommission(r.Context(), service.CreateCommissionAnchorInput{
		Name:       req.Name,
		EntryTime:  entryTime,
		Percentage: percentage,
	}, actorFrom(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, anchor)
}

type editAnchorRequest struct {
	Name             string  `json:"name"`
	EntryTime        *string `json:"entry_time"`
	Address          string  `json:"address"`
	MomoNumber       string  `json:"momo_number"`
	MobileNumber     string  `json:"mobile_number"`
	IDNumber         string  `json:"id_number"`
	BasicSalaryOrNot bool    `json:"basic_salary_or_not"`
	BasicSalary      string  `json:"basic_salary"`
	Percentage       string  `json:"percentage"`
	LiveTime         string  `json:"live_time"`
	LiveSession      string  `json:"live_session"`
	AceAnchorOrNot   bool    `json:"ace_anchor_or_not"`
	Agent            string  `json:"agent"`
	TotalPaid        string  `json:"total_paid"`
	OwnedSalary      string  `json:"owned_salary"`
}

// handleEditAnchor accepts either a plain JSON body or multipart form data
// with a "payload" JSON part plus an optional "photo" file part.
func (h *Handler) handleEditAnchor(w http.ResponseWriter, r *http.Request, anchorID uint) {
	var req editAnchorRequest
	var photo *service.Attachment

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload JSON")
			return
		}
		file, header, err := r.FormFile("photo")
		switch {
		case err == nil:
			defer file.Close()
			photo = &service.Attachment{
				Filename: header.Filename,
				Content:  file,
			}
		case errors.Is(err, http.ErrMissingFile):
			// photo stays optional
		default:
			writeError(w, http.StatusBadRequest, "invalid photo upload")
			return
		}
	} else {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	input, err := editRequestToInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	input.Photo = photo

	anchor, err := h.services.Anchors.Edit(r.Context(), anchorID, input, actorFrom(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, anchor)
}

func (h *Handler) handleDeleteAnchor(w http.ResponseWriter, r *http.Request, anchorID uint) {
	action, err := service.ParseDeleteAction(r.URL.Query().Get("action"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	switch action {
	case service.DeleteActionRequest:
		confirmation, err := h.services.Anchors.RequestDelete(r.Context(), anchorID, r.URL.Query().Get("name"), actorFrom(r))
		if err != nil {
			h.respondWithError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, confirmation)
	case service.DeleteActionConfirm:
		if err := h.services.Anchors.ConfirmDelete(r.Context(), anchorID, actorFrom(r)); err != nil {
			h.respondWithError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) serveSearch(w http.ResponseWriter, r *http.Request, rest []string) {
	if len(rest) != 0 {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	result, err := h.services.Anchors.SearchByName(r.Context(), name, actorFrom(r))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) serveSystem(w http.ResponseWriter, r *http.Request, rest []string) {
	if len(rest) != 0 {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !actorFrom(r).IsAdmin {
		writeError(w, http.StatusForbidden, "administrator capability required")
		return
	}

	info, err := h.services.System.Collect(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) respondWithError(w http.ResponseWriter, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation, apperror.CodeInvalidArgument:
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperror.CodeConflict:
		writeError(w, http.StatusConflict, err.Error())
	case apperror.CodePermission:
		writeError(w, http.StatusForbidden, err.Error())
	default:
		h.logger.Printf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func parseUintID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}

func parseDate(raw *string, field string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, errors.New(field + " must be in YYYY-MM-DD format")
	}
	return &parsed, nil
}
