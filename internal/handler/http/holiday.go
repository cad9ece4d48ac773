package http

import (
	"encoding/json"
	"net/http"
	"time"

	holidayDomain "github.com/agrovista-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/agrovista-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type createHolidayRequest struct {
	Company string `json:"company"`
	Date    string `json:"date"`
	Name    string `json:"name"`
}

func (req *createHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(req.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type holidayHandlerImpl struct {
	holidayRepo holidayDomain.HolidayRepository
}

func NewHolidayHandler(holidayRepo holidayDomain.HolidayRepository) HolidayHandler {
	return &holidayHandlerImpl{holidayRepo: holidayRepo}
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req createHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := h.holidayRepo.Create(r.Context(), holidayDomain.Holiday{
		ID:      uuid.NewString(),
		Company: req.Company,
		Date:    date,
		Name:    req.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday saved", created)
}

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	year := time.Now().UTC().Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	holidays, err := h.holidayRepo.ListBetween(r.Context(), company, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holidays)
}
