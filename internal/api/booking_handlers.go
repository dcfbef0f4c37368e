package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/santaluzia/hospital-booking/internal/booking"
	"github.com/santaluzia/hospital-booking/internal/schedule"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

func agendaHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		ident := sess.Current()

		agenda, err := svc.Agenda(r.Context(), ident.ID, r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		resp := AgendaResponse{
			Upcoming: make([]AppointmentResponse, 0, len(agenda.Upcoming)),
			Past:     make([]AppointmentResponse, 0, len(agenda.Past)),
		}
		for i := range agenda.Upcoming {
			resp.Upcoming = append(resp.Upcoming, toAppointmentResponse(&agenda.Upcoming[i]))
		}
		for i := range agenda.Past {
			resp.Past = append(resp.Past, toAppointmentResponse(&agenda.Past[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func startDraftHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := svc.StartDraft(TokenFromContext(r.Context()))
		writeJSON(w, http.StatusCreated, draftResponse(svc, d, r))
	}
}

func getDraftHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Draft(TokenFromContext(r.Context()))
		if err != nil {
			handleDraftError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse(svc, d, r))
	}
}

// updateDraftHandler applies any subset of wizard fields, left to right, so
// a single request can legally set specialty and practitioner together.
func updateDraftHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Draft(TokenFromContext(r.Context()))
		if err != nil {
			handleDraftError(w, err)
			return
		}

		var req DraftUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if req.Specialty != nil {
			sp, err := schedule.ParseSpecialty(*req.Specialty)
			if err != nil {
				handleDraftError(w, err)
				return
			}
			if err := d.SetSpecialty(sp); err != nil {
				handleDraftError(w, err)
				return
			}
		}
		if req.PractitionerID != nil {
			if err := d.SetPractitioner(*req.PractitionerID); err != nil {
				handleDraftError(w, err)
				return
			}
		}
		if req.Date != nil {
			date, err := time.ParseInLocation(dateLayout, *req.Date, time.Local)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
				return
			}
			if err := d.SetDate(date); err != nil {
				handleDraftError(w, err)
				return
			}
		}
		if req.Time != nil {
			if err := d.SetTime(*req.Time); err != nil {
				handleDraftError(w, err)
				return
			}
		}
		if req.Notes != nil {
			d.SetNotes(*req.Notes)
		}

		writeJSON(w, http.StatusOK, draftResponse(svc, d, r))
	}
}

func nextStepHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Draft(TokenFromContext(r.Context()))
		if err != nil {
			handleDraftError(w, err)
			return
		}
		if err := d.Next(); err != nil {
			handleDraftError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse(svc, d, r))
	}
}

func backStepHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Draft(TokenFromContext(r.Context()))
		if err != nil {
			handleDraftError(w, err)
			return
		}
		d.Back()
		writeJSON(w, http.StatusOK, draftResponse(svc, d, r))
	}
}

func confirmDraftHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		ident := sess.Current()

		appt, err := svc.Confirm(r.Context(), TokenFromContext(r.Context()), ident.ID, ident.Name)
		if err != nil {
			handleDraftError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
	}
}

func handleDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		writeError(w, http.StatusNotFound, "no_draft", err.Error())
	case errors.Is(err, booking.ErrStepIncomplete):
		writeError(w, http.StatusUnprocessableEntity, "step_incomplete", err.Error())
	case errors.Is(err, booking.ErrOutOfOrder):
		writeError(w, http.StatusUnprocessableEntity, "out_of_order", err.Error())
	case errors.Is(err, booking.ErrDateUnavailable):
		writeError(w, http.StatusUnprocessableEntity, "date_unavailable", err.Error())
	case errors.Is(err, booking.ErrTimeUnavailable):
		writeError(w, http.StatusUnprocessableEntity, "time_unavailable", err.Error())
	case errors.Is(err, booking.ErrPractitionerMismatch):
		writeError(w, http.StatusUnprocessableEntity, "practitioner_mismatch", err.Error())
	case errors.Is(err, booking.ErrNotReviewing):
		writeError(w, http.StatusConflict, "not_reviewing", err.Error())
	case errors.Is(err, schedule.ErrUnknownSpecialty):
		writeError(w, http.StatusUnprocessableEntity, "unknown_specialty", err.Error())
	case errors.Is(err, schedule.ErrPractitionerNotFound):
		writeError(w, http.StatusNotFound, "practitioner_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// draftResponse renders the draft plus the eligible choices for its current
// step. The days list covers the month given by ?month=YYYY-MM, defaulting
// to the selected date's month, then the current one.
func draftResponse(svc *booking.Service, d *booking.Draft, r *http.Request) DraftResponse {
	resp := DraftResponse{
		Step:           d.Step.String(),
		Reviewing:      d.Reviewing,
		Specialty:      string(d.Specialty),
		PractitionerID: d.PractitionerID,
		Time:           d.Time,
		Notes:          d.Notes,
	}
	if !d.Date.IsZero() {
		resp.Date = d.Date.Format(dateLayout)
	}

	switch d.Step {
	case booking.StepSpecialty:
		for _, sp := range schedule.Specialties() {
			resp.Options.Specialties = append(resp.Options.Specialties, SpecialtyOption{
				Value: string(sp),
				Label: sp.Label(),
			})
		}
	case booking.StepPractitioner:
		resp.Options.Practitioners = toPractitionerOptions(svc.Roster().BySpecialty(d.Specialty))
	case booking.StepDateTime:
		resp.Options.Days = eligibleDays(svc.Provider(), monthOf(d, r), d.PractitionerID)
		if !d.Date.IsZero() {
			resp.Options.Slots = svc.Provider().Slots(d.Date, d.PractitionerID)
		}
	}

	return resp
}

func monthOf(d *booking.Draft, r *http.Request) time.Time {
	if q := r.URL.Query().Get("month"); q != "" {
		if m, err := time.ParseInLocation(monthLayout, q, time.Local); err == nil {
			return m
		}
	}
	if !d.Date.IsZero() {
		return time.Date(d.Date.Year(), d.Date.Month(), 1, 0, 0, 0, 0, d.Date.Location())
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func eligibleDays(provider schedule.Provider, month time.Time, practitionerID string) []string {
	var out []string
	for d := month; d.Month() == month.Month(); d = d.AddDate(0, 0, 1) {
		if provider.DayAvailable(d, practitionerID) {
			out = append(out, d.Format(dateLayout))
		}
	}
	return out
}
