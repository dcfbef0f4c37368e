package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/santaluzia/hospital-booking/internal/content"
	"github.com/santaluzia/hospital-booking/internal/schedule"
	"github.com/santaluzia/hospital-booking/internal/validation"
)

func homeHandler(roster *schedule.Roster) http.HandlerFunc {
	type homeResponse struct {
		Hospital content.HospitalInfo  `json:"hospital"`
		Services []content.ServiceLine `json:"services"`
		Doctors  int                   `json:"doctors"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, homeResponse{
			Hospital: content.Hospital(),
			Services: content.Services(),
			Doctors:  len(roster.All()),
		})
	}
}

func doctorsHandler(roster *schedule.Roster) http.HandlerFunc {
	type doctorsResponse struct {
		Doctors []content.DoctorProfile `json:"doctors"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		matches := roster.Search(r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, doctorsResponse{
			Doctors: content.DoctorProfiles(matches),
		})
	}
}

func servicesHandler() http.HandlerFunc {
	type servicesResponse struct {
		Services []content.ServiceLine `json:"services"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, servicesResponse{Services: content.Services()})
	}
}

func aboutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Hospital())
	}
}

func faqHandler() http.HandlerFunc {
	type faqResponse struct {
		Entries []content.FAQEntry `json:"entries"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, faqResponse{Entries: content.FAQ()})
	}
}

func contactInfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := content.Hospital()
		info.About = nil
		writeJSON(w, http.StatusOK, info)
	}
}

func contactSubmitHandler(inbox *content.Inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		msg, err := inbox.Submit(content.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			var verr *validation.ValidationError
			if errors.As(err, &verr) {
				writeFieldError(w, http.StatusUnprocessableEntity, "validation_error", verr.Field, verr.Message)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, msg)
	}
}
