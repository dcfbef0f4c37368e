package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/santaluzia/hospital-booking/internal/identity"
	"github.com/santaluzia/hospital-booking/internal/validation"
)

func loginHandler(sessions *identity.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		token, sess := sessions.Issue()

		ident, err := sess.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			sessions.Drop(r.Context(), token)
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{
			Token:    token,
			Identity: toIdentityResponse(ident),
		})
	}
}

func registerHandler(sessions *identity.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		token, sess := sessions.Issue()

		ident, err := sess.SignUp(r.Context(), req.Name, req.Email, req.Password, req.NationalID)
		if err != nil {
			sessions.Drop(r.Context(), token)
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, SessionResponse{
			Token:    token,
			Identity: toIdentityResponse(ident),
		})
	}
}

func logoutHandler(sessions *identity.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Drop(r.Context(), TokenFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}
}

func getProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusInternalServerError, "internal_error", "missing session")
			return
		}
		writeJSON(w, http.StatusOK, toIdentityResponse(sess.Current()))
	}
}

func updateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusInternalServerError, "internal_error", "missing session")
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		ident, err := sess.UpdateProfile(r.Context(), identity.ProfileUpdate{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			BirthDate: req.BirthDate,
			Address:   req.Address,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			handleAuthError(w, err)
			return
		}
		if ident == nil {
			// Session expired between middleware and handler.
			writeError(w, http.StatusUnauthorized, "authentication_required", "no active session")
			return
		}

		writeJSON(w, http.StatusOK, toIdentityResponse(ident))
	}
}

func handleAuthError(w http.ResponseWriter, err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFieldError(w, http.StatusUnprocessableEntity, "validation_error", verr.Field, verr.Message)
	case errors.Is(err, identity.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, identity.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email_taken", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
