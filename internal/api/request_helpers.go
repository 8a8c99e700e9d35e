package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
)

var numericID = regexp.MustCompile(`^\d+$`)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. It is placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (uint64, bool) {
	return shared.GetUserID(r.Context())
}

// parseID parses a decimal path id. Only plain digits that fit in a uint64
// are accepted; signs, spaces and hex are not.
func parseID(raw string) (uint64, bool) {
	if !numericID.MatchString(raw) {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// idErrorMessage is the 400 message for a malformed id of the named entity.
func idErrorMessage(entity string) string {
	return fmt.Sprintf("%s ID must be a numeric value", entity)
}

// pathID extracts a numeric id from the URL path parameter param. On
// failure it writes a 400 carrying message and returns false; the caller
// must stop handling the request.
func pathID(w http.ResponseWriter, r *http.Request, param, message string) (uint64, bool) {
	raw := chi.URLParam(r, param)
	id, ok := parseID(raw)
	if !ok {
		logger.FromContext(r.Context()).Debug("invalid path id",
			slog.String("param", param),
			slog.String("value", raw))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message,
			domain.NewValidationError(param, "must be a numeric value", domain.ErrInvalidID))
		return 0, false
	}
	return id, true
}

// actorID returns the authenticated caller or writes a 401. The access gate
// normally guarantees it is present.
func actorID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return 0, false
	}
	return userID, true
}

// decodeAndValidate reads the JSON body into req and validates it. On
// failure it writes a 400 and returns false. invalidMessage, when set, is
// sent as the secondary message next to the field-level error.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, invalidMessage string) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		msg := shared.ValidationMessage(err)
		logger.FromContext(r.Context()).Debug("request validation failed",
			slog.String("path", r.URL.Path),
			slog.String("reason", msg))
		shared.RespondWithErrorDetail(w, r, http.StatusBadRequest, msg, invalidMessage)
		return false
	}
	return true
}
