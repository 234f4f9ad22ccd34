package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/petshop-pix/internal/model"
	"github.com/anyulbade/petshop-pix/internal/pix"
	"github.com/anyulbade/petshop-pix/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MapError turns an error returned by a service into an HTTP status and body.
func MapError(err error) (int, ErrorResponse) {
	var invalid *pix.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest, ErrorResponse{Error: "invalid " + invalid.Field, Details: invalid.Reason}
	}

	var tooLong *pix.FieldTooLongError
	if errors.As(err, &tooLong) {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "unable to generate payment code", Details: tooLong.Error()}
	}

	switch {
	case errors.Is(err, pix.ErrChecksumMismatch),
		errors.Is(err, pix.ErrMalformedPayload),
		errors.Is(err, pix.ErrNotPix):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid PIX payload", Details: err.Error()}
	case errors.Is(err, service.ErrSettingsMissing):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.Is(err, service.ErrStatusConflict):
		return http.StatusConflict, ErrorResponse{Error: "charge status conflict", Details: err.Error()}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "22003": // numeric_value_out_of_range
			return http.StatusBadRequest, ErrorResponse{
				Error:   "value out of range",
				Details: pgErr.Message,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
