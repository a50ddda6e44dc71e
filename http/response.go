package http

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListDataResponse struct {
	Rows  interface{} `json:"rows"`
	Total int         `json:"total"`
}

func DataResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Data:    data,
	})
}

func SuccessResponse(w http.ResponseWriter, data interface{}) {
	DataResponse(w, http.StatusOK, data)
}

func CreatedResponse(w http.ResponseWriter, data interface{}) {
	DataResponse(w, http.StatusCreated, data)
}

func ListResponse(w http.ResponseWriter, rows interface{}, total int) {
	SuccessResponse(w, ListDataResponse{Rows: rows, Total: total})
}

// ErrorResponse writes err as a list of AppErrors. 5xx errors are logged
// with the request logger.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	appErr := toAppError(err)
	if appErr.Status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	DataResponse(w, appErr.Status, []*AppError{appErr})
}

func ValidationResponse(w http.ResponseWriter, errs []*AppError) {
	DataResponse(w, http.StatusBadRequest, errs)
}
