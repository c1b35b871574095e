package status

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/tempo-networks/budget-server/internal/logging"
)

type Handler struct {
	DB *sql.DB
}

func NewHandler(db *sql.DB) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		endTimer := logData.AddTiming("db_ping")
		err := h.DB.PingContext(req.Context())
		endTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return err
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
