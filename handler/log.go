package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

// requestLogger returns a log entry tagged with the request's ID, if it has one.
func requestLogger(req *http.Request) *logrus.Entry {
	if id, ok := req.Context().Value(requestIDKey).(string); ok {
		return log.WithField("request_id", id)
	}
	return logrus.NewEntry(log)
}

func logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	req := params.Request
	requestLogger(req).Infof("%s -- %s -- %s -- %d", req.RemoteAddr, req.Method, params.URL.Path, params.StatusCode)
}

func logAndReturnError(w http.ResponseWriter, req *http.Request, httpResponseStr string, code int, consoleStr ...string) {
	// consoleStr is optional.
	if len(consoleStr) > 0 {
		requestLogger(req).Errorln(consoleStr[0])
	} else {
		requestLogger(req).Errorln(httpResponseStr)
	}
	writeJSON(w, code, ErrorPayload{Error: httpResponseStr})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("Encoding response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		log.Debugf("Writing response: %v", err)
	}
}
