package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/puIad/nlp-project/internal/config"
	"github.com/puIad/nlp-project/internal/core/ports"
	"github.com/puIad/nlp-project/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	cfg      config.Config
	ingestor ports.CVIngestor
	reader   ports.CVReader
	reports  ports.ReportService
	metrics  *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	ingestor ports.CVIngestor,
	reader ports.CVReader,
	reports ports.ReportService,
	httpMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:      cfg,
		ingestor: ingestor,
		reader:   reader,
		reports:  reports,
		metrics:  httpMetrics,
	}
}

func (rt *Router) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/cvs", rt.uploadCV)
	mux.HandleFunc("/v1/cvs/", rt.getCVByID)
	mux.HandleFunc("/v1/admin/report.xlsx", rt.exportReport)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	openapiRouter, err := loadOpenAPIRouter()
	if err != nil {
		return nil, err
	}

	var handler http.Handler = mux
	handler = openapiValidationMiddleware(openapiRouter, handler)
	if rt.cfg.APIRateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	}
	if rt.cfg.APIMaxInFlight > 0 {
		handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, time.Duration(rt.cfg.APIInFlightWaitMS)*time.Millisecond)
	}
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler, nil
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) maxUploadBytes() int64 {
	if rt.cfg.APIMaxUploadMB > 0 {
		return int64(rt.cfg.APIMaxUploadMB) << 20
	}
	return 16 << 20
}

func (rt *Router) uploadCV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	maxBytes := rt.maxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		rt.recordUpload("rejected", 0)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	meta := ports.UploadMeta{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		FullName: strings.TrimSpace(r.FormValue("full_name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
	}

	cv, err := rt.ingestor.Upload(r.Context(), meta, file)
	if err != nil {
		rt.recordUpload("rejected", 0)
		writeError(w, err)
		return
	}

	rt.recordUpload("accepted", fileHeader.Size)
	writeJSON(w, http.StatusAccepted, cv)
}

func (rt *Router) getCVByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/cvs/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cv id is required"})
		return
	}

	cv, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cv)
}

func (rt *Router) exportReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	data, err := rt.reports.ExportXLSX(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("cv-report-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (rt *Router) recordUpload(outcome string, size int64) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordUpload(serviceName, outcome, size)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
