// Package server exposes phasor extraction over HTTP: an upload form, an HTML
// report page and a JSON endpoint.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	mdparser "github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/ukaji3/phasor-go/pkg/phasor"
	"github.com/ukaji3/phasor-go/pkg/phasor/config"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"github.com/ukaji3/phasor-go/pkg/phasor/output"
	"github.com/ukaji3/phasor-go/pkg/phasor/render"
)

// uploadField is the multipart field holding the HTML report.
const uploadField = "file"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Server serves phasor diagrams for uploaded HTML reports.
type Server struct {
	cfg       config.ServerConfig
	style     render.Style
	opts      phasor.Options
	logger    *slog.Logger
	router    *chi.Mux
	sanitizer *bluemonday.Policy
}

// New creates a Server from a configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = logger
	if opts.MaxBytes > cfg.Server.MaxUploadBytes {
		opts.MaxBytes = cfg.Server.MaxUploadBytes
	}

	s := &Server{
		cfg:       cfg.Server,
		style:     cfg.Style,
		opts:      opts,
		logger:    logger,
		router:    chi.NewRouter(),
		sanitizer: bluemonday.UGCPolicy(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/diagram", s.handleDiagramPage)
	s.router.Post("/api/diagram", s.handleDiagramJSON)
	s.router.Post("/api/diagram.xlsx", s.handleDiagramXLSX)
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// process reads the uploaded report and runs the extraction. A nil report
// means the upload itself was invalid and an error response was written.
func (s *Server) process(w http.ResponseWriter, r *http.Request) *models.Report {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("parse form: %v", err), http.StatusBadRequest)
		return nil
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		http.Error(w, fmt.Sprintf("missing %s field: %v", uploadField, err), http.StatusBadRequest)
		return nil
	}

	report := s.extract(file, header)
	report.ID = uuid.NewString()
	s.logger.Info("report processed",
		"request_id", middleware.GetReqID(r.Context()),
		"report_id", report.ID,
		"source", report.Source,
		"tables", report.TableCount,
		"error_kind", report.ErrorKind,
	)
	return report
}

func (s *Server) extract(file multipart.File, header *multipart.FileHeader) *models.Report {
	defer file.Close()
	// Failures are carried by the report itself.
	report, _ := phasor.Extract(file, header.Filename, s.opts)
	return report
}

func (s *Server) handleDiagramJSON(w http.ResponseWriter, r *http.Request) {
	report := s.process(w, r)
	if report == nil {
		return
	}
	s.writeJSON(w, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, report *models.Report) {
	data, err := output.ToJSON(report, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(report))
	w.Write(data)
}

// handleDiagramXLSX returns the report workbook. Failed extractions get the
// JSON report instead.
func (s *Server) handleDiagramXLSX(w http.ResponseWriter, r *http.Request) {
	report := s.process(w, r)
	if report == nil {
		return
	}
	if report.Failed() {
		s.writeJSON(w, report)
		return
	}

	var buf bytes.Buffer
	if err := output.WriteXLSX(&buf, report); err != nil {
		s.logger.Error("write workbook", "report_id", report.ID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, report.ID))
	w.Write(buf.Bytes())
}

func (s *Server) handleDiagramPage(w http.ResponseWriter, r *http.Request) {
	report := s.process(w, r)
	if report == nil {
		return
	}

	view := reportView{
		Report:  report,
		Preview: s.previewHTML(report.Preview),
	}
	if report.Diagram != nil {
		view.SVG = template.HTML(render.SVG(*report.Diagram, s.style))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusFor(report))
	if err := reportTemplate.Execute(w, view); err != nil {
		s.logger.Error("render report page", "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger.Error("render index page", "error", err)
	}
}

// previewHTML renders the markdown table preview as sanitized HTML.
func (s *Server) previewHTML(md string) template.HTML {
	if md == "" {
		return ""
	}
	p := mdparser.NewWithExtensions(mdparser.CommonExtensions)
	out := markdown.ToHTML([]byte(md), p, nil)
	return template.HTML(s.sanitizer.SanitizeBytes(out))
}

func statusFor(report *models.Report) int {
	if report.Failed() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}
