// Package server delivers upload-driven reports over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"audit-report/internal/media"
	"audit-report/internal/output"
	"audit-report/internal/pipeline"
)

// Form field names of POST /reports.
const (
	FieldCSV    = "csv"
	FieldImages = "images"
	FieldLogo   = "logo"
)

type Server struct {
	opts     output.Options
	logo     string
	maxBytes int64
	log      *zap.Logger
}

// New returns a server rendering with opts. logo is a data URI used when an
// upload carries none; maxBytes bounds a whole upload.
func New(opts output.Options, logo string, maxBytes int64, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{opts: opts, logo: logo, maxBytes: maxBytes, log: log}
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/reports", s.handleReport)
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	if err := r.ParseMultipartForm(s.maxBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File[FieldCSV]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing %q file", FieldCSV))
		return
	}
	csvData, err := readPart(files[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	imgs := media.MapResolver{}
	for _, fh := range r.MultipartForm.File[FieldImages] {
		data, err := readPart(fh)
		if err != nil {
			s.log.Warn("could not load image", zap.String("path", fh.Filename), zap.Error(err))
			continue
		}
		imgs[media.Stem(fh.Filename)] = media.Encode(data, fh.Filename)
	}

	logo := s.logo
	if fhs := r.MultipartForm.File[FieldLogo]; len(fhs) > 0 {
		if data, err := readPart(fhs[0]); err == nil && len(data) > 0 {
			logo = media.Encode(data, fhs[0].Filename)
		}
	}

	rep, err := pipeline.Assemble(files[0].Filename, bytes.NewReader(csvData), logo)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	doc := output.Render(rep, imgs, s.opts)

	s.log.Info("report rendered",
		zap.String("source", rep.Source),
		zap.Int("images", len(imgs)),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, doc)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
