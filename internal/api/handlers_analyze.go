package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/clausewise/internal/document"
	"github.com/dgallion1/clausewise/internal/pipeline"
	"github.com/dgallion1/clausewise/internal/report"
)

const (
	formatJSON     = "json"
	formatHTML     = "html"
	formatMarkdown = "markdown"
	formatXLSX     = "xlsx"
)

var reportFormats = map[string]bool{formatJSON: true, formatHTML: true, formatMarkdown: true, formatXLSX: true}

// errFileTooLarge maps to 413.
var errFileTooLarge = errors.New("file too large")

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = formatJSON
	}
	if !reportFormats[format] {
		jsonError(w, fmt.Sprintf("unknown report format: %s", format), http.StatusBadRequest)
		return
	}

	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.formError(w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := s.readUpload(file)
	if err != nil {
		s.uploadError(w, err)
		return
	}

	start := time.Now()
	rep, err := s.analyzer.Analyze(r.Context(), document.RawDocument{
		Content:  data,
		Filename: sanitizeFilename(header.Filename),
	})
	s.stats.Record(time.Since(start), rep, err)
	if err != nil {
		s.analysisError(w, err)
		return
	}
	s.writeReport(w, rep, format)
}

func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		s.formError(w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	results := make([]map[string]any, len(files))
	var docs []document.RawDocument
	var slots []int
	for i, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		data, err := s.readFileHeader(fh)
		if err != nil {
			results[i] = map[string]any{"filename": filename, "error": err.Error()}
			continue
		}
		docs = append(docs, document.RawDocument{Content: data, Filename: filename})
		slots = append(slots, i)
	}

	start := time.Now()
	batch := s.analyzer.AnalyzeBatch(r.Context(), docs)
	perDoc := time.Since(start)
	if len(batch) > 0 {
		perDoc /= time.Duration(len(batch))
	}
	for j, res := range batch {
		s.stats.Record(perDoc, res.Report, res.Err)
		if res.Err != nil {
			if !pipeline.IsClientError(res.Err) {
				s.log.Error("batch analysis failed", "filename", res.Filename, "error", res.Err)
			}
			results[slots[j]] = map[string]any{"filename": res.Filename, "error": res.Err.Error()}
			continue
		}
		results[slots[j]] = map[string]any{"filename": res.Filename, "report": res.Report}
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file")
	}
	defer f.Close()
	return s.readUpload(f)
}

// readUpload reads at most MaxUploadBytes, failing with errFileTooLarge beyond that.
func (s *Server) readUpload(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: exceeds max size (%d bytes)", errFileTooLarge, s.cfg.MaxUploadBytes)
	}
	return data, nil
}

func (s *Server) formError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
		jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
}

func (s *Server) uploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, errFileTooLarge) {
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) analysisError(w http.ResponseWriter, err error) {
	if pipeline.IsClientError(err) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.Error("analysis failed", "error", err)
	jsonError(w, "analysis failed: "+err.Error(), http.StatusInternalServerError)
}

func (s *Server) writeReport(w http.ResponseWriter, rep *document.Report, format string) {
	switch format {
	case formatMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, report.Markdown(rep))
	case formatHTML:
		body, err := report.HTML(rep)
		if err != nil {
			s.analysisError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	case formatXLSX:
		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, rep); err != nil {
			s.analysisError(w, err)
			return
		}
		name := strings.TrimSuffix(rep.Info.Filename, filepath.Ext(rep.Info.Filename)) + "-analysis.xlsx"
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Write(buf.Bytes())
	default:
		writeJSON(w, http.StatusOK, rep)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "/" {
		name = "unnamed"
	}
	return name
}
