package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/outlinekit/pdfoutline/internal/outline"
	"github.com/outlinekit/pdfoutline/internal/render"
)

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		jsonError(w, fmt.Sprintf("not a PDF file: %s", filename), http.StatusBadRequest)
		return
	}

	opts := render.Options{Indent: s.cfg.DefaultIndent}
	if v := r.URL.Query().Get("depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "depth must be a positive integer", http.StatusBadRequest)
			return
		}
		opts.MaxDepth = n
	}
	if v := r.URL.Query().Get("indent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "indent must be a positive integer", http.StatusBadRequest)
			return
		}
		opts.Indent = n
	}

	// The PDF reader needs a seekable file, so spool the upload to disk.
	tmp, err := os.CreateTemp("", "pdfoutline-*.pdf")
	if err != nil {
		jsonError(w, "failed to buffer upload", http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	n, err := io.Copy(tmp, io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	tmp.Close()
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if n > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	recs, err := s.extractor.Extract(tmpPath)
	if err != nil && !errors.Is(err, outline.ErrNoOutline) {
		jsonError(w, "failed to read PDF: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		vis := opts.Visible(recs)
		if vis == nil {
			vis = []outline.Record{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"file":    filename,
			"outline": vis,
		})
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, render.Markdown(filename, recs, opts))
	case "tree":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, render.Tree(filename, recs, opts))
	case "html":
		out, err := render.HTML(filename, recs, opts)
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, out)
	default:
		jsonError(w, "unknown format: "+format, http.StatusBadRequest)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
