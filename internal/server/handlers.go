package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kwicl/Skyara-App/internal/pipeline"
	"github.com/kwicl/Skyara-App/pkg/cost"
	"github.com/kwicl/Skyara-App/pkg/project"
	"github.com/kwicl/Skyara-App/pkg/report"
	"github.com/kwicl/Skyara-App/pkg/validation"
)

var errNoProject = errors.New("no project configured; start the server with a project path")

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "skyara",
	})
}

func (s *Server) handleReference(w http.ResponseWriter, _ *http.Request) {
	ref := s.opts.Reference
	if ref == nil {
		ref = cost.DefaultReference()
	}
	writeJSON(w, http.StatusOK, ref)
}

func (s *Server) handleProject(w http.ResponseWriter, _ *http.Request) {
	f, status, err := s.loadConfigured()
	if err != nil {
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	f, status, err := s.loadConfigured()
	if err != nil {
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, pipeline.Validate(f, s.opts.Reference))
}

func (s *Server) handleEstimateConfigured(w http.ResponseWriter, _ *http.Request) {
	f, status, err := s.loadConfigured()
	if err != nil {
		writeError(w, status, err)
		return
	}
	s.respondEstimate(w, f)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	f, err := decodeProject(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.respondEstimate(w, f)
}

func (s *Server) respondEstimate(w http.ResponseWriter, f *project.File) {
	out, ok := s.run(w, f)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	s.handleReport(w, r, "application/pdf", "pdf", report.WritePDF)
}

func (s *Server) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	s.handleReport(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", report.WriteXLSX)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, contentType, ext string, render func(io.Writer, *report.Document) error) {
	f, err := decodeProject(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out, ok := s.run(w, f)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, report.Build(f.Name, out.Result)); err != nil {
		log.Error().Err(err).Str("format", ext).Msg("rendering report")
		writeError(w, http.StatusInternalServerError, fmt.Errorf("rendering report: %w", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, reportFileName(f.Name), ext))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// run executes the pipeline and writes the error response itself when it
// fails. Invalid projects get 422 with the full validation report.
func (s *Server) run(w http.ResponseWriter, f *project.File) (*pipeline.Outcome, bool) {
	out, err := pipeline.Run(f, s.opts.Reference)
	if err != nil {
		var cfgErr *validation.ConfigurationError
		if errors.As(err, &cfgErr) {
			writeJSON(w, http.StatusUnprocessableEntity, cfgErr.Report)
			return nil, false
		}
		log.Error().Err(err).Str("project", f.Name).Msg("estimation failed")
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return out, true
}

func (s *Server) loadConfigured() (*project.File, int, error) {
	if s.opts.ProjectPath == "" {
		return nil, http.StatusNotFound, errNoProject
	}
	f, err := project.LoadProject(s.opts.ProjectPath)
	if err != nil {
		log.Error().Err(err).Str("path", s.opts.ProjectPath).Msg("loading project")
		return nil, http.StatusInternalServerError, err
	}
	return f, http.StatusOK, nil
}

func decodeProject(w http.ResponseWriter, r *http.Request) (*project.File, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return project.Parse(data, project.FormatJSON)
}

func reportFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "estimate"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
