package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/diff"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/readability"
	"github.com/quillworks/inkwell/internal/storage"
	"go.uber.org/zap"
)

// maxUploadBytes bounds multipart uploads. Extracted text is still subject
// to models.MaxSubmissionBytes; the raw file may be larger (PDF overhead).
const maxUploadBytes = 20 << 20

type analyzeRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	report := s.analyzer.Analyze(req.Text)
	s.respondJSON(w, http.StatusOK, report)
}

type diffRequest struct {
	Original string `json:"original"`
	Modified string `json:"modified"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	segments := diff.Diff(req.Original, req.Modified)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"segments": segments})
}

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var input models.SubmissionInput
	source := "json"

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "file field is required")
			return
		}
		defer file.Close()
		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "failed to read upload")
			return
		}
		if len(content) > maxUploadBytes {
			s.respondError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		text, err := s.extractor.ExtractBytes(content, strings.ToLower(filepath.Ext(header.Filename)))
		if err != nil {
			s.logger.Error("text extraction failed",
				zap.String("filename", header.Filename), zap.Error(err))
			s.respondError(w, http.StatusUnprocessableEntity, "could not extract text from file")
			return
		}
		input.Content = text
		input.Title = r.FormValue("title")
		if input.Title == "" {
			base := filepath.Base(header.Filename)
			input.Title = strings.TrimSuffix(base, filepath.Ext(base))
		}
		source = filepath.Base(header.Filename)
	} else {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := input.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := &models.Submission{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Source:    source,
		WordCount: len(readability.Words(input.Content)),
	}
	if err := s.storage.CreateSubmission(r.Context(), sub); err != nil {
		s.logger.Error("create submission failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.archive.IndexSubmission(sub); err != nil {
		s.logger.Warn("archive indexing failed", zap.String("id", sub.ID), zap.Error(err))
	}
	s.respondJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	subs, err := s.storage.ListSubmissions(r.Context(), offset, limit)
	if err != nil {
		s.logger.Error("list submissions failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"submissions": subs,
		"offset":      offset,
		"limit":       limit,
	})
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := s.storage.GetSubmission(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "submission not found")
		return
	}
	s.respondJSON(w, http.StatusOK, sub)
}

func (s *Server) handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.storage.GetSubmission(r.Context(), id); err != nil {
		s.respondError(w, http.StatusNotFound, "submission not found")
		return
	}
	if err := s.storage.DeleteSubmission(r.Context(), id); err != nil {
		s.logger.Error("delete submission failed", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.archive.Delete(id); err != nil {
		s.logger.Warn("archive de-indexing failed", zap.String("id", id), zap.Error(err))
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// loadSubmission fetches the submission for a feedback operation, writing
// the 404 itself when absent.
func (s *Server) loadSubmission(w http.ResponseWriter, r *http.Request) *models.Submission {
	id := chi.URLParam(r, "id")
	sub, err := s.storage.GetSubmission(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "submission not found")
		return nil
	}
	return sub
}

// decodeOptions decodes an optional JSON body into opts. An empty body is
// allowed; every options type has workable defaults.
func decodeOptions(r *http.Request, opts interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(opts)
	if err == io.EOF {
		return nil
	}
	return err
}

// respondAIError maps feedback-service failures to HTTP statuses. Upstream
// model failures and unusable replies surface as 502 so clients can
// distinguish them from our own faults.
func (s *Server) respondAIError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op+" failed", zap.Error(err))
	if errors.Is(err, ai.ErrUpstream) || errors.Is(err, ai.ErrBadResponse) {
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	sub := s.loadSubmission(w, r)
	if sub == nil {
		return
	}
	var opts models.EvaluateOptions
	if err := decodeOptions(r, &opts); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := opts.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.feedback.Evaluate(r.Context(), sub, &opts)
	if err != nil {
		s.respondAIError(w, "evaluate", err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	sub := s.loadSubmission(w, r)
	if sub == nil {
		return
	}
	var opts models.RewriteOptions
	if err := decodeOptions(r, &opts); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := opts.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.feedback.Rewrite(r.Context(), sub, &opts)
	if err != nil {
		s.respondAIError(w, "rewrite", err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRestructure(w http.ResponseWriter, r *http.Request) {
	sub := s.loadSubmission(w, r)
	if sub == nil {
		return
	}
	var opts models.RestructureOptions
	if err := decodeOptions(r, &opts); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := opts.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.feedback.Restructure(r.Context(), sub, &opts)
	if err != nil {
		s.respondAIError(w, "restructure", err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleFigures(w http.ResponseWriter, r *http.Request) {
	sub := s.loadSubmission(w, r)
	if sub == nil {
		return
	}
	var opts models.FigureOptions
	if err := decodeOptions(r, &opts); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := opts.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.feedback.EvaluateFigure(r.Context(), sub, &opts)
	if err != nil {
		s.respondAIError(w, "figure evaluation", err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCoherence(w http.ResponseWriter, r *http.Request) {
	sub := s.loadSubmission(w, r)
	if sub == nil {
		return
	}
	var opts models.CoherenceOptions
	if err := decodeOptions(r, &opts); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := opts.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.feedback.AnalyzeCoherence(r.Context(), sub, &opts)
	if err != nil {
		s.respondAIError(w, "coherence analysis", err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	sub := s.loadSubmission(w, r)
	if sub == nil {
		return
	}
	records, err := s.storage.ListFeedbackBySubmission(r.Context(), sub.ID)
	if err != nil {
		s.logger.Error("list feedback failed", zap.String("id", sub.ID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"feedback": records})
}

func (s *Server) handleArchiveSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := queryInt(r, "limit", 10)
	hits, err := s.archive.Search(query, limit)
	if err != nil {
		s.logger.Error("archive search failed", zap.String("q", query), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"hits": hits, "query": query})
}

func (s *Server) handleListSamples(w http.ResponseWriter, r *http.Request) {
	all, err := s.samples.List()
	if err != nil {
		s.logger.Error("list samples failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"samples": all})
}

func (s *Server) handleGetSample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sample, err := s.samples.Get(id)
	if err != nil {
		s.logger.Error("get sample failed", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sample == nil {
		s.respondError(w, http.StatusNotFound, "sample not found")
		return
	}
	s.respondJSON(w, http.StatusOK, sample)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subCount, err := s.storage.CountSubmissions(ctx)
	if err != nil {
		s.logger.Error("status: count submissions failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	fbCount, err := s.storage.CountFeedback(ctx)
	if err != nil {
		s.logger.Error("status: count feedback failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]interface{}{
		"submissions": subCount,
		"feedback":    fbCount,
	}
	if indexed, err := s.archive.Count(); err == nil {
		resp["archive_indexed"] = indexed
	}
	if diskBytes, err := storage.DiskUsageBytes(
		s.config.Storage.DatabasePath,
		s.config.Storage.BleveIndexPath,
	); err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	resp["config"] = map[string]interface{}{
		"model":               s.config.AI.Model,
		"long_sentence_words": s.config.Analysis.LongSentenceWords,
		"max_long_sentences":  s.config.Analysis.MaxLongSentences,
		"database_path":       s.config.Storage.DatabasePath,
		"bleve_index_path":    s.config.Storage.BleveIndexPath,
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
