package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"linkedopt/internal/ai"
	"linkedopt/internal/gaps"
	"linkedopt/internal/images"
	"linkedopt/internal/observability"
	"linkedopt/internal/scoring"
	"linkedopt/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// newAIService builds the AI service with the per-operation provider
// configuration and the server's shared telemetry and training sinks.
func (s *Server) newAIService() (*ai.Service, error) {
	extractCfg := s.AppConfig.GetExtractConfig()
	optimizeCfg := s.AppConfig.GetOptimizeConfig()
	return ai.NewService(ai.ServiceOptions{
		Extract:  &extractCfg,
		Optimize: &optimizeCfg,
		Together: s.AppConfig.GetTogetherConfig(),
		Recorder: s.Recorder,
		Training: s.Training,
	}, s.Logger)
}

// createExtractHandler wraps profile extraction with observability. It
// accepts either a multipart upload (field "images") or a JSON body of
// base64-encoded images.
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("linkedopt.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		raw, err := s.readUploadedImages(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid upload", err.Error(), http.StatusBadRequest)
			return
		}
		if len(raw) == 0 {
			err := fmt.Errorf("no images provided")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "No images provided", "at least one profile screenshot is required", http.StatusBadRequest)
			return
		}
		if s.MaxImages > 0 && len(raw) > s.MaxImages {
			err := fmt.Errorf("too many images: %d", len(raw))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Too many images",
				fmt.Sprintf("at most %d images are accepted per request", s.MaxImages), http.StatusBadRequest)
			return
		}

		prepared := make([][]byte, 0, len(raw))
		for i, data := range raw {
			jpg, err := images.Prepare(data, s.AppConfig.App.MaxImageWidth)
			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid image",
					fmt.Sprintf("image %d could not be processed: %v", i+1, err), http.StatusBadRequest)
				return
			}
			prepared = append(prepared, jpg)
		}

		span.SetAttributes(
			attribute.Int("request.image_count", len(prepared)),
			attribute.String("operation", "extract"),
		)

		aiService, err := s.newAIService()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}
		defer s.closeAIService(aiService)

		metrics := om.GetMetrics()
		var result ExtractResponse
		err = metrics.TrackAIOperationWithTokens(ctx, "extract", func(ctx context.Context) *observability.AIOperationResult {
			profile, validation, aiErr := aiService.ExtractProfile(ctx, prepared)
			result = ExtractResponse{Profile: profile, Validation: validation}
			return &observability.AIOperationResult{Error: aiErr}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "profile_extracted", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to extract profile", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "profile_extracted", true, om,
			attribute.Int("input.image_count", len(prepared)),
			attribute.Int("output.skill_count", len(result.Profile.Skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("profile.valid", result.Validation.IsValid),
		)

		writeJSONResponse(w, result)
	}
}

// createScoreHandler runs the heuristic quality scorer.
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("linkedopt.api")
		_, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Profile.IsEmpty() {
			err := fmt.Errorf("empty profile")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Empty profile", "profile field must carry at least one section", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("target.industry", req.Target.Industry),
			attribute.String("target.role", req.Target.Role),
			attribute.String("operation", "score"),
		)

		scorer := scoring.NewScorer()
		quality := scorer.Score(req.Profile, req.Target)
		result := ScoreResponse{
			Quality:         quality,
			Recommendations: scorer.Recommendations(quality),
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", quality.Overall.Score),
		)

		writeJSONResponse(w, result)
	}
}

// createGapsHandler runs the benchmark gap analysis.
func (s *Server) createGapsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("linkedopt.api")
		_, span := tracer.Start(ctx, "api.gaps")
		defer span.End()

		var req GapsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Target.Industry) == "" || strings.TrimSpace(req.Target.Role) == "" {
			err := fmt.Errorf("missing target")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target", "target.industry and target.role are required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("target.industry", req.Target.Industry),
			attribute.String("target.role", req.Target.Role),
			attribute.String("operation", "gaps"),
		)

		analysis := gaps.NewAnalyzer().Analyze(req.Profile, req.Target)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("gaps.count", len(analysis.Gaps)),
			attribute.Int("gaps.completeness", analysis.CompletenessScore),
		)

		writeJSONResponse(w, analysis)
	}
}

// createOptimizeHandler wraps report generation with observability.
func (s *Server) createOptimizeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("linkedopt.api")
		ctx, span := tracer.Start(ctx, "api.optimize")
		defer span.End()

		var req OptimizeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Profile.IsEmpty() {
			err := fmt.Errorf("empty profile")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Empty profile", "profile field must carry at least one section", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Target.Industry) == "" || strings.TrimSpace(req.Target.Role) == "" {
			err := fmt.Errorf("missing target")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target", "target.industry and target.role are required", http.StatusBadRequest)
			return
		}

		modelChoice := req.ModelChoice
		if modelChoice == "" {
			modelChoice = s.AppConfig.AI.DefaultModelChoice
		}

		span.SetAttributes(
			attribute.String("target.industry", req.Target.Industry),
			attribute.String("target.role", req.Target.Role),
			attribute.String("model_choice", modelChoice),
			attribute.Bool("followup", req.AdditionalContext != ""),
			attribute.String("operation", "optimize"),
		)

		aiService, err := s.newAIService()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}
		defer s.closeAIService(aiService)

		input := types.OptimizationRequest{
			Profile:           req.Profile,
			Target:            req.Target,
			ModelChoice:       modelChoice,
			AdditionalContext: req.AdditionalContext,
		}

		metrics := om.GetMetrics()
		var report types.OptimizationReport
		err = metrics.TrackAIOperationWithTokens(ctx, "optimize", func(ctx context.Context) *observability.AIOperationResult {
			output, aiErr := aiService.Optimize(ctx, input)
			report = output
			return &observability.AIOperationResult{
				Error: aiErr,
				TokenUsage: &observability.TokenUsage{
					InputTokens:  int64(output.InputTokens),
					OutputTokens: int64(output.OutputTokens),
					TotalTokens:  int64(output.InputTokens + output.OutputTokens),
				},
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "report_generated", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to generate report", err.Error(), http.StatusInternalServerError)
			return
		}

		validation := aiService.ValidateReport(report.Report, req.Target)

		metrics.RecordBusinessMetric(ctx, "report_generated", true, om,
			attribute.String("model_choice", report.ModelChoice),
			attribute.Int("validation.score", validation.Score))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.report_length", len(report.Report)),
			attribute.Int("validation.score", validation.Score),
		)

		writeJSONResponse(w, OptimizeResponse{Report: report, Validation: validation})
	}
}

// createTelemetryStatsHandler reports aggregated pipeline usage.
func (s *Server) createTelemetryStatsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("linkedopt.api")
		_, span := tracer.Start(ctx, "api.telemetry_stats")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		stats := s.Recorder.UsageStats()
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("telemetry.total_events", stats.TotalEvents),
		)

		writeJSONResponse(w, stats)
	}
}

// readUploadedImages decodes the request into raw image payloads from
// either a multipart form or a base64 JSON body.
func (s *Server) readUploadedImages(r *http.Request) ([][]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.readMultipartImages(r)
	}

	var req ExtractRequest
	if err := parseJSONRequest(r, &req); err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(req.Images))
	for i, encoded := range req.Images {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("image %d is not valid base64: %w", i+1, err)
		}
		out = append(out, data)
	}
	return out, nil
}

func (s *Server) readMultipartImages(r *http.Request) ([][]byte, error) {
	maxMemory := s.MaxUploadSize
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	if r.MultipartForm == nil {
		return nil, fmt.Errorf("no multipart form data")
	}

	var out [][]byte
	for _, header := range r.MultipartForm.File["images"] {
		data, err := readFormFile(header)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}
	return data, nil
}

// closeAIService releases per-request provider clients.
func (s *Server) closeAIService(svc *ai.Service) {
	if err := svc.Close(); err != nil {
		s.Logger.Warn("Failed to close AI service", "error", err)
	}
}

// writeJSONResponse encodes the payload as JSON.
func writeJSONResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
