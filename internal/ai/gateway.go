// Package ai wraps the hosted generative-language service behind four
// domain-shaped calls. Every call is a single best-effort round trip: no
// retry, no cache. Failures never reach the caller as errors; each call
// degrades to its fixed fallback and the cause is logged for diagnostics.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/config"
	"github.com/syncromed/syncromed-api/internal/domain"
)

// The fixed degradation strings, exported so callers deciding
// success-vs-fallback compare against the same values the gateway returns.
const (
	FallbackAnalyze  = "AI Service temporarily unavailable."
	FallbackExplain  = "Could not explain prescription."
	FallbackForecast = "AI Forecasting unavailable."
)

// maxForecastLines bounds the stock summary interpolated into the
// forecasting prompt.
const maxForecastLines = 100

var errMissingAPIKey = errors.New("ai: api key not configured")

type Gateway struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	log     *zap.Logger
}

func NewGateway(cfg config.AIConfig, log *zap.Logger) *Gateway {
	if cfg.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set; AI features will degrade to fallbacks")
	}
	return &Gateway{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// InflowPrediction is the structured result of PredictInflow.
type InflowPrediction struct {
	PredictedCount int    `json:"predictedCount"`
	RiskLevel      string `json:"riskLevel"`
	PeakHour       string `json:"peakHour"`
	Suggestion     string `json:"suggestion"`
}

// OfflinePrediction is returned whenever the prediction call cannot
// produce a well-formed result.
func OfflinePrediction() InflowPrediction {
	return InflowPrediction{PredictedCount: 0, RiskLevel: "UNKNOWN", PeakHour: "N/A", Suggestion: "AI Offline"}
}

// StockLine is one medicine summarized for the inventory forecast.
type StockLine struct {
	Name     string
	Stock    int
	MinLevel int
}

// AnalyzeSymptoms asks for a differential diagnosis with recommended tests
// and a disclaimer. Free-form text; never fails to the caller.
func (g *Gateway) AnalyzeSymptoms(ctx context.Context, symptoms, vitals string) string {
	prompt := fmt.Sprintf(`Act as a senior medical consultant. Analyze these symptoms: %q and vitals: %q.
Provide a concise differential diagnosis (top 3 possibilities), recommended tests, and immediate care suggestions.
Format as clear text with headers. Disclaimer: State clearly this is AI assistance, not final medical advice.`, symptoms, vitals)

	text, err := g.generateText(ctx, prompt, nil)
	if err != nil {
		g.log.Error("symptom analysis call failed", zap.Error(err))
		return FallbackAnalyze
	}
	if text == "" {
		return "Analysis failed."
	}
	return text
}

// ExplainPrescription turns a prescription into plain language for a
// patient.
func (g *Gateway) ExplainPrescription(ctx context.Context, prescription string) string {
	prompt := fmt.Sprintf(`Explain this medical prescription to a patient in simple, non-medical language (EL5): %q.
Include what the medicine does, how to take it generally, and common side effects to watch for.`, prescription)

	text, err := g.generateText(ctx, prompt, nil)
	if err != nil {
		g.log.Error("prescription explanation call failed", zap.Error(err))
		return FallbackExplain
	}
	if text == "" {
		return "Explanation failed."
	}
	return text
}

// PredictInflow requests a schema-constrained JSON prediction of patient
// inflow for the next 24 hours. Any transport or shape failure returns the
// offline prediction.
func (g *Gateway) PredictInflow(ctx context.Context, stats domain.HospitalStats, dayOfWeek string) InflowPrediction {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		g.log.Error("marshalling stats snapshot", zap.Error(err))
		return OfflinePrediction()
	}

	prompt := fmt.Sprintf(`Given current hospital stats: %s and today is %s.
Predict patient inflow for the next 24 hours. Consider factors like weekends or typical flu patterns (randomized simulation).
Return JSON format.`, statsJSON, dayOfWeek)

	schema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"predictedCount": map[string]any{"type": "NUMBER"},
			"riskLevel":      map[string]any{"type": "STRING"},
			"peakHour":       map[string]any{"type": "STRING"},
			"suggestion":     map[string]any{"type": "STRING"},
		},
	}

	text, err := g.generateText(ctx, prompt, schema)
	if err != nil {
		g.log.Error("inflow prediction call failed", zap.Error(err))
		return OfflinePrediction()
	}

	return coercePrediction([]byte(text), g.log)
}

// ForecastInventory summarizes the given stock lines into one prompt and
// asks for restocking priorities.
func (g *Gateway) ForecastInventory(ctx context.Context, lines []StockLine) string {
	if len(lines) > maxForecastLines {
		lines = lines[:maxForecastLines]
	}
	summary := make([]string, 0, len(lines))
	for _, l := range lines {
		summary = append(summary, fmt.Sprintf("%s: %d units (Min: %d)", l.Name, l.Stock, l.MinLevel))
	}

	prompt := fmt.Sprintf(`Analyze this pharmacy stock: %s.
Identify items at risk of running out soon based on generic usage patterns.
Suggest restocking priorities. Keep it concise.`, strings.Join(summary, ", "))

	text, err := g.generateText(ctx, prompt, nil)
	if err != nil {
		g.log.Error("inventory forecast call failed", zap.Error(err))
		return FallbackForecast
	}
	if text == "" {
		return "Forecasting failed."
	}
	return text
}

// coercePrediction validates the raw model output into the exact
// InflowPrediction shape. Missing fields or an unknown risk level degrade
// to the offline prediction rather than surfacing partial data.
func coercePrediction(raw []byte, log *zap.Logger) InflowPrediction {
	var parsed struct {
		PredictedCount *float64 `json:"predictedCount"`
		RiskLevel      *string  `json:"riskLevel"`
		PeakHour       *string  `json:"peakHour"`
		Suggestion     *string  `json:"suggestion"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Warn("inflow prediction response is not valid JSON", zap.Error(err))
		return OfflinePrediction()
	}
	if parsed.PredictedCount == nil || parsed.RiskLevel == nil || parsed.PeakHour == nil || parsed.Suggestion == nil {
		log.Warn("inflow prediction response missing required fields")
		return OfflinePrediction()
	}
	switch *parsed.RiskLevel {
	case "LOW", "MEDIUM", "HIGH", "CRITICAL":
	default:
		log.Warn("inflow prediction has unknown risk level", zap.String("risk_level", *parsed.RiskLevel))
		return OfflinePrediction()
	}
	return InflowPrediction{
		PredictedCount: int(*parsed.PredictedCount),
		RiskLevel:      *parsed.RiskLevel,
		PeakHour:       *parsed.PeakHour,
		Suggestion:     *parsed.Suggestion,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// generateText performs one generateContent round trip. A non-nil schema
// requests structured JSON output.
func (g *Gateway) generateText(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	if g.apiKey == "" {
		return "", errMissingAPIKey
	}

	reqBody := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	if schema != nil {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
