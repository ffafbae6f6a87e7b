package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"resumematcher/backend/internal/models"
)

// EvaluatorService submits resume text, job text and domain to the external
// evaluation service and translates its response into the two persisted
// sub-records.
type EvaluatorService interface {
	Evaluate(ctx context.Context, resumeText, jobText, domain string) (*models.EvaluationResult, *models.ParsedEntities, error)
}

type evaluatorService struct {
	client  *resty.Client
	baseURL string
}

func NewEvaluatorService(baseURL string, timeout time.Duration) EvaluatorService {
	client := resty.New().SetTimeout(timeout)

	return &evaluatorService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Evaluate implements EvaluatorService. The call blocks until the service
// responds or the configured client timeout fires.
func (s *evaluatorService) Evaluate(ctx context.Context, resumeText, jobText, domain string) (*models.EvaluationResult, *models.ParsedEntities, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"resume_text": resumeText,
			"job_text":    jobText,
			"domain":      domain,
		}).
		Post(s.baseURL + "/evaluate")
	if err != nil {
		if isTimeout(err) {
			return nil, nil, fmt.Errorf("calling evaluation service: %w", ErrUpstreamTimeout)
		}
		return nil, nil, fmt.Errorf("calling evaluation service: %v: %w", err, ErrUpstreamUnavailable)
	}

	if resp.IsError() {
		return nil, nil, fmt.Errorf("evaluation service returned status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	body := resp.String()
	if !gjson.Valid(body) {
		return nil, nil, fmt.Errorf("evaluation service returned non-JSON body: %w", ErrMalformedResponse)
	}

	return mapEvaluationResult(body, jobText), mapParsedEntities(body), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// mapEvaluationResult reads the response field by field. A missing or
// mistyped field falls back to its default instead of failing the whole
// mapping, so the integration survives incremental schema changes upstream.
func mapEvaluationResult(body, jobText string) *models.EvaluationResult {
	return &models.EvaluationResult{
		SimilarityScores:     numberMap(gjson.Get(body, "similarity_scores")),
		SkillMatchRatio:      numberOr(gjson.Get(body, "skill_match_ratio"), 0),
		ExperienceMatchRatio: numberOr(gjson.Get(body, "experience_match_ratio"), 0),
		EducationMatchRatio:  numberOr(gjson.Get(body, "education_match_ratio"), 0),
		FinalScore:           numberOr(gjson.Get(body, "final_score"), 0),
		BestModelName:        stringOr(gjson.Get(body, "best_model_name"), "unknown"),
		MatchedSkills:        stringList(gjson.Get(body, "matched_skills")),
		MissingSkills:        stringList(gjson.Get(body, "missing_skills")),
		Recommendation:       stringOr(gjson.Get(body, "recommendation"), "Unknown"),
		FeatureImportances:   numberMap(gjson.Get(body, "feature_importances")),
		JobText:              jobText,
	}
}

func mapParsedEntities(body string) *models.ParsedEntities {
	parsed := gjson.Get(body, "parsed_entities")

	years := intOr(parsed.Get("experience_years"), 0)
	if years < 0 {
		years = 0
	}

	return &models.ParsedEntities{
		Skills:          stringList(parsed.Get("skills")),
		JobTitles:       stringList(parsed.Get("job_titles")),
		Companies:       stringList(parsed.Get("companies")),
		Education:       stringList(parsed.Get("education")),
		ExperienceYears: years,
		RawText:         stringOr(parsed.Get("raw_text"), ""),
	}
}

func numberOr(v gjson.Result, fallback float64) float64 {
	if v.Type == gjson.Number {
		return v.Float()
	}
	return fallback
}

func intOr(v gjson.Result, fallback int) int {
	if v.Type == gjson.Number {
		return int(v.Int())
	}
	return fallback
}

func stringOr(v gjson.Result, fallback string) string {
	if v.Type == gjson.String {
		return v.String()
	}
	return fallback
}

func stringList(v gjson.Result) []string {
	out := make([]string, 0)
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		if item.Type == gjson.String {
			out = append(out, item.String())
		}
	}
	return out
}

func numberMap(v gjson.Result) models.ScoreMap {
	out := models.ScoreMap{}
	if !v.IsObject() {
		return out
	}
	v.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Number {
			out[key.String()] = value.Float()
		}
		return true
	})
	return out
}
