package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resume is an uploaded candidate document plus its evaluation against a job.
// ParsedEntities and EvaluationResult are populated together once the external
// evaluation succeeds; a resume is never stored with only one of the two.
type Resume struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FileName         string            `gorm:"type:text" json:"fileName"`
	RawText          string            `gorm:"type:text" json:"rawText"`
	Domain           string            `gorm:"type:text;index" json:"domain"`
	ParsedEntities   *ParsedEntities   `gorm:"type:jsonb" json:"parsedEntities,omitempty"`
	EvaluationResult *EvaluationResult `gorm:"type:jsonb" json:"evaluationResult,omitempty"`
	CreatedAt        time.Time         `gorm:"type:timestamp;default:now();index" json:"createdAt"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

// ParsedEntities holds the structured facts the evaluation service extracted
// from the resume text.
type ParsedEntities struct {
	Skills          []string `json:"skills"`
	JobTitles       []string `json:"jobTitles"`
	Companies       []string `json:"companies"`
	Education       []string `json:"education"`
	ExperienceYears int      `json:"experienceYears"`
	RawText         string   `json:"rawText,omitempty"`
}

func (p *ParsedEntities) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *ParsedEntities) Scan(value interface{}) error {
	return scanJSONB(value, p)
}

// EvaluationResult is the scoring output of the external evaluation service
// for one resume/job pair, including a copy of the job text it was scored
// against.
type EvaluationResult struct {
	SimilarityScores     ScoreMap `json:"similarityScores"`
	SkillMatchRatio      float64  `json:"skillMatchRatio"`
	ExperienceMatchRatio float64  `json:"experienceMatchRatio"`
	EducationMatchRatio  float64  `json:"educationMatchRatio"`
	FinalScore           float64  `json:"finalScore"`
	BestModelName        string   `json:"bestModelName"`
	MatchedSkills        []string `json:"matchedSkills"`
	MissingSkills        []string `json:"missingSkills"`
	Recommendation       string   `json:"recommendation"`
	FeatureImportances   ScoreMap `json:"featureImportances"`
	JobText              string   `json:"jobText"`
}

func (e *EvaluationResult) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

func (e *EvaluationResult) Scan(value interface{}) error {
	return scanJSONB(value, e)
}
