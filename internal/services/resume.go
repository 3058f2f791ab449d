package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot-backend/internal/clients/gemini"
	"github.com/careerpilot/careerpilot-backend/internal/data/repos"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/requestdata"
	"github.com/careerpilot/careerpilot-backend/internal/resume"
)

const resumeSystemPrompt = `You are a resume analyst. Respond with a single JSON object and nothing else. The object must have these fields: overall_score (integer 0-100), skill_coverage_percentage (integer 0-100), feedback (array of {category, priority, issue, suggestion, examples}), missing_keywords (array of strings), relevant_skills_found (array of strings), analysis_summary ({word_count, has_quantifiable_achievements, uses_action_verbs, formatting_consistent}). Category must be one of Content, Formatting, Keywords, Achievements. Priority must be one of High, Medium, Low.`

type ResumeService interface {
	Optimize(ctx context.Context, resumeText, targetRole string) (*resume.Analysis, error)
}

type resumeService struct {
	log        *logger.Logger
	careerRepo repos.CareerRepo
	provider   TextCompletionProvider
}

// NewResumeService accepts a nil provider; analysis then always follows the
// deterministic rule path.
func NewResumeService(log *logger.Logger, careerRepo repos.CareerRepo, provider TextCompletionProvider) ResumeService {
	return &resumeService{
		log:        log.With("service", "ResumeService"),
		careerRepo: careerRepo,
		provider:   provider,
	}
}

func (rsv *resumeService) Optimize(ctx context.Context, resumeText, targetRole string) (*resume.Analysis, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("%w: resume_text is required", apperr.ErrInvalidInput)
	}
	if strings.TrimSpace(targetRole) == "" {
		return nil, fmt.Errorf("%w: target_job_title is required", apperr.ErrInvalidInput)
	}

	kw, err := rsv.keywordsForRole(ctx, targetRole)
	if err != nil {
		return nil, err
	}

	canonical := resume.Analyze(resumeText, kw)

	if rsv.provider != nil {
		if enriched, ok := rsv.fromProvider(ctx, resumeText, targetRole, kw); ok {
			return enriched, nil
		}
	}
	return &canonical, nil
}

// keywordsForRole collects the skill vocabulary from every career whose name
// contains the target role, case-insensitive. Essential keywords are the
// union of skills any matching career flags essential.
func (rsv *resumeService) keywordsForRole(ctx context.Context, targetRole string) (resume.Keywords, error) {
	careers, err := rsv.careerRepo.SearchByName(ctx, nil, targetRole)
	if err != nil {
		return resume.Keywords{}, fmt.Errorf("search careers: %w", err)
	}

	var kw resume.Keywords
	for _, career := range careers {
		for _, req := range career.RequiredSkills {
			kw.Relevant = append(kw.Relevant, req.Skill.Name)
			if req.IsEssential {
				kw.Essential = append(kw.Essential, req.Skill.Name)
			}
		}
	}
	return kw, nil
}

// fromProvider asks the configured model for an analysis and returns it only
// when the payload parses and validates. Any failure falls back to the
// deterministic path without surfacing an error to the caller.
func (rsv *resumeService) fromProvider(ctx context.Context, resumeText, targetRole string, kw resume.Keywords) (*resume.Analysis, bool) {
	userPrompt := fmt.Sprintf(
		"Target role: %s\nRelevant skills for this role: %s\nEssential skills for this role: %s\n\nResume:\n%s",
		targetRole,
		strings.Join(kw.Relevant, ", "),
		strings.Join(kw.Essential, ", "),
		resumeText,
	)

	raw, err := rsv.provider.Complete(ctx, resumeSystemPrompt, userPrompt)
	if err != nil {
		rsv.log.Warn("Resume analysis completion failed", "error", err)
		return nil, false
	}

	var analysis resume.Analysis
	if err := json.Unmarshal([]byte(gemini.StripCodeFence(raw)), &analysis); err != nil {
		rsv.log.Warn("Resume analysis payload unparseable", "error", err)
		return nil, false
	}
	if err := validateAnalysis(&analysis); err != nil {
		rsv.log.Warn("Resume analysis payload rejected", "error", err)
		return nil, false
	}
	return &analysis, true
}

func validateAnalysis(a *resume.Analysis) error {
	if a.OverallScore < 0 || a.OverallScore > 100 {
		return fmt.Errorf("overall_score out of range: %d", a.OverallScore)
	}
	if a.SkillCoveragePercentage < 0 || a.SkillCoveragePercentage > 100 {
		return fmt.Errorf("skill_coverage_percentage out of range: %d", a.SkillCoveragePercentage)
	}
	if a.AnalysisSummary.WordCount <= 0 {
		return fmt.Errorf("word_count must be positive")
	}
	for i, f := range a.Feedback {
		switch f.Category {
		case resume.CategoryContent, resume.CategoryFormatting, resume.CategoryKeywords, resume.CategoryAchievements:
		default:
			return fmt.Errorf("feedback[%d]: unknown category %q", i, f.Category)
		}
		switch f.Priority {
		case resume.PriorityHigh, resume.PriorityMedium, resume.PriorityLow:
		default:
			return fmt.Errorf("feedback[%d]: unknown priority %q", i, f.Priority)
		}
		if strings.TrimSpace(f.Issue) == "" || strings.TrimSpace(f.Suggestion) == "" {
			return fmt.Errorf("feedback[%d]: issue and suggestion are required", i)
		}
	}
	return nil
}
