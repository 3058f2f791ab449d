package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/careerpilot/careerpilot-backend/internal/domain"
	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
)

type seedSkill struct {
	name        string
	category    string
	description string
}

type seedRequirement struct {
	skill       string
	essential   bool
	proficiency string
}

type seedCareer struct {
	name         string
	description  string
	salaryMin    int
	salaryMax    int
	outlook      string
	requirements []seedRequirement
}

type seedResource struct {
	skill      string
	title      string
	kind       string
	provider   string
	url        string
	hours      float64
	difficulty string
	rating     float64
	priceUSD   float64
}

type seedInsight struct {
	insightType string
	title       string
	summary     string
	skills      []string
	careers     []string
}

var catalogSkills = []seedSkill{
	{"Python", "Technical", "General-purpose programming language"},
	{"JavaScript", "Technical", "Language of the web"},
	{"Go", "Technical", "Compiled language for services and tooling"},
	{"SQL", "Technical", "Relational query language"},
	{"Machine Learning", "Technical", "Statistical modeling and model training"},
	{"Data Analysis", "Technical", "Exploring and interpreting datasets"},
	{"React", "Technical", "Component-based UI library"},
	{"Cloud Computing", "Technical", "AWS, GCP and Azure platforms"},
	{"Docker", "Technical", "Container packaging and runtime"},
	{"Kubernetes", "Technical", "Container orchestration"},
	{"System Design", "Technical", "Designing scalable architectures"},
	{"UX Research", "Technical", "User interviews and usability studies"},
	{"Figma", "Technical", "Interface design tooling"},
	{"Product Strategy", "Soft", "Prioritization and roadmapping"},
	{"Communication", "Soft", "Clear written and verbal communication"},
	{"Leadership", "Soft", "Leading teams and initiatives"},
	{"Project Management", "Soft", "Planning and delivery"},
	{"Statistics", "Technical", "Probability and inference"},
}

var catalogCareers = []seedCareer{
	{
		name:        "Software Engineer",
		description: "Designs, builds and maintains software systems.",
		salaryMin:   85000, salaryMax: 160000, outlook: "High",
		requirements: []seedRequirement{
			{"Python", true, "Intermediate"},
			{"SQL", true, "Intermediate"},
			{"System Design", false, "Advanced"},
			{"Docker", false, "Beginner"},
			{"Communication", false, "Intermediate"},
		},
	},
	{
		name:        "Data Scientist",
		description: "Builds models and extracts insight from data.",
		salaryMin:   95000, salaryMax: 175000, outlook: "High",
		requirements: []seedRequirement{
			{"Python", true, "Advanced"},
			{"Machine Learning", true, "Intermediate"},
			{"Statistics", true, "Intermediate"},
			{"SQL", false, "Intermediate"},
			{"Data Analysis", true, "Advanced"},
		},
	},
	{
		name:        "DevOps Engineer",
		description: "Owns build, deploy and runtime reliability.",
		salaryMin:   90000, salaryMax: 165000, outlook: "High",
		requirements: []seedRequirement{
			{"Docker", true, "Advanced"},
			{"Kubernetes", true, "Intermediate"},
			{"Cloud Computing", true, "Intermediate"},
			{"Go", false, "Intermediate"},
			{"SQL", false, "Beginner"},
		},
	},
	{
		name:        "Product Manager",
		description: "Drives product direction and delivery.",
		salaryMin:   90000, salaryMax: 170000, outlook: "Medium",
		requirements: []seedRequirement{
			{"Product Strategy", true, "Advanced"},
			{"Communication", true, "Advanced"},
			{"Data Analysis", false, "Intermediate"},
			{"Project Management", true, "Intermediate"},
			{"Leadership", false, "Intermediate"},
		},
	},
	{
		name:        "UX Designer",
		description: "Designs usable, accessible product experiences.",
		salaryMin:   70000, salaryMax: 130000, outlook: "Medium",
		requirements: []seedRequirement{
			{"Figma", true, "Advanced"},
			{"UX Research", true, "Intermediate"},
			{"Communication", false, "Intermediate"},
			{"JavaScript", false, "Beginner"},
		},
	},
	{
		name:        "Frontend Engineer",
		description: "Builds rich browser-based interfaces.",
		salaryMin:   80000, salaryMax: 150000, outlook: "Medium",
		requirements: []seedRequirement{
			{"JavaScript", true, "Advanced"},
			{"React", true, "Intermediate"},
			{"Communication", false, "Intermediate"},
			{"Figma", false, "Beginner"},
		},
	},
}

var catalogResources = []seedResource{
	{"Python", "Python for Everybody", "Course", "Coursera", "https://www.coursera.org/specializations/python", 40, "Beginner", 4.8, 49},
	{"Python", "Fluent Python", "Book", "O'Reilly", "https://www.oreilly.com/library/view/fluent-python-2nd/9781492056348/", 30, "Advanced", 4.7, 59.99},
	{"SQL", "SQL for Data Analysis", "Course", "Udacity", "https://www.udacity.com/course/sql-for-data-analysis--ud198", 16, "Beginner", 4.6, 0},
	{"Machine Learning", "Machine Learning Specialization", "Course", "Coursera", "https://www.coursera.org/specializations/machine-learning-introduction", 60, "Intermediate", 4.9, 49},
	{"Statistics", "Practical Statistics for Data Scientists", "Book", "O'Reilly", "https://www.oreilly.com/library/view/practical-statistics-for/9781492072935/", 25, "Intermediate", 4.5, 49.99},
	{"Data Analysis", "Data Analysis with Python", "Course", "freeCodeCamp", "https://www.freecodecamp.org/learn/data-analysis-with-python/", 20, "Intermediate", 4.4, 0},
	{"Docker", "Docker Deep Dive", "Course", "Pluralsight", "https://www.pluralsight.com/courses/docker-deep-dive-update", 12, "Intermediate", 4.7, 29},
	{"Kubernetes", "Certified Kubernetes Administrator Prep", "Course", "KodeKloud", "https://kodekloud.com/courses/certified-kubernetes-administrator-cka/", 35, "Advanced", 4.8, 45},
	{"Cloud Computing", "AWS Cloud Practitioner Essentials", "Course", "AWS", "https://aws.amazon.com/training/digital/aws-cloud-practitioner-essentials/", 14, "Beginner", 4.5, 0},
	{"System Design", "Designing Data-Intensive Applications", "Book", "O'Reilly", "https://www.oreilly.com/library/view/designing-data-intensive-applications/9781491903063/", 40, "Advanced", 4.9, 44.99},
	{"React", "Epic React", "Course", "epicreact.dev", "https://epicreact.dev/", 30, "Intermediate", 4.8, 299},
	{"JavaScript", "JavaScript: The Hard Parts", "Course", "Frontend Masters", "https://frontendmasters.com/courses/javascript-hard-parts-v2/", 10, "Intermediate", 4.8, 39},
	{"Figma", "Figma UI/UX Design Essentials", "Course", "Udemy", "https://www.udemy.com/course/figma-ux-ui-design/", 12, "Beginner", 4.7, 19.99},
	{"UX Research", "Just Enough Research", "Book", "A Book Apart", "https://abookapart.com/products/just-enough-research", 8, "Beginner", 4.6, 24},
	{"Product Strategy", "Inspired: How to Create Tech Products Customers Love", "Book", "Wiley", "https://www.svpg.com/books/inspired/", 10, "Intermediate", 4.6, 28},
	{"Project Management", "Google Project Management Certificate", "Course", "Coursera", "https://www.coursera.org/professional-certificates/google-project-management", 80, "Beginner", 4.8, 49},
	{"Go", "Learn Go with Tests", "Course", "quii.gitbook.io", "https://quii.gitbook.io/learn-go-with-tests/", 20, "Intermediate", 4.7, 0},
	{"Communication", "Crucial Conversations", "Book", "McGraw-Hill", "https://cruciallearning.com/crucial-conversations-book/", 9, "Beginner", 4.5, 18},
}

var catalogInsights = []seedInsight{
	{types.InsightSkillDemand, "Demand for ML skills keeps climbing", "Machine learning job postings grew sharply year over year, with Python the most requested language.", []string{"Machine Learning", "Python", "Statistics"}, []string{"Data Scientist", "Software Engineer"}},
	{types.InsightEmergingRole, "Platform engineering emerges from DevOps", "Teams are consolidating infra tooling under platform engineering roles built on Kubernetes and cloud primitives.", []string{"Kubernetes", "Docker", "Cloud Computing"}, []string{"DevOps Engineer"}},
	{types.InsightIndustryShift, "Design and research merge in product teams", "More product teams hire designers who can run their own usability research end to end.", []string{"UX Research", "Figma"}, []string{"UX Designer", "Product Manager"}},
	{types.InsightMarketTrend, "Cloud spend drives infrastructure hiring", "Organizations modernizing on cloud platforms continue to hire for containerization and orchestration skills.", []string{"Cloud Computing", "Docker", "Kubernetes"}, []string{"DevOps Engineer", "Software Engineer"}},
	{types.InsightSkillDemand, "SQL remains a baseline expectation", "Across analyst and engineering postings alike, SQL shows up as a default requirement.", []string{"SQL", "Data Analysis"}, []string{"Data Scientist", "Software Engineer"}},
}

// SeedCatalog populates the reference tables on first boot. It is a no-op
// when the skill catalog already has rows.
func SeedCatalog(db *gorm.DB, log *logger.Logger) error {
	seedLog := log.With("component", "seed")

	var count int64
	if err := db.Model(&types.Skill{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count skills: %w", err)
	}
	if count > 0 {
		seedLog.Debug("Catalog already seeded, skipping", "skills", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		skillByName := make(map[string]uuid.UUID, len(catalogSkills))
		for _, s := range catalogSkills {
			row := &types.Skill{
				ID:          uuid.New(),
				Name:        s.name,
				Category:    s.category,
				Description: s.description,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("seed skill %q: %w", s.name, err)
			}
			skillByName[s.name] = row.ID
		}

		for _, c := range catalogCareers {
			career := &types.Career{
				ID:            uuid.New(),
				Name:          c.name,
				Description:   c.description,
				SalaryMin:     c.salaryMin,
				SalaryMax:     c.salaryMax,
				GrowthOutlook: c.outlook,
			}
			if err := tx.Create(career).Error; err != nil {
				return fmt.Errorf("seed career %q: %w", c.name, err)
			}
			for _, r := range c.requirements {
				skillID, ok := skillByName[r.skill]
				if !ok {
					return fmt.Errorf("career %q references unknown skill %q", c.name, r.skill)
				}
				req := &types.CareerSkillRequirement{
					ID:                  uuid.New(),
					CareerID:            career.ID,
					SkillID:             skillID,
					IsEssential:         r.essential,
					RequiredProficiency: r.proficiency,
				}
				if err := tx.Create(req).Error; err != nil {
					return fmt.Errorf("seed requirement %q/%q: %w", c.name, r.skill, err)
				}
			}
		}

		for _, res := range catalogResources {
			skillID, ok := skillByName[res.skill]
			if !ok {
				return fmt.Errorf("resource %q references unknown skill %q", res.title, res.skill)
			}
			row := &types.LearningResource{
				ID:              uuid.New(),
				SkillID:         skillID,
				Title:           res.title,
				Type:            res.kind,
				URL:             res.url,
				Provider:        res.provider,
				DurationHours:   res.hours,
				DifficultyLevel: res.difficulty,
				Rating:          res.rating,
				PriceUSD:        res.priceUSD,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("seed resource %q: %w", res.title, err)
			}
		}

		now := time.Now().UTC()
		for i, ins := range catalogInsights {
			skills, err := json.Marshal(ins.skills)
			if err != nil {
				return fmt.Errorf("marshal insight skills: %w", err)
			}
			careers, err := json.Marshal(ins.careers)
			if err != nil {
				return fmt.Errorf("marshal insight careers: %w", err)
			}
			row := &types.IndustryInsight{
				ID:              uuid.New(),
				InsightType:     ins.insightType,
				Title:           ins.title,
				Summary:         ins.summary,
				RelevantSkills:  datatypes.JSON(skills),
				RelevantCareers: datatypes.JSON(careers),
				IsActive:        true,
				GeneratedDate:   now.Add(-time.Duration(i) * 24 * time.Hour),
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("seed insight %q: %w", ins.title, err)
			}
		}

		seedLog.Info("Seeded catalog",
			"skills", len(catalogSkills),
			"careers", len(catalogCareers),
			"resources", len(catalogResources),
			"insights", len(catalogInsights))
		return nil
	})
}
