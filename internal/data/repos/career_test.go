package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerpilot/careerpilot-backend/internal/data/repos/testutil"
)

func TestCareerRepoGetByIDWithRequirements(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCareerRepo(testutil.DB(t), testutil.Logger(t))

	career := testutil.SeedCareer(t, ctx, tx, "Site Reliability Engineer")
	skill := testutil.SeedSkill(t, ctx, tx, "Kubernetes", "Technical")
	testutil.SeedRequirement(t, ctx, tx, career.ID, skill.ID, true, "Advanced")

	got, err := repo.GetByID(ctx, tx, career.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.RequiredSkills) != 1 {
		t.Fatalf("RequiredSkills len = %d, want 1", len(got.RequiredSkills))
	}
	if got.RequiredSkills[0].Skill.Name != "Kubernetes" {
		t.Errorf("joined skill = %q, want Kubernetes", got.RequiredSkills[0].Skill.Name)
	}
}

func TestCareerRepoGetByIDMissing(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCareerRepo(testutil.DB(t), testutil.Logger(t))

	_, err := repo.GetByID(context.Background(), tx, uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestCareerRepoSearchByNameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCareerRepo(testutil.DB(t), testutil.Logger(t))

	testutil.SeedCareer(t, ctx, tx, "Machine Learning Engineer")
	testutil.SeedCareer(t, ctx, tx, "Staff Engineer")
	testutil.SeedCareer(t, ctx, tx, "Designer")

	got, err := repo.SearchByName(ctx, tx, "ENGINEER")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %d, want 2", len(got))
	}
	// Ordered by name.
	if got[0].Name != "Machine Learning Engineer" || got[1].Name != "Staff Engineer" {
		t.Errorf("order = %q, %q", got[0].Name, got[1].Name)
	}
}

func TestCareerRepoSearchByNameNoMatches(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCareerRepo(testutil.DB(t), testutil.Logger(t))

	got, err := repo.SearchByName(context.Background(), tx, "astronaut")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("matches = %d, want 0", len(got))
	}
}
