package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot-backend/internal/data/repos/testutil"
	types "github.com/careerpilot/careerpilot-backend/internal/domain"
)

func TestUserSkillRepoUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserSkillRepo(testutil.DB(t), testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "upsert@example.com")
	skill := testutil.SeedSkill(t, ctx, tx, "Terraform", "Technical")

	first := &types.UserSkill{
		UserID:           user.ID,
		SkillID:          skill.ID,
		ProficiencyLevel: "Beginner",
		YearsExperience:  0.5,
	}
	if _, err := repo.Upsert(ctx, tx, first); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second := &types.UserSkill{
		UserID:           user.ID,
		SkillID:          skill.ID,
		ProficiencyLevel: "Advanced",
		YearsExperience:  4,
	}
	if _, err := repo.Upsert(ctx, tx, second); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	rows, err := repo.ListByUserID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 after upsert", len(rows))
	}
	if rows[0].ProficiencyLevel != "Advanced" || rows[0].YearsExperience != 4 {
		t.Errorf("row = %q/%v, want Advanced/4", rows[0].ProficiencyLevel, rows[0].YearsExperience)
	}
}

func TestUserSkillRepoListPreloadsSkill(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserSkillRepo(testutil.DB(t), testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "preload@example.com")
	skill := testutil.SeedSkill(t, ctx, tx, "GraphQL", "Technical")
	testutil.SeedUserSkill(t, ctx, tx, user.ID, skill.ID, "Intermediate")

	rows, err := repo.ListByUserID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Skill.Name != "GraphQL" {
		t.Errorf("preloaded skill = %q, want GraphQL", rows[0].Skill.Name)
	}
}

func TestUserSkillRepoDelete(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserSkillRepo(testutil.DB(t), testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "delete@example.com")
	skill := testutil.SeedSkill(t, ctx, tx, "Rust", "Technical")
	testutil.SeedUserSkill(t, ctx, tx, user.ID, skill.ID, "Beginner")

	if err := repo.Delete(ctx, tx, user.ID, skill.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows, err := repo.ListByUserID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}

	// Deleting an absent pair is a no-op.
	if err := repo.Delete(ctx, tx, user.ID, uuid.New()); err != nil {
		t.Fatalf("Delete absent pair: %v", err)
	}
}
