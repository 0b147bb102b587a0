package sqlite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

func createCategory(t *testing.T, store *Store, actor *domain.User, name string) *domain.Category {
	t.Helper()
	cmd := commands.NewCreateCategoryCommand(store, actor)
	cmd.Name = name
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("creating category %q: %v", name, err)
	}
	return result.Category
}

func TestCreateCategory_Defaults(t *testing.T) {
	store := newTestStore(t)
	admin := seedUser(t, store, "Admin", true)

	cat := createCategory(t, store, admin, "Team Guides")
	if cat.Slug != "team-guides" {
		t.Errorf("slug = %q, want %q", cat.Slug, "team-guides")
	}
	if cat.Color != domain.DefaultCategoryColor {
		t.Errorf("color = %q, want default %q", cat.Color, domain.DefaultCategoryColor)
	}

	// A distinct name that slugifies the same gets a disambiguated slug.
	second := createCategory(t, store, admin, "Team  Guides")
	if second.Slug == cat.Slug {
		t.Errorf("colliding name reused slug %q", second.Slug)
	}
	if !strings.HasPrefix(second.Slug, "team-guides-") {
		t.Errorf("second slug = %q, want team-guides-<suffix>", second.Slug)
	}

	// The exact same name violates the unique constraint.
	cmd := commands.NewCreateCategoryCommand(store, admin)
	cmd.Name = "Team Guides"
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Error("duplicate category name was accepted")
	}
}

func TestDeleteCategory_UncategorizesPages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	admin := seedUser(t, store, "Admin", true)

	cat := createCategory(t, store, admin, "Guides")

	create := commands.NewCreatePageCommand(store, store, admin)
	create.Title = "Member Page"
	create.CategoryID = &cat.ID
	created, err := create.Execute(ctx)
	if err != nil {
		t.Fatalf("creating page: %v", err)
	}

	del := commands.NewDeleteCategoryCommand(store, admin, cat.ID)
	if _, err := del.Execute(ctx); err != nil {
		t.Fatalf("deleting category: %v", err)
	}

	page, err := store.GetPage(ctx, created.Page.ID)
	if err != nil {
		t.Fatalf("reading page: %v", err)
	}
	if page == nil {
		t.Fatal("page was deleted along with its category")
	}
	if page.CategoryID != nil {
		t.Errorf("category reference = %q, want nil", *page.CategoryID)
	}
	if page.Version != created.Page.Version {
		t.Errorf("version changed to %d, category deletion must not touch page history", page.Version)
	}
}

func TestDeleteCategory_AdminOnly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	admin := seedUser(t, store, "Admin", true)
	member := seedUser(t, store, "Member", false)

	cat := createCategory(t, store, admin, "Restricted")

	del := commands.NewDeleteCategoryCommand(store, member, cat.ID)
	if _, err := del.Execute(ctx); !errors.Is(err, application.ErrForbidden) {
		t.Fatalf("non-admin delete returned %v, want ErrForbidden", err)
	}
	if got, _ := store.GetCategory(ctx, cat.ID); got == nil {
		t.Fatal("category vanished after a forbidden delete")
	}
}

func TestListCategories_CountsPublishedOnly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	admin := seedUser(t, store, "Admin", true)

	guides := createCategory(t, store, admin, "Guides")
	empty := createCategory(t, store, admin, "Empty")

	for _, status := range []string{"published", "published", "draft"} {
		create := commands.NewCreatePageCommand(store, store, admin)
		create.Title = "Page " + domain.NewID()
		create.CategoryID = &guides.ID
		create.Status = status
		if _, err := create.Execute(ctx); err != nil {
			t.Fatalf("creating page: %v", err)
		}
	}

	cats, err := commands.NewListCategoriesCommand(store).Execute(ctx)
	if err != nil {
		t.Fatalf("listing categories: %v", err)
	}
	counts := map[string]int{}
	for _, c := range cats {
		counts[c.ID] = c.PageCount
	}
	if counts[guides.ID] != 2 {
		t.Errorf("guides count = %d, want 2 (drafts excluded)", counts[guides.ID])
	}
	if counts[empty.ID] != 0 {
		t.Errorf("empty category count = %d, want 0", counts[empty.ID])
	}
}

func TestUpdateCategory_KeepsSlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	admin := seedUser(t, store, "Admin", true)

	cat := createCategory(t, store, admin, "Old Name")

	name := "New Name"
	color := "#112233"
	upd := commands.NewUpdateCategoryCommand(store, admin, cat.ID)
	upd.Name = &name
	upd.Color = &color
	result, err := upd.Execute(ctx)
	if err != nil {
		t.Fatalf("updating category: %v", err)
	}
	if result.Category.Name != name {
		t.Errorf("name = %q, want %q", result.Category.Name, name)
	}
	if result.Category.Color != color {
		t.Errorf("color = %q, want %q", result.Category.Color, color)
	}
	if result.Category.Slug != "old-name" {
		t.Errorf("slug = %q, renames must not rewrite slugs", result.Category.Slug)
	}
}
