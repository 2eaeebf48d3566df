package usecase

import (
	"context"
	"errors"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func seedPackage(repo *repository.Repository, pkgType entity.PackageType, featured, active bool) *entity.Package {
	pkg := &entity.Package{
		Base:       entity.Base{ID: uuid.New()},
		Title:      "Hundru Falls Adventure",
		Type:       pkgType,
		Price:      decimal.NewFromInt(2499),
		Featured:   featured,
		Images:     []string{},
		Includes:   []string{},
		IsActive:   active,
		GroupSize:  entity.GroupSize{Min: 2, Max: 12},
		Difficulty: entity.DifficultyModerate,
		Location:   "Ranchi",
	}
	fake := repo.Package.(*fakePackageRepo)
	fake.packages = append(fake.packages, pkg)
	return pkg
}

func TestListPackagesTypeFilter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})

	seedPackage(repo, entity.PackageAdventure, false, true)
	seedPackage(repo, entity.PackageCultural, false, true)
	seedPackage(repo, entity.PackageAdventure, false, false) // inactive

	resp, err := svc.Catalog.ListPackages(context.Background(), repository.PackageFilter{Type: "adventure"})
	if err != nil {
		t.Fatalf("ListPackages: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d packages, want 1 (exact type match, active only)", len(resp))
	}
	if resp[0].Type != entity.PackageAdventure {
		t.Errorf("type = %q, want adventure", resp[0].Type)
	}
}

func TestFeaturedPackagesWithoutCache(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})

	seedPackage(repo, entity.PackageNature, true, true)
	seedPackage(repo, entity.PackageNature, false, true)

	resp, err := svc.Catalog.FeaturedPackages(context.Background())
	if err != nil {
		t.Fatalf("FeaturedPackages: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d packages, want 1 featured", len(resp))
	}
}

func TestGetPackageNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Catalog.GetPackage(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetPackageBlobDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})

	pkg := seedPackage(repo, entity.PackageWildlife, false, true)

	resp, err := svc.Catalog.GetPackage(context.Background(), pkg.ID)
	if err != nil {
		t.Fatalf("GetPackage: %v", err)
	}
	if resp.Images == nil || resp.Includes == nil {
		t.Error("list fields must serialize as empty arrays, not null")
	}
	if resp.Price != "2499" {
		t.Errorf("price = %q, want 2499", resp.Price)
	}
}
