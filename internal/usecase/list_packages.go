package usecase

import (
	"sync"
	"time"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
)

// ListPackagesUseCase serves the catalogue endpoints from the sheet, with a
// short in-process cache so a burst of browsing does not hammer the Apps
// Script deployment.
type ListPackagesUseCase struct {
	Catalog  PackageCatalog
	CacheTTL time.Duration
	Now      func() time.Time

	mu        sync.Mutex
	cached    []entity.TravelPackage
	fetchedAt time.Time
}

func NewListPackagesUseCase(catalog PackageCatalog) *ListPackagesUseCase {
	return &ListPackagesUseCase{
		Catalog:  catalog,
		CacheTTL: 5 * time.Minute,
		Now:      time.Now,
	}
}

func (uc *ListPackagesUseCase) All() ([]entity.TravelPackage, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cached != nil && uc.Now().Sub(uc.fetchedAt) < uc.CacheTTL {
		return uc.cached, nil
	}

	packages, err := uc.Catalog.GetAllPackages()
	if err != nil {
		return nil, &TechnicalError{Code: "SHEET_ERROR", Message: err.Error()}
	}

	uc.cached = packages
	uc.fetchedAt = uc.Now()
	return packages, nil
}

func (uc *ListPackagesUseCase) Featured() ([]entity.TravelPackage, error) {
	all, err := uc.All()
	if err != nil {
		return nil, err
	}
	featured := make([]entity.TravelPackage, 0)
	for _, pkg := range all {
		if pkg.Featured {
			featured = append(featured, pkg)
		}
	}
	return featured, nil
}

func (uc *ListPackagesUseCase) ByID(id string) (*entity.TravelPackage, error) {
	all, err := uc.All()
	if err != nil {
		return nil, err
	}
	for _, pkg := range all {
		if pkg.ID == id {
			return &pkg, nil
		}
	}
	return nil, &DomainError{Code: "PACKAGE_NOT_FOUND", Message: "Package not found"}
}
