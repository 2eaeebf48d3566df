package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type GroupSize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Availability struct {
	Available bool   `json:"available"`
	NextDate  string `json:"next_date,omitempty"`
}

type PackageResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Type            entity.PackageType `json:"type"`
	DurationDays    int                `json:"duration"`
	Price           string             `json:"price"`
	DiscountedPrice *string            `json:"discounted_price,omitempty"`
	Featured        bool               `json:"featured"`
	Rating          float64            `json:"rating"`
	ReviewCount     int                `json:"review_count"`
	Images          []string           `json:"images"`
	Location        string             `json:"location"`
	Includes        []string           `json:"includes"`
	Difficulty      entity.Difficulty  `json:"difficulty"`
	GroupSize       GroupSize          `json:"group_size"`
	Availability    Availability       `json:"availability"`
	CreatedAt       time.Time          `json:"created_at"`
}

func PackageToResponse(pkg *entity.Package) PackageResponse {
	resp := PackageResponse{
		ID:           pkg.ID.String(),
		Title:        pkg.Title,
		Description:  pkg.Description,
		Type:         pkg.Type,
		DurationDays: pkg.DurationDays,
		Price:        pkg.Price.String(),
		Featured:     pkg.Featured,
		Rating:       pkg.Rating,
		ReviewCount:  pkg.ReviewCount,
		Images:       pkg.Images,
		Location:     pkg.Location,
		Includes:     pkg.Includes,
		Difficulty:   pkg.Difficulty,
		GroupSize:    GroupSize{Min: pkg.GroupSize.Min, Max: pkg.GroupSize.Max},
		Availability: Availability{Available: pkg.Availability.Available, NextDate: pkg.Availability.NextDate},
		CreatedAt:    pkg.CreatedAt,
	}

	if pkg.DiscountedPrice != nil {
		s := pkg.DiscountedPrice.String()
		resp.DiscountedPrice = &s
	}

	return resp
}

func PackagesToResponse(pkgs []*entity.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, PackageToResponse(pkg))
	}
	return out
}
