package entity

import (
	"github.com/shopspring/decimal"
)

type PackageType string

const (
	PackageAdventure PackageType = "adventure"
	PackageNature    PackageType = "nature"
	PackageWildlife  PackageType = "wildlife"
	PackageCultural  PackageType = "cultural"
	PackageReligious PackageType = "religious"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// Package is a sellable tour offering, maintained by operators and read-only
// to this system
type Package struct {
	Base
	Title           string           `db:"title"`
	Description     string           `db:"description"`
	Type            PackageType      `db:"type"`
	DurationDays    int              `db:"duration"`
	Price           decimal.Decimal  `db:"price"`
	DiscountedPrice *decimal.Decimal `db:"discounted_price"`
	Featured        bool             `db:"featured"`
	Rating          float64          `db:"rating"`
	ReviewCount     int              `db:"review_count"`
	Images          []string         `db:"images"`
	Location        string           `db:"location"`
	Includes        []string         `db:"includes"`
	Difficulty      Difficulty       `db:"difficulty"`
	GroupSize       GroupSize        `db:"group_size"`
	Availability    Availability     `db:"availability"`
	IsActive        bool             `db:"is_active"`
}
