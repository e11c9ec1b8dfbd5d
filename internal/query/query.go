// Package query implements the linear-scan filters and the multi-value
// aggregations over the center collection. Every match is a case-insensitive
// substring test against the raw field, never an exact token comparison.
package query

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"sports-health-centers-api/internal/models"
)

// MinKeywordLength is the shortest keyword Search accepts, in characters.
const MinKeywordLength = 2

var ErrKeywordTooShort = errors.New("keyword must be at least 2 characters")

func contains(field, needleLower string) bool {
	return strings.Contains(strings.ToLower(field), needleLower)
}

func filter(centers []models.Center, keep func(models.Center) bool) []models.Center {
	out := make([]models.Center, 0)
	for _, c := range centers {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Search matches keyword against Name, Description and the raw Discipline field.
func Search(centers []models.Center, keyword string) ([]models.Center, error) {
	if utf8.RuneCountInString(keyword) < MinKeywordLength {
		return nil, ErrKeywordTooShort
	}
	q := strings.ToLower(keyword)
	return filter(centers, func(c models.Center) bool {
		return contains(c.Name, q) || contains(c.Description, q) || contains(c.Discipline, q)
	}), nil
}

// ByDiscipline keeps centers whose raw Discipline field contains name.
// "tennis" matches "Tennis de table".
func ByDiscipline(centers []models.Center, name string) []models.Center {
	q := strings.ToLower(name)
	return filter(centers, func(c models.Center) bool { return contains(c.Discipline, q) })
}

// ByPathology keeps centers whose raw Pathologies field contains name.
func ByPathology(centers []models.Center, name string) []models.Center {
	q := strings.ToLower(name)
	return filter(centers, func(c models.Center) bool { return contains(c.Pathologies, q) })
}

// ListDisciplines returns every distinct discipline entry, sorted by code point.
func ListDisciplines(centers []models.Center) []string {
	return uniqueSorted(centers, models.Center.Disciplines)
}

// ListPathologies returns every distinct pathology entry, sorted by code point.
func ListPathologies(centers []models.Center) []string {
	return uniqueSorted(centers, models.Center.PathologyList)
}

func uniqueSorted(centers []models.Center, entries func(models.Center) []string) []string {
	set := make(map[string]struct{})
	for _, c := range centers {
		for _, e := range entries(c) {
			set[e] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	// Byte order equals code-point order for UTF-8.
	sort.Strings(out)
	return out
}
