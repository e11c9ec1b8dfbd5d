// Package testutil holds the small center fixture shared by package tests.
package testutil

import (
	"strings"
	"testing"

	"sports-health-centers-api/internal/dataset"
	"sports-health-centers-api/internal/models"
)

// Fixture ids, in collection order.
const (
	IDTennisTours   = "1"
	IDPiscine       = "2"
	IDPingBlois     = "3"
	IDBasketBourges = "4"
	IDYogaChartres  = "5"
	IDMarcheTours   = "6"
)

// FixtureJSON is a dataset document in the source format: coordinates are
// strings for some records and numbers for others.
const FixtureJSON = `[
  {"id": "1", "Name": "Tennis Club de Tours", "Description": "Club de tennis & padel", "Discipline": "Tennis\r\nPadel\r\n", "Pathologies / Prévention": "Diabète\r\nObésité", "address": "1 rue du Stade, 37000 Tours", "lat": "47.39", "lng": "0.69"},
  {"id": "2", "Name": "Piscine d'Orléans", "Description": "Natation santé", "Discipline": "Natation\r\nAquagym", "Pathologies / Prévention": "Cancer\r\n\r\nMaladies cardiovasculaires", "address": "2 quai du Roi, 45000 Orléans", "lat": 47.90, "lng": 1.91},
  {"id": "3", "Name": "Ping Blois", "Description": "Sport adapté", "Discipline": "Tennis de table\r\n", "Pathologies / Prévention": "Cancer", "address": "3 rue du Château, 41000 Blois", "lat": "47.59", "lng": "1.33"},
  {"id": "4", "Name": "Basket Bourges", "Description": "Basket pour tous", "Discipline": "Basket\r\nTennis\r\n", "Pathologies / Prévention": "", "address": "4 avenue Jean Jaurès, 18000 Bourges", "lat": 47.08, "lng": 2.40},
  {"id": "5", "Name": "Yoga Chartres", "Description": "Yoga et relaxation <détente>", "Discipline": " Yoga ", "Pathologies / Prévention": "Maladies respiratoires\r\n", "address": "5 place de la Cathédrale, 28000 Chartres", "lat": "48.45", "lng": "1.48"},
  {"id": "6", "Name": "Marche Nordique Tours", "Description": "Sorties en groupe", "Discipline": "Marche nordique", "Pathologies / Prévention": "Obésité", "address": "6 boulevard Béranger, 37000 Tours", "lat": 47.39, "lng": 0.69}
]`

// Centers decodes FixtureJSON.
func Centers(t testing.TB) []models.Center {
	t.Helper()
	centers, err := dataset.Decode(strings.NewReader(FixtureJSON))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return centers
}

// Store builds a frozen store over the fixture.
func Store(t testing.TB) *dataset.Store {
	t.Helper()
	s, err := dataset.NewStore(Centers(t))
	if err != nil {
		t.Fatalf("build fixture store: %v", err)
	}
	return s
}
