// Package agent routes a free-text question to one API endpoint using
// keyword rules and renders the answer as text.
package agent

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sports-health-centers-api/internal/client"
	"sports-health-centers-api/internal/models"
)

// NearbyRadiusKm is the radius used for "near <city>" questions.
const NearbyRadiusKm = 50

type city struct {
	name     string
	lat, lng float64
}

// Checked in order; the first city found in the question wins.
var cities = []city{
	{"tours", 47.39, 0.69},
	{"orléans", 47.90, 1.91},
	{"orleans", 47.90, 1.91},
	{"bourges", 47.08, 2.40},
	{"chartres", 48.45, 1.48},
	{"blois", 47.59, 1.33},
	{"châteauroux", 46.81, 1.69},
	{"chateauroux", 46.81, 1.69},
	{"paris", 48.86, 2.35},
}

var proximityWords = []string{"près", "near", "proche", "around", "autour"}

var sports = []string{
	"tennis", "basket", "football", "natation", "karaté", "karate",
	"badminton", "escalade", "randonnée", "cyclisme", "danse",
	"gymnastique", "yoga", "canoë",
}

var pathologies = []string{
	"cancer", "diabète", "diabete", "cardiovasculaire",
	"respiratoire", "neuro", "obésité", "obesite",
}

type Agent struct {
	API *client.Client
	Out io.Writer
}

// Ask answers question by calling exactly one endpoint.
func (a *Agent) Ask(ctx context.Context, question string) error {
	q := strings.ToLower(question)

	if c, ok := nearbyCity(q); ok {
		res, err := a.API.Nearby(ctx, c.lat, c.lng, NearbyRadiusKm)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\nCenters near %s (within %dkm):\n", title(c.name), NearbyRadiusKm)
		fmt.Fprintf(a.Out, "   Found: %d centers\n\n", res.Count)
		for _, r := range res.Data {
			fmt.Fprintf(a.Out, "   • %s (%skm)\n", r.Name, strconv.FormatFloat(r.DistanceKm, 'f', -1, 64))
			fmt.Fprintf(a.Out, "     %s\n\n", r.Address)
		}
		return nil
	}

	if sport, ok := firstContained(q, sports); ok {
		res, err := a.API.ByDiscipline(ctx, sport)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\nCenters offering %s:\n", title(sport))
		a.writeCenters(res.Count, res.Data, addressLine)
		return nil
	}

	if patho, ok := firstContained(q, pathologies); ok {
		res, err := a.API.ByPathology(ctx, patho)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\nCenters for %s:\n", title(patho))
		a.writeCenters(res.Count, res.Data, disciplinesLine)
		return nil
	}

	if _, ok := firstContained(q, []string{"discipline", "sport", "activit"}); ok {
		res, err := a.API.Disciplines(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\nAll available disciplines (%d):\n\n", res.Count)
		a.writeList(res.Disciplines)
		return nil
	}

	if _, ok := firstContained(q, []string{"patholog", "maladie", "condition"}); ok {
		res, err := a.API.Pathologies(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\nAll pathologies handled (%d):\n\n", res.Count)
		a.writeList(res.Pathologies)
		return nil
	}

	words := strings.TrimSpace(question)
	res, err := a.API.Search(ctx, words)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "\nSearch results for '%s':\n", words)
	a.writeCenters(res.Count, res.Data, addressLine)
	return nil
}

func nearbyCity(q string) (city, bool) {
	for _, c := range cities {
		if !strings.Contains(q, c.name) {
			continue
		}
		if _, ok := firstContained(q, proximityWords); ok {
			return c, true
		}
	}
	return city{}, false
}

func firstContained(q string, words []string) (string, bool) {
	for _, w := range words {
		if strings.Contains(q, w) {
			return w, true
		}
	}
	return "", false
}

func (a *Agent) writeCenters(count int, centers []models.Center, detail func(models.Center) string) {
	fmt.Fprintf(a.Out, "   Found: %d centers\n\n", count)
	for _, c := range centers {
		fmt.Fprintf(a.Out, "   • %s\n", c.Name)
		fmt.Fprintf(a.Out, "     %s\n\n", detail(c))
	}
}

func (a *Agent) writeList(items []string) {
	for _, it := range items {
		fmt.Fprintf(a.Out, "   • %s\n", it)
	}
}

func addressLine(c models.Center) string { return c.Address }

func disciplinesLine(c models.Center) string {
	return "Disciplines: " + truncate(c.Discipline, 60) + "..."
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// title upper-cases the first letter of each word.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
