package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fauna-field-log/internal/domain/captures"
)

// Nombres cortos de mes tal como los muestra el dashboard (es-ES).
var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// Compute arma el Summary de coll tomando now (y su zona) como referencia.
// Los registros con fecha ilegible cuentan en los totales pero no en ventanas ni meses.
func Compute(coll captures.Collection, now time.Time) Summary {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	recentFrom := today.AddDate(0, 0, -RecentWindowDays)
	attacksFrom := today.AddDate(0, 0, -AttackWindowDays)

	total := len(coll)
	s := Summary{Total: total}

	kindCounts := make(map[captures.Kind]int, len(captures.Kinds))

	type speciesAcc struct {
		name  string
		count int
		first int
	}
	species := make(map[string]*speciesAcc)

	type monthKey struct {
		year  int
		month time.Month
	}
	months := make(map[monthKey]int)
	var monthOrder []monthKey

	for i, c := range coll {
		kindCounts[c.Kind]++

		name := captures.NormalizeSpecies(c.Species)
		if acc, ok := species[name]; ok {
			acc.count++
		} else {
			species[name] = &speciesAcc{name: name, count: 1, first: i}
		}

		day, err := c.Day(loc)
		if err != nil {
			continue
		}

		if !day.Before(recentFrom) {
			s.Recent = append(s.Recent, RecentEvent{
				ID:      c.ID,
				Date:    c.Date,
				Time:    c.Time,
				Kind:    c.Kind,
				Species: name,
				Place:   c.Place,
			})
		}
		if c.Kind == captures.KindAttack && !day.Before(attacksFrom) {
			s.RecentAttacks++
		}

		k := monthKey{year: day.Year(), month: day.Month()}
		if _, ok := months[k]; !ok {
			monthOrder = append(monthOrder, k)
		}
		months[k]++
	}

	s.RecentCount = len(s.Recent)
	s.AttackAlert = s.RecentAttacks > 0

	s.ByKind = make([]KindCount, 0, len(captures.Kinds))
	for _, k := range captures.Kinds {
		n := kindCounts[k]
		s.ByKind = append(s.ByKind, KindCount{Kind: k, Count: n, Percent: Percent(n, total)})
	}

	ranked := make([]*speciesAcc, 0, len(species))
	for _, acc := range species {
		ranked = append(ranked, acc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})
	if len(ranked) > TopSpeciesLimit {
		ranked = ranked[:TopSpeciesLimit]
	}
	s.TopSpecies = make([]SpeciesCount, 0, len(ranked))
	for _, acc := range ranked {
		s.TopSpecies = append(s.TopSpecies, SpeciesCount{
			Species: acc.name,
			Count:   acc.count,
			Percent: Percent(acc.count, total),
		})
	}

	if len(monthOrder) > MonthsShown {
		monthOrder = monthOrder[len(monthOrder)-MonthsShown:]
	}
	s.Monthly = make([]MonthCount, 0, len(monthOrder))
	for _, k := range monthOrder {
		s.Monthly = append(s.Monthly, MonthCount{
			Label: MonthLabel(k.year, k.month),
			Year:  k.year,
			Month: k.month,
			Count: months[k],
		})
	}
	return s
}

// Percent es round(100*k/n), 0 si n == 0.
func Percent(k, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(k) / float64(n)))
}

func MonthLabel(year int, m time.Month) string {
	if m < time.January || m > time.December {
		return fmt.Sprintf("%d %d", int(m), year)
	}
	return fmt.Sprintf("%s %d", shortMonths[m-1], year)
}
