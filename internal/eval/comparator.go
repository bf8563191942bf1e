package eval

import "github.com/lox/holdemtable/internal/deck"

// Entrant is one showdown contender: a seat name and its hole cards.
type Entrant struct {
	Name string
	Hole []deck.Card
}

// Result pairs a seat with its best score.
type Result struct {
	Name  string
	Score Score
}

// Rank scores every entrant against the community cards and returns the
// results ordered strongest first. Entrants with equal scores keep their
// input order, so ties surface the earliest seat first.
func Rank(community []deck.Card, entrants []Entrant) []Result {
	results := make([]Result, 0, len(entrants))
	for _, e := range entrants {
		results = append(results, Result{
			Name:  e.Name,
			Score: NewHand(community, e.Hole).Best(),
		})
	}

	// Insertion sort keeps the ordering stable on ties.
	for i := 1; i < len(results); i++ {
		r := results[i]
		j := i - 1
		for j >= 0 && results[j].Score.Compare(r.Score) < 0 {
			results[j+1] = results[j]
			j--
		}
		results[j+1] = r
	}
	return results
}

// Winners returns the names sharing the top score of ranked results.
func Winners(results []Result) []string {
	if len(results) == 0 {
		return nil
	}

	top := results[0].Score
	var names []string
	for _, r := range results {
		if r.Score.Compare(top) == 0 {
			names = append(names, r.Name)
		}
	}
	return names
}
