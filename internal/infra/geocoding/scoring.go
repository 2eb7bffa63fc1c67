package geocoding

import (
	"strings"

	"routeopt/internal/domain/entity"
	"routeopt/internal/util"
)

const (
	scoreBuilding      = 15
	scoreStreet        = 12
	scoreNeighbourhood = 8
	scoreCity          = 5
	scoreLandmark      = 20
	scoreWithin5Km     = 10
	scoreWithin2Km     = 5
)

// scoreCandidate ranks a provider candidate for the target region. query is
// the lower-cased address that was searched.
func scoreCandidate(region *entity.TargetRegion, query string, candidate entity.GeocodeCandidate) int {
	score := 0

	switch strings.ToLower(candidate.Type) {
	case "house", "building":
		score += scoreBuilding
	case "road", "street":
		score += scoreStreet
	case "neighbourhood", "suburb":
		score += scoreNeighbourhood
	case "city", "town":
		score += scoreCity
	}

	description := strings.ToLower(candidate.DisplayName)
	for _, lm := range region.Landmarks {
		if strings.Contains(query, lm.Query) && strings.Contains(description, lm.Result) {
			score += scoreLandmark
		}
	}

	distance := util.HaversineMeters(candidate.Coordinate, region.CityCentroid)
	if distance < 5000 {
		score += scoreWithin5Km
	}
	if distance < 2000 {
		score += scoreWithin2Km
	}

	return score
}

// bestCandidate keeps the candidates that mention the city and lie inside the
// bounds, then returns the highest score. Earlier candidates win ties.
func bestCandidate(region *entity.TargetRegion, query string, candidates []entity.GeocodeCandidate) (entity.GeocodeCandidate, bool) {
	var (
		best      entity.GeocodeCandidate
		bestScore int
		found     bool
	)

	for _, c := range candidates {
		if !region.MentionsCity(c.DisplayName) || !region.Contains(c.Coordinate) {
			continue
		}

		score := scoreCandidate(region, query, c)
		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
