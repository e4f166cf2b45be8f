package services

import (
	"math"

	"github.com/SARVESHYOGI/store-rating-system/entity"
)

// RatingSummary is derived, never persisted; it is recomputed from the
// current rating rows on every read.
type RatingSummary struct {
	TotalRatings       int         `json:"totalRatings"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// Summarize computes count, average (one decimal, half-up, 0 when
// empty) and the 1..5 histogram. Every histogram key is present even
// at zero so consumers never default missing entries.
func Summarize(ratings []entity.Rating) RatingSummary {
	dist := make(map[int]int, entity.MaxRating)
	for v := entity.MinRating; v <= entity.MaxRating; v++ {
		dist[v] = 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
		if r.Rating >= entity.MinRating && r.Rating <= entity.MaxRating {
			dist[r.Rating]++
		}
	}

	avg := 0.0
	if len(ratings) > 0 {
		avg = roundHalfUp1(float64(sum) / float64(len(ratings)))
	}

	return RatingSummary{
		TotalRatings:       len(ratings),
		AverageRating:      avg,
		RatingDistribution: dist,
	}
}

func roundHalfUp1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
