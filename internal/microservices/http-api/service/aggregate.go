package service

// reviewScale converts a 0-10 review rating to the 0-5 season scale.
const reviewScale = 2.0

// AggregateRating pools season ratings (0-5) with review ratings rescaled to
// 0-5 and returns their mean and the pool size. The mean is nil when the
// pool is empty, so "no ratings" stays distinct from a zero score.
func AggregateRating(seasonRatings, reviewRatings []float64) (*float64, int) {
	count := len(seasonRatings) + len(reviewRatings)
	if count == 0 {
		return nil, 0
	}

	var sum float64
	for _, r := range seasonRatings {
		sum += r
	}
	for _, r := range reviewRatings {
		sum += r / reviewScale
	}
	avg := sum / float64(count)
	return &avg, count
}
