package reconcile

import (
	"strings"

	"quorum/internal/similarity"
)

// wordBucket pools votes for spellings considered the same word. The
// representative is the first spelling seen for the bucket.
type wordBucket struct {
	repr  string
	votes int
}

// reconcileCluster merges a cluster's member sentences into one sentence by
// position-wise voting. For each word position, spellings within the fuzzy
// match bounds share a bucket; the bucket with the most votes wins, and ties
// go to the bucket with the shortest representative. Positions past the end
// of shorter members simply collect fewer votes.
func reconcileCluster(cluster Cluster, maxDistance, maxLengthGap int) string {
	if len(cluster.Members) == 0 {
		return ""
	}
	if len(cluster.Members) == 1 {
		return cluster.Members[0].Text
	}

	split := make([][]string, len(cluster.Members))
	maxWords := 0
	for i, member := range cluster.Members {
		split[i] = strings.Fields(member.Text)
		if len(split[i]) > maxWords {
			maxWords = len(split[i])
		}
	}

	var result []string
	for pos := 0; pos < maxWords; pos++ {
		var buckets []wordBucket
		for _, words := range split {
			if pos >= len(words) {
				continue
			}
			word := words[pos]
			matched := false
			for i := range buckets {
				if similarity.WordsSimilarWithin(word, buckets[i].repr, maxDistance, maxLengthGap) {
					buckets[i].votes++
					matched = true
					break
				}
			}
			if !matched {
				buckets = append(buckets, wordBucket{repr: word, votes: 1})
			}
		}
		if winner := pickWinner(buckets); winner != "" {
			result = append(result, winner)
		}
	}
	return strings.Join(result, " ")
}

func pickWinner(buckets []wordBucket) string {
	winner := ""
	best := 0
	for _, bucket := range buckets {
		switch {
		case bucket.votes > best:
			winner = bucket.repr
			best = bucket.votes
		case bucket.votes == best && len([]rune(bucket.repr)) < len([]rune(winner)):
			winner = bucket.repr
		}
	}
	return winner
}
