package reconcile

import "quorum/internal/similarity"

// Sentence is one segmented sentence tagged with the transcript it came from
// and its position within that transcript.
type Sentence struct {
	Text    string
	Source  int
	Ordinal int
}

// Cluster groups sentences that describe the same passage of the source
// document across transcripts.
type Cluster struct {
	Members []Sentence
}

// Clusterer assigns sentences to clusters by greedy first-fit matching.
type Clusterer struct {
	threshold float64
}

// NewClusterer returns a Clusterer that matches sentences whose edit
// similarity fraction meets threshold, expressed in [0, 1].
func NewClusterer(threshold float64) *Clusterer {
	return &Clusterer{threshold: threshold}
}

// Cluster partitions sentences in order. Each sentence joins the first
// cluster containing any member it matches; otherwise it founds a new
// cluster. Clusters keep their creation order.
func (c *Clusterer) Cluster(sentences []Sentence) []Cluster {
	var clusters []Cluster
	for _, sentence := range sentences {
		placed := false
		for i := range clusters {
			if c.matchesAny(sentence, clusters[i]) {
				clusters[i].Members = append(clusters[i].Members, sentence)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, Cluster{Members: []Sentence{sentence}})
		}
	}
	return clusters
}

func (c *Clusterer) matchesAny(sentence Sentence, cluster Cluster) bool {
	for _, member := range cluster.Members {
		if similarity.EditSimilarity(sentence.Text, member.Text)/100 >= c.threshold {
			return true
		}
	}
	return false
}
