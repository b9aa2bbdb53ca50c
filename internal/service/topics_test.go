package service

import (
	"testing"

	"studyforge/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExtractTopics_DelimiterSplit(t *testing.T) {
	text := "Photosynthesis, Cellular Respiration\nOsmosis"
	topics := ExtractTopics(text)

	labels := topicLabels(topics)
	assert.Contains(t, labels, "Photosynthesis")
	assert.Contains(t, labels, "Cellular Respiration")
	assert.Contains(t, labels, "Osmosis")
}

func TestExtractTopics_StripsEnumerationMarkers(t *testing.T) {
	text := "1. Thermodynamics\n2) Kinematics\n• Electromagnetism"
	labels := topicLabels(ExtractTopics(text))

	assert.Contains(t, labels, "Thermodynamics")
	assert.Contains(t, labels, "Kinematics")
	assert.Contains(t, labels, "Electromagnetism")
	for _, l := range labels {
		assert.NotContains(t, l, "1.")
		assert.NotContains(t, l, "•")
	}
}

func TestExtractTopics_CapitalizedPhraseWithAcronym(t *testing.T) {
	text := "today we look at how the Domain Name System (DNS) resolves names"
	labels := topicLabels(ExtractTopics(text))

	assert.Contains(t, labels, "Domain Name System (DNS)")
}

func TestExtractTopics_DedupCaseInsensitive(t *testing.T) {
	text := "Photosynthesis\nphotosynthesis\nPHOTOSYNTHESIS explained"
	topics := ExtractTopics(text)

	count := 0
	for _, topic := range topics {
		if topic.Label == "Photosynthesis" || topic.Label == "photosynthesis" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractTopics_ShortCandidatesDiscarded(t *testing.T) {
	labels := topicLabels(ExtractTopics("ab, DNA, x"))
	assert.NotContains(t, labels, "ab")
	assert.NotContains(t, labels, "DNA")
	assert.NotContains(t, labels, "x")
}

func TestExtractTopics_OrdinalsFollowFirstOccurrence(t *testing.T) {
	topics := ExtractTopics("Alpha Waves, Beta Waves, Gamma Waves")

	for i, topic := range topics {
		assert.Equal(t, i, topic.Ordinal)
	}
	assert.Equal(t, "Alpha Waves", topics[0].Label)
}

func TestExtractTopics_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractTopics(""))
	assert.Empty(t, ExtractTopics("   \n  "))
}

func TestExtractTopics_Deterministic(t *testing.T) {
	text := "Mitochondria, Chloroplasts\nCell Membrane Functions"
	first := ExtractTopics(text)
	second := ExtractTopics(text)
	assert.Equal(t, first, second)
}

func topicLabels(topics []domain.Topic) []string {
	labels := make([]string, 0, len(topics))
	for _, topic := range topics {
		labels = append(labels, topic.Label)
	}
	return labels
}
