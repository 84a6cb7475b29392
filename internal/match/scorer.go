package match

import "sort"

// Overlap returns the sorted intersection of the query term set and a
// sentence term set. The same intersection drives both scoring and the
// highlighted terms attached to a result.
func Overlap(query, sentence map[string]struct{}) []string {
	var common []string
	for term := range query {
		if _, ok := sentence[term]; ok {
			common = append(common, term)
		}
	}
	sort.Strings(common)
	return common
}

// Score computes query recall: the fraction of distinct query terms that
// appear in the sentence. Returns 0 when either set is empty.
func Score(query, sentence map[string]struct{}) float64 {
	if len(query) == 0 || len(sentence) == 0 {
		return 0
	}
	return float64(len(Overlap(query, sentence))) / float64(len(query))
}
