package healthcalc

import (
	"fmt"
	"sort"
	"strings"

	"taafi-health-tools/internal/models"
)

// alleleDist maps an allele to the probability a parent passes it on.
type alleleDist map[string]float64

// Each phenotype is treated as an equal mix of the genotypes that produce it.
var aboGenotypes = map[string][]string{
	"A":  {"AA", "AO"},
	"B":  {"BB", "BO"},
	"AB": {"AB"},
	"O":  {"OO"},
}

var rhGenotypes = map[string][]string{
	"+": {"DD", "Dd"},
	"-": {"dd"},
}

// ParseBloodType accepts "A+", "ab-", "O−" (unicode minus) and similar.
func ParseBloodType(s string) (models.BloodType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "−", "-")
	for _, bt := range models.BloodTypes {
		if string(bt) == s {
			return bt, nil
		}
	}
	return "", invalidf("unknown blood type %q", s)
}

func splitBloodType(bt models.BloodType) (abo, rh string) {
	s := string(bt)
	return s[:len(s)-1], s[len(s)-1:]
}

func gameteDist(genotypes []string) alleleDist {
	dist := alleleDist{}
	share := 1.0 / float64(len(genotypes)*2)
	for _, g := range genotypes {
		dist[g[:1]] += share
		dist[g[1:]] += share
	}
	return dist
}

func aboPhenotype(a, b string) string {
	switch {
	case a == "O" && b == "O":
		return "O"
	case a == "O":
		return b
	case b == "O":
		return a
	case a == b:
		return a
	default:
		return "AB"
	}
}

// PredictBloodType crosses two parent phenotypes and returns the child's
// phenotype distribution in percent.
func PredictBloodType(father, mother models.BloodType) (models.BloodTypeResult, error) {
	father, err := ParseBloodType(string(father))
	if err != nil {
		return models.BloodTypeResult{}, fmt.Errorf("father: %w", err)
	}
	mother, err = ParseBloodType(string(mother))
	if err != nil {
		return models.BloodTypeResult{}, fmt.Errorf("mother: %w", err)
	}

	fABO, fRh := splitBloodType(father)
	mABO, mRh := splitBloodType(mother)

	aboProb := map[string]float64{}
	for fa, fp := range gameteDist(aboGenotypes[fABO]) {
		for ma, mp := range gameteDist(aboGenotypes[mABO]) {
			aboProb[aboPhenotype(fa, ma)] += fp * mp
		}
	}

	fRhDist := gameteDist(rhGenotypes[fRh])
	mRhDist := gameteDist(rhGenotypes[mRh])
	rhNeg := fRhDist["d"] * mRhDist["d"]
	rhProb := map[string]float64{"+": 1 - rhNeg, "-": rhNeg}

	var possible []models.BloodTypeProbability
	for _, bt := range models.BloodTypes {
		abo, rh := splitBloodType(bt)
		p := aboProb[abo] * rhProb[rh] * 100
		if p <= 0 {
			continue
		}
		possible = append(possible, models.BloodTypeProbability{BloodType: bt, Probability: round1(p)})
	}
	sort.SliceStable(possible, func(i, j int) bool {
		return possible[i].Probability > possible[j].Probability
	})

	return models.BloodTypeResult{
		MostLikely:    possible[0].BloodType,
		PossibleTypes: possible,
		Explanation: fmt.Sprintf("بناءً على فصيلة الأب %s وفصيلة الأم %s، الفصيلة الأكثر احتمالاً للطفل هي %s بنسبة %.1f%%",
			father, mother, possible[0].BloodType, possible[0].Probability),
		Genetics: []string{
			fmt.Sprintf("الأنماط الجينية المحتملة للأب: %s / %s", strings.Join(aboGenotypes[fABO], " أو "), strings.Join(rhGenotypes[fRh], " أو ")),
			fmt.Sprintf("الأنماط الجينية المحتملة للأم: %s / %s", strings.Join(aboGenotypes[mABO], " أو "), strings.Join(rhGenotypes[mRh], " أو ")),
			"الأليلان A و B سائدان على O، والعامل الريسوسي الموجب سائد على السالب",
		},
		Recommendations: copyStrings(bloodTypeAdvice),
	}, nil
}
