package metrics

// Quality buckets the displayed SNR into the three-state indicator shown
// next to the signal figures.
type Quality int

const (
	QualityPoor Quality = iota
	QualityFair
	QualityGood
)

const (
	snrGoodDB = 18.0
	snrFairDB = 10.0
)

// Classify maps an SNR in dB onto its display quality.
func Classify(snrDB float64) Quality {
	switch {
	case snrDB >= snrGoodDB:
		return QualityGood
	case snrDB >= snrFairDB:
		return QualityFair
	default:
		return QualityPoor
	}
}

func (q Quality) String() string {
	switch q {
	case QualityGood:
		return "GOOD"
	case QualityFair:
		return "FAIR"
	default:
		return "POOR"
	}
}
