package edgedata

// QualityFlag is one bit of the quality bitmask. QualityValid is the zero
// sentinel and never combines with other flags.
type QualityFlag uint32

const (
	QualityValid           QualityFlag = 0x00
	QualityNotTopical      QualityFlag = 0x01
	QualityFlagOverflow    QualityFlag = 0x02
	QualityOperatorBlocked QualityFlag = 0x04
	QualitySubstituted     QualityFlag = 0x08
	QualityTest            QualityFlag = 0x10
	QualityInvalid         QualityFlag = 0x20
)

// qualityBits lists the named bits in ascending order.
var qualityBits = []QualityFlag{
	QualityNotTopical,
	QualityFlagOverflow,
	QualityOperatorBlocked,
	QualitySubstituted,
	QualityTest,
	QualityInvalid,
}

// qualityNames maps every accepted flag name to its bit. The upper-case
// spellings are the ones used by the runtime headers, including its
// historical "SUBSITUTED".
var qualityNames = map[string]QualityFlag{
	"Valid":           QualityValid,
	"NotTopical":      QualityNotTopical,
	"FlagOverflow":    QualityFlagOverflow,
	"OperatorBlocked": QualityOperatorBlocked,
	"Substituted":     QualitySubstituted,
	"Test":            QualityTest,
	"Invalid":         QualityInvalid,

	"VALID_VALUE":      QualityValid,
	"NOT_TOPICAL":      QualityNotTopical,
	"FLAG_OVERFLOW":    QualityFlagOverflow,
	"OPERATOR_BLOCKED": QualityOperatorBlocked,
	"SUBSITUTED":       QualitySubstituted,
	"SUBSTITUTED":      QualitySubstituted,
	"TEST":             QualityTest,
	"INVALID":          QualityInvalid,
}

// String returns the canonical flag name.
func (f QualityFlag) String() string {
	switch f {
	case QualityValid:
		return "Valid"
	case QualityNotTopical:
		return "NotTopical"
	case QualityFlagOverflow:
		return "FlagOverflow"
	case QualityOperatorBlocked:
		return "OperatorBlocked"
	case QualitySubstituted:
		return "Substituted"
	case QualityTest:
		return "Test"
	case QualityInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// ParseQualityFlag looks up a flag by exact name.
func ParseQualityFlag(name string) (QualityFlag, bool) {
	f, ok := qualityNames[name]
	return f, ok
}

// QualitySet is a decoded quality bitmask in ascending bit order.
type QualitySet []QualityFlag

// Contains reports whether flag is in the set.
func (s QualitySet) Contains(flag QualityFlag) bool {
	for _, f := range s {
		if f == flag {
			return true
		}
	}
	return false
}

// Names returns the canonical names of the flags in the set.
func (s QualitySet) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.String()
	}
	return names
}

// Bitmask packs the set back into a raw value.
func (s QualitySet) Bitmask() uint32 {
	var raw uint32
	for _, f := range s {
		raw |= uint32(f)
	}
	return raw
}

// DecodeQuality unpacks a raw bitmask. Zero decodes to exactly {Valid};
// otherwise Valid is never part of the result. Bits without a name are
// ignored.
func DecodeQuality(raw uint32) QualitySet {
	if raw == uint32(QualityValid) {
		return QualitySet{QualityValid}
	}
	set := make(QualitySet, 0, len(qualityBits))
	for _, bit := range qualityBits {
		if raw&uint32(bit) != 0 {
			set = append(set, bit)
		}
	}
	return set
}

// EncodeQuality packs flag names into a bitmask. It fails on the first
// unknown name without producing a partial result.
func EncodeQuality(names []string) (uint32, error) {
	var raw uint32
	for _, name := range names {
		f, ok := qualityNames[name]
		if !ok {
			return 0, &FlagError{Name: name}
		}
		raw |= uint32(f)
	}
	return raw, nil
}
