package domain

import (
	"fmt"
)

// Period identifica uma das janelas de análise do modelo de saturação
type Period int

const (
	ShortTerm Period = iota
	MediumTerm
	LongTerm
	Adaptive
)

// AnalysisPeriods define a ordem fixa em que os períodos são analisados e serializados
var AnalysisPeriods = []Period{ShortTerm, MediumTerm, LongTerm, Adaptive}

var periodNames = map[Period]string{
	ShortTerm:  "short_term",
	MediumTerm: "medium_term",
	LongTerm:   "long_term",
	Adaptive:   "adaptive",
}

// FixedDays retorna o tamanho da janela em dias. O período adaptativo não tem
// tamanho fixo e retorna false.
func (p Period) FixedDays() (int, bool) {
	switch p {
	case ShortTerm:
		return 7, true
	case MediumTerm:
		return 14, true
	case LongTerm:
		return 30, true
	default:
		return 0, false
	}
}

func (p Period) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	return fmt.Sprintf("period(%d)", int(p))
}

func (p Period) MarshalText() ([]byte, error) {
	name, ok := periodNames[p]
	if !ok {
		return nil, fmt.Errorf("período desconhecido: %d", int(p))
	}
	return []byte(name), nil
}

func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePeriod converte o nome serializado de volta para Period
func ParsePeriod(name string) (Period, error) {
	for period, periodName := range periodNames {
		if periodName == name {
			return period, nil
		}
	}
	return 0, fmt.Errorf("período desconhecido: %q", name)
}
