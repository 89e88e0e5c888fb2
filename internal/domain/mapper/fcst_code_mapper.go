package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"kma-forecast/internal/domain/model"
)

// MissingValueLabel replaces provider "no data" sentinels (|value| >= 900).
const MissingValueLabel = "데이터 누락"

// Labels of the forecast date and time heading a folded forecast.
const (
	LabelFcstDate = "예보일자"
	LabelFcstTime = "예보시각"
)

const missingValueThreshold = 900

// Category codes of the village forecast.
const (
	CategoryPOP = "POP"
	CategoryPTY = "PTY"
	CategoryPCP = "PCP"
	CategoryREH = "REH"
	CategorySNO = "SNO"
	CategorySKY = "SKY"
	CategoryTMP = "TMP"
	CategoryTMN = "TMN"
	CategoryTMX = "TMX"
	CategoryUUU = "UUU"
	CategoryVVV = "VVV"
	CategoryWAV = "WAV"
	CategoryVEC = "VEC"
	CategoryWSD = "WSD"
)

// FcstCodeMapper translates category codes and enumerated values into display text.
// Its tables are filled once by NewFcstCodeMapper and never modified, so one instance
// can be shared by every goroutine.
type FcstCodeMapper struct {
	categoryLabels map[string]string
	enumValues     map[string]map[int]string
}

func NewFcstCodeMapper() *FcstCodeMapper {
	return &FcstCodeMapper{
		categoryLabels: map[string]string{
			CategoryPOP: "강수확률(%)",
			CategoryPTY: "강수형태",
			CategoryPCP: "1시간 강수량(범주:1mm)",
			CategoryREH: "습도(%)",
			CategorySNO: "1시간 신적설(범주:1cm)",
			CategorySKY: "하늘상태",
			CategoryTMP: "1시간 기온(°C)",
			CategoryTMN: "일 최저기온(°C)",
			CategoryTMX: "일 최고기온(°C)",
			CategoryUUU: "풍속(동서성분)(m/s)",
			CategoryVVV: "풍속(남북성분)(m/s)",
			CategoryWAV: "파고(M)",
			CategoryVEC: "풍향(deg)",
			CategoryWSD: "풍속(m/s)",
		},
		enumValues: map[string]map[int]string{
			CategoryPTY: {
				0: "없음",
				1: "비",
				2: "비/눈",
				3: "눈",
				4: "소나기",
			},
			CategorySKY: {
				1: "맑음",
				3: "구름많음",
				4: "흐림",
			},
		},
	}
}

// CategoryLabel returns the display label of a category code.
func (m *FcstCodeMapper) CategoryLabel(code string) (string, error) {
	label, ok := m.categoryLabels[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownCategory, code)
	}
	return label, nil
}

// IsEnumerated reports whether values of the category are codes of a lookup table.
func (m *FcstCodeMapper) IsEnumerated(code string) bool {
	_, ok := m.enumValues[code]
	return ok
}

// TranslateValue returns the display text of a raw value.
// Enumerated categories are looked up by integer code; every other value is kept as is,
// except provider "no data" sentinels which become MissingValueLabel.
func (m *FcstCodeMapper) TranslateValue(code, rawValue string) (string, error) {
	value := rawValue
	if table, ok := m.enumValues[code]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(rawValue))
		if err != nil {
			return "", fmt.Errorf("%w: %s=%q is not an integer code", model.ErrUnmappedEnumValue, code, rawValue)
		}
		label, ok := table[n]
		if !ok {
			return "", fmt.Errorf("%w: %s=%d", model.ErrUnmappedEnumValue, code, n)
		}
		value = label
	}

	if IsMissingValue(value) {
		return MissingValueLabel, nil
	}
	return value, nil
}

// Normalize maps an item to its display label and value, falling back to the raw
// category code and the raw value when a table has no entry for them.
func (m *FcstCodeMapper) Normalize(code, rawValue string) (string, string) {
	label, err := m.CategoryLabel(code)
	if err != nil {
		label = code
	}

	value, err := m.TranslateValue(code, rawValue)
	if err != nil {
		value = rawValue
		if IsMissingValue(value) {
			value = MissingValueLabel
		}
	}
	return label, value
}

// IsMissingValue reports whether s is a number whose magnitude is at least 900.
func IsMissingValue(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return false
	}
	return math.Abs(v) >= missingValueThreshold
}
