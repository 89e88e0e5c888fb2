package parser

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/tidwall/gjson"

	"kma-forecast/internal/domain/mapper"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/model/external"
)

const (
	pathResultCode = "response.header.resultCode"
	pathResultMsg  = "response.header.resultMsg"
	pathItems      = "response.body.items.item"
)

// ResponseParser turns raw village forecast bodies into forecast records.
type ResponseParser struct {
	mapper *mapper.FcstCodeMapper
}

func NewResponseParser(codeMapper *mapper.FcstCodeMapper) *ResponseParser {
	return &ResponseParser{mapper: codeMapper}
}

// Parse classifies body and folds its items into a ForecastRecord.
// A successful body without items yields an empty record.
func (p *ResponseParser) Parse(body string) (*model.ForecastRecord, error) {
	items, err := p.ParseItems(body)
	if err != nil {
		return nil, err
	}
	return p.Fold(items), nil
}

// ParseItems classifies body and returns its forecast items in provider order.
//
// Failures are reported as *model.ProviderError whose Kind is:
//   - model.ErrCredentialRejected for an XML fault about an unregistered service key
//   - model.ErrProviderFault for any other XML fault or a JSON result code other than "00"
//   - model.ErrMalformedResponse for a body that is not the expected JSON shape
func (p *ResponseParser) ParseItems(body string) ([]model.ForecastItem, error) {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "<") {
		return nil, classifyXMLFault(trimmed)
	}

	if !gjson.Valid(trimmed) {
		return nil, malformed("body is not valid JSON")
	}
	root := gjson.Parse(trimmed)

	resultCode := root.Get(pathResultCode)
	if !resultCode.Exists() {
		return nil, malformed("missing " + pathResultCode)
	}
	if resultCode.String() != external.ResultCodeSuccess {
		return nil, &model.ProviderError{
			Kind:    model.ErrProviderFault,
			Code:    resultCode.String(),
			Message: root.Get(pathResultMsg).String(),
		}
	}

	return readItems(root.Get(pathItems))
}

func readItems(node gjson.Result) ([]model.ForecastItem, error) {
	var elements []gjson.Result
	switch {
	case !node.Exists(), node.Type == gjson.Null:
		return nil, nil
	case node.IsArray():
		elements = node.Array()
	case node.IsObject():
		// a lone item is sometimes serialized without the enclosing array
		elements = []gjson.Result{node}
	case node.Type == gjson.String && node.String() == "":
		return nil, nil
	default:
		return nil, malformed(pathItems + " is not a list")
	}

	items := make([]model.ForecastItem, 0, len(elements))
	for i, element := range elements {
		if !element.IsObject() {
			return nil, malformed(fmt.Sprintf("item %d is not an object", i))
		}
		category := element.Get("category")
		if !category.Exists() || category.String() == "" {
			return nil, malformed(fmt.Sprintf("item %d has no category", i))
		}
		items = append(items, model.ForecastItem{
			FcstDate:  element.Get("fcstDate").String(),
			FcstTime:  element.Get("fcstTime").String(),
			Category:  category.String(),
			FcstValue: element.Get("fcstValue").String(),
		})
	}
	return items, nil
}

// Fold maps every item to its display label and value. Labels keep first-seen order and
// a repeated label keeps the value of its last item.
func (p *ResponseParser) Fold(items []model.ForecastItem) *model.ForecastRecord {
	record := model.NewForecastRecord()
	p.fold(record, items)
	return record
}

func (p *ResponseParser) fold(record *model.ForecastRecord, items []model.ForecastItem) {
	for _, item := range items {
		label, value := p.mapper.Normalize(item.Category, item.FcstValue)
		record.Put(label, value)
	}
}

// FoldForecast is Fold headed by the forecast date and time of the first item.
// No items yield an empty record.
func (p *ResponseParser) FoldForecast(items []model.ForecastItem) *model.ForecastRecord {
	record := model.NewForecastRecord()
	if len(items) == 0 {
		return record
	}
	record.Put(mapper.LabelFcstDate, items[0].FcstDate)
	record.Put(mapper.LabelFcstTime, items[0].FcstTime)
	p.fold(record, items)
	return record
}

// FoldHourly groups items by forecast date and time, in first-seen order, and folds each group.
func (p *ResponseParser) FoldHourly(items []model.ForecastItem) []model.HourlyForecast {
	var hours []model.HourlyForecast
	position := make(map[string]int)

	for _, item := range items {
		key := item.FcstDate + item.FcstTime
		i, ok := position[key]
		if !ok {
			i = len(hours)
			position[key] = i
			hours = append(hours, model.HourlyForecast{
				FcstDate: item.FcstDate,
				FcstTime: item.FcstTime,
				Record:   model.NewForecastRecord(),
			})
		}
		p.fold(hours[i].Record, []model.ForecastItem{item})
	}
	return hours
}

// classifyXMLFault decides the fault kind by substring search so that envelopes which
// are not well-formed XML are still classified; xmlquery only supplies the details.
func classifyXMLFault(body string) error {
	kind := model.ErrProviderFault
	if strings.Contains(body, external.CredentialNotRegisteredMarker) {
		kind = model.ErrCredentialRejected
	}

	fault := readFault(body)
	message := fault.ReturnAuthMsg
	if message == "" {
		message = fault.ErrMsg
	}
	if message == "" {
		message = "XML error response"
	}

	return &model.ProviderError{
		Kind:    kind,
		Code:    fault.ReturnReasonCode,
		Message: message,
	}
}

func readFault(body string) external.OpenAPIFault {
	doc, err := xmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return external.OpenAPIFault{}
	}

	text := func(name string) string {
		if node := xmlquery.FindOne(doc, "//"+name); node != nil {
			return strings.TrimSpace(node.InnerText())
		}
		return ""
	}

	return external.OpenAPIFault{
		ErrMsg:           text("errMsg"),
		ReturnAuthMsg:    text("returnAuthMsg"),
		ReturnReasonCode: text("returnReasonCode"),
	}
}

func malformed(reason string) error {
	return &model.ProviderError{Kind: model.ErrMalformedResponse, Message: reason}
}
