package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Extra holds keys a record carries that this release does not model. They
// are written back unchanged on save.
type Extra map[string]json.RawMessage

// count decodes a JSON number that must be whole. 34 and 34.0 are both 34.
type count int

func (c *count) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("%s is not a whole number", data)
	}
	*c = count(f)
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// decodeRecord unmarshals data into aux and returns the keys T has no field for.
func decodeRecord[T any](data []byte, aux any) (Extra, error) {
	if isNull(data) {
		return nil, nil
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, key := range jsonKeys(reflect.TypeOf((*T)(nil)).Elem()) {
		delete(raw, key)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return Extra(raw), nil
}

// encodeRecord marshals v and folds extra back in. Modelled keys win.
func encodeRecord(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, raw := range extra {
		if _, ok := merged[key]; !ok {
			merged[key] = raw
		}
	}
	return json.Marshal(merged)
}

func jsonKeys(t reflect.Type) []string {
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	aux := plain(*d)
	extra, err := decodeRecord[Document](data, &aux)
	if err != nil {
		return err
	}
	*d = Document(aux)
	d.Extra = extra
	return nil
}

// MarshalJSON writes the legacy integrations list only when it is set, so an
// empty list survives a round trip as [] and an absent one stays absent.
func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	aux := struct {
		plain
		Integrations *[]Connector `json:"integrations,omitempty"`
	}{plain: plain(d)}
	if d.Integrations != nil {
		aux.Integrations = &d.Integrations
	}
	return encodeRecord(aux, d.Extra)
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	aux := plain(*p)
	extra, err := decodeRecord[Profile](data, &aux)
	if err != nil {
		return err
	}
	*p = Profile(aux)
	p.Extra = extra
	return nil
}

func (p Profile) MarshalJSON() ([]byte, error) {
	type plain Profile
	return encodeRecord(plain(p), p.Extra)
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	type plain Segment
	aux := struct {
		plain
		Size count `json:"size"`
	}{plain: plain(*s), Size: count(s.Size)}
	extra, err := decodeRecord[Segment](data, &aux)
	if err != nil {
		return err
	}
	*s = Segment(aux.plain)
	s.Size = int(aux.Size)
	s.Extra = extra
	return nil
}

func (s Segment) MarshalJSON() ([]byte, error) {
	type plain Segment
	return encodeRecord(plain(s), s.Extra)
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	type plain Campaign
	aux := plain(*c)
	extra, err := decodeRecord[Campaign](data, &aux)
	if err != nil {
		return err
	}
	*c = Campaign(aux)
	c.Extra = extra
	return nil
}

func (c Campaign) MarshalJSON() ([]byte, error) {
	type plain Campaign
	return encodeRecord(plain(c), c.Extra)
}

func (t *Template) UnmarshalJSON(data []byte) error {
	type plain Template
	aux := plain(*t)
	extra, err := decodeRecord[Template](data, &aux)
	if err != nil {
		return err
	}
	*t = Template(aux)
	t.Extra = extra
	return nil
}

func (t Template) MarshalJSON() ([]byte, error) {
	type plain Template
	return encodeRecord(plain(t), t.Extra)
}

func (c *Connector) UnmarshalJSON(data []byte) error {
	type plain Connector
	aux := plain(*c)
	extra, err := decodeRecord[Connector](data, &aux)
	if err != nil {
		return err
	}
	*c = Connector(aux)
	c.Extra = extra
	return nil
}

func (c Connector) MarshalJSON() ([]byte, error) {
	type plain Connector
	return encodeRecord(plain(c), c.Extra)
}

func (b *BackendService) UnmarshalJSON(data []byte) error {
	type plain BackendService
	aux := plain(*b)
	extra, err := decodeRecord[BackendService](data, &aux)
	if err != nil {
		return err
	}
	*b = BackendService(aux)
	b.Extra = extra
	return nil
}

func (b BackendService) MarshalJSON() ([]byte, error) {
	type plain BackendService
	return encodeRecord(plain(b), b.Extra)
}

func (r *DatabaseRecord) UnmarshalJSON(data []byte) error {
	type plain DatabaseRecord
	aux := struct {
		plain
		Connections count `json:"connections"`
	}{plain: plain(*r), Connections: count(r.Connections)}
	extra, err := decodeRecord[DatabaseRecord](data, &aux)
	if err != nil {
		return err
	}
	*r = DatabaseRecord(aux.plain)
	r.Connections = int(aux.Connections)
	r.Extra = extra
	return nil
}

func (r DatabaseRecord) MarshalJSON() ([]byte, error) {
	type plain DatabaseRecord
	return encodeRecord(plain(r), r.Extra)
}

func (a *AnalyticsSummary) UnmarshalJSON(data []byte) error {
	type plain AnalyticsSummary
	aux := struct {
		plain
		Conversions count `json:"conversions"`
	}{plain: plain(*a), Conversions: count(a.Conversions)}
	extra, err := decodeRecord[AnalyticsSummary](data, &aux)
	if err != nil {
		return err
	}
	*a = AnalyticsSummary(aux.plain)
	a.Conversions = int(aux.Conversions)
	a.Extra = extra
	return nil
}

func (a AnalyticsSummary) MarshalJSON() ([]byte, error) {
	type plain AnalyticsSummary
	return encodeRecord(plain(a), a.Extra)
}

func (t *ABTest) UnmarshalJSON(data []byte) error {
	type plain ABTest
	aux := plain(*t)
	extra, err := decodeRecord[ABTest](data, &aux)
	if err != nil {
		return err
	}
	*t = ABTest(aux)
	t.Extra = extra
	return nil
}

func (t ABTest) MarshalJSON() ([]byte, error) {
	type plain ABTest
	return encodeRecord(plain(t), t.Extra)
}

func (f *FeedbackForm) UnmarshalJSON(data []byte) error {
	type plain FeedbackForm
	aux := struct {
		plain
		Responses count `json:"responses"`
	}{plain: plain(*f), Responses: count(f.Responses)}
	extra, err := decodeRecord[FeedbackForm](data, &aux)
	if err != nil {
		return err
	}
	*f = FeedbackForm(aux.plain)
	f.Responses = int(aux.Responses)
	f.Extra = extra
	return nil
}

func (f FeedbackForm) MarshalJSON() ([]byte, error) {
	type plain FeedbackForm
	return encodeRecord(plain(f), f.Extra)
}

func (a *ActionItem) UnmarshalJSON(data []byte) error {
	type plain ActionItem
	aux := plain(*a)
	extra, err := decodeRecord[ActionItem](data, &aux)
	if err != nil {
		return err
	}
	*a = ActionItem(aux)
	a.Extra = extra
	return nil
}

func (a ActionItem) MarshalJSON() ([]byte, error) {
	type plain ActionItem
	return encodeRecord(plain(a), a.Extra)
}

func (r *RulePreset) UnmarshalJSON(data []byte) error {
	type plain RulePreset
	aux := struct {
		plain
		ABTests  count `json:"ab_tests,omitempty"`
		Variants count `json:"variants,omitempty"`
		Length   count `json:"length,omitempty"`
	}{
		plain:    plain(*r),
		ABTests:  count(r.ABTests),
		Variants: count(r.Variants),
		Length:   count(r.Length),
	}
	extra, err := decodeRecord[RulePreset](data, &aux)
	if err != nil {
		return err
	}
	*r = RulePreset(aux.plain)
	r.ABTests = int(aux.ABTests)
	r.Variants = int(aux.Variants)
	r.Length = int(aux.Length)
	r.Extra = extra
	return nil
}

func (r RulePreset) MarshalJSON() ([]byte, error) {
	type plain RulePreset
	return encodeRecord(plain(r), r.Extra)
}
