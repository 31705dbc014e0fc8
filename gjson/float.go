package gjson

import (
	"encoding/json"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Float decodes a JSON number or a string holding one. Quote APIs disagree on
// which they send.
type Float float64

func (f *Float) UnmarshalJSON(buf []byte) error {
	var n json.Number
	if err := json.Unmarshal(buf, &n); err != nil {
		var s string
		if err := json.Unmarshal(buf, &s); err != nil {
			return errors.WithStack(err)
		}
		n = json.Number(strings.TrimSpace(s))
	}
	if n == "" {
		return errors.New("empty number")
	}
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return errors.WithStack(err)
	}
	*f = Float(v)
	return nil
}
