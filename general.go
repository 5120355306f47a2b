package ssf

import "strconv"

// trimFloat formats v with strconv.FormatFloat, used only by the General
// fallback render (value.generalRender) — the main number path always
// goes through internal/numrender instead.
func trimFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
