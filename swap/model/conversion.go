package model

type ConversionState string

const (
	ConversionStateLoading ConversionState = "loading"
	ConversionStateReady   ConversionState = "ready"
	ConversionStateFailed  ConversionState = "failed"
)

type SubmissionState string

const (
	SubmissionStateIdle       SubmissionState = "idle"
	SubmissionStateSubmitting SubmissionState = "submitting"
)

// Origin names the amount field a user edited last.
type Origin string

const (
	OriginFrom Origin = "from"
	OriginTo   Origin = "to"
)

// Opposite returns the other field. The empty origin stays empty.
func (o Origin) Opposite() Origin {
	switch o {
	case OriginFrom:
		return OriginTo
	case OriginTo:
		return OriginFrom
	default:
		return ""
	}
}

func (o Origin) Valid() bool {
	return o == OriginFrom || o == OriginTo
}

type ConversionPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Complete reports whether both assets are selected.
func (p ConversionPair) Complete() bool {
	return p.From != "" && p.To != ""
}

// AmountPair keeps both amounts as the text the user sees. Origin is the side
// holding user input; the other side is derived from it.
type AmountPair struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Origin Origin `json:"origin,omitempty"`
}

// Side returns the text held by the given field.
func (a AmountPair) Side(o Origin) string {
	if o == OriginTo {
		return a.To
	}
	return a.From
}

// AmountEdit is a single user edit of one amount field.
type AmountEdit struct {
	Origin Origin
	Value  string
}

// Rate is an exchange rate that may be unavailable.
type Rate struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Conversion is a point in time view of one conversion session.
type Conversion struct {
	SessionID       string          `json:"session_id"`
	State           ConversionState `json:"state"`
	Failure         *string         `json:"failure,omitempty"`
	Catalog         Catalog         `json:"catalog"`
	Pair            ConversionPair  `json:"pair"`
	Amounts         AmountPair      `json:"amounts"`
	Rate            Rate            `json:"rate"`
	ValidationError *string         `json:"validation_error,omitempty"`
	ValidationKind  *string         `json:"validation_kind,omitempty"`
	Submission      SubmissionState `json:"submission"`
	LastSettlement  *Settlement     `json:"last_settlement,omitempty"`
}
