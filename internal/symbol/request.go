package symbol

// Request is a single pictograph to render. Code is used verbatim as the
// output file name stem.
type Request struct {
	Code       string
	Hostility  Hostility
	Finiteness Finiteness
}

// NewRequest builds a Request from raw strings, normalising the two classes.
// Code is taken as-is; callers decide whether an empty code is acceptable.
func NewRequest(code, hostility, finiteness string) (Request, error) {
	h, err := ParseHostility(hostility)
	if err != nil {
		return Request{}, err
	}
	f, err := ParseFiniteness(finiteness)
	if err != nil {
		return Request{}, err
	}
	return Request{Code: code, Hostility: h, Finiteness: f}, nil
}

// Validate checks both classes and returns the resolved style.
func (r Request) Validate() (StyleDescriptor, error) {
	style, err := Resolve(r.Hostility)
	if err != nil {
		return StyleDescriptor{}, err
	}
	if !r.Finiteness.Valid() {
		return StyleDescriptor{}, finitenessError(string(r.Finiteness))
	}
	return style, nil
}
