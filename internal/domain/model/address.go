package model

import "time"

// Address is the shipping destination of an order. All fields are optional.
// Owned exclusively by one order.
type Address struct {
	ID           int64
	State        string
	Address      string
	Neighborhood string
	Number       string
	Complement   string
	City         string
	CEP          string
	CreatedAt    time.Time
	LastChange   time.Time
}

// Brazilian federative unit codes accepted in Address.State.
var stateCodes = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// ValidState reports whether code is an accepted state code.
// The empty string is valid because the field is optional.
func ValidState(code string) bool {
	if code == "" {
		return true
	}
	_, ok := stateCodes[code]
	return ok
}
