package identity

// cardNetwork is an issuer prefix set with its number length.
type cardNetwork struct {
	prefixes []string
	length   int
}

var cardNetworks = []cardNetwork{
	{[]string{"4"}, 16},                               // visa
	{[]string{"4"}, 13},                               // visa, legacy
	{[]string{"51", "52", "53", "54", "55"}, 16},      // mastercard
	{[]string{"2221", "2500", "2720"}, 16},            // mastercard 2-series
	{[]string{"34", "37"}, 15},                        // amex
	{[]string{"6011", "644", "645", "649", "65"}, 16}, // discover
}

// cardNumber builds a 13-16 digit number behind a real issuer prefix.
func (g *Generator) cardNumber() string {
	n := cardNetworks[g.rnd.IntN(len(cardNetworks))]
	prefix := n.prefixes[g.rnd.IntN(len(n.prefixes))]

	body := prefix + g.rnd.Digits(n.length-len(prefix)-1)
	if g.luhn {
		return body + string(luhnDigit(body))
	}
	return body + g.rnd.Digits(1)
}

// luhnDigit returns the check digit that makes partial+digit Luhn-valid.
func luhnDigit(partial string) byte {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

// Luhn reports whether number passes the Luhn checksum.
func Luhn(number string) bool {
	if len(number) < 2 {
		return false
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
	}
	last := len(number) - 1
	return luhnDigit(number[:last]) == number[last]
}
