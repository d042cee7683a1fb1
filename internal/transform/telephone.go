package transform

import "strings"

// paidServicePrefixes are national-subscriber-portion prefixes that mark
// a French phone number as a paid service. OnPaidPhonePolicy decides
// what happens to such a number.
var paidServicePrefixes = []string{"81", "82", "83", "87", "89"}

func isPaidService(number string) bool {
	for _, prefix := range paidServicePrefixes {
		if strings.HasPrefix(number, prefix) {
			return true
		}
	}
	return false
}

// OnPaidPhonePolicy selects what a paid-service phone number resolves to.
type OnPaidPhonePolicy string

const (
	// OnPaidPhoneReject rejects a paid-service number to nil.
	OnPaidPhoneReject OnPaidPhonePolicy = "reject"
	// OnPaidPhoneKeepRaw keeps a paid-service number's stripped digit
	// string rather than rejecting it, skipping the canonical rewrite.
	OnPaidPhoneKeepRaw OnPaidPhonePolicy = "keep_raw"
)

func paidResult(policy OnPaidPhonePolicy, raw string) *string {
	if policy == OnPaidPhoneKeepRaw {
		return ptr(raw)
	}
	return nil
}

// Telephone canonicalizes a French phone number under the default
// reject policy for paid-service numbers. See TelephoneWithPolicy.
func Telephone(s *string) *string {
	return TelephoneWithPolicy(OnPaidPhoneReject)(s)
}

// TelephoneWithPolicy canonicalizes a French phone number: strips
// everything but ASCII digits, then classifies by the resulting length
// and leading digits. A 9-digit subscriber number, a 10-digit number
// with a leading national trunk '0', an 11-digit number with a leading
// country code "33", and a 12-digit number with a "330" prefix all
// rewrite to "+33 d dd dd dd dd" grouping. A 12-digit number with an
// international "00" prefix rewrites to "+" followed by its remaining ten
// digits grouped "dd d dd dd dd d". Any other shape rejects to nil. A number whose subscriber portion begins with a
// paid-service prefix resolves per policy instead of the canonical
// rewrite. The digit-only strip removes a leading '+', so the literal
// "+33"-prefixed 12-digit branch below can never trigger post-strip —
// this mirrors the source behavior as written rather than a corrected
// intent.
func TelephoneWithPolicy(policy OnPaidPhonePolicy) Func {
	return func(s *string) *string {
		if s == nil {
			return nil
		}
		number := stripNonDigits(strings.TrimSpace(*s))

		switch {
		case len(number) == 10 && strings.HasPrefix(number, "0"):
			if isPaidService(number[1:]) {
				return paidResult(policy, number)
			}
			return ptr(group33(number[1:2], number[2:4], number[4:6], number[6:8], number[8:10]))

		case len(number) == 11 && strings.HasPrefix(number, "33"):
			if isPaidService(number[2:]) {
				return paidResult(policy, number)
			}
			return ptr(group33(number[2:3], number[3:5], number[5:7], number[7:9], number[9:11]))

		case len(number) == 12 && strings.HasPrefix(number, "00"):
			if isPaidService(number[2:]) {
				return paidResult(policy, number)
			}
			return ptr("+" + number[2:4] + " " + number[4:5] + " " + number[5:7] + " " + number[7:9] + " " + number[9:11] + " " + number[11:12])

		case len(number) == 12 && strings.HasPrefix(number, "+33"):
			if isPaidService(number[3:]) {
				return paidResult(policy, number)
			}
			return ptr(group33(number[3:4], number[4:6], number[6:8], number[8:10], number[10:12]))

		case len(number) == 12 && strings.HasPrefix(number, "330"):
			if isPaidService(number[3:]) {
				return paidResult(policy, number)
			}
			return ptr(group33(number[3:4], number[4:6], number[6:8], number[8:10], number[10:12]))

		case len(number) == 9:
			if isPaidService(number) {
				return paidResult(policy, number)
			}
			return ptr(group33(number[0:1], number[1:3], number[3:5], number[5:7], number[7:9]))

		default:
			return nil
		}
	}
}

func group33(a, b, c, d, e string) string {
	return "+33 " + a + " " + b + " " + c + " " + d + " " + e
}
