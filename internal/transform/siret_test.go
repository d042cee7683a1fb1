package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiretScenario3(t *testing.T) {
	cases := []struct {
		in   *string
		want *string
	}{
		{ptr("443 169 524 00120"), ptr("44316952400120")},
		{ptr("443.169.524.00120"), ptr("44316952400120")},
		{ptr("443 169 524 GH780"), nil},
		{ptr("4ZT 169 524 00120"), nil},
		{nil, nil},
	}
	for _, c := range cases {
		got := Siret(c.in)
		if c.want == nil {
			assert.Nil(t, got)
		} else if assert.NotNil(t, got) {
			assert.Equal(t, *c.want, *got)
		}
	}
}

func TestSirenAcceptsNineDigitsOnly(t *testing.T) {
	assert.Equal(t, "732829320", *Siren(ptr("732829320")))
	assert.Nil(t, Siren(ptr("732829320111")))
	assert.Nil(t, Siren(nil))
}

func TestCodeNafLike(t *testing.T) {
	cases := []struct {
		in   *string
		want *string
	}{
		{ptr("011;1Z"), ptr("0111Z")},
		{ptr("1234a"), ptr("1234A")},
		{ptr("5678B"), ptr("5678B")},
		{ptr("1234"), nil},
		{ptr("5678"), nil},
		{ptr("12-34"), nil},
	}
	for _, c := range cases {
		got := codeNafLike(c.in)
		if c.want == nil {
			assert.Nil(t, got, "input %v", *c.in)
		} else if assert.NotNil(t, got, "input %v", *c.in) {
			assert.Equal(t, *c.want, *got)
		}
	}
}

func TestPCEStripsNonDigits(t *testing.T) {
	assert.Equal(t, "12345", *PCE(ptr("1-2 3.4/5")))
	assert.Nil(t, PCE(nil))
}
