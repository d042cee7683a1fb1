package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrenom(t *testing.T) {
	cases := []struct {
		in   *string
		want *string
	}{
		{ptr("amélie"), ptr("Amélie")},
		{ptr("LOUCA"), ptr("Louca")},
		{ptr("H-an"), ptr("H-An")},
		{ptr("élie"), ptr("Elie")},
		{ptr("anne-marie"), ptr("Anne-Marie")},
		{ptr("anne marie"), ptr("Anne Marie")},
		{ptr("Hélène*3"), ptr("Hélène")},
		{ptr("Hélène&Adelin"), ptr("Hélène Adelin")},
		{nil, nil},
	}
	for _, c := range cases {
		got := Prenom(c.in)
		if c.want == nil {
			assert.Nil(t, got, "input %v", c.in)
		} else if assert.NotNil(t, got, "input %v", c.in) {
			assert.Equal(t, *c.want, *got)
		}
	}
}

func TestPrenomSingleLetter(t *testing.T) {
	assert.Equal(t, "A", *Prenom(ptr("A")))
	assert.Nil(t, Prenom(ptr("3")))
}
