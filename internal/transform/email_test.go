package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailScenario1(t *testing.T) {
	cases := []struct {
		in   *string
		want *string
	}{
		{ptr("Lucas31@gmail.com"), ptr("LUCAS31@GMAIL.COM")},
		{ptr("Lucas 31@gmail.com"), ptr("LUCAS31@GMAIL.COM")},
		{ptr("Lucàs31@gmail.com"), ptr("LUCAS31@GMAIL.COM")},
		{ptr("@gmail.com"), nil},
		{ptr("Lucas31@g.com"), nil},
		{ptr("Lucas31@gmail.c-om"), nil},
		{ptr("Lucas31@.gmail.com"), ptr("LUCAS31@GMAIL.COM")},
		{nil, nil},
	}
	for _, c := range cases {
		got := Email(c.in)
		if c.want == nil {
			assert.Nil(t, got, "input %v", c.in)
		} else if assert.NotNil(t, got, "input %v", c.in) {
			assert.Equal(t, *c.want, *got)
		}
	}
}

func TestEmailAdditionalCases(t *testing.T) {
	cases := []struct {
		in   *string
		want *string
	}{
		{ptr("Luc’’as31@gmail.com"), ptr("LUCAS31@GMAIL.COM")},
		{ptr("Lucas31gmail.com"), nil},
		{ptr("Lucas31@siapartnersrue(XXXX....XXXX).com"), nil},
		{ptr("Lucas31@"), nil},
		{ptr("Lucas31@gmail."), nil},
		{ptr("Lucas31@gmail..com"), nil},
		{ptr("Lucas31@gmail.f"), nil},
		{ptr("Lucas31@gmail.commmee"), nil},
		{ptr("em&ms@gmail..com"), nil},
	}
	for _, c := range cases {
		got := Email(c.in)
		if c.want == nil {
			assert.Nil(t, got, "input %v", *c.in)
		} else if assert.NotNil(t, got, "input %v", *c.in) {
			assert.Equal(t, *c.want, *got)
		}
	}
}
