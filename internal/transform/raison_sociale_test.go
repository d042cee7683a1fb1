package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaisonSociale(t *testing.T) {
	cases := []struct {
		in   *string
		want string
	}{
		{ptr(`"ED""BANGER"`), `ED"BANGER`},
		{ptr("Imagin&tiff_"), "IMAGIN&TIFF_"},
		{ptr("S’ociété"), "S’OCIETE"},
		{ptr("VECCHIA/"), "VECCHIA/"},
		{ptr("//MONEYY//"), "//MONEYY//"},
		{ptr("Straße"), "STRAßE"},
		{ptr("édouardservices"), "EDOUARDSERVICES"},
		{ptr("Brøgger"), "BRØGGER"},
		{ptr("A"), "A"},
		{ptr("TIGER_Milk"), "TIGER_MILK"},
		{ptr(`""vanescènce"`), `"VANESCENCE`},
	}
	for _, c := range cases {
		got := RaisonSociale(c.in)
		if assert.NotNil(t, got, "input %v", *c.in) {
			assert.Equal(t, c.want, *got, "input %v", *c.in)
		}
	}
}

func TestRaisonSocialeNilPassesThrough(t *testing.T) {
	assert.Nil(t, RaisonSociale(nil))
}
