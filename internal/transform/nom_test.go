package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNom(t *testing.T) {
	cases := []struct {
		in   *string
		want *string
	}{
		{ptr("Jean-Dupont//Smith"), ptr("JEAN DUPONT ET SMITH")},
		{ptr("Marie-Curie&Einstein"), ptr("MARIE CURIE ET EINSTEIN")},
		{ptr("N/A"), ptr("N ET A")},
		{ptr("O'Neil & Sons"), ptr("O'NEIL ET SONS")},
		{ptr("El Niño"), ptr("EL NINO")},
		{ptr("&Carre & Lagrave&"), ptr("CARRE ET LAGRAVE")},
		{ptr("/Sébastien / Pascal/"), ptr("SEBASTIEN ET PASCAL")},
		{ptr("Carre_/"), ptr("CARRE")},
		{ptr("Brøgger"), ptr("BRØGGER")},
		{nil, nil},
		{ptr(""), nil},
		{ptr("    "), nil},
	}
	for _, c := range cases {
		got := Nom(c.in)
		if c.want == nil {
			assert.Nil(t, got)
		} else if assert.NotNil(t, got) {
			assert.Equal(t, *c.want, *got)
		}
	}
}

func TestNomIdempotent(t *testing.T) {
	inputs := []string{"Jean-Dupont//Smith", "&Carre & Lagrave&", "/Sébastien / Pascal/", "Brøgger"}
	for _, in := range inputs {
		once := Nom(ptr(in))
		twice := Nom(once)
		assert.Equal(t, *once, *twice)
	}
}
