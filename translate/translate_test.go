package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("label L1 missing", From("label %v missing", "L1"))
	assert.Equal("1,024 bytes", From("%d bytes", 1024))
}

func TestLocalesEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LocaleEnv, "de-DE")
	assert.Equal([]string{"de-DE"}, Locales())
}
