package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		override string
		env      map[string]string
		want     Language
	}{
		{"nothing set", "", nil, English},
		{"override wins", "ru", map[string]string{"LANG": "en_US.UTF-8"}, Russian},
		{"posix lang", "", map[string]string{"LANG": "ru_RU.UTF-8"}, Russian},
		{"language list takes first", "", map[string]string{"LANGUAGE": "ru:en"}, Russian},
		{"lc_all before lang", "", map[string]string{"LC_ALL": "en_GB.UTF-8", "LANG": "ru_RU.UTF-8"}, English},
		{"modifier stripped", "", map[string]string{"LANG": "ru_UA@euro"}, Russian},
		{"C locale", "", map[string]string{"LC_ALL": "C"}, English},
		{"other language", "", map[string]string{"LANG": "de_DE.UTF-8"}, English},
		{"garbage", "", map[string]string{"LANG": "!!"}, English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.override, envOf(tt.env)))
		})
	}
}

func TestLanguageParse(t *testing.T) {
	l, err := Language("").Parse()
	require.NoError(t, err)
	assert.Equal(t, English, l)

	_, err = Language("fr").Parse()
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	en := MustNew(English)
	ru := MustNew(Russian)

	assert.Equal(t, "Latest News", en.Translate("latestNews"))
	assert.Equal(t, "Последние новости", ru.Translate("latestNews"))
	assert.Equal(t, "Наука", ru.Translate("Science"))
	assert.Equal(t, "SomethingUnknown", ru.Translate("SomethingUnknown"))
}

func TestTablesHaveSameKeys(t *testing.T) {
	en := MustNew(English).Strings()
	ru := MustNew(Russian).Strings()

	require.Len(t, ru, len(en))
	for k := range en {
		assert.Contains(t, ru, k)
	}
}

func TestStringsIsACopy(t *testing.T) {
	en := MustNew(English)
	s := en.Strings()
	s["siteName"] = "changed"

	assert.Equal(t, "NewsFlow", en.Translate("siteName"))
}

func TestFormatting(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) // Tuesday
	en := MustNew(English)
	ru := MustNew(Russian)

	assert.Equal(t, "3/5/2024", en.FormatDate(ts))
	assert.Equal(t, "05.03.2024", ru.FormatDate(ts))
	assert.Equal(t, "March 5, 2024", en.FormatLongDate(ts))
	assert.Equal(t, "5 марта 2024 г.", ru.FormatLongDate(ts))
	assert.Equal(t, "Tue", en.WeekdayShort(ts))
	assert.Equal(t, "вт", ru.WeekdayShort(ts))

	assert.Equal(t, "12,500", en.FormatNumber(12500))
	assert.NotContains(t, ru.FormatNumber(12500), ",")
}
