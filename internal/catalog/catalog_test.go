package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages_Table(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 14)
	assert.Equal(t, Language{Name: "English", Code: "en"}, langs[0])
	assert.Equal(t, Language{Name: "Dutch", Code: "nl"}, langs[13])

	seen := map[string]bool{}
	for _, l := range langs {
		assert.False(t, seen[l.Code], "duplicate code %s", l.Code)
		seen[l.Code] = true
	}
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	langs := Languages()
	langs[0].Code = "xx"

	code, ok := LanguageCode("English")
	require.True(t, ok)
	assert.Equal(t, "en", code)
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"French", "fr", true},
		{"Chinese (Simplified)", "zh-cn", true},
		{"Klingon", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LanguageCode(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageTag(t *testing.T) {
	tag, err := LanguageTag("zh-cn")
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", tag.String())

	_, err = LanguageTag("xx")
	assert.Error(t, err)
}

func TestWallpapers(t *testing.T) {
	require.Len(t, Wallpapers(), 4)

	url, ok := WallpaperURL("Beach")
	require.True(t, ok)
	assert.Contains(t, url, "unsplash.com")
	assert.Equal(t, "Beach", WallpaperName(url))

	url, ok = WallpaperURL(NoWallpaper)
	require.True(t, ok)
	assert.Empty(t, url)
	assert.Equal(t, NoWallpaper, WallpaperName(""))

	_, ok = WallpaperURL("Desert")
	assert.False(t, ok)
}
